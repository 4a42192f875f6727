package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ALAMSHAHBAZ/news-feed-llm/config"
	"github.com/ALAMSHAHBAZ/news-feed-llm/handler"
	"github.com/ALAMSHAHBAZ/news-feed-llm/middleware"
	"github.com/ALAMSHAHBAZ/news-feed-llm/service"
	"github.com/ALAMSHAHBAZ/news-feed-llm/storage"
)

const serviceName = "news-feed-llm"

// Setup wires handlers and middleware into a gin engine.
func Setup(cfg *config.Config, ranker *service.Ranker, pipeline *service.Pipeline, store storage.Store) *gin.Engine {
	r := gin.Default()

	// Enable CORS for all origins (you may want to restrict this in production)
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	r.Use(middleware.PrometheusMiddleware(serviceName))

	newsHandler := handler.NewNewsHandler(cfg, ranker, pipeline)
	trendingHandler := handler.NewTrendingHandler(cfg, ranker, store)
	eventHandler := handler.NewEventHandler(store)

	// Health check routes
	r.GET("/", healthCheck)
	r.GET("/health", healthCheck)
	r.GET("/ready", healthCheck)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/news-api")
	{
		api.GET("/category", newsHandler.GetByCategory)
		api.GET("/source", newsHandler.GetBySource)
		api.GET("/score", newsHandler.GetByScore)
		api.GET("/search", newsHandler.Search)
		api.GET("/nearby", newsHandler.GetNearby)
		api.POST("/query", newsHandler.SmartQuery)
		api.GET("/trending", trendingHandler.GetTrending)
		api.POST("/events", eventHandler.RecordEvent)
	}

	return r
}

func healthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "healthy", "service": serviceName})
}

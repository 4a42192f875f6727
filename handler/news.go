// Package handler exposes the ranking, query and trending engines over HTTP.
package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ALAMSHAHBAZ/news-feed-llm/config"
	"github.com/ALAMSHAHBAZ/news-feed-llm/metrics"
	"github.com/ALAMSHAHBAZ/news-feed-llm/service"
)

type NewsHandler struct {
	cfg      *config.Config
	ranker   *service.Ranker
	pipeline *service.Pipeline
}

func NewNewsHandler(cfg *config.Config, ranker *service.Ranker, pipeline *service.Pipeline) *NewsHandler {
	return &NewsHandler{cfg: cfg, ranker: ranker, pipeline: pipeline}
}

// GetByCategory handles GET /news-api/category?category=...&limit=...
func (h *NewsHandler) GetByCategory(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}

	results, err := h.ranker.RankByCategory(c.Request.Context(), category, h.limit(c))
	if err != nil {
		log.Printf("category ranking failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(results), "articles": results})
}

// GetBySource handles GET /news-api/source?source=...&limit=...
func (h *NewsHandler) GetBySource(c *gin.Context) {
	source := c.Query("source")
	if source == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "source is required"})
		return
	}

	results, err := h.ranker.RankBySource(c.Request.Context(), source, h.limit(c))
	if err != nil {
		log.Printf("source ranking failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(results), "articles": results})
}

// GetByScore handles GET /news-api/score?threshold=0.7&limit=...
func (h *NewsHandler) GetByScore(c *gin.Context) {
	threshold := 0.7
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "threshold must be a number"})
			return
		}
		threshold = parsed
	}

	results, err := h.ranker.RankByScore(c.Request.Context(), threshold, h.limit(c))
	if err != nil {
		log.Printf("score ranking failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(results), "articles": results})
}

// Search handles GET /news-api/search?query=...&limit=...
func (h *NewsHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	results, err := h.ranker.RankBySearch(c.Request.Context(), query, h.limit(c))
	if err != nil {
		log.Printf("search ranking failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(results), "articles": results})
}

// GetNearby handles GET /news-api/nearby?lat=...&lon=...&radius=...&limit=...
func (h *NewsHandler) GetNearby(c *gin.Context) {
	lat, lon, ok := parseLatLon(c)
	if !ok {
		return
	}

	radius := h.cfg.NearbyRadiusKm
	if raw := c.Query("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "radius must be a positive number"})
			return
		}
		radius = parsed
	}

	results, err := h.ranker.RankByNearby(c.Request.Context(), lat, lon, radius, h.limit(c))
	if err != nil {
		log.Printf("nearby ranking failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(results), "articles": results})
}

// SmartQuery handles POST /news-api/query with body {"query": "..."}.
func (h *NewsHandler) SmartQuery(c *gin.Context) {
	// The query must be present and a string; any other JSON shape is a 400.
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query text is required (string)"})
		return
	}
	query, ok := body["query"].(string)
	if !ok || query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query text is required (string)"})
		return
	}

	resp, err := h.pipeline.SmartQuery(c.Request.Context(), query)
	if err != nil {
		log.Printf("smart query failed for %q: %v", query, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.RankingQueriesTotal.WithLabelValues("smart").Inc()
	c.JSON(http.StatusOK, resp)
}

func (h *NewsHandler) limit(c *gin.Context) int {
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			return parsed
		}
	}
	return h.cfg.DefaultLimit
}

func parseLatLon(c *gin.Context) (float64, float64, bool) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat is required and must be a number"})
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lon is required and must be a number"})
		return 0, 0, false
	}
	return lat, lon, true
}

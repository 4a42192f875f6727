package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ALAMSHAHBAZ/news-feed-llm/config"
	"github.com/ALAMSHAHBAZ/news-feed-llm/geo"
	"github.com/ALAMSHAHBAZ/news-feed-llm/llm"
	"github.com/ALAMSHAHBAZ/news-feed-llm/metrics"
	"github.com/ALAMSHAHBAZ/news-feed-llm/router"
	"github.com/ALAMSHAHBAZ/news-feed-llm/service"
	"github.com/ALAMSHAHBAZ/news-feed-llm/storage"
	"github.com/ALAMSHAHBAZ/news-feed-llm/worker"
)

func main() {
	log.Println("Starting news feed service...")

	cfg := config.Load()
	metrics.Init("news-feed-llm", "1.0.0", getEnv("ENVIRONMENT", "development"))

	// Connect to MongoDB
	mongoClient, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(context.Background())

	if err := mongoClient.Ping(context.Background(), nil); err != nil {
		log.Fatal("MongoDB ping error:", err)
	}
	log.Println("Connected to MongoDB")

	store := storage.NewMongoStore(mongoClient.Database(cfg.MongoDB))

	// External clients; both degrade to fallbacks when unconfigured.
	gemini := llm.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	geocoder := geo.NewGeocoder(cfg.OpenCageAPIKey)

	ranker := service.NewRanker(store, gemini, geocoder)
	pipeline := service.NewPipeline(ranker, gemini, cfg.RerankRadiusKm)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, stopping...")
		cancel()
	}()

	// Connect to NATS; ingestion is optional, the API serves without it.
	if nc, err := nats.Connect(cfg.NATSUrl); err != nil {
		log.Printf("NATS unavailable, article ingestion disabled: %v", err)
	} else {
		defer nc.Close()
		ingester, err := worker.NewIngester(nc, store)
		if err != nil {
			log.Printf("Failed to set up ingest worker: %v", err)
		} else {
			go func() {
				if err := ingester.Start(ctx); err != nil && err != context.Canceled {
					log.Printf("Ingest worker stopped: %v", err)
				}
			}()
		}
	}

	r := router.Setup(cfg, ranker, pipeline, store)

	log.Printf("News API is running at :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

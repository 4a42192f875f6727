package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	NATSUrl        string
	GeminiAPIKey   string
	GeminiModel    string
	OpenCageAPIKey string
	DefaultLimit   int
	TrendingLimit  int
	NearbyRadiusKm float64
	RerankRadiusKm float64
}

func Load() *Config {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "newsdb"),
		NATSUrl:        getEnv("NATS_URL", "nats://localhost:4222"),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		OpenCageAPIKey: getEnv("OPENCAGE_API_KEY", ""),
		DefaultLimit:   getIntEnv("DEFAULT_RESULT_LIMIT", 5),
		TrendingLimit:  getIntEnv("TRENDING_RESULT_LIMIT", 10),
		NearbyRadiusKm: getFloatEnv("NEARBY_RADIUS_KM", 10.0),
		RerankRadiusKm: getFloatEnv("RERANK_RADIUS_KM", 500.0),
	}

	// Missing API keys are not fatal: the LLM and geocoder clients fall back
	// to their local defaults when unconfigured.
	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY not set, intent and summary calls will use fallbacks")
	}
	if cfg.OpenCageAPIKey == "" {
		log.Println("OPENCAGE_API_KEY not set, nearby re-ranking will degrade gracefully")
	}

	log.Printf("Config loaded - MongoDB: %s, DefaultLimit: %d, TrendingLimit: %d",
		cfg.MongoDB, cfg.DefaultLimit, cfg.TrendingLimit)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

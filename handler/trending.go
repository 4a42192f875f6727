package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ALAMSHAHBAZ/news-feed-llm/config"
	"github.com/ALAMSHAHBAZ/news-feed-llm/service"
	"github.com/ALAMSHAHBAZ/news-feed-llm/storage"
)

// Number of random events seeded by ?simulate=true on an empty event store.
const simulatedEventCount = 500

type TrendingHandler struct {
	cfg    *config.Config
	ranker *service.Ranker
	store  storage.Store
}

func NewTrendingHandler(cfg *config.Config, ranker *service.Ranker, store storage.Store) *TrendingHandler {
	return &TrendingHandler{cfg: cfg, ranker: ranker, store: store}
}

// GetTrending handles GET /news-api/trending?lat=...&lon=...&limit=10&simulate=false
func (h *TrendingHandler) GetTrending(c *gin.Context) {
	lat, lon, ok := parseLatLon(c)
	if !ok {
		return
	}

	limit := h.cfg.TrendingLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	ctx := c.Request.Context()

	if c.Query("simulate") == "true" {
		count, err := h.store.CountEvents(ctx)
		if err != nil {
			log.Printf("event count failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if count == 0 {
			if _, err := h.ranker.SimulateEvents(ctx, simulatedEventCount); err != nil {
				log.Printf("event simulation failed: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}
	}

	feed, err := h.ranker.TrendingFeed(ctx, lat, lon, limit)
	if err != nil {
		log.Printf("trending computation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, feed)
}

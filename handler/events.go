package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ALAMSHAHBAZ/news-feed-llm/metrics"
	"github.com/ALAMSHAHBAZ/news-feed-llm/model"
	"github.com/ALAMSHAHBAZ/news-feed-llm/storage"
)

type EventHandler struct {
	store storage.Store
}

func NewEventHandler(store storage.Store) *EventHandler {
	return &EventHandler{store: store}
}

type eventRequest struct {
	ArticleID string    `json:"article_id" binding:"required"`
	UserID    string    `json:"user_id"`
	EventType string    `json:"event_type" binding:"required"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// RecordEvent handles POST /news-api/events.
func (h *EventHandler) RecordEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.EventType {
	case model.EventView, model.EventClick, model.EventShare:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_type must be view, click or share"})
		return
	}

	event := model.UserEvent{
		ID:        uuid.NewString(),
		ArticleID: req.ArticleID,
		UserID:    req.UserID,
		EventType: req.EventType,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timestamp: req.Timestamp,
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	if err := h.store.InsertEvent(c.Request.Context(), event); err != nil {
		log.Printf("event insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.UserEventsRecordedTotal.WithLabelValues(event.EventType, "api").Inc()
	c.JSON(http.StatusOK, gin.H{"status": "success", "event_id": event.ID})
}

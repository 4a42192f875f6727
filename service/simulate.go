package service

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/ALAMSHAHBAZ/news-feed-llm/metrics"
	"github.com/ALAMSHAHBAZ/news-feed-llm/model"
)

// Fallback coordinates for articles without a location, roughly central India.
const (
	simulateFallbackLat = 20.0
	simulateFallbackLon = 78.0
)

var simulatedEventTypes = []string{model.EventView, model.EventClick, model.EventShare}

// SimulateEvents writes numEvents random interaction events against random
// stored articles, jittered around each article's coordinates and spread over
// the last twelve hours. Returns the number of events written.
func (r *Ranker) SimulateEvents(ctx context.Context, numEvents int) (int, error) {
	articles, err := r.store.ListAllArticles(ctx)
	if err != nil {
		return 0, err
	}

	if len(articles) == 0 {
		log.Println("no articles found to simulate events against")
		return 0, nil
	}

	written := 0
	for i := 0; i < numEvents; i++ {
		art := articles[rand.Intn(len(articles))]

		lat, lon := simulateFallbackLat, simulateFallbackLon
		if art.HasCoordinates() {
			lat, lon = *art.Latitude, *art.Longitude
		}

		eventType := simulatedEventTypes[rand.Intn(len(simulatedEventTypes))]
		event := model.UserEvent{
			ID:        uuid.NewString(),
			ArticleID: art.ID,
			UserID:    uuid.NewString(),
			EventType: eventType,
			Latitude:  lat + (rand.Float64()-0.5)*0.6,
			Longitude: lon + (rand.Float64()-0.5)*0.6,
			Timestamp: time.Now().UTC().Add(-time.Duration(rand.Intn(721)) * time.Minute),
		}

		if err := r.store.InsertEvent(ctx, event); err != nil {
			log.Printf("failed to insert simulated event: %v", err)
			continue
		}
		metrics.UserEventsRecordedTotal.WithLabelValues(eventType, "simulated").Inc()
		written++
	}

	log.Printf("simulated %d user events", written)
	return written, nil
}

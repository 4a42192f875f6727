package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ALAMSHAHBAZ/news-feed-llm/geo"
	"github.com/ALAMSHAHBAZ/news-feed-llm/model"
)

func rerankRanker(places map[string]*geo.Coordinates) *Ranker {
	return NewRanker(&fakeStore{}, fakeSummarizer{}, fakeGeocoder{places: places})
}

func TestRerankNearbyUnresolvableLocation(t *testing.T) {
	candidates := []model.EnrichedArticle{
		{ID: "a", Title: "First"},
		{ID: "b", Title: "Second"},
		{ID: "c", Title: "Third"},
	}

	r := rerankRanker(nil)
	result := r.RerankNearby(context.Background(), "anything", "Atlantis", candidates, 500, 2)

	// First limit candidates, order untouched.
	require.Len(t, result, 2)
	assert.Equal(t, "a", result[0].ID)
	assert.Equal(t, "b", result[1].ID)
}

func TestRerankNearbyBoostsCloseArticles(t *testing.T) {
	now := time.Now().UTC()
	candidates := []model.EnrichedArticle{
		{ID: "far", Title: "tech", PublicationDate: now, Latitude: f64(48.8566), Longitude: f64(2.3522)},
		{ID: "near", Title: "tech", PublicationDate: now, Latitude: f64(28.62), Longitude: f64(77.21)},
	}

	r := rerankRanker(map[string]*geo.Coordinates{
		"Delhi": {Lat: 28.6139, Lon: 77.2090},
	})
	result := r.RerankNearby(context.Background(), "tech", "Delhi", candidates, 500, 5)

	require.Len(t, result, 2)
	// Identical base scores: the in-radius article gains the distance bonus
	// while the far one is halved.
	assert.Equal(t, "near", result[0].ID)
	assert.Equal(t, "far", result[1].ID)
}

func TestRerankNearbyKeepsArticlesWithoutCoordinates(t *testing.T) {
	now := time.Now().UTC()
	candidates := []model.EnrichedArticle{
		{ID: "far", Title: "tech", PublicationDate: now, Latitude: f64(48.8566), Longitude: f64(2.3522)},
		{ID: "unlocated", Title: "tech", PublicationDate: now},
	}

	r := rerankRanker(map[string]*geo.Coordinates{
		"Delhi": {Lat: 28.6139, Lon: 77.2090},
	})
	result := r.RerankNearby(context.Background(), "tech", "Delhi", candidates, 500, 5)

	require.Len(t, result, 2)
	// The unlocated article keeps its base score, the out-of-radius one is
	// penalized below it, but neither is excluded.
	assert.Equal(t, "unlocated", result[0].ID)
	assert.Equal(t, "far", result[1].ID)
}

package service

import (
	"context"
	"log"
	"sort"

	"github.com/ALAMSHAHBAZ/news-feed-llm/model"
	"github.com/ALAMSHAHBAZ/news-feed-llm/scoring"
)

// DefaultRerankRadiusKm is the search radius for the nearby re-rank stage.
const DefaultRerankRadiusKm = 500.0

// RerankNearby re-scores an already-enriched candidate set around a named
// location. It is a re-rank, not a filter: candidates beyond the radius are
// penalized, not dropped, and candidates without coordinates keep their base
// score. An unresolvable location returns the first limit candidates
// unchanged.
func (r *Ranker) RerankNearby(ctx context.Context, query, place string, candidates []model.EnrichedArticle, radiusKm float64, limit int) []model.EnrichedArticle {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if radiusKm <= 0 {
		radiusKm = DefaultRerankRadiusKm
	}

	coords := r.geocoder.Geocode(ctx, place)
	if coords == nil {
		log.Printf("could not resolve %q, returning candidates unranked", place)
		if len(candidates) > limit {
			return candidates[:limit]
		}
		return candidates
	}

	type scored struct {
		article model.EnrichedArticle
		score   float64
	}

	rescored := make([]scored, 0, len(candidates))
	for _, a := range candidates {
		tm := scoring.TextMatchScore(query, a.Title, a.Description)
		base := (0.6*tm + 0.4*a.RelevanceScore) * scoring.RecencyBoost(a.PublicationDate)

		final := base
		if a.HasCoordinates() {
			d := scoring.Haversine(coords.Lat, coords.Lon, *a.Latitude, *a.Longitude)
			if d <= radiusKm {
				final = base + 0.5/(1+d)
			} else {
				final = base * 0.5
			}
		}

		rescored = append(rescored, scored{article: a, score: final})
	}

	sort.SliceStable(rescored, func(i, j int) bool {
		return rescored[i].score > rescored[j].score
	})

	if len(rescored) > limit {
		rescored = rescored[:limit]
	}

	result := make([]model.EnrichedArticle, 0, len(rescored))
	for _, s := range rescored {
		result = append(result, s.article)
	}
	return result
}

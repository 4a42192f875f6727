package service

import (
	"context"
	"log"
	"math"
	"sort"
	"time"

	"github.com/ALAMSHAHBAZ/news-feed-llm/metrics"
	"github.com/ALAMSHAHBAZ/news-feed-llm/model"
	"github.com/ALAMSHAHBAZ/news-feed-llm/scoring"
)

const (
	// DefaultTrendingLimit caps the trending feed unless the caller asks otherwise.
	DefaultTrendingLimit = 10
	// trendingProximityCutoffKm is where an event's location bonus reaches zero.
	trendingProximityCutoffKm = 2000.0
	// eventProximityPoints is the maximum location bonus a single event contributes.
	eventProximityPoints = 10.0
)

// engagement accumulates the per-article statistics the trending composite
// is built from.
type engagement struct {
	count         float64
	recentScore   float64
	distanceScore float64
}

// TrendingFeed aggregates all stored user events into a location-aware
// trending ranking. Articles with no recorded engagement are excluded
// entirely rather than scored as zero, and every statistic is accumulated
// over the full event set before any normalization or sorting happens: a
// single high-engagement article shifts the normalized score of all others.
func (r *Ranker) TrendingFeed(ctx context.Context, lat, lon float64, limit int) (model.TrendingResponse, error) {
	articles, err := r.store.ListAllArticles(ctx)
	if err != nil {
		metrics.TrendingComputationsTotal.WithLabelValues("error").Inc()
		return model.TrendingResponse{}, err
	}

	events, err := r.store.ListAllEvents(ctx)
	if err != nil {
		metrics.TrendingComputationsTotal.WithLabelValues("error").Inc()
		return model.TrendingResponse{}, err
	}

	if len(articles) == 0 || len(events) == 0 {
		log.Println("insufficient data to compute trending feed")
		metrics.TrendingComputationsTotal.WithLabelValues("empty").Inc()
		return model.TrendingResponse{Count: 0, Articles: []model.EnrichedArticle{}}, nil
	}

	now := time.Now().UTC()
	stats := make(map[string]*engagement)
	for _, e := range events {
		s, ok := stats[e.ArticleID]
		if !ok {
			s = &engagement{}
			stats[e.ArticleID] = s
		}

		s.count += model.EventWeight(e.EventType)

		// Each event contributes independently, so many recent events dominate.
		ageHours := math.Max(1, now.Sub(e.Timestamp).Hours())
		s.recentScore += 1 / ageHours

		d := scoring.Haversine(lat, lon, e.Latitude, e.Longitude)
		s.distanceScore += scoring.ProximityFactor(d, trendingProximityCutoffKm) * eventProximityPoints
	}

	var maxCount, maxRecent, maxDistance float64
	for _, s := range stats {
		maxCount = math.Max(maxCount, s.count)
		maxRecent = math.Max(maxRecent, s.recentScore)
		maxDistance = math.Max(maxDistance, s.distanceScore)
	}
	maxCount = safeMax(maxCount)
	maxRecent = safeMax(maxRecent)
	maxDistance = safeMax(maxDistance)

	type scored struct {
		article model.Article
		score   float64
	}

	var trending []scored
	for _, a := range articles {
		s, ok := stats[a.ID]
		if !ok {
			continue
		}
		score := 0.4*(s.count/maxCount) +
			0.2*(s.recentScore/maxRecent) +
			0.4*(s.distanceScore/maxDistance)
		trending = append(trending, scored{article: a, score: score})
	}

	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].score > trending[j].score
	})

	if limit <= 0 {
		limit = DefaultTrendingLimit
	}
	if len(trending) > limit {
		trending = trending[:limit]
	}

	top := make([]model.Article, 0, len(trending))
	for _, t := range trending {
		top = append(top, t.article)
	}

	enriched := r.enrich(ctx, top)
	for i := range enriched {
		rounded := math.Round(trending[i].score*1000) / 1000
		enriched[i].TrendingScore = &rounded
	}

	log.Printf("trending feed generated with %d results", len(enriched))
	metrics.TrendingComputationsTotal.WithLabelValues("success").Inc()
	return model.TrendingResponse{Count: len(enriched), Articles: enriched}, nil
}

// safeMax guards the normalization divisors against an empty value set.
func safeMax(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

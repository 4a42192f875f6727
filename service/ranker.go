// Package service implements the ranking and trending engines and the
// intent-driven query pipeline. Every call recomputes from a fresh snapshot
// of the store; nothing is cached between calls.
package service

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/ALAMSHAHBAZ/news-feed-llm/geo"
	"github.com/ALAMSHAHBAZ/news-feed-llm/metrics"
	"github.com/ALAMSHAHBAZ/news-feed-llm/model"
	"github.com/ALAMSHAHBAZ/news-feed-llm/scoring"
	"github.com/ALAMSHAHBAZ/news-feed-llm/storage"
)

const (
	// DefaultLimit caps ranked result lists unless the caller asks otherwise.
	DefaultLimit = 5
	// DefaultNearbyRadiusKm is the proximity filter radius.
	DefaultNearbyRadiusKm = 10.0
)

// Summarizer generates a short summary per article during enrichment.
// Implementations degrade to fallback text internally and never error.
type Summarizer interface {
	Summarize(ctx context.Context, title, description string) string
}

// IntentExtractor classifies a free-text query into a structured intent.
type IntentExtractor interface {
	ExtractIntent(ctx context.Context, query string) model.Intent
}

// Geocoder resolves a place name to coordinates, or nil when it cannot.
type Geocoder interface {
	Geocode(ctx context.Context, place string) *geo.Coordinates
}

// Ranker is the ranking and trending engine. It holds no mutable state of
// its own; collaborators are injected so tests can substitute fakes.
type Ranker struct {
	store      storage.Store
	summarizer Summarizer
	geocoder   Geocoder
}

func NewRanker(store storage.Store, summarizer Summarizer, geocoder Geocoder) *Ranker {
	return &Ranker{
		store:      store,
		summarizer: summarizer,
		geocoder:   geocoder,
	}
}

// RankByCategory returns articles whose category list contains the label,
// newest first. Missing publication dates sort last.
func (r *Ranker) RankByCategory(ctx context.Context, category string, limit int) ([]model.EnrichedArticle, error) {
	articles, err := r.store.ListAllArticles(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []model.Article
	for _, a := range articles {
		if matchesCategory(a, category) {
			filtered = append(filtered, a)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].PublicationDate.After(filtered[j].PublicationDate)
	})

	metrics.RankingQueriesTotal.WithLabelValues("category").Inc()
	return r.enrich(ctx, truncate(filtered, normalizeLimit(limit))), nil
}

// RankBySource returns articles from the named source, newest first.
func (r *Ranker) RankBySource(ctx context.Context, source string, limit int) ([]model.EnrichedArticle, error) {
	articles, err := r.store.ListAllArticles(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []model.Article
	for _, a := range articles {
		if a.SourceName != "" && strings.EqualFold(a.SourceName, source) {
			filtered = append(filtered, a)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].PublicationDate.After(filtered[j].PublicationDate)
	})

	metrics.RankingQueriesTotal.WithLabelValues("source").Inc()
	return r.enrich(ctx, truncate(filtered, normalizeLimit(limit))), nil
}

// RankByScore returns articles at or above the relevance threshold, highest
// first. A missing relevance score counts as zero.
func (r *Ranker) RankByScore(ctx context.Context, threshold float64, limit int) ([]model.EnrichedArticle, error) {
	articles, err := r.store.ListAllArticles(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []model.Article
	for _, a := range articles {
		if a.RelevanceScore >= threshold {
			filtered = append(filtered, a)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].RelevanceScore > filtered[j].RelevanceScore
	})

	metrics.RankingQueriesTotal.WithLabelValues("score").Inc()
	return r.enrich(ctx, truncate(filtered, normalizeLimit(limit))), nil
}

// RankBySearch scores every article against the query with
// (0.6*textMatch + 0.4*relevance) * recencyBoost and keeps only positive
// composites, highest first.
func (r *Ranker) RankBySearch(ctx context.Context, query string, limit int) ([]model.EnrichedArticle, error) {
	articles, err := r.store.ListAllArticles(ctx)
	if err != nil {
		return nil, err
	}

	type scored struct {
		article model.Article
		score   float64
	}

	var candidates []scored
	for _, a := range articles {
		tm := scoring.TextMatchScore(query, a.Title, a.Description)
		composite := (0.6*tm + 0.4*a.RelevanceScore) * scoring.RecencyBoost(a.PublicationDate)
		if composite > 0 {
			candidates = append(candidates, scored{article: a, score: composite})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	top := make([]model.Article, 0, len(candidates))
	for _, c := range candidates {
		top = append(top, c.article)
	}

	metrics.RankingQueriesTotal.WithLabelValues("search").Inc()
	return r.enrich(ctx, truncate(top, normalizeLimit(limit))), nil
}

// RankByNearby returns articles within radiusKm of the caller, closest
// first. Articles without coordinates are excluded.
func (r *Ranker) RankByNearby(ctx context.Context, lat, lon, radiusKm float64, limit int) ([]model.EnrichedArticle, error) {
	articles, err := r.store.ListAllArticles(ctx)
	if err != nil {
		return nil, err
	}

	if radiusKm <= 0 {
		radiusKm = DefaultNearbyRadiusKm
	}

	type located struct {
		article  model.Article
		distance float64
	}

	var nearby []located
	for _, a := range articles {
		if !a.HasCoordinates() {
			continue
		}
		d := scoring.Haversine(lat, lon, *a.Latitude, *a.Longitude)
		if d <= radiusKm {
			nearby = append(nearby, located{article: a, distance: d})
		}
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].distance < nearby[j].distance
	})

	top := make([]model.Article, 0, len(nearby))
	for _, n := range nearby {
		top = append(top, n.article)
	}

	metrics.RankingQueriesTotal.WithLabelValues("nearby").Inc()
	return r.enrich(ctx, truncate(top, normalizeLimit(limit))), nil
}

// enrich projects articles into their response shape, attaching one
// generated summary per result. Summaries are fetched one at a time on the
// request path; a slow summarizer slows the whole response.
func (r *Ranker) enrich(ctx context.Context, articles []model.Article) []model.EnrichedArticle {
	enriched := make([]model.EnrichedArticle, 0, len(articles))
	for _, a := range articles {
		enriched = append(enriched, model.EnrichedArticle{
			ID:              a.ID,
			Title:           a.Title,
			Description:     a.Description,
			URL:             a.URL,
			PublicationDate: a.PublicationDate,
			SourceName:      a.SourceName,
			Category:        a.Category,
			RelevanceScore:  a.RelevanceScore,
			Latitude:        a.Latitude,
			Longitude:       a.Longitude,
			LLMSummary:      r.summarizer.Summarize(ctx, a.Title, a.Description),
		})
	}

	if len(enriched) > 0 {
		log.Printf("enriched %d articles", len(enriched))
	}
	return enriched
}

func matchesCategory(a model.Article, category string) bool {
	for _, c := range a.Category {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

func truncate(articles []model.Article, limit int) []model.Article {
	if len(articles) > limit {
		return articles[:limit]
	}
	return articles
}

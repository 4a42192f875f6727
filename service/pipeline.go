package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ALAMSHAHBAZ/news-feed-llm/model"
)

// Pipeline composes the ranking engine with the external intent classifier.
// It always starts from free-text search results and narrows or re-ranks the
// enriched set in a fixed stage order, never re-querying the store.
type Pipeline struct {
	ranker         *Ranker
	intents        IntentExtractor
	rerankRadiusKm float64
}

// NewPipeline builds a pipeline; a non-positive rerankRadiusKm falls back to
// DefaultRerankRadiusKm.
func NewPipeline(ranker *Ranker, intents IntentExtractor, rerankRadiusKm float64) *Pipeline {
	return &Pipeline{
		ranker:         ranker,
		intents:        intents,
		rerankRadiusKm: rerankRadiusKm,
	}
}

// SmartQuery runs the intent-driven retrieval chain: search, then category
// filter, then source filter, then nearby re-rank, recording each stage that
// fired in a "+"-joined trace.
func (p *Pipeline) SmartQuery(ctx context.Context, query string) (model.QueryResponse, error) {
	intent := p.intents.ExtractIntent(ctx, query)
	log.Printf("query=%q intents=%v entities=%v location=%q source=%q",
		query, intent.Intent, intent.Entities, intent.Location, intent.Source)

	base, err := p.ranker.RankBySearch(ctx, query, 0)
	if err != nil {
		return model.QueryResponse{}, err
	}
	trace := []string{"Search"}

	// The category filter always takes the first detected entity, whichever
	// intent produced it.
	if intent.Has("category") && len(intent.Entities) > 0 {
		category := intent.Entities[0]
		base = filterByCategory(base, category)
		trace = append(trace, fmt.Sprintf("Category(%s)", category))
	}

	if intent.Has("source") {
		if source := detectSourceEntity(intent.Entities); source != "" {
			filtered := filterBySource(base, source)
			if len(filtered) > 0 {
				base = filtered
				trace = append(trace, fmt.Sprintf("Source(%s)", source))
			} else {
				// Keep the pre-filter set rather than returning nothing.
				trace = append(trace, fmt.Sprintf("Source(%s) filter skipped (no match)", source))
			}
		}
	}

	if intent.Has("nearby") && intent.Location != "" {
		base = p.ranker.RerankNearby(ctx, query, intent.Location, base, p.rerankRadiusKm, 0)
		trace = append(trace, fmt.Sprintf("Nearby(%s)", intent.Location))
	}

	if base == nil {
		base = []model.EnrichedArticle{}
	}

	logicUsed := strings.Join(trace, " + ")
	log.Printf("retrieval logic used: %s", logicUsed)

	return model.QueryResponse{
		Query:     query,
		Intent:    intent.Intent,
		LogicUsed: logicUsed,
		Count:     len(base),
		Articles:  base,
	}, nil
}

func filterByCategory(articles []model.EnrichedArticle, category string) []model.EnrichedArticle {
	filtered := make([]model.EnrichedArticle, 0, len(articles))
	for _, a := range articles {
		for _, c := range a.Category {
			if strings.EqualFold(c, category) {
				filtered = append(filtered, a)
				break
			}
		}
	}
	return filtered
}

func filterBySource(articles []model.EnrichedArticle, source string) []model.EnrichedArticle {
	var filtered []model.EnrichedArticle
	for _, a := range articles {
		if a.SourceName != "" && strings.Contains(strings.ToLower(a.SourceName), strings.ToLower(source)) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// detectSourceEntity picks the first entity that looks like a source name.
// "news" and "times" cover the common publisher naming patterns.
func detectSourceEntity(entities []string) string {
	for _, e := range entities {
		lower := strings.ToLower(e)
		if strings.Contains(lower, "news") || strings.Contains(lower, "times") {
			return e
		}
	}
	return ""
}

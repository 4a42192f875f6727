package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ALAMSHAHBAZ/news-feed-llm/model"
)

func TestRankByCategory(t *testing.T) {
	store := &fakeStore{articles: []model.Article{
		{ID: "a", Title: "Old tech", Category: []string{"Technology"}, PublicationDate: daysAgo(10)},
		{ID: "b", Title: "Fresh tech", Category: []string{"technology", "Business"}, PublicationDate: daysAgo(1)},
		{ID: "c", Title: "Sports", Category: []string{"Sports"}, PublicationDate: daysAgo(2)},
		{ID: "d", Title: "Undated tech", Category: []string{"Technology"}},
	}}
	r := newTestRanker(store)

	results, err := r.RankByCategory(context.Background(), "TECHNOLOGY", 5)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Newest first, zero publication dates sort last.
	assert.Equal(t, "b", results[0].ID)
	assert.Equal(t, "a", results[1].ID)
	assert.Equal(t, "d", results[2].ID)

	for _, res := range results {
		assert.NotEmpty(t, res.LLMSummary)
	}
}

func TestRankBySource(t *testing.T) {
	store := &fakeStore{articles: []model.Article{
		{ID: "a", Title: "One", SourceName: "Reuters", PublicationDate: daysAgo(3)},
		{ID: "b", Title: "Two", SourceName: "reuters", PublicationDate: daysAgo(1)},
		{ID: "c", Title: "Three", SourceName: "BBC", PublicationDate: daysAgo(2)},
		{ID: "d", Title: "Four"},
	}}
	r := newTestRanker(store)

	results, err := r.RankBySource(context.Background(), "Reuters", 5)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "b", results[0].ID)
	assert.Equal(t, "a", results[1].ID)
}

func TestRankByScoreThreshold(t *testing.T) {
	store := &fakeStore{articles: []model.Article{
		{ID: "a", Title: "High", RelevanceScore: 0.9},
		{ID: "b", Title: "Mid", RelevanceScore: 0.7},
		{ID: "c", Title: "Low", RelevanceScore: 0.3},
		{ID: "d", Title: "Unscored"},
	}}
	r := newTestRanker(store)

	results, err := r.RankByScore(context.Background(), 0.7, 5)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].ID)
	assert.Equal(t, "b", results[1].ID)
	for _, res := range results {
		assert.GreaterOrEqual(t, res.RelevanceScore, 0.7)
	}
}

func TestRankBySearchExcludesZeroComposite(t *testing.T) {
	store := &fakeStore{articles: []model.Article{
		{ID: "a", Title: "Tech boom", RelevanceScore: 0.5, PublicationDate: daysAgo(0)},
		{ID: "b", Title: "Cricket final", PublicationDate: daysAgo(0)},
	}}
	r := newTestRanker(store)

	results, err := r.RankBySearch(context.Background(), "tech", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].ID)
}

func TestRankBySearchOrdersByComposite(t *testing.T) {
	store := &fakeStore{articles: []model.Article{
		// Title match only, no relevance.
		{ID: "weak", Title: "tech mention", PublicationDate: daysAgo(0)},
		// Title and description match plus relevance.
		{ID: "strong", Title: "Tech boom", Description: "tech everywhere", RelevanceScore: 0.9, PublicationDate: daysAgo(0)},
	}}
	r := newTestRanker(store)

	results, err := r.RankBySearch(context.Background(), "tech", 5)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "strong", results[0].ID)
	assert.Equal(t, "weak", results[1].ID)
}

func TestRankByNearby(t *testing.T) {
	store := &fakeStore{articles: []model.Article{
		{ID: "close", Title: "Close", Latitude: f64(28.62), Longitude: f64(77.21)},
		{ID: "closer", Title: "Closer", Latitude: f64(28.6139), Longitude: f64(77.2090)},
		{ID: "far", Title: "Far", Latitude: f64(19.0760), Longitude: f64(72.8777)},
		{ID: "nowhere", Title: "No coordinates"},
	}}
	r := newTestRanker(store)

	results, err := r.RankByNearby(context.Background(), 28.6139, 77.2090, 10, 5)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "closer", results[0].ID)
	assert.Equal(t, "close", results[1].ID)
}

func TestRankingLimit(t *testing.T) {
	var articles []model.Article
	for i := 0; i < 20; i++ {
		articles = append(articles, model.Article{
			ID:              string(rune('a' + i)),
			Title:           "Tech story",
			Category:        []string{"Technology"},
			PublicationDate: daysAgo(i),
		})
	}
	store := &fakeStore{articles: articles}
	r := newTestRanker(store)

	results, err := r.RankByCategory(context.Background(), "Technology", 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)

	// Zero limit falls back to the default.
	results, err = r.RankByCategory(context.Background(), "Technology", 0)
	require.NoError(t, err)
	assert.Len(t, results, DefaultLimit)
}

func TestEmptyStoreYieldsEmptyResults(t *testing.T) {
	r := newTestRanker(&fakeStore{})
	ctx := context.Background()

	for name, call := range map[string]func() ([]model.EnrichedArticle, error){
		"category": func() ([]model.EnrichedArticle, error) { return r.RankByCategory(ctx, "Technology", 5) },
		"source":   func() ([]model.EnrichedArticle, error) { return r.RankBySource(ctx, "Reuters", 5) },
		"score":    func() ([]model.EnrichedArticle, error) { return r.RankByScore(ctx, 0.5, 5) },
		"search":   func() ([]model.EnrichedArticle, error) { return r.RankBySearch(ctx, "tech", 5) },
		"nearby":   func() ([]model.EnrichedArticle, error) { return r.RankByNearby(ctx, 0, 0, 10, 5) },
	} {
		results, err := call()
		require.NoError(t, err, name)
		assert.Empty(t, results, name)
	}
}

func TestEndToEndSingleArticle(t *testing.T) {
	store := &fakeStore{articles: []model.Article{
		{
			ID:              "A1",
			Title:           "Tech boom",
			Category:        []string{"Technology"},
			RelevanceScore:  0.9,
			PublicationDate: time.Now().UTC(),
		},
	}}
	r := newTestRanker(store)
	ctx := context.Background()

	search, err := r.RankBySearch(ctx, "tech", 5)
	require.NoError(t, err)
	require.Len(t, search, 1)
	assert.Equal(t, "A1", search[0].ID)

	byCategory, err := r.RankByCategory(ctx, "Technology", 5)
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "A1", byCategory[0].ID)

	byScore, err := r.RankByScore(ctx, 0.5, 5)
	require.NoError(t, err)
	require.Len(t, byScore, 1)

	tooHigh, err := r.RankByScore(ctx, 0.95, 5)
	require.NoError(t, err)
	assert.Empty(t, tooHigh)
}

func TestEnrichFallbackSummary(t *testing.T) {
	store := &fakeStore{articles: []model.Article{
		{ID: "a", Title: "No description here", Category: []string{"Business"}},
	}}
	r := newTestRanker(store)

	results, err := r.RankByCategory(context.Background(), "Business", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "No description here. No description available.", results[0].LLMSummary)
}

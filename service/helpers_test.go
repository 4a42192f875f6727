package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ALAMSHAHBAZ/news-feed-llm/geo"
	"github.com/ALAMSHAHBAZ/news-feed-llm/model"
)

// fakeStore serves fixed snapshots and records inserted events.
type fakeStore struct {
	articles []model.Article
	events   []model.UserEvent
	inserted []model.UserEvent
}

func (f *fakeStore) ListAllArticles(ctx context.Context) ([]model.Article, error) {
	return f.articles, nil
}

func (f *fakeStore) ListAllEvents(ctx context.Context) ([]model.UserEvent, error) {
	return f.events, nil
}

func (f *fakeStore) UpsertArticle(ctx context.Context, article model.Article) error {
	for i, a := range f.articles {
		if a.ID == article.ID {
			f.articles[i] = article
			return nil
		}
	}
	f.articles = append(f.articles, article)
	return nil
}

func (f *fakeStore) InsertEvent(ctx context.Context, event model.UserEvent) error {
	f.inserted = append(f.inserted, event)
	return nil
}

func (f *fakeStore) CountEvents(ctx context.Context) (int64, error) {
	return int64(len(f.events)), nil
}

// fakeSummarizer mirrors the real client's deterministic fallback contract.
type fakeSummarizer struct{}

func (fakeSummarizer) Summarize(ctx context.Context, title, description string) string {
	if description == "" {
		return fmt.Sprintf("%s. No description available.", title)
	}
	return "summary: " + title
}

// fakeGeocoder resolves only the places it was seeded with.
type fakeGeocoder struct {
	places map[string]*geo.Coordinates
}

func (f fakeGeocoder) Geocode(ctx context.Context, place string) *geo.Coordinates {
	return f.places[place]
}

// fakeIntents returns a canned classifier result.
type fakeIntents struct {
	intent model.Intent
}

func (f fakeIntents) ExtractIntent(ctx context.Context, query string) model.Intent {
	return f.intent
}

func newTestRanker(store *fakeStore) *Ranker {
	return NewRanker(store, fakeSummarizer{}, fakeGeocoder{})
}

func f64(v float64) *float64 {
	return &v
}

func daysAgo(n int) time.Time {
	return time.Now().UTC().AddDate(0, 0, -n)
}

func hoursAgo(n int) time.Time {
	return time.Now().UTC().Add(-time.Duration(n) * time.Hour)
}

package storage

import (
	"context"

	"github.com/ALAMSHAHBAZ/news-feed-llm/model"
)

// Store is the storage contract the ranking and trending engines depend on.
// The engines always pull full snapshots and filter in memory; no predicate
// is pushed down.
type Store interface {
	ListAllArticles(ctx context.Context) ([]model.Article, error)
	ListAllEvents(ctx context.Context) ([]model.UserEvent, error)
	UpsertArticle(ctx context.Context, article model.Article) error
	InsertEvent(ctx context.Context, event model.UserEvent) error
	CountEvents(ctx context.Context) (int64, error)
}

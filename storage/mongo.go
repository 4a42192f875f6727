package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ALAMSHAHBAZ/news-feed-llm/metrics"
	"github.com/ALAMSHAHBAZ/news-feed-llm/model"
)

const (
	articlesCollection = "articles"
	eventsCollection   = "user_events"
)

// MongoStore implements Store on top of a MongoDB database.
type MongoStore struct {
	db *mongo.Database
}

var _ Store = (*MongoStore)(nil)

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

// ListAllArticles returns a full snapshot of the articles collection.
func (s *MongoStore) ListAllArticles(ctx context.Context) ([]model.Article, error) {
	cursor, err := s.db.Collection(articlesCollection).Find(ctx, bson.M{})
	if err != nil {
		metrics.MongoOperationsTotal.WithLabelValues("find", articlesCollection, "error").Inc()
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer cursor.Close(ctx)

	var articles []model.Article
	if err := cursor.All(ctx, &articles); err != nil {
		metrics.MongoOperationsTotal.WithLabelValues("find", articlesCollection, "error").Inc()
		return nil, fmt.Errorf("decode articles: %w", err)
	}

	metrics.MongoOperationsTotal.WithLabelValues("find", articlesCollection, "success").Inc()
	return articles, nil
}

// ListAllEvents returns a full snapshot of the user events collection.
func (s *MongoStore) ListAllEvents(ctx context.Context) ([]model.UserEvent, error) {
	cursor, err := s.db.Collection(eventsCollection).Find(ctx, bson.M{})
	if err != nil {
		metrics.MongoOperationsTotal.WithLabelValues("find", eventsCollection, "error").Inc()
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []model.UserEvent
	if err := cursor.All(ctx, &events); err != nil {
		metrics.MongoOperationsTotal.WithLabelValues("find", eventsCollection, "error").Inc()
		return nil, fmt.Errorf("decode events: %w", err)
	}

	metrics.MongoOperationsTotal.WithLabelValues("find", eventsCollection, "success").Inc()
	return events, nil
}

// UpsertArticle inserts or fully replaces an article keyed on its id.
func (s *MongoStore) UpsertArticle(ctx context.Context, article model.Article) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.db.Collection(articlesCollection).
		ReplaceOne(ctx, bson.M{"_id": article.ID}, article, opts)
	if err != nil {
		metrics.MongoOperationsTotal.WithLabelValues("upsert", articlesCollection, "error").Inc()
		return fmt.Errorf("upsert article %s: %w", article.ID, err)
	}

	metrics.MongoOperationsTotal.WithLabelValues("upsert", articlesCollection, "success").Inc()
	return nil
}

// InsertEvent appends an immutable interaction event.
func (s *MongoStore) InsertEvent(ctx context.Context, event model.UserEvent) error {
	_, err := s.db.Collection(eventsCollection).InsertOne(ctx, event)
	if err != nil {
		metrics.MongoOperationsTotal.WithLabelValues("insert", eventsCollection, "error").Inc()
		return fmt.Errorf("insert event: %w", err)
	}

	metrics.MongoOperationsTotal.WithLabelValues("insert", eventsCollection, "success").Inc()
	return nil
}

// CountEvents returns the number of stored interaction events.
func (s *MongoStore) CountEvents(ctx context.Context) (int64, error) {
	count, err := s.db.Collection(eventsCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		metrics.MongoOperationsTotal.WithLabelValues("count", eventsCollection, "error").Inc()
		return 0, fmt.Errorf("count events: %w", err)
	}

	metrics.MongoOperationsTotal.WithLabelValues("count", eventsCollection, "success").Inc()
	return count, nil
}

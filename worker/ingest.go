// Package worker consumes article batches published on NATS JetStream and
// upserts them into the article store.
package worker

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/ALAMSHAHBAZ/news-feed-llm/metrics"
	"github.com/ALAMSHAHBAZ/news-feed-llm/model"
	"github.com/ALAMSHAHBAZ/news-feed-llm/storage"
)

const (
	ingestSubject  = "news.ingest.articles"
	ingestStream   = "NEWS_INGEST"
	ingestDurable  = "news-ingest-workers"
	upsertTimeout = 2 * time.Minute
	maxAckPending = 4
)

type Ingester struct {
	js    nats.JetStreamContext
	store storage.Store
}

func NewIngester(nc *nats.Conn, store storage.Store) (*Ingester, error) {
	js, err := nc.JetStream()
	if err != nil {
		return nil, err
	}

	if err := setupStream(js); err != nil {
		return nil, err
	}

	return &Ingester{js: js, store: store}, nil
}

// Start subscribes to the ingest subject and blocks until ctx is cancelled.
func (i *Ingester) Start(ctx context.Context) error {
	sub, err := i.js.Subscribe(ingestSubject, i.handleBatch,
		nats.Durable(ingestDurable),
		nats.ManualAck(),
		nats.MaxAckPending(maxAckPending),
	)
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()

	log.Printf("ingest worker subscribed to %s", ingestSubject)

	<-ctx.Done()
	return ctx.Err()
}

// rawArticle tolerates the loose shapes publishers send: category may be a
// single string or a list, coordinates may be absent.
type rawArticle struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	URL             string          `json:"url"`
	PublicationDate time.Time       `json:"publication_date"`
	SourceName      string          `json:"source_name"`
	Category        json.RawMessage `json:"category"`
	RelevanceScore  float64         `json:"relevance_score"`
	Latitude        *float64        `json:"latitude"`
	Longitude       *float64        `json:"longitude"`
}

func (i *Ingester) handleBatch(msg *nats.Msg) {
	metrics.NatsMessagesReceived.WithLabelValues(ingestSubject, "received").Inc()

	var batch []rawArticle
	if err := json.Unmarshal(msg.Data, &batch); err != nil {
		log.Printf("failed to unmarshal article batch: %v", err)
		metrics.NatsMessagesReceived.WithLabelValues(ingestSubject, "malformed").Inc()
		msg.Nak()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), upsertTimeout)
	defer cancel()

	stored := 0
	for _, raw := range batch {
		article, ok := normalize(raw)
		if !ok {
			metrics.ArticlesIngestedTotal.WithLabelValues("skipped").Inc()
			continue
		}

		if err := i.store.UpsertArticle(ctx, article); err != nil {
			log.Printf("failed to upsert article %s: %v", article.ID, err)
			metrics.ArticlesIngestedTotal.WithLabelValues("error").Inc()
			continue
		}
		metrics.ArticlesIngestedTotal.WithLabelValues("stored").Inc()
		stored++
	}

	log.Printf("ingested %d/%d articles from batch", stored, len(batch))
	msg.Ack()
}

// normalize validates a raw record and maps it to the stored shape. Records
// without an id are skipped.
func normalize(raw rawArticle) (model.Article, bool) {
	if strings.TrimSpace(raw.ID) == "" {
		log.Println("skipping article without id")
		return model.Article{}, false
	}

	article := model.Article{
		ID:              strings.TrimSpace(raw.ID),
		Title:           strings.TrimSpace(raw.Title),
		Description:     strings.TrimSpace(raw.Description),
		URL:             strings.TrimSpace(raw.URL),
		PublicationDate: raw.PublicationDate,
		SourceName:      strings.TrimSpace(raw.SourceName),
		Category:        parseCategories(raw.Category),
		RelevanceScore:  raw.RelevanceScore,
		Latitude:        raw.Latitude,
		Longitude:       raw.Longitude,
	}
	return article, true
}

// parseCategories accepts either a JSON string or a list of strings.
func parseCategories(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		if single = strings.TrimSpace(single); single != "" {
			return []string{single}
		}
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}

	categories := make([]string, 0, len(list))
	for _, c := range list {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, c)
		}
	}
	return categories
}

func setupStream(js nats.JetStreamContext) error {
	_, err := js.AddStream(&nats.StreamConfig{
		Name:      ingestStream,
		Subjects:  []string{"news.ingest.>"},
		Retention: nats.WorkQueuePolicy,
		MaxAge:    24 * time.Hour,
		Storage:   nats.FileStorage,
	})
	if err != nil && err != nats.ErrStreamNameAlreadyInUse {
		return err
	}

	log.Println("NATS ingest stream configured")
	return nil
}

package model

import "time"

// EnrichedArticle is an article projected into its response shape with the
// generated summary attached. Trending results also carry a score rounded
// to three decimals. It is never persisted.
type EnrichedArticle struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	URL             string    `json:"url,omitempty"`
	PublicationDate time.Time `json:"publication_date,omitempty"`
	SourceName      string    `json:"source_name,omitempty"`
	Category        []string  `json:"category,omitempty"`
	RelevanceScore  float64   `json:"relevance_score"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	LLMSummary      string    `json:"llm_summary"`
	TrendingScore   *float64  `json:"trending_score,omitempty"`
}

// HasCoordinates mirrors Article.HasCoordinates for enriched results so the
// pipeline stages never have to reach back into storage records.
func (e EnrichedArticle) HasCoordinates() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// Intent is the structured output of the external intent classifier.
type Intent struct {
	Intent   []string `json:"intent"`
	Entities []string `json:"entities"`
	Location string   `json:"location,omitempty"`
	Source   string   `json:"source,omitempty"`
}

// Has reports whether the classifier detected the given intent label.
func (i Intent) Has(label string) bool {
	for _, v := range i.Intent {
		if v == label {
			return true
		}
	}
	return false
}

// QueryResponse is the envelope returned by the smart query pipeline.
type QueryResponse struct {
	Query     string            `json:"query"`
	Intent    []string          `json:"intent"`
	LogicUsed string            `json:"logic_used"`
	Count     int               `json:"count"`
	Articles  []EnrichedArticle `json:"articles"`
}

// TrendingResponse is the envelope returned by the trending feed.
type TrendingResponse struct {
	Count    int               `json:"count"`
	Articles []EnrichedArticle `json:"articles"`
}

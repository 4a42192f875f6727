package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/ALAMSHAHBAZ/news-feed-llm/metrics"
	"github.com/ALAMSHAHBAZ/news-feed-llm/model"
)

const intentPromptTemplate = `You are an intent extraction assistant for a contextual news retrieval system.

Articles have: title, description, category (Technology, Business, Sports, ...),
source_name (Reuters, BBC, Times Now, ...), publication_date, relevance_score,
latitude and longitude.

Analyze the user query and determine:
1. "intent": one or more of ["category", "score", "source", "search", "nearby"]
2. "entities": detected topics, people, organizations or keywords
3. "location": location name if mentioned, else null
4. "source": source name if mentioned, else null

Respond ONLY with valid JSON, no text or code blocks.

Example:
Query: "Show me top technology news from Times Now"
Response: {"intent": ["category", "source", "search"], "entities": ["Technology", "Times Now"], "location": null, "source": "Times Now"}

Now analyze this query:
%q`

// FallbackIntent is returned whenever the classifier is unreachable or its
// reply does not parse as the expected JSON shape.
func FallbackIntent() model.Intent {
	return model.Intent{Intent: []string{"search"}, Entities: []string{}}
}

// ExtractIntent classifies a free-text query into a structured intent.
// Any failure, including a malformed model reply, yields the search fallback;
// no partial structure is recovered.
func (c *Client) ExtractIntent(ctx context.Context, query string) model.Intent {
	reply, err := c.generate(ctx, fmt.Sprintf(intentPromptTemplate, query))
	if err != nil {
		log.Printf("intent extraction failed: %v", err)
		metrics.LlmRequestsTotal.WithLabelValues("intent", "error").Inc()
		return FallbackIntent()
	}

	var intent model.Intent
	if err := json.Unmarshal([]byte(stripCodeFences(reply)), &intent); err != nil {
		log.Printf("intent reply did not parse as JSON: %v", err)
		metrics.LlmRequestsTotal.WithLabelValues("intent", "parse_error").Inc()
		return FallbackIntent()
	}

	if len(intent.Intent) == 0 {
		intent.Intent = []string{"search"}
	}
	if intent.Entities == nil {
		intent.Entities = []string{}
	}

	metrics.LlmRequestsTotal.WithLabelValues("intent", "success").Inc()
	return intent
}

// stripCodeFences removes markdown fences some model replies wrap around JSON.
func stripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

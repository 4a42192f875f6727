package llm

import (
	"context"
	"fmt"
	"log"

	"github.com/ALAMSHAHBAZ/news-feed-llm/metrics"
)

const summaryFailedFallback = "Summary generation failed."

// Summarize produces a two-sentence summary for an article. Articles without
// a description get a deterministic fallback without any network call, and
// failed calls degrade to a fixed notice instead of an error.
func (c *Client) Summarize(ctx context.Context, title, description string) string {
	if description == "" {
		return fmt.Sprintf("%s. No description available.", title)
	}

	prompt := fmt.Sprintf(
		"Summarize this news article in 2 sentences:\n\nTitle: %s\n\nDescription: %s",
		title, description,
	)

	summary, err := c.generate(ctx, prompt)
	if err != nil {
		log.Printf("summary generation failed for %q: %v", title, err)
		metrics.LlmRequestsTotal.WithLabelValues("summary", "error").Inc()
		return summaryFailedFallback
	}

	metrics.LlmRequestsTotal.WithLabelValues("summary", "success").Inc()
	return summary
}

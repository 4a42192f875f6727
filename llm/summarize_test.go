package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	srv := stubGemini(t, "Markets rallied on strong earnings. Analysts expect the trend to hold.")
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", "gemini-2.5-flash", srv.URL)
	summary := c.Summarize(context.Background(), "Markets rally", "Strong earnings across the board.")
	assert.Equal(t, "Markets rallied on strong earnings. Analysts expect the trend to hold.", summary)
}

func TestSummarizeEmptyDescriptionSkipsNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", "gemini-2.5-flash", srv.URL)
	summary := c.Summarize(context.Background(), "Markets rally", "")

	assert.Equal(t, "Markets rally. No description available.", summary)
	assert.Zero(t, calls)
}

func TestSummarizeServerErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", "gemini-2.5-flash", srv.URL)
	summary := c.Summarize(context.Background(), "Markets rally", "Strong earnings.")
	assert.Equal(t, "Summary generation failed.", summary)
}

func TestSummarizeWithoutAPIKey(t *testing.T) {
	c := NewClient("", "gemini-2.5-flash")
	summary := c.Summarize(context.Background(), "Markets rally", "Strong earnings.")
	assert.Equal(t, "Summary generation failed.", summary)
}

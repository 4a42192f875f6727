// Package geo resolves place names to coordinates via the OpenCage forward
// geocoding API. Lookups are idempotent, so results (including misses) are
// cached for the life of the process.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/ALAMSHAHBAZ/news-feed-llm/metrics"
)

const defaultEndpoint = "https://api.opencagedata.com/geocode/v1/json"

// Coordinates is a resolved lat/lon pair.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Geocoder is an OpenCage client with an in-process result cache.
type Geocoder struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client

	mu    sync.RWMutex
	cache map[string]*Coordinates
}

func NewGeocoder(apiKey string) *Geocoder {
	return &Geocoder{
		endpoint: defaultEndpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		cache: make(map[string]*Coordinates),
	}
}

// NewGeocoderWithEndpoint is used by tests to point the client at a stub server.
func NewGeocoderWithEndpoint(apiKey, endpoint string) *Geocoder {
	g := NewGeocoder(apiKey)
	g.endpoint = endpoint
	return g
}

type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves a place name to coordinates. It returns nil when the
// place cannot be resolved for any reason; callers are expected to degrade
// gracefully rather than fail.
func (g *Geocoder) Geocode(ctx context.Context, place string) *Coordinates {
	key := strings.ToLower(strings.TrimSpace(place))
	if key == "" {
		return nil
	}

	g.mu.RLock()
	coords, ok := g.cache[key]
	g.mu.RUnlock()
	if ok {
		metrics.GeocodeRequestsTotal.WithLabelValues("cache_hit").Inc()
		return coords
	}

	coords = g.lookup(ctx, place)

	g.mu.Lock()
	g.cache[key] = coords
	g.mu.Unlock()

	return coords
}

func (g *Geocoder) lookup(ctx context.Context, place string) *Coordinates {
	if g.apiKey == "" {
		metrics.GeocodeRequestsTotal.WithLabelValues("unconfigured").Inc()
		return nil
	}

	params := url.Values{}
	params.Set("q", place)
	params.Set("key", g.apiKey)
	params.Set("limit", "1")
	params.Set("no_annotations", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s?%s", g.endpoint, params.Encode()), nil)
	if err != nil {
		metrics.GeocodeRequestsTotal.WithLabelValues("error").Inc()
		return nil
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("geocode request failed for %q: %v", place, err)
		metrics.GeocodeRequestsTotal.WithLabelValues("error").Inc()
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("geocode returned %s for %q", resp.Status, place)
		metrics.GeocodeRequestsTotal.WithLabelValues("error").Inc()
		return nil
	}

	var parsed geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Printf("geocode response decode failed for %q: %v", place, err)
		metrics.GeocodeRequestsTotal.WithLabelValues("error").Inc()
		return nil
	}

	if len(parsed.Results) == 0 {
		metrics.GeocodeRequestsTotal.WithLabelValues("not_found").Inc()
		return nil
	}

	metrics.GeocodeRequestsTotal.WithLabelValues("success").Inc()
	return &Coordinates{
		Lat: parsed.Results[0].Geometry.Lat,
		Lon: parsed.Results[0].Geometry.Lng,
	}
}

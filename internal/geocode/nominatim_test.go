package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rehabcade/spin-to-eat-v2/platform/apperr"
	"github.com/rehabcade/spin-to-eat-v2/platform/logger"
)

type testConfig struct {
	baseURL string
}

func (c testConfig) GetNominatimBaseURL() string       { return c.baseURL }
func (c testConfig) GetUserAgent() string              { return "test-agent/1.0" }
func (c testConfig) GetUpstreamTimeout() time.Duration { return 2 * time.Second }

func newTestGeocoder(baseURL string) *Nominatim {
	return NewNominatim(testConfig{baseURL: baseURL}, logger.New("development"))
}

func TestSearch_ReordersBoundingBoxIntoCanonicalForm(t *testing.T) {
	// Nominatim returns boundingbox as [south, north, west, east] strings.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "1" {
			t.Errorf("expected limit=1, got %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != "test-agent/1.0" {
			t.Errorf("unexpected user agent %q", got)
		}
		_, _ = w.Write([]byte(`[{
			"display_name": "Lafayette, Louisiana, United States",
			"lat": "30.2241",
			"lon": "-92.0198",
			"boundingbox": ["30.1463", "30.3021", "-92.0903", "-91.9544"]
		}]`))
	}))
	defer server.Close()

	place, err := newTestGeocoder(server.URL).Search(context.Background(), "Lafayette, LA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if place.Center.Lat != 30.2241 || place.Center.Lon != -92.0198 {
		t.Fatalf("unexpected center %+v", place.Center)
	}
	if place.Box == nil {
		t.Fatalf("expected a bounding box")
	}
	box := *place.Box
	if box.South != 30.1463 || box.North != 30.3021 || box.West != -92.0903 || box.East != -91.9544 {
		t.Fatalf("bounding box not reordered correctly: %+v", box)
	}
}

func TestSearch_NoMatchIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, err := newTestGeocoder(server.URL).Search(context.Background(), "Nowhereville, ZZ")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSearch_NonSuccessIsUnavailableNotNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestGeocoder(server.URL).Search(context.Background(), "Lafayette, LA")
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestSearch_TransportFailureIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := newTestGeocoder(server.URL).Search(context.Background(), "Lafayette, LA")
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestSearch_MalformedPayloadIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>rate limited</html>`))
	}))
	defer server.Close()

	_, err := newTestGeocoder(server.URL).Search(context.Background(), "Lafayette, LA")
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestSearch_InvalidBoundingBoxDegradesToCenterOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{
			"display_name": "Somewhere",
			"lat": "30.2241",
			"lon": "-92.0198",
			"boundingbox": ["30.3", "30.1", "-92.0", "-92.1"]
		}]`))
	}))
	defer server.Close()

	place, err := newTestGeocoder(server.URL).Search(context.Background(), "Somewhere")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if place.Box != nil {
		t.Fatalf("expected inverted box to be discarded, got %+v", *place.Box)
	}
}

func TestSearch_MissingBoundingBoxYieldsCenterOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"display_name": "Point", "lat": "30.0", "lon": "-92.0"}]`))
	}))
	defer server.Close()

	place, err := newTestGeocoder(server.URL).Search(context.Background(), "Point")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if place.Box != nil {
		t.Fatalf("expected no box, got %+v", *place.Box)
	}
	if place.Center.Lat != 30.0 || place.Center.Lon != -92.0 {
		t.Fatalf("unexpected center %+v", place.Center)
	}
}

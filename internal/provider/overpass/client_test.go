package overpass

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rehabcade/spin-to-eat-v2/internal/provider"
	"github.com/rehabcade/spin-to-eat-v2/platform/apperr"
	"github.com/rehabcade/spin-to-eat-v2/platform/logger"
)

type testConfig struct {
	baseURL string
}

func (c testConfig) GetPOIProvider() string            { return "overpass" }
func (c testConfig) GetOverpassBaseURL() string        { return c.baseURL }
func (c testConfig) GetFoursquareBaseURL() string      { return c.baseURL }
func (c testConfig) GetFoursquareAPIKey() string       { return "" }
func (c testConfig) GetUserAgent() string              { return "test-agent/1.0" }
func (c testConfig) GetUpstreamTimeout() time.Duration { return 2 * time.Second }

func TestClientExecute_PostsFormWithUserAgent(t *testing.T) {
	var gotUA, gotContentType, gotData string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotData = r.PostFormValue("data")
		_, _ = w.Write([]byte(`{"elements":[{"type":"node","id":1,"lat":30.1,"lon":-92.1,"tags":{"name":"A"}}]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig{baseURL: server.URL}, logger.New("development"))
	elements, err := client.Execute(context.Background(), "[out:json];node(1,2,3,4);out;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(elements) != 1 || elements[0].ID != 1 {
		t.Fatalf("unexpected elements: %+v", elements)
	}
	if gotUA != "test-agent/1.0" {
		t.Fatalf("unexpected user agent %q", gotUA)
	}
	if !strings.HasPrefix(gotContentType, "application/x-www-form-urlencoded") {
		t.Fatalf("unexpected content type %q", gotContentType)
	}
	if !strings.Contains(gotData, "out;") {
		t.Fatalf("query not posted as form data: %q", gotData)
	}
}

func TestClientExecute_NonSuccessIsUpstreamErrorWithTruncatedBody(t *testing.T) {
	longBody := strings.Repeat("x", 1000)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
		_, _ = w.Write([]byte(longBody))
	}))
	defer server.Close()

	client := NewClient(testConfig{baseURL: server.URL}, logger.New("development"))
	_, err := client.Execute(context.Background(), "query")
	if !apperr.Is(err, apperr.KindUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}

	detail, ok := err.(*apperr.Error).Details.(provider.UpstreamDetail)
	if !ok {
		t.Fatalf("expected UpstreamDetail, got %T", err.(*apperr.Error).Details)
	}
	if detail.Status != http.StatusGatewayTimeout {
		t.Fatalf("unexpected status %d", detail.Status)
	}
	if len(detail.Body) != 200 {
		t.Fatalf("expected body truncated to 200 bytes, got %d", len(detail.Body))
	}
}

func TestClientExecute_MalformedPayloadIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewClient(testConfig{baseURL: server.URL}, logger.New("development"))
	_, err := client.Execute(context.Background(), "query")
	if !apperr.Is(err, apperr.KindUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestClientExecute_EmptyElementsIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"elements":[]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig{baseURL: server.URL}, logger.New("development"))
	elements, err := client.Execute(context.Background(), "query")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(elements) != 0 {
		t.Fatalf("expected no elements, got %d", len(elements))
	}
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rehabcade/spin-to-eat-v2/internal/geocode"
	"github.com/rehabcade/spin-to-eat-v2/internal/places/service"
	"github.com/rehabcade/spin-to-eat-v2/internal/poi"
	"github.com/rehabcade/spin-to-eat-v2/internal/provider"
	"github.com/rehabcade/spin-to-eat-v2/platform/apperr"
	"github.com/rehabcade/spin-to-eat-v2/platform/logger"
	"github.com/rehabcade/spin-to-eat-v2/platform/validator"
)

type stubGeocoder struct {
	err error
}

func (g stubGeocoder) Search(context.Context, string) (geocode.Place, error) {
	return geocode.Place{}, g.err
}

type stubSearcher struct {
	records []poi.Record
	err     error
	query   provider.Query
}

func (s *stubSearcher) Kind() provider.Kind { return provider.KindOverpass }
func (s *stubSearcher) Search(_ context.Context, q provider.Query) ([]poi.Record, error) {
	s.query = q
	return s.records, s.err
}
func (s *stubSearcher) Attribution() string        { return "test" }
func (s *stubSearcher) CacheControl() string       { return "s-maxage=300, stale-while-revalidate=600" }
func (s *stubSearcher) CredentialConfigured() bool { return true }

func newTestRouter(g geocode.Geocoder, p provider.Searcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.New(g, p, logger.New("development"))
	h := New(svc, validator.New())

	engine := gin.New()
	engine.GET("/search", h.Search)
	engine.GET("/provider", h.ProviderInfo)
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	engine.ServeHTTP(rec, req)
	return rec
}

func TestSearch_CoordinatesReturnResultsWithCacheHeader(t *testing.T) {
	searcher := &stubSearcher{records: []poi.Record{{ID: "node/1", Name: "A", Lat: 30.2, Lon: -92.0}}}
	engine := newTestRouter(stubGeocoder{}, searcher)

	rec := doRequest(t, engine, "/search?lat=30.2241&lon=-92.0198&radius=5000")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Cache-Control"); got != "s-maxage=300, stale-while-revalidate=600" {
		t.Fatalf("unexpected cache header %q", got)
	}

	var body struct {
		Count       int          `json:"count"`
		Items       []poi.Record `json:"items"`
		Attribution string       `json:"attribution"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Count != 1 || len(body.Items) != 1 {
		t.Fatalf("unexpected body %+v", body)
	}
	if body.Attribution != "test" {
		t.Fatalf("unexpected attribution %q", body.Attribution)
	}
}

func TestSearch_MissingLocationIs400(t *testing.T) {
	engine := newTestRouter(stubGeocoder{}, &stubSearcher{})

	rec := doRequest(t, engine, "/search")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSearch_PlaceNotFoundIs404(t *testing.T) {
	engine := newTestRouter(stubGeocoder{err: apperr.NotFound("no match for place")}, &stubSearcher{})

	rec := doRequest(t, engine, "/search?place=Nowhereville")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestSearch_MissingCredentialIs500(t *testing.T) {
	searcher := &stubSearcher{err: apperr.MissingCredential("FOURSQUARE_API_KEY is not configured")}
	engine := newTestRouter(stubGeocoder{}, searcher)

	rec := doRequest(t, engine, "/search?lat=30&lon=-92")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestSearch_UpstreamErrorIs500(t *testing.T) {
	searcher := &stubSearcher{err: apperr.Upstream("overpass returned status 504")}
	engine := newTestRouter(stubGeocoder{}, searcher)

	rec := doRequest(t, engine, "/search?lat=30&lon=-92")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestSearch_LegacyCityAndTypesAliases(t *testing.T) {
	searcher := &stubSearcher{}
	engine := newTestRouter(stubGeocoder{err: apperr.NotFound("no match for place")}, searcher)

	// city= must be treated as place=: the geocoder runs and reports 404.
	rec := doRequest(t, engine, "/search?city=Lafayette,LA")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 via legacy city param, got %d", rec.Code)
	}
}

func TestSearch_TypesAliasFeedsCategories(t *testing.T) {
	searcher := &stubSearcher{}
	engine := newTestRouter(stubGeocoder{}, searcher)

	rec := doRequest(t, engine, "/search?lat=30&lon=-92&types=bar,pub")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(searcher.query.Categories) != 2 || searcher.query.Categories[0] != "bar" {
		t.Fatalf("legacy types alias not applied: %v", searcher.query.Categories)
	}
}

func TestSearch_OpenNowDefaultsToEnabled(t *testing.T) {
	searcher := &stubSearcher{}
	engine := newTestRouter(stubGeocoder{}, searcher)

	doRequest(t, engine, "/search?lat=30&lon=-92")
	if !searcher.query.OpenNow {
		t.Fatalf("expected open_now to default to true")
	}

	doRequest(t, engine, "/search?lat=30&lon=-92&open_now=false")
	if searcher.query.OpenNow {
		t.Fatalf("expected open_now=false to be honored")
	}
}

func TestProviderInfo_ReportsKindWithoutKeyMaterial(t *testing.T) {
	engine := newTestRouter(stubGeocoder{}, &stubSearcher{})

	rec := doRequest(t, engine, "/provider")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["provider"] != "overpass" {
		t.Fatalf("unexpected provider %v", body["provider"])
	}
	if _, present := body["credentialConfigured"]; !present {
		t.Fatalf("expected credentialConfigured field")
	}
	if len(body) != 2 {
		t.Fatalf("provider info must carry nothing but kind and presence flag: %v", body)
	}
}

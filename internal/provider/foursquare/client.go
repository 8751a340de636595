// Package foursquare implements the listing-based POI provider backed by
// the Foursquare v3 places search API.
package foursquare

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rehabcade/spin-to-eat-v2/internal/geo"
	"github.com/rehabcade/spin-to-eat-v2/internal/provider"
	"github.com/rehabcade/spin-to-eat-v2/platform/apperr"
	"github.com/rehabcade/spin-to-eat-v2/platform/config"
	"github.com/rehabcade/spin-to-eat-v2/platform/logger"
)

const (
	// maxLimit is enforced client-side regardless of caller input.
	maxLimit     = 50
	defaultLimit = 30
	// maxRadiusMeters is the largest radius the search endpoint accepts.
	maxRadiusMeters = 100000
)

// SearchParams is the provider-native request shape: the v3 API is
// radius-based, not bounding-box-based.
type SearchParams struct {
	Center       geo.Point
	RadiusMeters int
	// CategoryIDs are provider-native numeric category codes.
	CategoryIDs []string
	Limit       int
	OpenNow     bool
}

// Values encodes the params as URL query values, capping the limit and
// radius but never touching the category list.
func (p SearchParams) Values() url.Values {
	limit := p.Limit
	switch {
	case limit <= 0:
		limit = defaultLimit
	case limit > maxLimit:
		limit = maxLimit
	}
	radius := p.RadiusMeters
	if radius > maxRadiusMeters {
		radius = maxRadiusMeters
	}

	values := url.Values{}
	values.Set("ll", fmt.Sprintf("%g,%g", p.Center.Lat, p.Center.Lon))
	values.Set("radius", strconv.Itoa(radius))
	values.Set("categories", joinIDs(p.CategoryIDs))
	values.Set("limit", strconv.Itoa(limit))
	values.Set("sort", "DISTANCE")
	if p.OpenNow {
		values.Set("open_now", "true")
	}
	return values
}

func joinIDs(ids []string) string {
	out := ""
	for i, id := range ids {
		if i > 0 {
			out += ","
		}
		out += id
	}
	return out
}

// Client executes place searches. The API key is injected at construction
// and scoped to this client; it is never read from ambient state inside
// the pipeline.
type Client struct {
	baseURL   string
	apiKey    string
	userAgent string
	httpc     *http.Client
	log       *logger.Logger
}

// NewClient creates a Foursquare client. A missing key is not an error
// here; Execute reports it as a typed failure before any network call.
func NewClient(cfg config.ProviderConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL:   cfg.GetFoursquareBaseURL(),
		apiKey:    cfg.GetFoursquareAPIKey(),
		userAgent: cfg.GetUserAgent(),
		httpc:     &http.Client{Timeout: cfg.GetUpstreamTimeout()},
		log:       log,
	}
}

// HasCredential reports whether an API key is configured.
func (c *Client) HasCredential() bool { return c.apiKey != "" }

// Execute runs one places search. Single attempt, no retry.
func (c *Client) Execute(ctx context.Context, params SearchParams) ([]Place, error) {
	if !c.HasCredential() {
		return nil, apperr.MissingCredential("FOURSQUARE_API_KEY is not configured").WithOp("foursquare.execute")
	}

	reqURL := fmt.Sprintf("%s/places/search?%s", c.baseURL, params.Values().Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to build foursquare request", err)
	}
	req.Header.Set("Accept", "application/json")
	// The v3 API wants the raw key, not a Bearer-prefixed token.
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.UpstreamError("foursquare", err)
		return nil, apperr.Wrap(apperr.KindUpstream, "foursquare request failed", err).WithOp("foursquare.execute")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.log.UpstreamCall("foursquare", float64(time.Since(start).Milliseconds()), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		excerpt := provider.TruncateBody(body)
		c.log.Error("foursquare upstream error", "status", resp.StatusCode, "body", excerpt)
		return nil, apperr.Upstream(fmt.Sprintf("foursquare returned status %d", resp.StatusCode)).
			WithOp("foursquare.execute").
			WithDetails(provider.UpstreamDetail{Status: resp.StatusCode, Body: excerpt})
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.UpstreamError("foursquare", err)
		return nil, apperr.Wrap(apperr.KindUpstream, "foursquare returned malformed payload", err).WithOp("foursquare.execute")
	}

	return payload.Results, nil
}

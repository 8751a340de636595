// Package overpass implements the tag-based POI provider backed by the
// OSM Overpass interpreter.
package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rehabcade/spin-to-eat-v2/internal/provider"
	"github.com/rehabcade/spin-to-eat-v2/platform/apperr"
	"github.com/rehabcade/spin-to-eat-v2/platform/config"
	"github.com/rehabcade/spin-to-eat-v2/platform/logger"
)

// Client executes Overpass QL queries. Single attempt per call: the
// public Overpass instances rate limit aggressively and their usage
// policy asks clients not to retry and to send an identifying User-Agent.
type Client struct {
	baseURL   string
	userAgent string
	httpc     *http.Client
	log       *logger.Logger
}

// NewClient creates an Overpass client.
func NewClient(cfg config.ProviderConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL:   cfg.GetOverpassBaseURL(),
		userAgent: cfg.GetUserAgent(),
		httpc:     &http.Client{Timeout: cfg.GetUpstreamTimeout()},
		log:       log,
	}
}

// Execute posts the query to the interpreter and returns raw elements.
// Non-success statuses surface as upstream errors carrying a truncated
// body excerpt; they are never treated as zero results.
func (c *Client) Execute(ctx context.Context, query string) ([]Element, error) {
	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to build overpass request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.UpstreamError("overpass", err)
		return nil, apperr.Wrap(apperr.KindUpstream, "overpass request failed", err).WithOp("overpass.execute")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.log.UpstreamCall("overpass", float64(time.Since(start).Milliseconds()), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		excerpt := provider.TruncateBody(body)
		c.log.Error("overpass upstream error", "status", resp.StatusCode, "body", excerpt)
		return nil, apperr.Upstream(fmt.Sprintf("overpass returned status %d", resp.StatusCode)).
			WithOp("overpass.execute").
			WithDetails(provider.UpstreamDetail{Status: resp.StatusCode, Body: excerpt})
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.UpstreamError("overpass", err)
		return nil, apperr.Wrap(apperr.KindUpstream, "overpass returned malformed payload", err).WithOp("overpass.execute")
	}

	return payload.Elements, nil
}

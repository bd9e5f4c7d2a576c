package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// ErrPackageNotFound indicates the registry has no such package.
var ErrPackageNotFound = errors.New("package not found in registry")

// maxRegistryBody bounds how much of a registry response is read.
const maxRegistryBody = 64 << 20

// RegistryClient fetches package metadata from HTTP registries.
type RegistryClient interface {
	// GetJSON decodes the JSON document at url into out.
	GetJSON(ctx context.Context, url string, out any) error
	// GetText returns the body at url.
	GetText(ctx context.Context, url string) (string, error)
}

// HTTPRegistryClient is a rate limited RegistryClient shared by all oracles
// of a run, so aggregate analysis does not hammer a registry.
type HTTPRegistryClient struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// NewHTTPRegistryClient builds a client allowing ratePerSecond requests per
// second (unlimited when <= 0).
func NewHTTPRegistryClient(timeout time.Duration, ratePerSecond float64, userAgent string) *HTTPRegistryClient {
	limit := rate.Inf
	if ratePerSecond > 0 {
		limit = rate.Limit(ratePerSecond)
	}

	return &HTTPRegistryClient{
		client:    &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(limit, 1),
		userAgent: userAgent,
	}
}

// GetJSON decodes the JSON document at url into out.
func (c *HTTPRegistryClient) GetJSON(ctx context.Context, url string, out any) error {
	body, err := c.get(ctx, url, "application/json")
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "decode %s", url)
	}

	return nil
}

// GetText returns the body at url.
func (c *HTTPRegistryClient) GetText(ctx context.Context, url string) (string, error) {
	body, err := c.get(ctx, url, "text/plain")
	if err != nil {
		return "", err
	}

	return string(body), nil
}

func (c *HTTPRegistryClient) get(ctx context.Context, url, accept string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "registry rate limiter")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "build request for %s", url)
	}

	req.Header.Set("Accept", accept)

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", url)
	}

	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, errors.Wrap(ErrPackageNotFound, url)
	case resp.StatusCode != http.StatusOK:
		return nil, errors.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRegistryBody))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", url)
	}

	return body, nil
}

// internal/adapters/catalog/client.go
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"travel_reco/internal/adapters/observability"
	"travel_reco/internal/domain"
)

// Client retrieves the recommendation document from a URL or a local file.
// Each GetDocument call is exactly one attempt: no retries, no client timeout.
type Client struct {
	location string
	hc       *http.Client
	rl       *rate.Limiter
}

func New(location string, rps int) (*Client, error) {
	if strings.TrimSpace(location) == "" {
		return nil, fmt.Errorf("catalog location is required")
	}
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		location: location,
		hc:       &http.Client{},
		rl:       rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

var (
	ErrNotFound  = fmt.Errorf("catalog: %w", domain.ErrNotFound)
	ErrMalformed = errors.New("catalog: malformed document")
)

func (c *Client) GetDocument(ctx context.Context) (map[string]any, error) {
	// client-side rate limiting
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	var out map[string]any
	if isRemote(c.location) {
		return out, c.get(ctx, c.location, &out)
	}
	return out, c.readFile(strings.TrimPrefix(c.location, "file://"), &out)
}

// ---- Internals ----

func isRemote(loc string) bool {
	u, err := url.Parse(loc)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

func (c *Client) readFile(path string, out any) error {
	start := time.Now()
	b, err := os.ReadFile(path)
	if err != nil {
		observability.ObserveExternal("catalog", "file", 0, time.Since(start))
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return err
	}
	observability.ObserveExternal("catalog", "file", http.StatusOK, time.Since(start))
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

// get performs a single GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "travel-reco/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("catalog", "http", 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("catalog", "http", resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return nil

	case http.StatusNotFound:
		return ErrNotFound

	default:
		// read a small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
}

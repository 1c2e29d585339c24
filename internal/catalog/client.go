package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Client defaults.
const (
	DefaultTimeout      = 30 * time.Second
	DefaultUserAgent    = "Herodex/1.0"
	DefaultMaxBodyBytes = 4 << 20
)

// ClientConfig configures a Client.
type ClientConfig struct {
	BaseURL      string        // e.g. https://gateway.marvel.com:443
	ResourcePath string        // e.g. /v1/public/characters
	Timeout      time.Duration // whole-request timeout (default: 30s)
	UserAgent    string        // User-Agent header (default: Herodex/1.0)
	MaxBodyBytes int64         // response size limit (default: 4 MiB)
}

// Client fetches character pages from the catalog service.
// It is safe for concurrent use.
type Client struct {
	http     *http.Client
	signer   *Signer
	endpoint string
	cfg      ClientConfig
}

// NewClient creates a catalog client that signs every request with signer.
//
// Parameters:
//   - cfg: Endpoint and transport settings; zero values fall back to defaults
//   - signer: Validated request signer
//
// Returns:
//   - *Client: Initialized client
func NewClient(cfg ClientConfig, signer *Signer) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}

	return &Client{
		http: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		signer:   signer,
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + cfg.ResourcePath,
		cfg:      cfg,
	}
}

// Endpoint returns the unsigned resource URL the client queries.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// ListCharacters signs params against the character resource and fetches
// the resulting page.
//
// Parameters:
//   - ctx: Context for cancellation
//   - params: Filter and window parameters (limit, offset, nameStartsWith)
//
// Returns:
//   - *CharacterPage: Decoded page
//   - error: ErrUpstreamTransport, ErrUpstreamStatus or ErrUpstreamParse
func (c *Client) ListCharacters(ctx context.Context, params url.Values) (*CharacterPage, error) {
	target, err := c.signer.URL(c.endpoint, params)
	if err != nil {
		return nil, fmt.Errorf("%w: sign request: %w", ErrUpstreamTransport, err)
	}

	log.Ctx(ctx).Debug().
		Str("endpoint", c.endpoint).
		Str("params", params.Encode()).
		Msg("Querying catalog")

	return c.Fetch(ctx, target)
}

// Fetch performs a GET against an already signed URL and decodes the
// catalog envelope.
func (c *Client) Fetch(ctx context.Context, target string) (*CharacterPage, error) {
	startTime := time.Now()

	req, err := c.createRequest(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrUpstreamTransport, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %w", ErrUpstreamTransport, err)
	}
	defer resp.Body.Close()

	body, err := c.readBody(resp)
	if err != nil {
		return nil, err
	}

	page, err := c.decode(resp.StatusCode, body)
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Debug().
		Int("status_code", resp.StatusCode).
		Int("count", page.Count).
		Int("total", page.Total).
		Dur("elapsed", time.Since(startTime)).
		Msg("Catalog response decoded")

	return page, nil
}

// createRequest builds the outbound GET request.
func (c *Client) createRequest(ctx context.Context, target string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	return req, nil
}

// readBody reads at most MaxBodyBytes of the response.
func (c *Client) readBody(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrUpstreamTransport, err)
	}
	if int64(len(body)) > c.cfg.MaxBodyBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrUpstreamParse, c.cfg.MaxBodyBytes)
	}
	return body, nil
}

// decode validates the status code and the envelope shape.
func (c *Client) decode(statusCode int, body []byte) (*CharacterPage, error) {
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		var env envelope
		detail := http.StatusText(statusCode)
		if json.Unmarshal(body, &env) == nil {
			if env.Status != "" {
				detail = env.Status
			} else if env.Message != "" {
				detail = env.Message
			}
		}
		return nil, fmt.Errorf("%w: got %d: %s", ErrUpstreamStatus, statusCode, detail)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamParse, err)
	}
	if env.Data == nil {
		return nil, fmt.Errorf("%w: missing data", ErrUpstreamParse)
	}
	if env.Data.Results == nil {
		return nil, fmt.Errorf("%w: missing data.results", ErrUpstreamParse)
	}

	count := env.Data.Count
	if count == 0 {
		count = len(env.Data.Results)
	}

	return &CharacterPage{
		Characters:      env.Data.Results,
		AttributionText: env.AttributionText,
		AttributionHTML: env.AttributionHTML,
		Offset:          env.Data.Offset,
		Limit:           env.Data.Limit,
		Total:           env.Data.Total,
		Count:           count,
	}, nil
}

// Package scoreboard fetches live game snapshots from the external
// scoreboard provider. It is the only component in the engine that performs
// I/O.
package scoreboard

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/gridstake/pickem/internal/domain/model"
	"github.com/gridstake/pickem/pkg/logger"
	"github.com/gridstake/pickem/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultBaseURL   = "https://site.api.espn.com/apis/site/v2/sports"
	defaultSportPath = "football/nfl"
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "gridstake-pickem/1.0"

	breakerMinRequests  = 3
	breakerFailureRatio = 0.6
	breakerOpenTimeout  = 30 * time.Second
)

// Source fetches one full snapshot for a contest week. Implemented by
// Client and by the cache decorator in the cache package.
type Source interface {
	Fetch(ctx context.Context, year, seasonType, week int) ([]model.RawGame, error)
}

// Client is an HTTP scoreboard client with a circuit breaker around the
// upstream. Provider-side caching of roughly ten seconds is acceptable; the
// engine never needs strict real-time freshness.
type Client struct {
	httpClient *http.Client
	baseURL    string
	sportPath  string
	userAgent  string
	breaker    *gobreaker.CircuitBreaker
	logger     logger.Logger
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithBaseURL overrides the provider base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithTimeout bounds the upstream fetch.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets a custom logger for the client.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithBreakerDisabled removes circuit breaker protection. Intended for
// tests against a local stub server.
func WithBreakerDisabled() Option {
	return func(c *Client) {
		c.breaker = nil
	}
}

// NewClient creates a scoreboard client with configuration options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
		sportPath:  defaultSportPath,
		userAgent:  defaultUserAgent,
		logger:     logger.Get().Named("scoreboard"),
	}
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "scoreboard",
		Timeout: breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= breakerMinRequests && ratio >= breakerFailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn(context.Background(), "circuit breaker state changed",
				logger.String("breaker", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()),
			)
		},
	})

	// Apply all options
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Fetch retrieves and decodes the scoreboard for one contest week. Any
// failure wraps ErrUpstreamUnavailable; there is no partial result.
func (c *Client) Fetch(ctx context.Context, year, seasonType, week int) ([]model.RawGame, error) {
	start := time.Now()
	defer func() {
		metrics.RecordUpstreamFetchLatency(float64(time.Since(start).Milliseconds()))
	}()

	fetch := func() (interface{}, error) {
		return c.fetch(ctx, year, seasonType, week)
	}

	var result interface{}
	var err error
	if c.breaker != nil {
		result, err = c.breaker.Execute(fetch)
	} else {
		result, err = fetch()
	}
	if err != nil {
		metrics.RecordUpstreamFetchError()
		c.logger.Error(ctx, "scoreboard fetch failed",
			logger.Int("year", year),
			logger.Int("seasonType", seasonType),
			logger.Int("week", week),
			logger.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	games, ok := result.([]model.RawGame)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected fetch result type", ErrUpstreamUnavailable)
	}

	metrics.RecordUpstreamFetch()
	c.logger.Debug(ctx, "scoreboard fetched",
		logger.Int("year", year),
		logger.Int("week", week),
		logger.Int("games", len(games)),
	)
	return games, nil
}

func (c *Client) fetch(ctx context.Context, year, seasonType, week int) ([]model.RawGame, error) {
	url := fmt.Sprintf("%s/%s/scoreboard?dates=%d&seasontype=%d&week=%d",
		c.baseURL, c.sportPath, year, seasonType, week)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scoreboard status %d", resp.StatusCode)
	}

	return decodeScoreboard(resp.Body)
}

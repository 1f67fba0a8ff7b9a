// Package amortization provides a client for the loan amortization service
package amortization

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/bobmcallan/propex/internal/common"
	"github.com/bobmcallan/propex/internal/interfaces"
	"github.com/bobmcallan/propex/internal/models"
)

const (
	DefaultBaseURL   = "http://localhost:8082/amortization"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 20 // requests per second
	DefaultCacheTTL  = 10 * time.Minute
)

// Client implements the AmortizationClient interface. Identical queries
// are served from an in-process cache for the configured TTL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
	cache      *gocache.Cache
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the endpoint URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit; zero or less disables limiting
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		if requestsPerSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithCacheTTL sets how long schedules are cached; zero disables the cache
func WithCacheTTL(ttl time.Duration) ClientOption {
	return func(c *Client) {
		if ttl <= 0 {
			c.cache = nil
			return
		}
		c.cache = gocache.New(ttl, 2*ttl)
	}
}

// NewClient creates a new amortization client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
		cache:   gocache.New(DefaultCacheTTL, 2*DefaultCacheTTL),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents a non-success response from the amortization service
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("amortization API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// Unwrap lets callers match any API failure as a collaborator outage
func (e *APIError) Unwrap() error {
	return models.ErrCollaboratorUnavailable
}

// Query encodes the request as the service's query string
func Query(req models.AmortizationRequest) string {
	q := url.Values{}
	q.Set("amount", strconv.FormatFloat(req.Amount, 'f', -1, 64))
	q.Set("startingBalance", strconv.FormatFloat(req.StartingBalance, 'f', -1, 64))
	q.Set("interestRate", strconv.FormatFloat(req.InterestRate, 'f', -1, 64))
	q.Set("termInMonths", strconv.Itoa(req.TermInMonths))
	return q.Encode()
}

// get performs a rate-limited GET request
func (c *Client) get(ctx context.Context, query string, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limit wait: %w", models.ErrCollaboratorUnavailable, err)
	}

	reqURL := c.baseURL + "?" + query

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("query", query).Msg("Amortization API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %w", models.ErrCollaboratorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   c.baseURL,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", models.ErrCollaboratorUnavailable, err)
	}

	return nil
}

// Amortize returns the schedule for a single loan
func (c *Client) Amortize(ctx context.Context, req models.AmortizationRequest) (*models.AmortizationResponse, error) {
	query := Query(req)

	if c.cache != nil {
		if cached, ok := c.cache.Get(query); ok {
			c.logger.Trace().Str("query", query).Msg("Amortization cache hit")
			return cached.(*models.AmortizationResponse), nil
		}
	}

	// The summary is mandatory; a body without it is treated as missing
	var raw struct {
		Amortization []models.AmortizationRow    `json:"amortization"`
		Summary      *models.AmortizationSummary `json:"summary"`
	}
	if err := c.get(ctx, query, &raw); err != nil {
		return nil, fmt.Errorf("amortize %s: %w", query, err)
	}
	if raw.Summary == nil {
		return nil, fmt.Errorf("amortize %s: %w: response has no summary", query, models.ErrCollaboratorUnavailable)
	}

	resp := &models.AmortizationResponse{Amortization: raw.Amortization, Summary: *raw.Summary}
	if c.cache != nil {
		c.cache.SetDefault(query, resp)
	}

	return resp, nil
}

// Ensure Client implements AmortizationClient
var _ interfaces.AmortizationClient = (*Client)(nil)

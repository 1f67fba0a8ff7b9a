// Package forecast provides a client for the property forecasting service
package forecast

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/bobmcallan/propex/internal/common"
	"github.com/bobmcallan/propex/internal/interfaces"
	"github.com/bobmcallan/propex/internal/models"
)

const (
	DefaultBaseURL   = "http://localhost:8081/forecast"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 20 // requests per second
)

// Client implements the ForecastClient interface
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
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

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new forecasting client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents a non-success response from the forecasting service
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("forecasting API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// Unwrap lets callers match any API failure as a collaborator outage
func (e *APIError) Unwrap() error {
	return models.ErrCollaboratorUnavailable
}

// post performs a rate-limited JSON POST request
func (c *Client) post(ctx context.Context, body interface{}, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limit wait: %w", models.ErrCollaboratorUnavailable, err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %w", models.ErrCollaboratorUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("url", c.baseURL).
		Int("status", resp.StatusCode).
		Int("bytes", len(payload)).
		Dur("elapsed", time.Since(start)).
		Msg("Forecasting API request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(msg),
			Endpoint:   c.baseURL,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", models.ErrCollaboratorUnavailable, err)
	}

	return nil
}

// Forecast projects the properties and passive investments in req
func (c *Client) Forecast(ctx context.Context, req models.ForecastRequest) ([]models.ForecastYear, error) {
	var rows []models.ForecastYear
	if err := c.post(ctx, req, &rows); err != nil {
		return nil, fmt.Errorf("forecast %s: %w", req.UUID(), err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("forecast %s: %w: empty response", req.UUID(), models.ErrCollaboratorUnavailable)
	}

	return rows, nil
}

// Ensure Client implements ForecastClient
var _ interfaces.ForecastClient = (*Client)(nil)

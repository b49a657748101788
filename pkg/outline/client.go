// Package outline provides a client for the Outline knowledge-base API.
//
// Every API operation is a JSON POST to <base>/api/<endpoint>; the client
// owns request transport, status-code classification and auto-pagination.
package outline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout is the default HTTP client timeout.
const DefaultTimeout = 30 * time.Second

// Envelope is a decoded API response body.
type Envelope = map[string]any

// Params is the request parameter mapping sent as the JSON body.
type Params = map[string]any

// Client is the Outline API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option is a function that configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client. Redirect following is disabled
// on it so 302 responses stay observable.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used for request-level debug logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a new Outline client for the given base URL and API key.
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Redirect endpoints (attachments.redirect, fileOperations.redirect)
	// communicate their payload via the Location header of a 302.
	c.httpClient.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return c
}

// endpointURL joins the configured base URL and an endpoint reference,
// ensuring the /api path segment is present exactly once.
func (c *Client) endpointURL(endpoint string) string {
	base := strings.TrimRight(c.baseURL, "/")
	if !strings.HasSuffix(base, "/api") {
		base += "/api"
	}
	return base + "/" + endpoint
}

// Request performs a single API call and returns the decoded response
// envelope. Exactly one attempt is made; nothing is retried.
func (c *Client) Request(ctx context.Context, endpoint string, params Params) (Envelope, error) {
	if params == nil {
		params = Params{}
	}

	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL(endpoint), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportError(err)
	}
	defer resp.Body.Close()

	c.logger.Debug("api request",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	switch resp.StatusCode {
	case http.StatusOK:
		var envelope Envelope
		dec := json.NewDecoder(resp.Body)
		dec.UseNumber()
		if err := dec.Decode(&envelope); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return envelope, nil

	case http.StatusFound:
		// The payload lives in the Location header; the body is not read.
		location := resp.Header.Get("Location")
		return Envelope{
			"success":  true,
			"location": location,
			"data":     Envelope{"url": location},
		}, nil

	case http.StatusBadRequest:
		return nil, &Error{
			Kind:       KindValidation,
			StatusCode: resp.StatusCode,
			Message:    "Validation error: " + parseErrorMessage(resp),
		}

	case http.StatusUnauthorized:
		return nil, &Error{
			Kind:       KindAuth,
			StatusCode: resp.StatusCode,
			Message:    "Unauthenticated: Invalid or missing API key",
		}

	case http.StatusForbidden:
		return nil, &Error{
			Kind:       KindPermission,
			StatusCode: resp.StatusCode,
			Message:    "Unauthorized: You don't have permission for this action",
		}

	case http.StatusNotFound:
		return nil, &Error{
			Kind:       KindNotFound,
			StatusCode: resp.StatusCode,
			Message:    "Not found: The requested resource does not exist",
		}

	case http.StatusTooManyRequests:
		return nil, &Error{
			Kind:       KindRateLimit,
			StatusCode: resp.StatusCode,
			Message:    "Rate limited: Too many requests",
		}

	default:
		return nil, &Error{
			Kind:       KindAPI,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("API error (%d): %s", resp.StatusCode, parseErrorMessage(resp)),
		}
	}
}

// transportError classifies a failure that happened before any response was
// received.
func (c *Client) transportError(err error) *Error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &Error{
			Kind:    KindTimeout,
			Message: fmt.Sprintf("Request timed out after %d seconds", int(c.httpClient.Timeout.Seconds())),
		}
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) {
		return &Error{
			Kind:    KindConnection,
			Message: fmt.Sprintf("Connection error: %v", err),
		}
	}

	return &Error{
		Kind:    KindConnection,
		Message: fmt.Sprintf("Request failed: %v", err),
	}
}

// parseErrorMessage extracts a human-readable message from an error
// response body: a message field, then an error field, then the serialized
// body, then the raw text, then a plain HTTP status marker.
func parseErrorMessage(resp *http.Response) string {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return fmt.Sprintf("HTTP %d", resp.StatusCode)
	}
	body := buf.Bytes()

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err == nil && decoded != nil {
		if msg, ok := decoded["message"].(string); ok && msg != "" {
			return msg
		}
		if msg, ok := decoded["error"].(string); ok && msg != "" {
			return msg
		}
		if raw, err := json.Marshal(decoded); err == nil {
			return string(raw)
		}
	}

	if len(body) > 0 {
		return string(body)
	}
	return fmt.Sprintf("HTTP %d", resp.StatusCode)
}

// Package http implements the HTTP transport the resource clients issue
// requests through. It owns URL construction, JSON encoding, retry behavior,
// credential injection, and error envelope parsing.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/virtstack-io/vsapi-client/internal/auth"
	"github.com/virtstack-io/vsapi-client/internal/constants"
	"github.com/virtstack-io/vsapi-client/pkg/vsapi"
)

// Logger interface for transport logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request describes an outgoing API request. Requires declares the
// credential kinds the operation needs; the dispatcher satisfies it before
// any network I/O happens.
type Request struct {
	Method   string
	Path     string
	Query    url.Values
	Body     interface{}
	Headers  map[string]string
	Requires vsapi.Requirement
}

// Response is the structured result of a request.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the shared HTTP transport.
type Client struct {
	baseURL      string
	dispatcher   *auth.Dispatcher
	retryClient  *retryablehttp.Client
	logger       Logger
	debug        bool
	userAgent    string
	interceptors *vsapi.InterceptorChain
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes the retry behavior for transient failures.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryClient.RetryMax = retryMax
		c.retryClient.RetryWaitMin = waitMin
		c.retryClient.RetryWaitMax = waitMax
	}
}

// WithHTTPTimeout sets the per-request timeout on the underlying client.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.retryClient.HTTPClient.Timeout = timeout
	}
}

// WithInterceptors installs an interceptor chain that runs around every
// request.
func WithInterceptors(chain *vsapi.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a transport for the given base URL. The dispatcher may
// be nil, in which case no credentials are ever attached (useful in tests of
// unauthenticated endpoints).
func NewClient(baseURL string, dispatcher *auth.Dispatcher, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil

	client := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		dispatcher:  dispatcher,
		retryClient: retryClient,
		userAgent:   "vsapi-client/1.0",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes the request. Credential resolution happens before the request
// is sent, so a missing required credential fails with zero network calls.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var bodyBytes []byte

	if req.Body != nil {
		var err error

		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	headers := make(http.Header)
	headers.Set("Accept", "application/json")

	if bodyBytes != nil {
		headers.Set("Content-Type", "application/json")
	}

	if c.userAgent != "" {
		headers.Set("User-Agent", c.userAgent)
	}

	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	if c.dispatcher != nil {
		err := c.dispatcher.Apply(headers, req.Requires)
		if err != nil {
			return nil, err
		}
	}

	interceptReq := &vsapi.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: headers,
		Body:    bodyBytes,
	}

	if c.interceptors != nil {
		err := c.interceptors.ExecuteRequestInterceptors(ctx, interceptReq)
		if err != nil {
			return nil, err
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header = headers

	httpResp, err := c.retryClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	var respErr error
	if httpResp.StatusCode >= http.StatusBadRequest {
		respErr = vsapi.ParseResponseError(httpResp.StatusCode, respBody)
	}

	if c.interceptors != nil {
		interceptResp := &vsapi.Response{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
			Error:      respErr,
		}

		err := c.interceptors.ExecuteResponseInterceptors(ctx, interceptReq, interceptResp)
		if err != nil {
			return resp, err
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": resp.StatusCode,
		})
	}

	return resp, respErr
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values, requires vsapi.Requirement) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:   http.MethodGet,
		Path:     path,
		Query:    query,
		Requires: requires,
	})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}, requires vsapi.Requirement) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:   http.MethodPost,
		Path:     path,
		Body:     body,
		Requires: requires,
	})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}, requires vsapi.Requirement) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:   http.MethodPut,
		Path:     path,
		Body:     body,
		Requires: requires,
	})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}, requires vsapi.Requirement) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:   http.MethodPatch,
		Path:     path,
		Body:     body,
		Requires: requires,
	})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, requires vsapi.Requirement) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:   http.MethodDelete,
		Path:     path,
		Requires: requires,
	})
}

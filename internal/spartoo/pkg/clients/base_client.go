package clients

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"spartoo_api/internal/spartoo/business/xmlnode"
	"spartoo_api/pkg/logger"
	"spartoo_api/pkg/middleware"
)

const (
	DefaultBaseURL = "https://sws.spartoo.com"
	userAgent      = "spartoo_api/1.0 (+https://sws.spartoo.com/mp)"
)

type BaseClient struct {
	baseURL string
	auth    AuthEngine
	client  *http.Client
	log     logger.Logger
	post    middleware.PostFunc

	limiter  *rate.Limiter
	recorder middleware.Recorder
}

type Option func(*BaseClient)

func WithBaseURL(baseURL string) Option {
	return func(c *BaseClient) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *BaseClient) { c.client = client }
}

func WithLogger(log logger.Logger) Option {
	return func(c *BaseClient) { c.log = log }
}

func WithLimiter(limiter *rate.Limiter) Option {
	return func(c *BaseClient) { c.limiter = limiter }
}

// WithRecorder journals every call, see storage.JournalRepository.
func WithRecorder(rec middleware.Recorder) Option {
	return func(c *BaseClient) { c.recorder = rec }
}

func newBaseClient(auth AuthEngine, opts ...Option) *BaseClient {
	c := &BaseClient{
		baseURL: DefaultBaseURL,
		auth:    auth,
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     logger.Nop{},
	}
	for _, opt := range opts {
		opt(c)
	}

	// The limiter runs outermost: throttled or refused calls never reach
	// metrics or the journal.
	var mws []middleware.Middleware
	if c.limiter != nil {
		mws = append(mws, middleware.RateLimit(c.limiter))
	}
	mws = append(mws, middleware.Metrics, middleware.Logging(c.log))
	if c.recorder != nil {
		mws = append(mws, middleware.Journal(c.recorder, c.log))
	}
	c.post = middleware.Chain(c.doRequest, mws...)
	return c
}

func (c *BaseClient) endpointURL(endpoint string) string {
	return fmt.Sprintf("%s/mp/%s.php", c.baseURL, endpoint)
}

func (c *BaseClient) doRequest(ctx context.Context, endpoint string, params url.Values) (*middleware.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL(endpoint), strings.NewReader(params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("request was cancelled: %w", ctx.Err())
		default:
			return nil, fmt.Errorf("failed to execute request: %w", err)
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return &middleware.Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// call posts params with the partner token and parses the answer, whatever
// its status code, as an XML tree.
func (c *BaseClient) call(ctx context.Context, endpoint string, params url.Values) (*xmlnode.Node, error) {
	c.auth.Apply(params)

	resp, err := c.post(ctx, endpoint, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}

	tree, err := xmlnode.Parse(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, &APIError{URL: c.endpointURL(endpoint), StatusCode: resp.StatusCode, Err: err}
	}
	return tree, nil
}

// params builds form values, dropping empty ones.
func params(kv ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			v.Set(kv[i], kv[i+1])
		}
	}
	return v
}

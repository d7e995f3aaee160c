package middleware

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"spartoo_api/metrics"
	"spartoo_api/pkg/logger"
)

// Metrics records the status and duration of every call.
func Metrics(next PostFunc) PostFunc {
	return func(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
		start := time.Now()
		resp, err := next(ctx, endpoint, params)

		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		metrics.RecordRequest(endpoint, status, time.Since(start))
		return resp, err
	}
}

// Logging writes one line per call. Request payloads are not logged.
func Logging(log logger.Logger) Middleware {
	return func(next PostFunc) PostFunc {
		return func(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
			start := time.Now()
			resp, err := next(ctx, endpoint, params)
			if err != nil {
				log.Log("%s failed after %s: %v", endpoint, time.Since(start), err)
				return resp, err
			}
			log.Log("%s answered %d in %s (%d bytes)", endpoint, resp.StatusCode, time.Since(start), len(resp.Body))
			return resp, nil
		}
	}
}

// RateLimit waits for the limiter before each call.
func RateLimit(limiter *rate.Limiter) Middleware {
	return func(next PostFunc) PostFunc {
		return func(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
			if err := limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limiter: %w", err)
			}
			return next(ctx, endpoint, params)
		}
	}
}

// Recorder keeps a trace of API calls.
type Recorder interface {
	Record(ctx context.Context, endpoint string, params url.Values, resp *Response, callErr error, duration time.Duration) error
}

// Journal hands every call to rec. A failing recorder is logged and does not
// fail the call. Recording ignores cancellation of ctx so that calls aborted
// by the caller are journaled too.
func Journal(rec Recorder, log logger.Logger) Middleware {
	return func(next PostFunc) PostFunc {
		return func(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
			start := time.Now()
			resp, err := next(ctx, endpoint, params)
			if recErr := rec.Record(context.WithoutCancel(ctx), endpoint, params, resp, err, time.Since(start)); recErr != nil {
				log.Log("failed to journal %s: %v", endpoint, recErr)
			}
			return resp, err
		}
	}
}

package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"spartoo_api/pkg/logger"
)

func okPost(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
	return &Response{StatusCode: 200, Body: []byte("<root/>")}, nil
}

func TestChain_Order(t *testing.T) {
	var calls []string
	mark := func(name string) Middleware {
		return func(next PostFunc) PostFunc {
			return func(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
				calls = append(calls, name)
				return next(ctx, endpoint, params)
			}
		}
	}

	_, err := Chain(okPost, mark("a"), mark("b"))(context.Background(), "x", nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	post := Chain(okPost, Logging(logger.NewLogger(&buf, "[test]")))

	_, err := post(context.Background(), "xml_maj_stock", nil)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "xml_maj_stock answered 200")
}

func TestRateLimit_CancelledContext(t *testing.T) {
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	post := Chain(okPost, RateLimit(limiter))

	_, err := post(context.Background(), "x", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = post(ctx, "x", nil)
	assert.Error(t, err)
}

type recorderStub struct {
	endpoints []string
	ctxErrs   []error
	err       error
}

func (r *recorderStub) Record(ctx context.Context, endpoint string, _ url.Values, _ *Response, _ error, _ time.Duration) error {
	r.endpoints = append(r.endpoints, endpoint)
	r.ctxErrs = append(r.ctxErrs, ctx.Err())
	return r.err
}

func TestJournal_FailureDoesNotFailCall(t *testing.T) {
	rec := &recorderStub{err: errors.New("db down")}
	var buf bytes.Buffer
	post := Chain(okPost, Journal(rec, logger.NewLogger(&buf, "[test]")))

	resp, err := post(context.Background(), "xml_export_products", nil)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []string{"xml_export_products"}, rec.endpoints)
	assert.Contains(t, buf.String(), "db down")
}

func TestMetrics_PassesThrough(t *testing.T) {
	failing := func(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
		return nil, errors.New("boom")
	}

	_, err := Chain(failing, Metrics)(context.Background(), "xml_maj_orders", nil)

	assert.EqualError(t, err, "boom")
}

func TestJournal_RecordsCancelledCalls(t *testing.T) {
	rec := &recorderStub{}
	cancelled := func(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
		return nil, ctx.Err()
	}
	post := Chain(cancelled, Journal(rec, logger.Nop{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := post(ctx, "xml_import_products", nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"xml_import_products"}, rec.endpoints)
	assert.Equal(t, []error{nil}, rec.ctxErrs)
}

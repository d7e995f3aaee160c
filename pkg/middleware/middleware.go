package middleware

import (
	"context"
	"net/url"
)

// Response is the raw answer of one form POST.
type Response struct {
	StatusCode int
	Body       []byte
}

// PostFunc sends params to an endpoint of the API.
type PostFunc func(ctx context.Context, endpoint string, params url.Values) (*Response, error)

type Middleware func(next PostFunc) PostFunc

// Chain wraps post so that the first middleware runs first.
func Chain(post PostFunc, mws ...Middleware) PostFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		post = mws[i](post)
	}
	return post
}

// Copyright (c) 2025 BVK Chaitanya

package binance

import (
	"context"
	"net/http"
)

type statusKey struct{}

// statusRecorder holds the HTTP status code of the last response received for
// requests carrying it in their context.
type statusRecorder struct {
	code int
}

func withStatusRecorder(ctx context.Context) (context.Context, *statusRecorder) {
	rec := new(statusRecorder)
	return context.WithValue(ctx, statusKey{}, rec), rec
}

// statusTransport records response status codes into the request context's
// statusRecorder, if any. The sdk's error values do not carry the status.
type statusTransport struct {
	base http.RoundTripper
}

func (t *statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if rec, ok := req.Context().Value(statusKey{}).(*statusRecorder); ok {
		rec.code = resp.StatusCode
	}
	return resp, nil
}

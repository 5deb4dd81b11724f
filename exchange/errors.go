// Copyright (c) 2025 BVK Chaitanya

package exchange

import "fmt"

// APIError is an error reported by the exchange itself, as opposed to a
// transport or encoding failure.
type APIError struct {
	// Code is the HTTP status code of the failed response.
	Code int64

	// ErrorCode is the exchange specific error code from the response body. It
	// is zero when the body did not carry one.
	ErrorCode int64

	Message string
}

func (e *APIError) Error() string {
	if e.ErrorCode != 0 {
		return fmt.Sprintf("exchange api error (status=%d, code=%d): %s", e.Code, e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("exchange api error (status=%d): %s", e.Code, e.Message)
}

// Copyright (c) 2025 BVK Chaitanya

package orders

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bvk/futuresbot/exchange"
)

// Result is the outcome of placing an order. Exactly one of the Order and
// Failure fields is non-nil.
type Result struct {
	Order *exchange.Order

	Failure *Failure
}

type Failure struct {
	Message string

	// Code is the HTTP status code of the exchange's response. HasCode is false
	// when the failure did not come from the exchange.
	Code    int64
	HasCode bool

	// ErrorCode is the exchange specific error code, if any.
	ErrorCode int64
}

// Failed returns a failure result for the error. Exchange api errors keep
// their message and codes; the message of any other error is used as is.
func Failed(err error) *Result {
	f := &Failure{Message: err.Error()}
	var apiErr *exchange.APIError
	if errors.As(err, &apiErr) {
		f.Message = apiErr.Message
		f.Code = apiErr.Code
		f.HasCode = true
		f.ErrorCode = apiErr.ErrorCode
	}
	return &Result{Failure: f}
}

func (r *Result) OK() bool {
	return r.Order != nil
}

// Summary formats the result for display.
func (r *Result) Summary() string {
	if r.Failure != nil {
		if r.Failure.HasCode && r.Failure.ErrorCode != 0 {
			return fmt.Sprintf("FAILED: %s (code %d, error %d)", r.Failure.Message, r.Failure.Code, r.Failure.ErrorCode)
		}
		if r.Failure.HasCode {
			return fmt.Sprintf("FAILED: %s (code %d)", r.Failure.Message, r.Failure.Code)
		}
		return fmt.Sprintf("FAILED: %s", r.Failure.Message)
	}

	avgPrice := r.Order.AvgPrice
	if avgPrice == "" {
		avgPrice = "N/A"
	}

	var sb strings.Builder
	sb.WriteString("SUCCESS\n")
	fmt.Fprintf(&sb, "Order ID: %d\n", r.Order.OrderID)
	fmt.Fprintf(&sb, "Status: %s\n", r.Order.Status)
	fmt.Fprintf(&sb, "Executed Qty: %s\n", r.Order.ExecutedQty)
	fmt.Fprintf(&sb, "Avg Price: %s", avgPrice)
	return sb.String()
}

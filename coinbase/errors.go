// Copyright (c) 2026 Coinbase Agent Authors

package coinbase

import (
	"fmt"
	"strings"
)

// StatusError is returned when the exchange responds with a non-2xx status
// code. The response body is carried verbatim so the caller can surface the
// exchange's own message.
type StatusError struct {
	Method string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %s returned %d: %s", e.Method, e.Code, e.Body)
}

// RejectionError is returned when an order submission comes back with
// success=false. Fields are copied from the exchange's error_response
// payload.
type RejectionError struct {
	FailureReason string
	Reason        string
	Message       string
	Details       string

	NewOrderFailureReason string
}

func (e *RejectionError) Error() string {
	reason := e.FailureReason
	if len(e.NewOrderFailureReason) > 0 {
		reason = e.NewOrderFailureReason
	}
	if len(e.Message) > 0 {
		return fmt.Sprintf("order rejected: %s: %s", reason, e.Message)
	}
	return fmt.Sprintf("order rejected: %s", reason)
}

// IsPrecisionRejection reports whether the order was rejected because the
// submitted size carries more decimal places than the product allows. This is
// the only rejection kind that order submission retries on.
func (e *RejectionError) IsPrecisionRejection() bool {
	for _, s := range []string{e.FailureReason, e.NewOrderFailureReason, e.Reason, e.Details} {
		if strings.Contains(s, "INVALID_SIZE_PRECISION") {
			return true
		}
	}
	return strings.Contains(strings.ToLower(e.Message), "too many decimals")
}

func rejectionFromResponse(resp *CreateOrderResponse) *RejectionError {
	e := &RejectionError{FailureReason: resp.FailureReason}
	if r := resp.ErrorResponse; r != nil {
		e.Reason = r.Error
		e.Message = r.Message
		e.Details = r.ErrorDetail
		e.NewOrderFailureReason = r.NewOrderFailureReason
	}
	return e
}

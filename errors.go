package tbank

import (
	"errors"
	"fmt"
)

// Kind classifies a failed exchange with the gateway.
type Kind string

const (
	// KindConfig is invalid local setup: credential absent or malformed.
	KindConfig Kind = "CONFIG"
	// KindTimeout is a deadline exceeded before the exchange completed.
	KindTimeout Kind = "TIMEOUT"
	// KindNetwork is a transport-level failure other than a timeout.
	KindNetwork Kind = "NETWORK"
	// KindUnauthorized is HTTP 401.
	KindUnauthorized Kind = "UNAUTHORIZED"
	// KindForbidden is HTTP 403.
	KindForbidden Kind = "FORBIDDEN"
	// KindNotFound is HTTP 404.
	KindNotFound Kind = "NOT_FOUND"
	// KindRateLimited is HTTP 429.
	KindRateLimited Kind = "RATE_LIMITED"
	// KindServer is HTTP 5xx; the raw body is retained verbatim.
	KindServer Kind = "SERVER"
	// KindAPI is any other non-2xx status, or a 2xx body with Success=false.
	KindAPI Kind = "API"
	// KindDeserialize is a 2xx body that failed to parse into the expected
	// shape; Path points at the exact field and Body holds the raw response.
	KindDeserialize Kind = "DESERIALIZE"
	// KindValidation is a local model violation caught before any byte is
	// sent; the Err field holds the validation.Errors aggregate.
	KindValidation Kind = "VALIDATION"
)

// Error is the classified outcome of a failed exchange. Every failure the
// SDK produces is one of these; nothing panics and nothing retries.
type Error struct {
	Kind    Kind
	Message string
	// Code is the gateway ErrorCode for KindAPI business rejections.
	Code string
	// Path is the JSON path of the decode failure for KindDeserialize.
	Path string
	// Body is the raw response body, retained verbatim for KindServer,
	// KindAPI and KindDeserialize so nothing diagnostic is lost.
	Body string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindDeserialize:
		return fmt.Sprintf("%s error at %s: %s", e.Kind, e.Path, e.Message)
	case KindAPI:
		if e.Code != "" {
			return fmt.Sprintf("%s error [%s]: %s", e.Kind, e.Code, e.Message)
		}
	}
	if e.Message != "" {
		return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
	}
	return string(e.Kind) + " error"
}

func (e *Error) Unwrap() error { return e.Err }

// Retryable reports whether the caller may reasonably retry the exchange.
// Retries are never performed by the SDK itself: a blind retry of a payment
// initiation risks a duplicate charge, so idempotency via a stable order id
// stays the caller's responsibility.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindTimeout, KindNetwork, KindRateLimited, KindServer:
		return true
	}
	return false
}

// AsError unwraps err into the SDK's classified error, if it is one.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// NewConfigError builds a configuration-kind error.
func NewConfigError(format string, args ...any) *Error {
	return &Error{Kind: KindConfig, Message: fmt.Sprintf(format, args...)}
}

// NewValidationError wraps a local model violation into the taxonomy.
func NewValidationError(err error) *Error {
	return &Error{Kind: KindValidation, Message: err.Error(), Err: err}
}

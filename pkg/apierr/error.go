// Package apierr defines the errors returned by the Wusul SDK.
//
// Every failure surfaced by the SDK is an [*Error] whose [Kind] says what went
// wrong. Callers match on kinds with errors.Is and the exported sentinels:
//
//	if errors.Is(err, apierr.ErrNotFound) {
//		// ...
//	}
package apierr

import (
	"errors"
	"fmt"
)

// Kind classifies an [Error].
type Kind uint8

const (
	KindUnknown          Kind = iota
	KindTransport             // the request never produced a response
	KindAPI                   // the API answered with an unclassified non-2xx status
	KindSerialization         // a payload or response could not be (de)serialized
	KindConfig                // the client was configured incorrectly
	KindAuthentication        // the API rejected the credentials (401, 403)
	KindInvalidParameter      // a parameter failed validation before sending
	KindNotFound              // 404
	KindRateLimited           // 429
	KindTimeout               // 408
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindAPI:
		return "api"
	case KindSerialization:
		return "serialization"
	case KindConfig:
		return "config"
	case KindAuthentication:
		return "authentication"
	case KindInvalidParameter:
		return "invalid_parameter"
	case KindNotFound:
		return "not_found"
	case KindRateLimited:
		return "rate_limited"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Error is the error type returned by all SDK operations.
type Error struct {
	Kind    Kind
	Status  int    // HTTP status code, zero if no response was received
	Message string // response body text or a description of the problem
	Err     error  // underlying cause, if any
}

var (
	ErrTransport        = &Error{Kind: KindTransport}
	ErrAPI              = &Error{Kind: KindAPI}
	ErrSerialization    = &Error{Kind: KindSerialization}
	ErrConfig           = &Error{Kind: KindConfig}
	ErrAuthentication   = &Error{Kind: KindAuthentication}
	ErrInvalidParameter = &Error{Kind: KindInvalidParameter}
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrRateLimited      = &Error{Kind: KindRateLimited}
	ErrTimeout          = &Error{Kind: KindTimeout}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindTransport:
		return "HTTP request failed: " + e.detail()
	case KindAPI:
		return fmt.Sprintf("API error: %d - %s", e.Status, e.Message)
	case KindSerialization:
		return "serialization error: " + e.detail()
	case KindConfig:
		return "configuration error: " + e.detail()
	case KindAuthentication:
		return "authentication error: " + e.detail()
	case KindInvalidParameter:
		return "invalid parameter: " + e.detail()
	case KindNotFound:
		return "resource not found: " + e.detail()
	case KindRateLimited:
		return "rate limit exceeded"
	case KindTimeout:
		return "request timeout"
	default:
		return "unknown error: " + e.detail()
	}
}

func (e *Error) detail() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t == e {
		return true
	}
	return t.Kind == e.Kind && t.Status == 0 && t.Message == "" && t.Err == nil
}

// KindOf returns the kind of the first [*Error] in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Transport wraps a network level failure.
func Transport(err error) *Error {
	return &Error{Kind: KindTransport, Err: err}
}

// Serialization wraps an encoding or decoding failure.
func Serialization(err error) *Error {
	return &Error{Kind: KindSerialization, Err: err}
}

// Config reports an invalid client configuration.
func Config(msg string) *Error {
	return &Error{Kind: KindConfig, Message: msg}
}

// InvalidParameter wraps a validation failure.
func InvalidParameter(err error) *Error {
	return &Error{Kind: KindInvalidParameter, Message: err.Error(), Err: err}
}

// FromStatus maps a non-2xx HTTP status and its response body to an error.
func FromStatus(status int, body string) *Error {
	switch {
	case status == 404:
		return &Error{Kind: KindNotFound, Status: status, Message: body}
	case status == 429:
		return &Error{Kind: KindRateLimited, Status: status}
	case status == 408:
		return &Error{Kind: KindTimeout, Status: status}
	case status == 401 || status == 403:
		return &Error{Kind: KindAuthentication, Status: status, Message: body}
	default:
		return &Error{Kind: KindAPI, Status: status, Message: body}
	}
}

package gateway

import (
	"errors"
	"fmt"
)

var (
	ErrTimeout        = errors.New("command_timeout")
	ErrRateLimited    = errors.New("rate_limited")
	ErrConnectionLost = errors.New("connection_lost")
	ErrInvalidCommand = errors.New("invalid_command")
	ErrUnknown        = errors.New("unknown_failure")
)

type Kind string

const (
	KindTimeout        Kind = "timeout"
	KindRateLimit      Kind = "rate_limit"
	KindConnectionLost Kind = "connection_lost"
	KindInvalidCommand Kind = "invalid_command"
	KindUnknown        Kind = "unknown"
)

// Error is the gateway failure value. Recoverable marks kinds for which a
// caller retry has a reasonable chance of succeeding. Context always carries
// the correlation id when one exists for the failed call.
type Error struct {
	Kind        Kind
	Recoverable bool
	Context     map[string]any
	cause       error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if corr, ok := e.Context["correlation_id"]; ok {
		msg = fmt.Sprintf("%s (correlation_id=%v)", msg, corr)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindTimeout:
		return ErrTimeout
	case KindRateLimit:
		return ErrRateLimited
	case KindConnectionLost:
		return ErrConnectionLost
	case KindInvalidCommand:
		return ErrInvalidCommand
	default:
		return ErrUnknown
	}
}

// Cause returns the original error behind an Unknown failure, if any.
func (e *Error) Cause() error {
	return e.cause
}

func newError(kind Kind, recoverable bool, correlationID string) *Error {
	ctx := map[string]any{}
	if correlationID != "" {
		ctx["correlation_id"] = correlationID
	}
	return &Error{Kind: kind, Recoverable: recoverable, Context: ctx}
}

func newTimeoutError(timeoutMS int64, correlationID string) *Error {
	e := newError(KindTimeout, true, correlationID)
	e.Context["timeout_ms"] = timeoutMS
	return e
}

func newRateLimitError(retryAfterMS int64, correlationID string) *Error {
	e := newError(KindRateLimit, true, correlationID)
	e.Context["retry_after_ms"] = retryAfterMS
	return e
}

func newConnectionLostError(correlationID, reason string) *Error {
	e := newError(KindConnectionLost, true, correlationID)
	if reason != "" {
		e.Context["reason"] = reason
	}
	return e
}

func newInvalidCommandError(correlationID, reason string) *Error {
	e := newError(KindInvalidCommand, false, correlationID)
	if reason != "" {
		e.Context["reason"] = reason
	}
	return e
}

func newUnknownError(correlationID string, cause error) *Error {
	e := newError(KindUnknown, false, correlationID)
	e.cause = cause
	return e
}

package provider

import (
	"errors"
	"strings"
)

var ErrNotSupported = errors.New("operation not supported by provider")

type ErrorKind string

const (
	KindRateLimit  ErrorKind = "rate_limit"
	KindAuth       ErrorKind = "auth"
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindServer     ErrorKind = "server"
	KindUnknown    ErrorKind = "unknown"
)

// Error is the normalized error shape provider clients should return.
type Error struct {
	Kind         ErrorKind
	Message      string
	ProviderCode string
	Retryable    bool
	Err          error
}

func (e *Error) Error() string {
	if e.ProviderCode != "" {
		return string(e.Kind) + " (" + e.ProviderCode + "): " + e.Message
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewRateLimitError(message string) *Error {
	return &Error{Kind: KindRateLimit, Message: message, ProviderCode: "429", Retryable: true}
}

var rateLimitMarkers = []string{"429", "rate limit", "too many requests", "throttl"}

// IsRateLimited classifies err as a provider rate-limit response. A structured *Error is
// trusted first; otherwise the error text is searched for the usual markers, since most
// clients surface throttling only in their message.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	var perr *Error
	if errors.As(err, &perr) && perr.Kind == KindRateLimit {
		return true
	}
	return IsRateLimitMessage(err.Error())
}

func IsRateLimitMessage(msg string) bool {
	msg = strings.ToLower(msg)
	for _, marker := range rateLimitMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

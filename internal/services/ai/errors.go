// File: internal/services/ai/errors.go
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies provider failures at the client boundary so the
// orchestrator never inspects free-text error messages.
type ErrorKind string

const (
	KindQuota     ErrorKind = "QUOTA"
	KindTimeout   ErrorKind = "TIMEOUT"
	KindTransient ErrorKind = "TRANSIENT"
)

// quotaMarkers are the substrings provider SDKs use for rate/usage limits.
// Matching happens here and nowhere else.
var quotaMarkers = []string{
	"quota",
	"429",
	"Too Many Requests",
	"rate limit",
}

type ProviderError struct {
	Kind      ErrorKind
	Provider  string
	Operation string
	Message   string
	Cause     error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("AI %s error from %s in %s: %s (caused by: %v)",
			e.Kind, e.Provider, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("AI %s error from %s in %s: %s", e.Kind, e.Provider, e.Operation, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Cause }

// Classify wraps a raw provider error into a kind-tagged ProviderError.
func Classify(provider, operation string, cause error) *ProviderError {
	kind := KindTransient
	switch {
	case errors.Is(cause, context.DeadlineExceeded):
		kind = KindTimeout
	case isQuotaMessage(cause):
		kind = KindQuota
	}
	return &ProviderError{
		Kind:      kind,
		Provider:  provider,
		Operation: operation,
		Message:   "provider request failed",
		Cause:     cause,
	}
}

func isQuotaMessage(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range quotaMarkers {
		if strings.Contains(msg, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

// IsQuota reports whether err carries a quota classification.
func IsQuota(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Kind == KindQuota
}

func NewProviderError(provider, operation, msg string, cause error) *ProviderError {
	return &ProviderError{
		Kind:      KindTransient,
		Provider:  provider,
		Operation: operation,
		Message:   msg,
		Cause:     cause,
	}
}

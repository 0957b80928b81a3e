// File: internal/services/search/errors.go
package search

import "fmt"

type SearchError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *SearchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Search error in %s: %s (caused by: %v)", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("Search error in %s: %s", e.Operation, e.Message)
}

func (e *SearchError) Unwrap() error { return e.Cause }

func NewSearchError(operation, msg string, cause error) *SearchError {
	return &SearchError{Operation: operation, Message: msg, Cause: cause}
}

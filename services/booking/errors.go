package booking

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrSessionNotFound is returned when a session ID resolves to nothing,
	// either because it never existed or because its TTL elapsed.
	ErrSessionNotFound = errors.New("booking session not found or expired")

	// ErrTermsNotAccepted blocks the step 1 -> step 2 transition until the
	// terms dialog has been accepted.
	ErrTermsNotAccepted = errors.New("terms of service must be accepted before continuing")

	// ErrInvalidTransition is returned for any wizard move outside the
	// allowed edges.
	ErrInvalidTransition = errors.New("invalid wizard transition")

	// ErrEmptyCart blocks checkout with no selected vaccines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrSessionOwner is returned when a session belongs to another user.
	ErrSessionOwner = errors.New("booking session belongs to a different user")
)

// ValidationError carries per-field messages so the client can surface
// them inline next to the inputs.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

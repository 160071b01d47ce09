// Package mmerr defines the single error family every verifier component
// raises. There is one concrete error type, VerificationError, carrying a
// Kind (see codes.go) plus enough context to reproduce the failure.
package mmerr

import "fmt"

// Location pinpoints where in the source a VerificationError originated.
// Either field may be zero when the failing operation has no file context
// (e.g. a standalone Prove call).
type Location struct {
	File  string
	Label string
}

// VerificationError is the sole error type surfaced by this module. It is
// never wrapped in a generic error — callers type-assert or use As to
// recover the Kind when they need to branch on failure category.
type VerificationError struct {
	Kind     Kind
	Message  string
	Location Location
}

// Error implements the error interface.
func (e *VerificationError) Error() string {
	if e.Location.Label != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind.Code(), e.Location.Label, e.Message)
	}
	if e.Location.File != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind.Code(), e.Location.File, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind.Code(), e.Message)
}

// New creates a VerificationError with no location context.
func New(kind Kind, format string, args ...any) *VerificationError {
	return &VerificationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithLabel creates a VerificationError attributed to a specific label.
func WithLabel(kind Kind, label, format string, args ...any) *VerificationError {
	return &VerificationError{
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Location: Location{Label: label},
	}
}

// WithFile creates a VerificationError attributed to a specific source file.
func WithFile(kind Kind, file, format string, args ...any) *VerificationError {
	return &VerificationError{
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Location: Location{File: file},
	}
}

// Is reports whether err is a *VerificationError of the given kind.
func Is(err error, kind Kind) bool {
	ve, ok := err.(*VerificationError)
	return ok && ve.Kind == kind
}

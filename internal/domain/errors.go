package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidConfig     = errors.New("invalid config")
	ErrMissingVar        = errors.New("missing variable")
	ErrMalformedResponse = errors.New("malformed response")
	ErrEndpointDisabled  = errors.New("endpoint disabled")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindMissingVar    ErrorKind = "missing_variable"
	KindMalformed     ErrorKind = "malformed_response"
	KindTransport     ErrorKind = "transport"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op     string
	Kind   ErrorKind
	Target string // Optional: file path or URL
	Err    error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Target != "" {
		base += fmt.Sprintf(" (target=%s)", e.Target)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// KindOf returns the kind of the outermost OpError in the chain, or KindExecution.
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return KindExecution
}

// Malformed reports a response that lacks a field with no defined fallback.
func Malformed(op, target, format string, args ...any) error {
	return &OpError{
		Op:     op,
		Kind:   KindMalformed,
		Target: target,
		Err:    fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrMalformedResponse),
	}
}

// GeneError is a per-gene failure: the gene, the step that failed, and the cause.
type GeneError struct {
	Gene GeneName
	Step Step
	Err  error
}

func (e *GeneError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("gene %q: %s: %v", e.Gene, e.Step, e.Err)
}

func (e *GeneError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

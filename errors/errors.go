// Package errors provides error handling for ontogen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints for fixable ontology and config problems
//   - Assertion failures for broken fragment-tree contracts
//
// Usage:
//
//	// Wrap with context
//	if err := ontology.Validate(); err != nil {
//	    return errors.Wrap(err, "failed to load ontology")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "declare the parent concept before its children")
//
//	// Check errors
//	if errors.Is(err, errors.ErrUnknownConcept) {
//	    // handle missing concept
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint        = crdb.WithHint
	WithHintf       = crdb.WithHintf
	WithDetail      = crdb.WithDetail
	WithDetailf     = crdb.WithDetailf
	WithSafeDetails = crdb.WithSafeDetails
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapOnce     = crdb.UnwrapOnce
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions and panics
var (
	AssertionFailedf                 = crdb.AssertionFailedf
	NewAssertionErrorWithWrappedErrf = crdb.NewAssertionErrorWithWrappedErrf
	HasAssertionFailure              = crdb.HasAssertionFailure
)

// Sentinel errors shared by the ontology loader, the resolver and the pipeline.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrUnknownConcept indicates a concept name that the ontology does not define
	ErrUnknownConcept = New("unknown concept")

	// ErrInvalidOntology indicates an ontology file that failed validation
	ErrInvalidOntology = New("invalid ontology")

	// ErrIncompatibleVersion indicates an ontology that requires a different ontogen version
	ErrIncompatibleVersion = New("incompatible ontogen version")

	// ErrOutOfDate indicates generated files that no longer match the ontology
	ErrOutOfDate = New("generated files are out of date")
)

// IsUnknownConcept checks if an error is or wraps ErrUnknownConcept
func IsUnknownConcept(err error) bool {
	return err != nil && Is(err, ErrUnknownConcept)
}

// IsInvalidOntology checks if an error is or wraps ErrInvalidOntology
func IsInvalidOntology(err error) bool {
	return err != nil && Is(err, ErrInvalidOntology)
}

// NewUnknownConceptError creates an unknown-concept error naming the missing concept
func NewUnknownConceptError(name string) error {
	return Wrapf(ErrUnknownConcept, "%q", name)
}

// NewInvalidOntologyError creates an invalid-ontology error with a formatted message
func NewInvalidOntologyError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidOntology, Newf(format, args...).Error())
}

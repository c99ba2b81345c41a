package logger

import (
	"context"
)

// Standard field names for consistent structured logging across ontogen.
const (
	// Identity and context
	FieldSession   = "session"
	FieldComponent = "component"

	// Ontology
	FieldConcept   = "concept"
	FieldParent    = "parent"
	FieldConceptID = "concept_id"
	FieldOntology  = "ontology"

	// Output
	FieldFile     = "file"
	FieldDir      = "dir"
	FieldBytes    = "bytes"
	FieldLanguage = "language"
	FieldWorkers  = "workers"
	FieldCount    = "count"
	FieldCommand  = "command"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"
)

type contextKey string

const (
	sessionKey   contextKey = "logger_session"
	conceptKey   contextKey = "logger_concept"
	componentKey contextKey = "logger_component"
)

// WithSession adds a generation session ID to the context for logging
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey, sessionID)
}

// WithConcept adds the concept being generated to the context for logging
func WithConcept(ctx context.Context, concept string) context.Context {
	return context.WithValue(ctx, conceptKey, concept)
}

// WithComponent adds a component name to the context for logging
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, componentKey, component)
}

// FieldsFromContext extracts logging fields from context.
// Returns key-value pairs suitable for use with Infow/Errorw/etc.
func FieldsFromContext(ctx context.Context) []interface{} {
	var fields []interface{}

	if session, ok := ctx.Value(sessionKey).(string); ok && session != "" {
		fields = append(fields, FieldSession, session)
	}
	if concept, ok := ctx.Value(conceptKey).(string); ok && concept != "" {
		fields = append(fields, FieldConcept, concept)
	}
	if component, ok := ctx.Value(componentKey).(string); ok && component != "" {
		fields = append(fields, FieldComponent, component)
	}

	return fields
}

// With appends the context fields to keysAndValues, context fields first.
func With(ctx context.Context, keysAndValues ...interface{}) []interface{} {
	return append(FieldsFromContext(ctx), keysAndValues...)
}

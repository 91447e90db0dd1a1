// Package errors defines the application's error taxonomy. Usecases raise
// these before any mutation reaches storage; the delivery layer presents
// their messages and lets the operator retry.
package errors

import (
	"fmt"
	"strings"
)

// ValidationError reports one or more input or business-rule violations known
// before touching storage. It always carries the full list of violated rules,
// not just the first one.
type ValidationError struct {
	messages []string
}

// NewValidationError creates a ValidationError from the given rule messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{messages: messages}
}

// Error implements the error interface by joining all violation messages.
func (e *ValidationError) Error() string {
	return strings.Join(e.messages, " ")
}

// Messages returns every violated rule.
func (e *ValidationError) Messages() []string {
	return e.messages
}

// NotFoundError reports that a referenced entity does not exist or is
// inactive. It carries the entity kind and the key used for the lookup.
type NotFoundError struct {
	Entity string
	Key    any
}

// NewNotFoundError creates a NotFoundError for the given entity kind and key.
func NewNotFoundError(entity string, key any) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: key}
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %v was not found", e.Entity, e.Key)
}

// DomainError reports a single invariant violation raised by an entity during
// construction or a state transition.
type DomainError struct {
	message string
}

// NewDomainError creates a DomainError with the given message.
func NewDomainError(message string) *DomainError {
	return &DomainError{message: message}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return e.message
}

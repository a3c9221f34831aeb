package collection

import (
	"errors"
	"fmt"
)

// The four failure categories every operation classifies into. Callers
// match with errors.Is and decide retry versus fatal per category.
var (
	// ErrValidation is returned for input that fails a per-kind or
	// template constraint. Recoverable; the message is user-facing.
	ErrValidation = errors.New("collectkeeper: invalid input")

	// ErrNotFound is returned when a collection, template, item, page
	// or category ID does not resolve.
	ErrNotFound = errors.New("collectkeeper: not found")

	// ErrWrite is returned when a transaction aborts or a constraint
	// is violated; the whole write rolled back.
	ErrWrite = errors.New("collectkeeper: write failed")

	// ErrData is returned when stored data cannot be decoded during
	// aggregation, meaning a prior write bypassed validation.
	ErrData = errors.New("collectkeeper: corrupt stored data")
)

// Error carries the failure category plus the entity and operation it
// occurred in, so callers can pattern-match instead of comparing
// message strings.
type Error struct {
	Category error
	Entity   string
	Op       string
	Err      error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Category)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Category}
	}
	return []error{e.Category, e.Err}
}

func newError(category error, entity, op string, err error) error {
	return &Error{Category: category, Entity: entity, Op: op, Err: err}
}

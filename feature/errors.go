// Package feature: sentinel error set, matched via errors.Is.

package feature

import "errors"

var (
	// ErrUnknownKind indicates that a kind name has no registered factory.
	ErrUnknownKind = errors.New("feature: unknown feature kind")

	// ErrKindRegistered indicates a duplicate Register call for a kind name.
	ErrKindRegistered = errors.New("feature: kind already registered")

	// ErrBadParam indicates an invalid parameter value passed to a factory
	// or constructor (malformed range, non-positive pad level, ...).
	ErrBadParam = errors.New("feature: invalid parameter")
)

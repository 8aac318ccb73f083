// Package repository defines error values reused across repositories so
// that handlers can tell expected outcomes apart from store faults. The
// not-found sentinels are produced by explicit row-count checks, never by
// interpreting a generic driver error; ErrEventFull and ErrAlreadyJoined
// are the two conflict outcomes of the join protocol.
package repository

import (
	"errors"
	"strings"
)

// ErrPersonNotFound is returned when no persons row matches the target id.
var ErrPersonNotFound = errors.New("person not found")

// ErrDogNotFound is returned when no dogs row matches the target id.
var ErrDogNotFound = errors.New("dog not found")

// ErrEventNotFound is returned when no events row matches the target id.
var ErrEventNotFound = errors.New("event not found")

// ErrEventFull is returned by the join protocol when the event's attendee
// count has already reached capacity. Handlers translate this into 409.
var ErrEventFull = errors.New("event full")

// ErrAlreadyJoined is returned when the (dog, event) pair already has a
// join record. Handlers translate this into 409, distinct from not found.
var ErrAlreadyJoined = errors.New("dog already joined this event")

// ErrUnknownField is returned by the field-update dispatcher when the
// requested field is not in the entity's static registry.
var ErrUnknownField = errors.New("unknown field")

// hasMySQLCode reports whether err carries the given MySQL server error
// number (e.g. 1062 duplicate key, 1452 foreign key, 1213 deadlock).
func hasMySQLCode(err error, code string) bool {
	return err != nil && strings.Contains(err.Error(), code)
}

// isRetryableTx reports whether a transaction failed for a transient
// reason worth retrying: deadlock victim (1213) or lock wait timeout (1205).
func isRetryableTx(err error) bool {
	return hasMySQLCode(err, "1213") || hasMySQLCode(err, "1205")
}

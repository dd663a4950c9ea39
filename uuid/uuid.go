// Package uuid provides random UUID generation and comparison.
package uuid

import (
	guuid "github.com/google/uuid"
)

// UUID is a 16-byte universally unique identifier.
type UUID [16]byte

// New generates a random (version 4) UUID.
func New() UUID {
	return UUID(guuid.New())
}

// Equal reports whether a and b are the same UUID.
func Equal(a, b UUID) bool {
	return a == b
}

// String formats the UUID in the canonical xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx form.
func (u UUID) String() string {
	return guuid.UUID(u).String()
}

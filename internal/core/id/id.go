// Package id generates the identifiers every stored record carries.
package id

import (
	"github.com/google/uuid"
)

// ID aliases uuid.UUID so call sites stay decoupled from the library.
type ID = uuid.UUID

// New returns a time-ordered UUIDv7. Rows inserted later sort later,
// which keeps primary key indexes append-mostly.
func New() ID {
	v7, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; fall back to v4.
		return uuid.New()
	}
	return v7
}

// Parse validates and converts its argument to an ID.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// Nil is the zero ID.
func Nil() ID {
	return uuid.Nil
}

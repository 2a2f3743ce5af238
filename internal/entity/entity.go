// Package entity provides the named entity used by the demonstration script.
//
// An Entity is the only stateful value in the script: a display name plus the
// timestamp captured at construction. Entities are immutable after New, so
// Greet is a pure function of the stored name.
package entity

import (
	"fmt"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Clock supplies the creation timestamp for new entities.
// Production code uses time.Now; tests pin it with testutil.FixedClock.
type Clock func() time.Time

// Entity holds a display name and its creation time.
//
// The name is stored NFC-normalized so that byte-for-byte identical output
// is produced regardless of the normalization form of the input. The
// creation time is captured once and never printed, so it does not affect
// observable output.
type Entity struct {
	name      string
	createdAt time.Time
}

// New creates an entity with the current wall-clock time.
// The name is accepted verbatim apart from NFC normalization; empty names
// are allowed.
func New(name string) *Entity {
	return NewAt(name, time.Now)
}

// NewAt creates an entity using the given clock for the creation timestamp.
// Used by tests and by the script runner to inject a deterministic clock.
func NewAt(name string, clock Clock) *Entity {
	return &Entity{
		name:      norm.NFC.String(name),
		createdAt: clock(),
	}
}

// Name returns the stored (NFC-normalized) name.
func (e *Entity) Name() string {
	return e.name
}

// CreatedAt returns the timestamp captured at construction.
func (e *Entity) CreatedAt() time.Time {
	return e.createdAt
}

// Greet returns the greeting line for this entity: "Hello, {name}!".
// Pure: repeated calls return the identical string.
func (e *Entity) Greet() string {
	return fmt.Sprintf("Hello, %s!", e.name)
}

// Package testutil provides deterministic test doubles for script runs.
package testutil

import (
	"time"

	"github.com/roach88/specimen/internal/entity"
)

// FixedClock returns an entity.Clock pinned to a single instant.
//
// Entity timestamps are captured but never printed, so pinning the clock
// only matters for tests that assert on CreatedAt directly.
func FixedClock(at time.Time) entity.Clock {
	return func() time.Time { return at }
}

package script

import "sync/atomic"

// seqClock is a monotonic logical clock stamping step events within a run.
//
// Step ordering comes from this counter, never from wall-clock timestamps,
// so traces compare bytes-for-bytes across runs.
type seqClock struct {
	seq atomic.Int64
}

// next returns the next sequence number and increments the clock.
func (c *seqClock) next() int64 {
	return c.seq.Add(1)
}

// current returns the current sequence number without incrementing.
func (c *seqClock) current() int64 {
	return c.seq.Load()
}

// Package parallel provides utilities for coordinating worker goroutines.
package parallel

import "sync"

// FirstError is the single-producer error slot shared by a group of
// workers: the first error recorded wins, later ones are dropped. The
// recording worker's index is kept alongside for diagnostics.
//
// Usage:
//
//	var fe parallel.FirstError
//	for k := range workers {
//	    go func() { fe.Set(k, work(k)) }()
//	}
//	// after joining:
//	if err := fe.Err(); err != nil { ... }
type FirstError struct {
	once   sync.Once
	err    error
	worker int
}

// Set records an error from the given worker if none has been recorded
// yet. Nil errors are ignored. Safe for concurrent use.
//
// Parameters:
//   - worker: The index of the reporting worker.
//   - err: The error to record (nil is ignored).
func (c *FirstError) Set(worker int, err error) {
	if err != nil {
		c.once.Do(func() {
			c.err = err
			c.worker = worker
		})
	}
}

// Err returns the first recorded error, or nil. Call after all workers
// have been joined.
func (c *FirstError) Err() error {
	return c.err
}

// Worker returns the index of the worker whose error was recorded. Only
// meaningful when Err returns non-nil.
func (c *FirstError) Worker() int {
	return c.worker
}

// Reset clears the slot for reuse. Not safe to call while workers are
// still running.
func (c *FirstError) Reset() {
	c.once = sync.Once{}
	c.err = nil
	c.worker = 0
}

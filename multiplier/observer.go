package multiplier

import "sync"

// ─────────────────────────────────────────────────────────────────────────────
// Observer Pattern Interfaces
// ─────────────────────────────────────────────────────────────────────────────

// ProgressObserver receives notifications as workers advance through their
// share of the term-pair space. Implementations decouple progress handling
// (UI, logging, metrics) from the driver.
type ProgressObserver interface {
	// Update is called when a worker's progress changes.
	//
	// Parameters:
	//   - worker: The worker index (0-based).
	//   - fraction: The worker's completed fraction of its outer rows
	//     (0.0 to 1.0).
	Update(worker int, fraction float64)
}

// ProgressSubject manages observer registration and notification. It is
// safe for concurrent use; workers notify it directly from their loops.
type ProgressSubject struct {
	mu        sync.RWMutex
	observers []ProgressObserver
}

// NewProgressSubject creates an empty subject ready to accept observers.
func NewProgressSubject() *ProgressSubject {
	return &ProgressSubject{}
}

// Register adds an observer. Nil observers are ignored.
func (s *ProgressSubject) Register(observer ProgressObserver) {
	if observer == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

// Unregister removes a previously registered observer. Unknown observers
// are ignored.
func (s *ProgressSubject) Unregister(observer ProgressObserver) {
	if observer == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.observers {
		if o == observer {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Notify sends a progress update to every registered observer, in
// registration order.
func (s *ProgressSubject) Notify(worker int, fraction float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, observer := range s.observers {
		observer.Update(worker, fraction)
	}
}

// ObserverCount returns the number of registered observers.
func (s *ProgressSubject) ObserverCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

// notify is a nil-tolerant helper so the driver can call progress
// unconditionally.
func notify(s *ProgressSubject, worker int, fraction float64) {
	if s != nil {
		s.Notify(worker, fraction)
	}
}

// FuncObserver adapts a plain function to the ProgressObserver interface.
type FuncObserver func(worker int, fraction float64)

// Update calls the wrapped function.
func (f FuncObserver) Update(worker int, fraction float64) {
	f(worker, fraction)
}

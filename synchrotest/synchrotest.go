// Package synchrotest provides test utilities for programs built on
// synchro: a recording Continuation spy and assertion helpers, in the
// spirit of the teacher library's MockProcessor/AssertProcessed pair,
// reshaped around stepping a Scheduler instead of calling a Chainable.
package synchrotest

import (
	"sync"
	"testing"

	"github.com/zoobzio/synchro"
)

// Recorder is a synchro.Continuation that records every value it is
// resumed with, instead of enforcing (or caring about) the single-shot
// invariant production continuations enforce. Tests use it to observe
// how many times, and with what values, a process resumes its
// continuation — including the "more than once" case a real
// continuation would reject, since that's exactly the kind of bug a
// test should be able to detect and report rather than panic on.
type Recorder[V any] struct {
	mu    sync.Mutex
	calls []V
}

// NewRecorder returns an empty Recorder.
func NewRecorder[V any]() *Recorder[V] {
	return &Recorder[V]{}
}

// Call implements synchro.Continuation.
func (r *Recorder[V]) Call(_ *synchro.Scheduler, v V) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, v)
}

// CallCount returns how many times Call has been invoked.
func (r *Recorder[V]) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Values returns a copy of every value Call has recorded, in order.
func (r *Recorder[V]) Values() []V {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]V, len(r.calls))
	copy(out, r.calls)
	return out
}

// LastValue returns the most recently recorded value. It panics if Call
// was never invoked; callers should check CallCount first.
func (r *Recorder[V]) LastValue() V {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[len(r.calls)-1]
}

// AssertDelivered verifies the recorder was resumed exactly once, with
// the given value.
func AssertDelivered[V comparable](t *testing.T, r *Recorder[V], want V) {
	t.Helper()
	if n := r.CallCount(); n != 1 {
		t.Fatalf("expected continuation to be resumed exactly once, got %d", n)
		return
	}
	if got := r.LastValue(); got != want {
		t.Fatalf("expected continuation resumed with %v, got %v", want, got)
	}
}

// AssertNotDelivered verifies the recorder was never resumed.
func AssertNotDelivered[V any](t *testing.T, r *Recorder[V]) {
	t.Helper()
	if n := r.CallCount(); n != 0 {
		t.Fatalf("expected continuation never resumed, got %d calls", n)
	}
}

// AssertDeliveredTimes verifies the recorder was resumed exactly n times.
func AssertDeliveredTimes[V any](t *testing.T, r *Recorder[V], n int) {
	t.Helper()
	if got := r.CallCount(); got != n {
		t.Fatalf("expected continuation resumed %d times, got %d", n, got)
	}
}

// RunInstants steps the scheduler exactly n times (ignoring whether it's
// still live afterward), for tests that assert behavior at a specific
// instant boundary rather than at the final fixed point.
func RunInstants(s *synchro.Scheduler, n int) {
	for i := 0; i < n; i++ {
		s.Instant()
	}
}

// RunToFixedPoint drives the scheduler via Execute and reports how many
// instants elapsed.
func RunToFixedPoint(s *synchro.Scheduler) int {
	s.Execute()
	return s.InstantsRun()
}

package synchro

// Process is a CPS computation that, once started via Call, invokes its
// continuation exactly once with a value of type V. A Process may
// suspend across instants by scheduling its continuation's resumption
// onto a Scheduler queue instead of calling it inline.
type Process[V any] interface {
	Call(s *Scheduler, k Continuation[V])
}

// ProcessMut is a Process that can also run in a reusable, "mutable"
// mode: CallMut hands the continuation a residual ProcessMut alongside
// the produced value, so the same logical process can be driven again
// (the mechanism While relies on to run a process body round after
// round until it signals exit).
type ProcessMut[V any] interface {
	Process[V]
	CallMut(s *Scheduler, k MutContinuation[V])
}

// MutContinuation is resumed with the scheduler, a residual process that
// represents "the same computation, ready to run again," and the
// produced value.
type MutContinuation[V any] interface {
	Call(s *Scheduler, residual ProcessMut[V], v V)
}

// MutContFunc adapts a plain closure into a single-shot MutContinuation.
type MutContFunc[V any] struct {
	fn     func(*Scheduler, ProcessMut[V], V)
	called boolGuard
}

// NewMutCont wraps fn as a single-shot MutContinuation.
func NewMutCont[V any](fn func(*Scheduler, ProcessMut[V], V)) *MutContFunc[V] {
	return &MutContFunc[V]{fn: fn}
}

// Call resumes the continuation. Calling it a second time is a contract
// violation and panics.
func (c *MutContFunc[V]) Call(s *Scheduler, residual ProcessMut[V], v V) {
	c.called.fireOnce()
	c.fn(s, residual, v)
}

// Cloner is implemented by values that know how to produce an
// independent copy of themselves. ValueMut requires it so that each
// CallMut delivers its own copy of the held value rather than letting
// callers alias shared state across loop iterations.
type Cloner[V any] interface {
	Clone() V
}

// Pair holds the two results produced by Join.
type Pair[A, B any] struct {
	First  A
	Second B
}

// ProcessFunc adapts a plain closure into a Process, the same "wrap a
// func as the interface" idiom as ContFunc and the teacher library's
// ProcessorFunc adapter.
type ProcessFunc[V any] func(s *Scheduler, k Continuation[V])

// Call implements Process.
func (f ProcessFunc[V]) Call(s *Scheduler, k Continuation[V]) { f(s, k) }

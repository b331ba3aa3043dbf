package synchro

// Continuation is a single-shot callback resumed with the scheduler that
// is driving it and a value of type V. A well-behaved Process invokes its
// continuation's Call exactly once, exactly when it has a value ready.
//
// Continuation is intentionally minimal: composition happens through the
// free functions MapCont and PauseCont, not through methods, since a method on a
// generic type cannot introduce a second type parameter.
type Continuation[V any] interface {
	Call(s *Scheduler, v V)
}

// ContFunc adapts a plain closure into a Continuation, enforcing the
// single-shot invariant: a second Call panics with a *ContractViolation.
type ContFunc[V any] struct {
	fn     func(*Scheduler, V)
	called boolGuard
}

// NewCont wraps fn as a single-shot Continuation.
func NewCont[V any](fn func(*Scheduler, V)) *ContFunc[V] {
	return &ContFunc[V]{fn: fn}
}

// Call resumes the continuation. Calling it a second time is a contract
// violation and panics.
func (c *ContFunc[V]) Call(s *Scheduler, v V) {
	c.called.fireOnce()
	c.fn(s, v)
}

// MapCont returns a Continuation[V] that transforms its value through f
// before forwarding it to k. It's the continuation-side counterpart to
// the process-side Map combinator.
func MapCont[V, W any](k Continuation[W], f func(V) W) Continuation[V] {
	return NewCont(func(s *Scheduler, v V) {
		k.Call(s, f(v))
	})
}

// PauseCont returns a Continuation[V] that, instead of resuming k
// immediately, schedules the resumption on the scheduler's next-instant
// queue. Resuming through a paused continuation always costs exactly one
// logical instant.
func PauseCont[V any](k Continuation[V]) Continuation[V] {
	return NewCont(func(s *Scheduler, v V) {
		s.OnNext(func(s2 *Scheduler) {
			k.Call(s2, v)
		})
	})
}

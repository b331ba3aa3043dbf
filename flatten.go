package synchro

// Flatten collapses a Process that produces another Process into a
// single Process: it starts p, then immediately starts whatever Process
// p produced, forwarding that inner process's result to the caller's
// continuation.
func Flatten[V any](p Process[Process[V]]) Process[V] {
	return flattenProcess[V]{p: p}
}

type flattenProcess[V any] struct {
	p Process[Process[V]]
}

func (fp flattenProcess[V]) Call(s *Scheduler, k Continuation[V]) {
	fp.p.Call(s, NewCont(func(s2 *Scheduler, inner Process[V]) {
		inner.Call(s2, k)
	}))
}

// AndThen runs p, feeds its result to f, and runs the Process f
// produces. It is Flatten composed with Map and is the usual way to
// sequence a step that depends on the previous step's value.
func AndThen[A, B any](p Process[A], f func(A) Process[B]) Process[B] {
	return Flatten(Map(p, f))
}

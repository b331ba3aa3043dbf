package synchro

// Map returns a Process that runs p and transforms its produced value
// through f before delivering it downstream.
func Map[A, B any](p Process[A], f func(A) B) Process[B] {
	return mapProcess[A, B]{p: p, f: f}
}

type mapProcess[A, B any] struct {
	p Process[A]
	f func(A) B
}

func (m mapProcess[A, B]) Call(s *Scheduler, k Continuation[B]) {
	m.p.Call(s, NewCont(func(s2 *Scheduler, a A) {
		k.Call(s2, m.f(a))
	}))
}

// MapMut is the reusable form of Map: f is a plain Go func, which is
// already safely reusable across calls, so the residual is just
// MapMut re-applied to p's own residual.
func MapMut[A, B any](p ProcessMut[A], f func(A) B) ProcessMut[B] {
	return mapMutProcess[A, B]{p: p, f: f}
}

type mapMutProcess[A, B any] struct {
	p ProcessMut[A]
	f func(A) B
}

func (m mapMutProcess[A, B]) Call(s *Scheduler, k Continuation[B]) {
	m.p.Call(s, NewCont(func(s2 *Scheduler, a A) {
		k.Call(s2, m.f(a))
	}))
}

func (m mapMutProcess[A, B]) CallMut(s *Scheduler, k MutContinuation[B]) {
	m.p.CallMut(s, NewMutCont(func(s2 *Scheduler, residual ProcessMut[A], a A) {
		k.Call(s2, MapMut(residual, m.f), m.f(a))
	}))
}

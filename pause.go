package synchro

// Pause returns a Process that defers starting p until the next
// instant: the call to p.Call itself is scheduled on the scheduler's
// next queue, rather than run inline.
func Pause[V any](p Process[V]) Process[V] {
	return pauseProcess[V]{p: p}
}

type pauseProcess[V any] struct{ p Process[V] }

func (pp pauseProcess[V]) Call(s *Scheduler, k Continuation[V]) {
	s.OnNext(func(s2 *Scheduler) {
		pp.p.Call(s2, k)
	})
}

// PauseMut is the reusable form of Pause: the residual re-wraps p's own
// residual in PauseMut, so repeated CallMut invocations each defer to
// the following instant in turn.
func PauseMut[V any](p ProcessMut[V]) ProcessMut[V] {
	return pauseMutProcess[V]{p: p}
}

type pauseMutProcess[V any] struct{ p ProcessMut[V] }

func (pp pauseMutProcess[V]) Call(s *Scheduler, k Continuation[V]) {
	s.OnNext(func(s2 *Scheduler) {
		pp.p.Call(s2, k)
	})
}

func (pp pauseMutProcess[V]) CallMut(s *Scheduler, k MutContinuation[V]) {
	s.OnNext(func(s2 *Scheduler) {
		pp.p.CallMut(s2, NewMutCont(func(s3 *Scheduler, residual ProcessMut[V], v V) {
			k.Call(s3, PauseMut(residual), v)
		}))
	})
}

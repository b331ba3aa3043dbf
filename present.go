package synchro

// Present returns a Process that runs p1 if sig has already been (or is
// about to be) emitted in the current instant, or p2 if the instant
// ends with sig still unemitted. Exactly one of p1/p2 ever runs, and the
// decision is made and resolved no later than the end of the instant in
// which Present starts.
func Present[W, V any](sig Signal[W], p1, p2 Process[V]) Process[V] {
	c := sig.signalCoreRef()
	return ProcessFunc[V](func(s *Scheduler, k Continuation[V]) {
		if c.emitted {
			p1.Call(s, k)
			return
		}

		entry := &presentEntry{}
		entry.k = NewCont(func(s2 *Scheduler, decided bool) {
			if decided {
				p1.Call(s2, k)
			} else {
				p2.Call(s2, k)
			}
		})
		c.presentWaiters = append(c.presentWaiters, entry)

		s.OnEnd(func(s2 *Scheduler) {
			if !entry.fired {
				entry.fired = true
				entry.k.Call(s2, false)
			}
		})
	})
}

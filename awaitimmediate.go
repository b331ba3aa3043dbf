package synchro

// awaitImmediateProcess resolves with unit as soon as the signal is
// emitted in the same instant the wait began (or immediately, if it was
// already emitted when the wait started).
func awaitImmediateProcess[W any](c *signalCore[W]) Process[struct{}] {
	return ProcessFunc[struct{}](func(s *Scheduler, k Continuation[struct{}]) {
		if c.emitted {
			k.Call(s, struct{}{})
			return
		}
		c.awaitImmediateWaiters = append(c.awaitImmediateWaiters, k)
	})
}

// awaitImmediateInProcess behaves like awaitImmediateProcess but
// resolves with the signal's value, snapshotted at the moment the
// waiter is drained (not at registration time).
func awaitImmediateInProcess[W any](c *signalCore[W]) Process[W] {
	return ProcessFunc[W](func(s *Scheduler, k Continuation[W]) {
		if c.emitted {
			k.Call(s, c.value)
			return
		}
		c.awaitImmediateInWaiters = append(c.awaitImmediateInWaiters, k)
	})
}

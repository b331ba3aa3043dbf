package synchro

// awaitProcess resolves with unit the next time the signal is emitted,
// always costing at least one instant even if the signal was already
// emitted at the moment Await started — unlike AwaitImmediate, Await
// never resolves within its own starting instant.
func awaitProcess[W any](c *signalCore[W]) Process[struct{}] {
	return ProcessFunc[struct{}](func(s *Scheduler, k Continuation[struct{}]) {
		if c.emitted {
			s.OnNext(func(s2 *Scheduler) { k.Call(s2, struct{}{}) })
			return
		}
		c.awaitWaiters = append(c.awaitWaiters, k)
	})
}

// awaitInProcess behaves like awaitProcess but resolves with the
// signal's value, snapshotted at the moment the waiter is drained.
func awaitInProcess[W any](c *signalCore[W]) Process[W] {
	return ProcessFunc[W](func(s *Scheduler, k Continuation[W]) {
		if c.emitted {
			snap := c.value
			s.OnNext(func(s2 *Scheduler) { k.Call(s2, snap) })
			return
		}
		c.awaitInWaiters = append(c.awaitInWaiters, k)
	})
}

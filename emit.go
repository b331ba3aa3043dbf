package synchro

// emitProcess runs p to produce a value, then emits it on the signal
// core, then resolves with unit. It backs every signal's Emit method.
func emitProcess[W any](c *signalCore[W], p Process[W]) Process[struct{}] {
	return ProcessFunc[struct{}](func(s *Scheduler, k Continuation[struct{}]) {
		p.Call(s, NewCont(func(s2 *Scheduler, w W) {
			c.emit(s2, w)
			k.Call(s2, struct{}{})
		}))
	})
}

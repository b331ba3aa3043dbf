package synchro

import "sync/atomic"

// boolGuard enforces the single-shot invariant shared by Continuation
// and MutContinuation: the first call through fireOnce succeeds
// silently, every subsequent call panics with a *ContractViolation.
type boolGuard struct {
	done atomic.Bool
}

func (g *boolGuard) fireOnce() {
	if !g.done.CompareAndSwap(false, true) {
		violateContract("continuation invoked more than once")
	}
}

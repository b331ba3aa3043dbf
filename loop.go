package synchro

// whileTrampolineDepth bounds how many synchronous (same Go call stack)
// loop iterations While will chain before re-entering through the
// scheduler's current-instant queue. A loop body that never suspends
// would otherwise grow the Go stack without bound.
const whileTrampolineDepth = 512

// LoopStatus is the value a While body produces each round: either
// "keep looping" or "exit with this value."
type LoopStatus[V any] struct {
	exit  bool
	value V
}

// LoopContinue signals that While should run the body again.
func LoopContinue[V any]() LoopStatus[V] {
	return LoopStatus[V]{}
}

// LoopExit signals that While should stop and produce v.
func LoopExit[V any](v V) LoopStatus[V] {
	return LoopStatus[V]{exit: true, value: v}
}

// IsExit reports whether this status requests loop termination.
func (ls LoopStatus[V]) IsExit() bool { return ls.exit }

// Value returns the exit value. It is only meaningful when IsExit is true.
func (ls LoopStatus[V]) Value() V { return ls.value }

// While repeatedly drives a ProcessMut body, re-running its residual
// each time it produces LoopContinue, until it produces LoopExit(v), at
// which point the resulting Process delivers v.
func While[V any](body ProcessMut[LoopStatus[V]]) Process[V] {
	return whileProcess[V]{body: body}
}

type whileProcess[V any] struct {
	body ProcessMut[LoopStatus[V]]
}

func (w whileProcess[V]) Call(s *Scheduler, k Continuation[V]) {
	runWhile(s, w.body, k, 0)
}

func runWhile[V any](s *Scheduler, body ProcessMut[LoopStatus[V]], k Continuation[V], depth int) {
	if depth >= whileTrampolineDepth {
		s.OnCurrent(func(s2 *Scheduler) {
			runWhile(s2, body, k, 0)
		})
		return
	}

	body.CallMut(s, NewMutCont(func(s2 *Scheduler, residual ProcessMut[LoopStatus[V]], status LoopStatus[V]) {
		if status.IsExit() {
			k.Call(s2, status.Value())
			return
		}
		runWhile(s2, residual, k, depth+1)
	}))
}

package synchro

// Join starts p1 and p2 in that order (the only observable ordering
// guarantee the runtime makes — determinism for the trace, not a
// sequencing constraint on when either completes) and delivers a Pair
// once both have produced a value, however many instants apart that
// happens to be.
func Join[A, B any](p1 Process[A], p2 Process[B]) Process[Pair[A, B]] {
	return joinProcess[A, B]{p1: p1, p2: p2}
}

type joinProcess[A, B any] struct {
	p1 Process[A]
	p2 Process[B]
}

type joinCell[A, B any] struct {
	aSet bool
	a    A
	bSet bool
	b    B
	k    Continuation[Pair[A, B]]
}

func (jp joinProcess[A, B]) Call(s *Scheduler, k Continuation[Pair[A, B]]) {
	cell := &joinCell[A, B]{k: k}

	jp.p1.Call(s, NewCont(func(s2 *Scheduler, a A) {
		if cell.bSet {
			cell.k.Call(s2, Pair[A, B]{First: a, Second: cell.b})
		} else {
			cell.aSet = true
			cell.a = a
		}
	}))

	jp.p2.Call(s, NewCont(func(s2 *Scheduler, b B) {
		if cell.aSet {
			cell.k.Call(s2, Pair[A, B]{First: cell.a, Second: b})
		} else {
			cell.bSet = true
			cell.b = b
		}
	}))
}

// JoinMut is the reusable form of Join: the residual is Join applied to
// both arms' own residuals, produced only once both arms have completed
// for this round.
func JoinMut[A, B any](p1 ProcessMut[A], p2 ProcessMut[B]) ProcessMut[Pair[A, B]] {
	return joinMutProcess[A, B]{p1: p1, p2: p2}
}

type joinMutProcess[A, B any] struct {
	p1 ProcessMut[A]
	p2 ProcessMut[B]
}

func (jp joinMutProcess[A, B]) Call(s *Scheduler, k Continuation[Pair[A, B]]) {
	joinProcess[A, B]{p1: jp.p1, p2: jp.p2}.Call(s, k)
}

type joinMutCell[A, B any] struct {
	aSet bool
	a    A
	p1r  ProcessMut[A]
	bSet bool
	b    B
	p2r  ProcessMut[B]
	k    MutContinuation[Pair[A, B]]
}

func (jp joinMutProcess[A, B]) CallMut(s *Scheduler, k MutContinuation[Pair[A, B]]) {
	cell := &joinMutCell[A, B]{k: k}

	jp.p1.CallMut(s, NewMutCont(func(s2 *Scheduler, residual ProcessMut[A], a A) {
		cell.aSet = true
		cell.a = a
		cell.p1r = residual
		if cell.bSet {
			cell.k.Call(s2, JoinMut(cell.p1r, cell.p2r), Pair[A, B]{First: cell.a, Second: cell.b})
		}
	}))

	jp.p2.CallMut(s, NewMutCont(func(s2 *Scheduler, residual ProcessMut[B], b B) {
		cell.bSet = true
		cell.b = b
		cell.p2r = residual
		if cell.aSet {
			cell.k.Call(s2, JoinMut(cell.p1r, cell.p2r), Pair[A, B]{First: cell.a, Second: cell.b})
		}
	}))
}

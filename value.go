package synchro

// Value returns a Process that, as soon as it is started, immediately
// invokes its continuation with v. It never suspends.
func Value[V any](v V) Process[V] {
	return valueProcess[V]{v: v}
}

type valueProcess[V any] struct{ v V }

func (p valueProcess[V]) Call(s *Scheduler, k Continuation[V]) {
	k.Call(s, p.v)
}

// ValueMut returns a ProcessMut holding v, requiring V to implement
// Cloner so that every CallMut delivers an independent copy. Call
// behaves like Value; CallMut clones the held value, delivers the clone,
// and hands back the same residual process (the original v is never
// mutated, so the process is reusable without limit).
func ValueMut[V Cloner[V]](v V) ProcessMut[V] {
	return valueMutProcess[V]{v: v}
}

type valueMutProcess[V Cloner[V]] struct{ v V }

func (p valueMutProcess[V]) Call(s *Scheduler, k Continuation[V]) {
	k.Call(s, p.v)
}

func (p valueMutProcess[V]) CallMut(s *Scheduler, k MutContinuation[V]) {
	k.Call(s, p, p.v.Clone())
}

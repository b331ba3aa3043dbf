package synchro

// SCSignal is a single-consumer signal: each emission releases at most
// one waiter (a rendezvous), preferring an Await waiter over an AwaitIn
// waiter when both kinds are registered. AwaitImmediate/AwaitImmediateIn
// are unaffected by this cap — they are always broadcast within the
// emitting instant, the same as on an MCSignal.
type SCSignal[W any] struct {
	core *signalCore[W]
}

// NewSCSignal creates a single-consumer signal carrying values of type
// W, with def as both its initial and its post-instant-reset value.
func NewSCSignal[W any](def W) *SCSignal[W] {
	return &SCSignal[W]{core: newSignalCore(def, false)}
}

// WithName labels the signal for observability. Purely cosmetic.
func (sig *SCSignal[W]) WithName(name string) *SCSignal[W] {
	sig.core.name = name
	return sig
}

// WithMerge installs a merge function used instead of last-writer-wins
// whenever Emit is called more than once on this signal within a single
// instant. The default is last-writer-wins.
func (sig *SCSignal[W]) WithMerge(f func(old, new W) W) *SCSignal[W] {
	sig.core.merge = f
	return sig
}

// Emit runs p and emits the value it produces on this signal.
func (sig *SCSignal[W]) Emit(p Process[W]) Process[struct{}] {
	return emitProcess(sig.core, p)
}

// Await resolves with unit no earlier than the instant after this
// signal is emitted, delivered to at most one waiter per emission.
func (sig *SCSignal[W]) Await() Process[struct{}] {
	return awaitProcess(sig.core)
}

// AwaitIn is Await but resolves with the signal's value.
func (sig *SCSignal[W]) AwaitIn() Process[W] {
	return awaitInProcess(sig.core)
}

// AwaitImmediate resolves with unit as soon as this signal is emitted,
// possibly within the same instant the wait began. Unlike Await, every
// AwaitImmediate waiter is released on each emission.
func (sig *SCSignal[W]) AwaitImmediate() Process[struct{}] {
	return awaitImmediateProcess(sig.core)
}

// AwaitImmediateIn is AwaitImmediate but resolves with the signal's value.
func (sig *SCSignal[W]) AwaitImmediateIn() Process[W] {
	return awaitImmediateInProcess(sig.core)
}

func (sig *SCSignal[W]) signalCoreRef() *signalCore[W] { return sig.core }

package synchro

// MCSignal is a multi-consumer signal: every process waiting on it via
// Await/AwaitIn/AwaitImmediate/AwaitImmediateIn is released on each
// emission (broadcast), not just one.
type MCSignal[W any] struct {
	core *signalCore[W]
}

// NewMCSignal creates a broadcast signal carrying values of type W, with
// def as both its initial and its post-instant-reset value.
func NewMCSignal[W any](def W) *MCSignal[W] {
	return &MCSignal[W]{core: newSignalCore(def, true)}
}

// WithName labels the signal for observability (trace tags, hook
// events). Purely cosmetic; it has no effect on scheduling.
func (sig *MCSignal[W]) WithName(name string) *MCSignal[W] {
	sig.core.name = name
	return sig
}

// WithMerge installs a merge function used instead of last-writer-wins
// whenever Emit is called more than once on this signal within a single
// instant: the new value is combined with the signal's current value via
// f(old, new) rather than simply overwriting it. The default (no merge
// installed) is last-writer-wins, as spec.md mandates.
func (sig *MCSignal[W]) WithMerge(f func(old, new W) W) *MCSignal[W] {
	sig.core.merge = f
	return sig
}

// Emit runs p and emits the value it produces on this signal.
func (sig *MCSignal[W]) Emit(p Process[W]) Process[struct{}] {
	return emitProcess(sig.core, p)
}

// Await resolves with unit no earlier than the instant after this
// signal is emitted.
func (sig *MCSignal[W]) Await() Process[struct{}] {
	return awaitProcess(sig.core)
}

// AwaitIn is Await but resolves with the signal's value.
func (sig *MCSignal[W]) AwaitIn() Process[W] {
	return awaitInProcess(sig.core)
}

// AwaitImmediate resolves with unit as soon as this signal is emitted,
// possibly within the same instant the wait began.
func (sig *MCSignal[W]) AwaitImmediate() Process[struct{}] {
	return awaitImmediateProcess(sig.core)
}

// AwaitImmediateIn is AwaitImmediate but resolves with the signal's value.
func (sig *MCSignal[W]) AwaitImmediateIn() Process[W] {
	return awaitImmediateInProcess(sig.core)
}

func (sig *MCSignal[W]) signalCoreRef() *signalCore[W] { return sig.core }

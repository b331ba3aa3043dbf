package synchro

// SimpleSignal is a broadcast signal carrying no payload: an MCSignal
// whose value type is struct{}. Its value-cell reset at end-of-instant
// is trivially a no-op, since struct{} has exactly one value.
type SimpleSignal struct {
	*MCSignal[struct{}]
}

// NewSimpleSignal creates a payload-less broadcast signal.
func NewSimpleSignal() *SimpleSignal {
	return &SimpleSignal{MCSignal: NewMCSignal(struct{}{})}
}

// EmitNow emits the signal immediately, without running a sub-process
// to produce the (trivial) value first.
func (sig *SimpleSignal) EmitNow() Process[struct{}] {
	return sig.Emit(Value(struct{}{}))
}

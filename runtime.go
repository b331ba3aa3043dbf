package synchro

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Diagnostic signals emitted on the process-wide capitan channel. These
// are distinct from this package's own Signal[W] type: capitan carries
// cross-cutting operational diagnostics for host programs, while Signal
// is the in-runtime reactive primitive processes communicate through.
const (
	SignalRuntimeDeadlock        capitan.Signal = "runtime.deadlock"
	SignalRuntimeInstantBoundary capitan.Signal = "runtime.instant-boundary"
)

// Diagnostic field keys, following the teacher library's
// NewStringKey/NewIntKey convention.
var (
	FieldInstantsRun = capitan.NewIntKey("instants_run")
)

// ExecuteProcess drives p on a fresh Scheduler to a fixed point and
// returns the value its root continuation was invoked with. If every
// queue drains empty without that continuation ever firing, it returns
// ErrDeadlocked.
func ExecuteProcess[V any](p Process[V]) (V, error) {
	s := NewScheduler()

	var (
		result V
		done   bool
	)

	p.Call(s, NewCont(func(_ *Scheduler, v V) {
		result = v
		done = true
	}))

	s.Execute()

	if !done {
		capitan.Error(context.Background(), SignalRuntimeDeadlock,
			FieldInstantsRun.Field(s.InstantsRun()),
		)
		var zero V
		return zero, ErrDeadlocked
	}

	capitan.Info(context.Background(), SignalRuntimeInstantBoundary,
		FieldInstantsRun.Field(s.InstantsRun()),
	)

	return result, nil
}

// Runtime is a thin, reusable harness for running process trees,
// grounded on the original Rust implementation's Runtime type (its
// physical-simulator demo constructs one Runtime and drives several
// instants of state through it). Since this module carries no
// persistence or cross-run signal lifetime (spec.md's Non-goals rule
// out both distribution and persistence), Runtime stays a thin counter
// around ExecuteProcess rather than a stateful scheduler cache.
type Runtime struct {
	executed int
}

// NewRuntime returns an empty Runtime.
func NewRuntime() *Runtime {
	return &Runtime{}
}

// RunOn drives p to completion on a fresh Scheduler via ExecuteProcess
// and records the run. It is a free function, not a method, because a
// non-generic receiver type cannot host a method with its own type
// parameter.
func RunOn[V any](r *Runtime, p Process[V]) (V, error) {
	v, err := ExecuteProcess(p)
	if err == nil {
		r.executed++
	}
	return v, err
}

// ExecutionCount returns how many successful runs this Runtime has
// driven to completion.
func (r *Runtime) ExecutionCount() int {
	return r.executed
}

package synchro

import (
	"errors"
	"testing"
)

func TestExecuteProcess_ReturnsDeadlockedWhenNeverResolved(t *testing.T) {
	sig := NewMCSignal(0)
	// AwaitIn on a signal nothing ever emits: every queue drains empty
	// and the continuation never fires.
	_, err := ExecuteProcess(sig.AwaitIn())
	if !errors.Is(err, ErrDeadlocked) {
		t.Fatalf("expected ErrDeadlocked, got %v", err)
	}
}

func TestExecuteProcess_ResolvesOrdinaryProcess(t *testing.T) {
	v, err := ExecuteProcess(Map(Value(2), func(n int) int { return n * 21 }))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 {
		t.Fatalf("expected 42, got %d", v)
	}
}

func TestRuntime_RunOnTracksExecutionCount(t *testing.T) {
	r := NewRuntime()
	if r.ExecutionCount() != 0 {
		t.Fatalf("expected a fresh Runtime to report 0 executions")
	}

	_, err := RunOn(r, Value(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = RunOn(r, Value(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.ExecutionCount() != 2 {
		t.Fatalf("expected 2 successful executions, got %d", r.ExecutionCount())
	}
}

func TestRuntime_RunOnDoesNotCountDeadlock(t *testing.T) {
	r := NewRuntime()
	sig := NewSCSignal(0)

	_, err := RunOn(r, sig.Await())
	if !errors.Is(err, ErrDeadlocked) {
		t.Fatalf("expected ErrDeadlocked, got %v", err)
	}
	if r.ExecutionCount() != 0 {
		t.Fatalf("expected deadlocked runs not to be counted, got %d", r.ExecutionCount())
	}
}

package synchro

import "testing"

func TestPause_DelaysOneInstant(t *testing.T) {
	s := NewScheduler()
	resolved := false
	p := Pause(Value(1))

	p.Call(s, NewCont(func(_ *Scheduler, _ int) { resolved = true }))
	if resolved {
		t.Fatalf("expected Pause to defer starting p past the current instant")
	}

	s.Instant() // ends instant 0, in which Pause was started
	s.Instant()
	if !resolved {
		t.Fatalf("expected Pause's process to have started and resolved by the next instant")
	}
}

func TestPause_StacksCostOneInstantEach(t *testing.T) {
	p := Pause(Pause(Pause(Value(1))))
	s := NewScheduler()

	done := false
	p.Call(s, NewCont(func(_ *Scheduler, _ int) { done = true }))

	// Started in instant 0, each Pause defers by one instant, so the value
	// arrives in instant 3: the fourth Instant call.
	for i := 0; i < 3 && !done; i++ {
		s.Instant()
	}
	if done {
		t.Fatalf("triple pause resolved too early, after %d instants", s.InstantsRun())
	}

	s.Instant()
	if !done {
		t.Fatalf("expected triple Pause to resolve in the fourth Instant call, got %d calls", s.InstantsRun())
	}
}

func TestPauseMut_ReusableAcrossLoopIterations(t *testing.T) {
	body := PauseMut[LoopStatus[int]](countdownMut{n: 2})
	p := While(body)

	v, err := ExecuteProcess(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0 {
		t.Fatalf("expected 0, got %d", v)
	}
}

// countdownMut is a small hand-written ProcessMut used by tests: each
// CallMut decrements n and reports LoopContinue until it reaches 0,
// where it reports LoopExit(0).
type countdownMut struct{ n int }

func (c countdownMut) Call(s *Scheduler, k Continuation[LoopStatus[int]]) {
	c.CallMut(s, NewMutCont(func(s2 *Scheduler, _ ProcessMut[LoopStatus[int]], v LoopStatus[int]) {
		k.Call(s2, v)
	}))
}

func (c countdownMut) CallMut(s *Scheduler, k MutContinuation[LoopStatus[int]]) {
	if c.n <= 0 {
		k.Call(s, countdownMut{n: 0}, LoopExit[int](0))
		return
	}
	k.Call(s, countdownMut{n: c.n - 1}, LoopContinue[int]())
}

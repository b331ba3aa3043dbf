package synchro

import "testing"

func TestJoin_BothResolveSameInstant(t *testing.T) {
	p := Join(Value(1), Value("a"))
	v, err := ExecuteProcess(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.First != 1 || v.Second != "a" {
		t.Fatalf("expected {1 a}, got %+v", v)
	}
}

func TestJoin_ArmsAtDifferentInstantsStillPair(t *testing.T) {
	p := Join(Pause(Value(1)), Value("a"))
	v, err := ExecuteProcess(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.First != 1 || v.Second != "a" {
		t.Fatalf("expected {1 a}, got %+v", v)
	}
}

func TestJoin_ArmsAtDifferentInstantsStillPairReversed(t *testing.T) {
	p := Join(Value("a"), Pause(Value(1)))
	v, err := ExecuteProcess(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.First != "a" || v.Second != 1 {
		t.Fatalf("expected {a 1}, got %+v", v)
	}
}

func TestJoin_ContinuationFiresExactlyOnce(t *testing.T) {
	p := Join(Value(1), Value(2))
	s := NewScheduler()
	calls := 0
	p.Call(s, NewCont(func(_ *Scheduler, _ Pair[int, int]) { calls++ }))
	s.Execute()
	if calls != 1 {
		t.Fatalf("expected the join continuation to fire exactly once, got %d", calls)
	}
}

func TestJoinMut_ProducesReusableResidual(t *testing.T) {
	p1 := countdownMut{n: 1}
	p2 := countdownMut{n: 0}
	joined := JoinMut[LoopStatus[int], LoopStatus[int]](p1, p2)

	s := NewScheduler()
	var got Pair[LoopStatus[int], LoopStatus[int]]
	var residual ProcessMut[Pair[LoopStatus[int], LoopStatus[int]]]
	joined.CallMut(s, NewMutCont(func(_ *Scheduler, r ProcessMut[Pair[LoopStatus[int], LoopStatus[int]]], v Pair[LoopStatus[int], LoopStatus[int]]) {
		residual = r
		got = v
	}))

	if got.First.IsExit() || !got.Second.IsExit() {
		t.Fatalf("expected first arm to continue and second to exit, got %+v", got)
	}

	// Both arms' residuals are countdownMut{n: 0}, so a second round exits on both.
	var again Pair[LoopStatus[int], LoopStatus[int]]
	residual.CallMut(s, NewMutCont(func(_ *Scheduler, _ ProcessMut[Pair[LoopStatus[int], LoopStatus[int]]], v Pair[LoopStatus[int], LoopStatus[int]]) {
		again = v
	}))
	if !again.First.IsExit() || !again.Second.IsExit() {
		t.Fatalf("expected the residual's second round to exit on both arms, got %+v", again)
	}
}

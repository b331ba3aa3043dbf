package synchro

import "testing"

type intBox struct{ v int }

func (b intBox) Clone() intBox { return intBox{v: b.v} }

func TestValue_ResolvesImmediately(t *testing.T) {
	v, err := ExecuteProcess(Value(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 5 {
		t.Fatalf("expected 5, got %d", v)
	}

	s := NewScheduler()
	if s.InstantsRun() != 0 {
		t.Fatalf("sanity: fresh scheduler should report 0 instants run")
	}
}

func TestValue_DoesNotConsumeAnInstant(t *testing.T) {
	s := NewScheduler()
	rec := 0
	Value(9).Call(s, NewCont(func(_ *Scheduler, v int) { rec = v }))

	if rec != 9 {
		t.Fatalf("expected Value to resolve inline, before any Instant call")
	}
}

func TestValueMut_ClonesPerCall(t *testing.T) {
	s := NewScheduler()
	p := ValueMut(intBox{v: 1})

	var first, second intBox
	p.CallMut(s, NewMutCont(func(s2 *Scheduler, residual ProcessMut[intBox], v intBox) {
		first = v
		residual.CallMut(s2, NewMutCont(func(_ *Scheduler, _ ProcessMut[intBox], v2 intBox) {
			second = v2
		}))
	}))

	if first.v != 1 || second.v != 1 {
		t.Fatalf("expected both deliveries to carry the original value, got %v and %v", first, second)
	}
}

package synchro

import "testing"

func TestMap_TransformsResolvedValue(t *testing.T) {
	p := Map(Value(3), func(n int) int { return n * n })
	v, err := ExecuteProcess(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 9 {
		t.Fatalf("expected 9, got %d", v)
	}
}

func TestMap_ComposesAcrossPause(t *testing.T) {
	p := Map(Pause(Value(4)), func(n int) int { return n + 1 })
	v, err := ExecuteProcess(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 5 {
		t.Fatalf("expected 5, got %d", v)
	}
}

func TestMapMut_ReusesAcrossIterations(t *testing.T) {
	s := NewScheduler()
	base := ValueMut(intBox{v: 2})
	doubled := MapMut[intBox, int](base, func(b intBox) int { return b.v * 2 })

	var results []int
	var step func(p ProcessMut[int])
	step = func(p ProcessMut[int]) {
		p.CallMut(s, NewMutCont(func(_ *Scheduler, residual ProcessMut[int], v int) {
			results = append(results, v)
			if len(results) < 3 {
				step(residual)
			}
		}))
	}
	step(doubled)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, r := range results {
		if r != 4 {
			t.Fatalf("expected every result to be 4, got %v", results)
		}
	}
}

package algo

import (
	"math/rand"
	"slices"
	"testing"
)

func TestLinearSearch_Found(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 1; n < 30; n++ {
		arr := rng.Perm(n)
		at := rng.Intn(n)
		target := arr[at]
		in := slices.Clone(arr)

		r, _ := NewLinearSearch(arr, target)
		steps := drain(t, r)

		if len(steps) != at+1 {
			t.Fatalf("n=%d: got %d steps, want %d", n, len(steps), at+1)
		}
		for i, s := range steps[:at] {
			if s.Kind != KindCompare || s.CompareA != Index(i) {
				t.Errorf("n=%d: step %d = %v, want compare at %d", n, i, s, i)
			}
		}
		last := steps[at]
		if last.Kind != KindFound || last.SwapA != Index(at) {
			t.Errorf("n=%d: last = %v, want found at %d", n, last, at)
		}
		if !slices.Equal(last.Array, in) {
			t.Errorf("n=%d: search modified the array", n)
		}
	}
}

func TestLinearSearch_Absent(t *testing.T) {
	arr := []int{10, 20, 30, 40}
	r, _ := NewLinearSearch(arr, 25)
	steps := drain(t, r)

	if len(steps) != len(arr)+1 {
		t.Fatalf("got %d steps, want %d", len(steps), len(arr)+1)
	}
	for i := range arr {
		if steps[i].Kind != KindCompare || steps[i].CompareA != Index(i) {
			t.Errorf("step %d = %v", i, steps[i])
		}
	}
	last := steps[len(arr)]
	if last.Kind != KindDone || !last.Empty() {
		t.Errorf("terminal = %v, want done without highlights", last)
	}
}

func TestLinearSearch_FirstMatchWins(t *testing.T) {
	r, _ := NewLinearSearch([]int{7, 1, 7}, 7)
	steps := drain(t, r)
	if len(steps) != 1 || steps[0].SwapA != 0 {
		t.Errorf("steps = %v, want a single found at 0", steps)
	}
}

func TestLinearSearch_Empty(t *testing.T) {
	r, _ := NewLinearSearch(nil, 1)
	steps := drain(t, r)
	if len(steps) != 1 || steps[0].Kind != KindDone {
		t.Errorf("steps = %v, want only done", steps)
	}
}

package algo

import (
	"errors"
	"slices"
	"testing"
)

func TestMergeSort_SortedInputStillMerges(t *testing.T) {
	r, _ := NewMergeSort([]int{1, 2, 3, 4}, 0, 3)
	steps := drain(t, r)

	if got := countKind(steps, KindCompare); got != 4 {
		t.Errorf("compare steps = %d, want 4", got)
	}
	if got := countKind(steps, KindWrite); got != 4 {
		t.Errorf("write steps = %d, want 4", got)
	}
	if last := steps[len(steps)-1]; !slices.Equal(last.Array, []int{1, 2, 3, 4}) {
		t.Errorf("terminal array = %v", last.Array)
	}
}

func TestMergeSort_CompareHighlightsCarryBounds(t *testing.T) {
	r, _ := NewMergeSort([]int{4, 3, 2, 1}, 0, 3)
	steps := drain(t, r)
	for _, s := range steps {
		if s.Kind != KindCompare {
			continue
		}
		if !s.CompareA.Valid() || !s.CompareB.Valid() {
			t.Fatalf("compare step missing read positions: %+v", s.Highlights)
		}
		if s.SwapA > s.CompareA || s.CompareB > s.SwapB {
			t.Errorf("read positions outside bounds: %+v", s.Highlights)
		}
		if s.CompareA >= s.CompareB {
			t.Errorf("left read %d should precede right read %d", s.CompareA, s.CompareB)
		}
	}
}

func TestMergeSort_SubRange(t *testing.T) {
	arr := []int{9, 5, 4, 3, 0}
	r, err := NewMergeSort(arr, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	drain(t, r)
	if want := []int{9, 3, 4, 5, 0}; !slices.Equal(arr, want) {
		t.Errorf("arr = %v, want %v", arr, want)
	}
}

func TestMergeSort_TiesTakeLeft(t *testing.T) {
	// after the inner merges the array is [1 2 1 2]; the outer merge
	// compares equal heads first and must consume the left one
	r, _ := NewMergeSort([]int{2, 1, 2, 1}, 0, 3)
	steps := drain(t, r)

	var outer [][2]Index
	for _, s := range steps {
		if s.Kind == KindCompare && s.SwapA == 0 && s.SwapB == 3 {
			outer = append(outer, [2]Index{s.CompareA, s.CompareB})
		}
	}
	want := [][2]Index{{0, 2}, {1, 2}, {1, 3}}
	if !slices.Equal(outer, want) {
		t.Errorf("outer compares = %v, want %v", outer, want)
	}
}

func TestMergeSort_BadRange(t *testing.T) {
	tests := []struct {
		low, high int
	}{
		{-1, 2},
		{0, 4},
		{5, 3},
	}
	for _, tt := range tests {
		if _, err := NewMergeSort([]int{1, 2, 3, 4}, tt.low, tt.high); !errors.Is(err, ErrRange) {
			t.Errorf("NewMergeSort(%d, %d): got %v, want ErrRange", tt.low, tt.high, err)
		}
	}
}

package algo

import (
	"fmt"
	"math"
)

type radixPhase int

const (
	radixPass radixPhase = iota
	radixCount
	radixScatter
	radixCopy
)

// RadixSort is an LSD decimal radix sort built from counting-sort passes.
// The cumulative-sum phase of each pass emits no steps.
type RadixSort struct {
	run
	phase   radixPhase
	largest int
	place   int
	count   [10]int
	output  []int
	i       int
}

func NewRadixSort(arr []int) (*RadixSort, error) {
	largest := 0
	for i, v := range arr {
		if v < 0 {
			return nil, fmt.Errorf("%w: arr[%d]=%d", ErrNegativeValue, i, v)
		}
		if v > largest {
			largest = v
		}
	}
	return &RadixSort{
		run:     run{name: "radix_sort", arr: arr},
		largest: largest,
		place:   1,
		output:  make([]int, len(arr)),
	}, nil
}

func (r *RadixSort) digit(v int) int { return (v / r.place) % 10 }

// Place returns the decimal place value of the current pass.
func (r *RadixSort) Place() int { return r.place }

func (r *RadixSort) Next() (Step, error) {
	if r.done {
		return Step{}, ErrFinished
	}
	n := len(r.arr)
	for {
		switch r.phase {
		case radixPass:
			if n == 0 || r.place == 0 || r.largest/r.place == 0 {
				return r.finish(KindDone, NoHighlights()), nil
			}
			r.count = [10]int{}
			r.i = 0
			r.phase = radixCount

		case radixCount:
			if r.i < n {
				i := r.i
				r.i++
				r.count[r.digit(r.arr[i])]++
				h := NoHighlights()
				h.CompareA = Index(i)
				return r.emit(KindRead, h), nil
			}
			for d := 1; d < 10; d++ {
				r.count[d] += r.count[d-1]
			}
			r.i = n - 1
			r.phase = radixScatter

		case radixScatter:
			if r.i >= 0 {
				i := r.i
				r.i--
				d := r.digit(r.arr[i])
				r.count[d]--
				pos := r.count[d]
				r.output[pos] = r.arr[i]
				h := NoHighlights()
				h.CompareA = Index(i)
				h.SwapA = Index(pos)
				return r.emit(KindScatter, h), nil
			}
			r.i = 0
			r.phase = radixCopy

		case radixCopy:
			if r.i < n {
				i := r.i
				r.i++
				r.arr[i] = r.output[i]
				h := NoHighlights()
				h.SwapA = Index(i)
				return r.emit(KindWrite, h), nil
			}
			if r.place > math.MaxInt/10 {
				r.place = 0
			} else {
				r.place *= 10
			}
			r.phase = radixPass
		}
	}
}

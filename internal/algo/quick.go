package algo

type quickPhase int

const (
	quickEnter quickPhase = iota
	quickCompare
	quickCheck
	quickPlace
	quickReturn
)

type quickFrame struct {
	low, high int
	pivot     int
	i, j      int
	phase     quickPhase
}

// QuickSort partitions arr[low..high] around its last element (Lomuto) and
// recurses on both sides through an explicit frame stack. Every finished
// sub-call with low < high emits a Boundary step; the Done step follows once
// the outermost call returns.
type QuickSort struct {
	run
	low, high int
	stack     []quickFrame
}

func NewQuickSort(arr []int, low, high int) (*QuickSort, error) {
	if err := ensureRange(len(arr), low, high); err != nil {
		return nil, err
	}
	q := &QuickSort{run: run{name: "quick_sort", arr: arr}, low: low, high: high}
	q.stack = append(q.stack, quickFrame{low: low, high: high})
	return q, nil
}

// Depth returns the number of pending frames.
func (q *QuickSort) Depth() int { return len(q.stack) }

func (q *QuickSort) pop() { q.stack = q.stack[:len(q.stack)-1] }

func (q *QuickSort) Next() (Step, error) {
	if q.done {
		return Step{}, ErrFinished
	}
	for len(q.stack) > 0 {
		f := &q.stack[len(q.stack)-1]
		switch f.phase {
		case quickEnter:
			if f.low >= f.high {
				q.pop()
				continue
			}
			f.pivot = q.arr[f.high]
			f.i = f.low - 1
			f.j = f.low
			f.phase = quickCompare

		case quickCompare:
			if f.j < f.high {
				f.phase = quickCheck
				h := NoHighlights()
				h.CompareA = Index(f.j)
				if f.i >= f.low {
					h.CompareB = Index(f.i)
				}
				h.SwapA = Index(f.high)
				return q.emit(KindCompare, h), nil
			}
			f.phase = quickPlace

		case quickCheck:
			j := f.j
			f.j++
			f.phase = quickCompare
			if q.arr[j] < f.pivot {
				f.i++
				q.swap(f.i, j)
				h := NoHighlights()
				h.SwapA = Index(f.i)
				h.SwapB = Index(j)
				return q.emit(KindSwap, h), nil
			}

		case quickPlace:
			p := f.i + 1
			q.swap(p, f.high)
			h := NoHighlights()
			h.SwapA = Index(p)
			h.SwapB = Index(f.high)
			step := q.emit(KindPivot, h)
			left := quickFrame{low: f.low, high: p - 1}
			right := quickFrame{low: p + 1, high: f.high}
			f.phase = quickReturn
			q.stack = append(q.stack, right, left)
			return step, nil

		case quickReturn:
			q.pop()
			return q.emit(KindBoundary, NoHighlights()), nil
		}
	}
	return q.finish(KindDone, NoHighlights()), nil
}

package algo

type mergePhase int

const (
	mergeSplit mergePhase = iota
	mergeLoad
	mergeHeads
	mergeLeftRest
	mergeRightRest
)

type mergeFrame struct {
	low, high, mid int
	phase          mergePhase
	left, right    []int
	i, j, k        int
}

// MergeSort is a top-down merge sort over arr[low..high]. Each recursive call
// is a frame on an explicit stack; the merge copies the sub-range into two
// auxiliary buffers and writes back into the shared array.
type MergeSort struct {
	run
	low, high int
	stack     []mergeFrame
}

func NewMergeSort(arr []int, low, high int) (*MergeSort, error) {
	if err := ensureRange(len(arr), low, high); err != nil {
		return nil, err
	}
	m := &MergeSort{run: run{name: "merge_sort", arr: arr}, low: low, high: high}
	m.stack = append(m.stack, mergeFrame{low: low, high: high})
	return m, nil
}

// Depth returns the number of pending frames.
func (m *MergeSort) Depth() int { return len(m.stack) }

func (m *MergeSort) pop() { m.stack = m.stack[:len(m.stack)-1] }

func (m *MergeSort) Next() (Step, error) {
	if m.done {
		return Step{}, ErrFinished
	}
	for len(m.stack) > 0 {
		f := &m.stack[len(m.stack)-1]
		switch f.phase {
		case mergeSplit:
			if f.low >= f.high {
				m.pop()
				continue
			}
			f.mid = (f.low + f.high) / 2
			f.phase = mergeLoad
			left := mergeFrame{low: f.low, high: f.mid}
			right := mergeFrame{low: f.mid + 1, high: f.high}
			m.stack = append(m.stack, right, left)

		case mergeLoad:
			f.left = append([]int(nil), m.arr[f.low:f.mid+1]...)
			f.right = append([]int(nil), m.arr[f.mid+1:f.high+1]...)
			f.i, f.j, f.k = 0, 0, f.low
			f.phase = mergeHeads

		case mergeHeads:
			if f.i < len(f.left) && f.j < len(f.right) {
				h := Highlights{
					CompareA: Index(f.low + f.i),
					CompareB: Index(f.mid + 1 + f.j),
					SwapA:    Index(f.low),
					SwapB:    Index(f.high),
				}
				if f.left[f.i] <= f.right[f.j] {
					m.arr[f.k] = f.left[f.i]
					f.i++
				} else {
					m.arr[f.k] = f.right[f.j]
					f.j++
				}
				f.k++
				return m.emit(KindCompare, h), nil
			}
			f.phase = mergeLeftRest

		case mergeLeftRest:
			if f.i < len(f.left) {
				k := f.k
				m.arr[k] = f.left[f.i]
				f.i++
				f.k++
				h := NoHighlights()
				h.SwapA = Index(k)
				return m.emit(KindWrite, h), nil
			}
			f.phase = mergeRightRest

		case mergeRightRest:
			if f.j < len(f.right) {
				k := f.k
				m.arr[k] = f.right[f.j]
				f.j++
				f.k++
				h := NoHighlights()
				h.SwapA = Index(k)
				return m.emit(KindWrite, h), nil
			}
			m.pop()
		}
	}
	return m.finish(KindDone, NoHighlights()), nil
}

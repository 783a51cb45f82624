package algo

// LinearSearch scans left to right and stops at the first element equal to
// the target. The array is never modified.
type LinearSearch struct {
	run
	target int
	i      int
}

func NewLinearSearch(arr []int, target int) (*LinearSearch, error) {
	return &LinearSearch{run: run{name: "linear_search", arr: arr}, target: target}, nil
}

func (l *LinearSearch) Target() int { return l.target }

func (l *LinearSearch) Next() (Step, error) {
	if l.done {
		return Step{}, ErrFinished
	}
	if l.i < len(l.arr) {
		i := l.i
		l.i++
		if l.arr[i] == l.target {
			h := NoHighlights()
			h.SwapA = Index(i)
			return l.finish(KindFound, h), nil
		}
		h := NoHighlights()
		h.CompareA = Index(i)
		return l.emit(KindCompare, h), nil
	}
	return l.finish(KindDone, NoHighlights()), nil
}

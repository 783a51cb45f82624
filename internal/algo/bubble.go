package algo

// BubbleSort surfaces only swaps; comparisons that leave the pair in order
// are performed silently.
type BubbleSort struct {
	run
	i, j int
}

func NewBubbleSort(arr []int) (*BubbleSort, error) {
	return &BubbleSort{run: run{name: "bubble_sort", arr: arr}}, nil
}

func (b *BubbleSort) Next() (Step, error) {
	if b.done {
		return Step{}, ErrFinished
	}
	n := len(b.arr)
	for b.i < n {
		for b.j < n-b.i-1 {
			j := b.j
			b.j++
			if b.arr[j] > b.arr[j+1] {
				b.swap(j, j+1)
				return b.emit(KindSwap, Highlights{CompareA: None, CompareB: None, SwapA: Index(j), SwapB: Index(j + 1)}), nil
			}
		}
		b.i++
		b.j = 0
	}
	return b.finish(KindDone, NoHighlights()), nil
}

package metrics

import "github.com/san-kum/algoviz/internal/algo"

// Sortedness is the fraction of adjacent pairs in non-decreasing order in
// the most recently observed array. It keeps a bounded history for charts.
type Sortedness struct {
	name    string
	value   float64
	history []float64
	limit   int
}

const historyLimit = 600

func NewSortedness() *Sortedness {
	return &Sortedness{name: "sortedness", value: 1.0, limit: historyLimit}
}

func (s *Sortedness) Name() string { return s.name }

func (s *Sortedness) Observe(step algo.Step) {
	s.value = Ordered(step.Array)
	s.history = append(s.history, s.value)
	if len(s.history) > s.limit {
		s.history = s.history[1:]
	}
}

func (s *Sortedness) Value() float64 { return s.value }

func (s *Sortedness) History() []float64 { return s.history }

func (s *Sortedness) Reset() {
	s.value = 1.0
	s.history = s.history[:0]
}

// Ordered returns the fraction of adjacent pairs of arr that are in order.
func Ordered(arr []int) float64 {
	if len(arr) < 2 {
		return 1.0
	}
	ok := 0
	for i := 1; i < len(arr); i++ {
		if arr[i-1] <= arr[i] {
			ok++
		}
	}
	return float64(ok) / float64(len(arr)-1)
}

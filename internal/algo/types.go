package algo

import "fmt"

// Index is a highlighted position in the array, or None.
type Index int

// None means "no highlight in this slot".
const None Index = -1

func (i Index) Valid() bool { return i >= 0 }

// Kind tells the render adapter what a step reports.
type Kind int

const (
	KindCompare Kind = iota
	KindSwap
	KindWrite
	KindRead
	KindScatter
	KindPivot
	KindFound
	KindBoundary
	KindDone
)

var kindNames = [...]string{
	KindCompare:  "compare",
	KindSwap:     "swap",
	KindWrite:    "write",
	KindRead:     "read",
	KindScatter:  "scatter",
	KindPivot:    "pivot",
	KindFound:    "found",
	KindBoundary: "boundary",
	KindDone:     "done",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

type Highlights struct {
	CompareA Index
	CompareB Index
	SwapA    Index
	SwapB    Index
}

// NoHighlights returns a Highlights value with every slot set to None.
func NoHighlights() Highlights {
	return Highlights{CompareA: None, CompareB: None, SwapA: None, SwapB: None}
}

func (h Highlights) Empty() bool {
	return !h.CompareA.Valid() && !h.CompareB.Valid() && !h.SwapA.Valid() && !h.SwapB.Valid()
}

// Indices returns the valid highlighted positions, compare slots first.
func (h Highlights) Indices() []int {
	out := make([]int, 0, 4)
	for _, i := range [...]Index{h.CompareA, h.CompareB, h.SwapA, h.SwapB} {
		if i.Valid() {
			out = append(out, int(i))
		}
	}
	return out
}

// Step is an immutable snapshot taken after one unit of work.
type Step struct {
	Array []int
	Highlights
	Kind Kind
}

// Terminal reports whether no step can follow this one.
func (s Step) Terminal() bool {
	return s.Kind == KindDone || s.Kind == KindFound
}

func (s Step) String() string {
	return fmt.Sprintf("%s [%d %d | %d %d] %v", s.Kind, s.CompareA, s.CompareB, s.SwapA, s.SwapB, s.Array)
}

// Run is one in-progress invocation of a step-emitting algorithm.
type Run interface {
	Name() string
	// Next performs the next unit of work. After the terminal step it
	// returns ErrFinished.
	Next() (Step, error)
	Done() bool
}

// run holds the state shared by every variant.
type run struct {
	name string
	arr  []int
	done bool
}

func (r *run) Name() string { return r.name }
func (r *run) Done() bool   { return r.done }

func (r *run) snapshot() []int {
	c := make([]int, len(r.arr))
	copy(c, r.arr)
	return c
}

func (r *run) emit(kind Kind, h Highlights) Step {
	return Step{Array: r.snapshot(), Highlights: h, Kind: kind}
}

func (r *run) finish(kind Kind, h Highlights) Step {
	r.done = true
	return r.emit(kind, h)
}

func (r *run) swap(i, j int) {
	r.arr[i], r.arr[j] = r.arr[j], r.arr[i]
}

// ensureRange validates an inclusive [low, high] range over n elements.
// low > high is an empty range and is allowed.
func ensureRange(n, low, high int) error {
	if low > high {
		if low < 0 || low > n {
			return fmt.Errorf("%w: low=%d high=%d len=%d", ErrRange, low, high, n)
		}
		return nil
	}
	if low < 0 || high >= n {
		return fmt.Errorf("%w: low=%d high=%d len=%d", ErrRange, low, high, n)
	}
	return nil
}

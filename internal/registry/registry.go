package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/algoviz/internal/algo"
)

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Range is an inclusive [Low, High] index range.
type Range struct {
	Low  int
	High int
}

// Options carries the per-algorithm extra arguments. Range is used by merge
// and quick sort and defaults to the whole array; Target is used by search.
type Options struct {
	Target int
	Range  *Range
}

func (o Options) bounds(n int) (int, int) {
	if o.Range == nil {
		return 0, n - 1
	}
	return o.Range.Low, o.Range.High
}

type Constructor func(arr []int, opts Options) (algo.Run, error)

type Entry struct {
	Name   string
	Label  string
	Search bool
	Ranged bool
	New    Constructor
}

// Registry is a fixed name -> constructor table. It has no mutation API.
type Registry struct {
	entries map[string]Entry
}

func New() *Registry {
	r := &Registry{entries: make(map[string]Entry)}

	r.add(Entry{Name: "bubble_sort", Label: "Bubble Sort", New: func(arr []int, _ Options) (algo.Run, error) {
		return algo.NewBubbleSort(arr)
	}})
	r.add(Entry{Name: "merge_sort", Label: "Merge Sort", Ranged: true, New: func(arr []int, opts Options) (algo.Run, error) {
		low, high := opts.bounds(len(arr))
		return algo.NewMergeSort(arr, low, high)
	}})
	r.add(Entry{Name: "quick_sort", Label: "Quick Sort", Ranged: true, New: func(arr []int, opts Options) (algo.Run, error) {
		low, high := opts.bounds(len(arr))
		return algo.NewQuickSort(arr, low, high)
	}})
	r.add(Entry{Name: "radix_sort", Label: "Radix Sort", New: func(arr []int, _ Options) (algo.Run, error) {
		return algo.NewRadixSort(arr)
	}})
	r.add(Entry{Name: "linear_search", Label: "Linear Search", Search: true, New: func(arr []int, opts Options) (algo.Run, error) {
		return algo.NewLinearSearch(arr, opts.Target)
	}})

	return r
}

func (r *Registry) add(e Entry) { r.entries[e.Name] = e }

func (r *Registry) Get(name string) (Entry, error) {
	e, ok := r.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
	}
	return e, nil
}

// Build looks up name and constructs a run over arr.
func (r *Registry) Build(name string, arr []int, opts Options) (algo.Run, error) {
	e, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	run, err := e.New(arr, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return run, nil
}

func (r *Registry) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sorts returns the sorted names of every non-search algorithm.
func (r *Registry) Sorts() []string {
	var names []string
	for _, name := range r.Names() {
		if !r.entries[name].Search {
			names = append(names, name)
		}
	}
	return names
}

// Package dataset produces and validates the arrays fed to algorithm runs.
//
// Everything the user types (sizes, bounds, explicit arrays, search targets)
// passes through here first; the algo package assumes its input is valid.
package dataset

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
)

const (
	DefaultMin  = 10
	DefaultMax  = 400
	DefaultSize = 32
	MaxSize     = 200
	// MaxValue bounds every element so bar scaling and value spans stay in range.
	MaxValue = 1_000_000
)

var (
	ErrSize    = errors.New("dataset: size out of range")
	ErrBounds  = errors.New("dataset: invalid value bounds")
	ErrPattern = errors.New("dataset: unknown pattern")
	ErrParse   = errors.New("dataset: not a number")
)

type Pattern string

const (
	Random       Pattern = "random"
	Sorted       Pattern = "sorted"
	Reversed     Pattern = "reversed"
	NearlySorted Pattern = "nearly_sorted"
	FewUnique    Pattern = "few_unique"
)

var patterns = []Pattern{Random, Sorted, Reversed, NearlySorted, FewUnique}

func Patterns() []Pattern { return append([]Pattern(nil), patterns...) }

func ParsePattern(s string) (Pattern, error) {
	if s == "" {
		return Random, nil
	}
	for _, p := range patterns {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrPattern, s)
}

type Spec struct {
	Pattern Pattern
	Size    int
	Min     int
	Max     int
	Seed    int64
}

func (s Spec) Validate() error {
	if s.Size < 0 || s.Size > MaxSize {
		return fmt.Errorf("%w: %d (want 0..%d)", ErrSize, s.Size, MaxSize)
	}
	if s.Min < 0 || s.Max < s.Min || s.Max > MaxValue {
		return fmt.Errorf("%w: min=%d max=%d (want 0..%d)", ErrBounds, s.Min, s.Max, MaxValue)
	}
	if _, err := ParsePattern(string(s.Pattern)); err != nil {
		return err
	}
	return nil
}

// Generate builds an array for spec. The same spec always yields the same array.
func Generate(spec Spec) ([]int, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(spec.Seed))
	span := spec.Max - spec.Min + 1
	arr := make([]int, spec.Size)

	switch spec.Pattern {
	case FewUnique:
		k := 4
		if span < k {
			k = span
		}
		values := make([]int, k)
		for i := range values {
			values[i] = spec.Min + rng.Intn(span)
		}
		for i := range arr {
			arr[i] = values[rng.Intn(k)]
		}
	default:
		for i := range arr {
			arr[i] = spec.Min + rng.Intn(span)
		}
	}

	switch spec.Pattern {
	case Sorted:
		sort.Ints(arr)
	case Reversed:
		sort.Sort(sort.Reverse(sort.IntSlice(arr)))
	case NearlySorted:
		sort.Ints(arr)
		swaps := len(arr) / 10
		if swaps == 0 && len(arr) > 1 {
			swaps = 1
		}
		for i := 0; i < swaps; i++ {
			a := rng.Intn(len(arr))
			b := rng.Intn(len(arr))
			arr[a], arr[b] = arr[b], arr[a]
		}
	}
	return arr, nil
}

// ParseArray parses a comma or space separated list of integers in 0..MaxValue.
func ParseArray(text string) ([]int, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) > MaxSize {
		return nil, fmt.Errorf("%w: %d (want 0..%d)", ErrSize, len(fields), MaxSize)
	}
	arr := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrParse, f)
		}
		if v < 0 || v > MaxValue {
			return nil, fmt.Errorf("%w: %d (want 0..%d)", ErrBounds, v, MaxValue)
		}
		arr = append(arr, v)
	}
	return arr, nil
}

// ParseInt parses a single numeric field, falling back on empty or
// non-numeric input.
func ParseInt(text string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return fallback
	}
	return v
}

func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PickTarget returns a value present in arr, chosen by seed, or fallback when
// arr is empty.
func PickTarget(arr []int, seed int64, fallback int) int {
	if len(arr) == 0 {
		return fallback
	}
	rng := rand.New(rand.NewSource(seed))
	return arr[rng.Intn(len(arr))]
}

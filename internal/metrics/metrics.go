package metrics

import "github.com/san-kum/algoviz/internal/algo"

type Metric interface {
	Name() string
	Observe(s algo.Step)
	Value() float64
	Reset()
}

// Defaults returns the metrics attached to every driver by the CLI.
func Defaults() []Metric {
	return []Metric{
		NewStepCount(),
		NewKindCount("compares", algo.KindCompare),
		NewKindCount("swaps", algo.KindSwap, algo.KindPivot),
		NewKindCount("writes", algo.KindWrite, algo.KindScatter),
		NewKindCount("reads", algo.KindRead),
		NewSortedness(),
	}
}

// Collect reads every metric into a name -> value map.
func Collect(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

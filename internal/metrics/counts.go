package metrics

import "github.com/san-kum/algoviz/internal/algo"

type StepCount struct {
	name  string
	steps int
}

func NewStepCount() *StepCount {
	return &StepCount{name: "steps"}
}

func (c *StepCount) Name() string        { return c.name }
func (c *StepCount) Observe(_ algo.Step) { c.steps++ }
func (c *StepCount) Value() float64      { return float64(c.steps) }
func (c *StepCount) Reset()              { c.steps = 0 }

// KindCount counts steps whose kind is one of kinds.
type KindCount struct {
	name  string
	kinds map[algo.Kind]bool
	count int
}

func NewKindCount(name string, kinds ...algo.Kind) *KindCount {
	set := make(map[algo.Kind]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	return &KindCount{name: name, kinds: set}
}

func (c *KindCount) Name() string { return c.name }

func (c *KindCount) Observe(s algo.Step) {
	if c.kinds[s.Kind] {
		c.count++
	}
}

func (c *KindCount) Value() float64 { return float64(c.count) }
func (c *KindCount) Reset()         { c.count = 0 }

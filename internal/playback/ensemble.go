package playback

import (
	"context"
	"fmt"

	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/registry"
)

// Ensemble runs several algorithms side by side. Members never share an
// array; Advance interleaves their steps on the caller's goroutine.
type Ensemble struct {
	names   []string
	drivers []*Driver
}

// NewEnsemble creates one driver per name, each with its own metrics from
// newMetrics (which may be nil).
func NewEnsemble(reg *registry.Registry, names []string, newMetrics func() []metrics.Metric) (*Ensemble, error) {
	e := &Ensemble{names: append([]string(nil), names...)}
	for _, name := range names {
		if !reg.Has(name) {
			return nil, fmt.Errorf("%w: %s", registry.ErrUnknownAlgorithm, name)
		}
		d := New(reg)
		if newMetrics != nil {
			for _, m := range newMetrics() {
				d.AddMetric(m)
			}
		}
		e.drivers = append(e.drivers, d)
	}
	return e, nil
}

// Start gives every member a fresh copy of arr.
func (e *Ensemble) Start(arr []int, opts registry.Options) error {
	for i, d := range e.drivers {
		c := make([]int, len(arr))
		copy(c, arr)
		if err := d.Start(e.names[i], c, opts); err != nil {
			e.Stop()
			return err
		}
	}
	return nil
}

// Advance resumes each active member once and returns how many advanced.
func (e *Ensemble) Advance() int {
	n := 0
	for _, d := range e.drivers {
		if _, ok := d.Advance(); ok {
			n++
		}
	}
	return n
}

func (e *Ensemble) Active() bool {
	for _, d := range e.drivers {
		if d.IsActive() {
			return true
		}
	}
	return false
}

func (e *Ensemble) Stop() {
	for _, d := range e.drivers {
		d.Stop()
	}
}

func (e *Ensemble) Drivers() []*Driver { return e.drivers }

// AddObserver attaches o to every member.
func (e *Ensemble) AddObserver(o Observer) {
	for _, d := range e.drivers {
		d.AddObserver(o)
	}
}

// RunToEnd finishes every member in turn.
func (e *Ensemble) RunToEnd(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, len(e.drivers))
	for i, d := range e.drivers {
		res, err := d.RunToEnd(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.names[i], err)
		}
		results[i] = res
	}
	return results, nil
}

package playback

import (
	"context"
	"errors"
	"fmt"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/registry"
)

var ErrRunActive = errors.New("playback: a run is already active")

// Observer receives every step the driver emits. index counts from zero
// within the current run.
type Observer interface {
	OnStep(name string, index int, s algo.Step)
}

type ObserverFunc func(name string, index int, s algo.Step)

func (f ObserverFunc) OnStep(name string, index int, s algo.Step) { f(name, index, s) }

type Result struct {
	Algorithm string
	Steps     int
	Final     algo.Step
	Metrics   map[string]float64
}

type Driver struct {
	registry  *registry.Registry
	run       algo.Run
	name      string
	current   algo.Step
	hasStep   bool
	steps     int
	err       error
	metrics   []metrics.Metric
	observers []Observer
}

func New(reg *registry.Registry) *Driver {
	return &Driver{
		registry:  reg,
		metrics:   make([]metrics.Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (d *Driver) AddMetric(m metrics.Metric) {
	d.metrics = append(d.metrics, m)
}

func (d *Driver) AddObserver(o Observer) {
	d.observers = append(d.observers, o)
}

func (d *Driver) Metrics() []metrics.Metric {
	return d.metrics
}

func (d *Driver) Registry() *registry.Registry {
	return d.registry
}

// Start builds a run of name over arr. arr is mutated in place by sorts.
func (d *Driver) Start(name string, arr []int, opts registry.Options) error {
	if d.IsActive() {
		return fmt.Errorf("%w: %s", ErrRunActive, d.name)
	}
	run, err := d.registry.Build(name, arr, opts)
	if err != nil {
		return err
	}
	for _, m := range d.metrics {
		m.Reset()
	}
	d.run = run
	d.name = name
	d.current = algo.Step{}
	d.hasStep = false
	d.steps = 0
	d.err = nil
	return nil
}

// Advance resumes the active run once. It is a no-op returning false when
// no run is active. A terminal step deactivates the run and stays available
// through Current until the next Start.
func (d *Driver) Advance() (algo.Step, bool) {
	if d.run == nil {
		return algo.Step{}, false
	}
	s, err := d.run.Next()
	if err != nil {
		d.err = err
		d.run = nil
		return algo.Step{}, false
	}
	index := d.steps
	d.steps++
	d.current = s
	d.hasStep = true

	for _, m := range d.metrics {
		m.Observe(s)
	}
	for _, o := range d.observers {
		o.OnStep(d.name, index, s)
	}

	if s.Terminal() {
		d.run = nil
	}
	return s, true
}

// Stop discards the active run, if any. The last step stays current.
func (d *Driver) Stop() { d.run = nil }

func (d *Driver) IsActive() bool { return d.run != nil }

func (d *Driver) Current() (algo.Step, bool) { return d.current, d.hasStep }

// Algorithm returns the name passed to the most recent Start.
func (d *Driver) Algorithm() string { return d.name }

func (d *Driver) StepCount() int { return d.steps }

// Err returns the error that ended the last run abnormally.
func (d *Driver) Err() error { return d.err }

// Finished reports whether the last run reached its terminal step.
func (d *Driver) Finished() bool {
	return !d.IsActive() && d.hasStep && d.current.Terminal()
}

// RunToEnd advances the active run until it finishes or ctx is done.
func (d *Driver) RunToEnd(ctx context.Context) (*Result, error) {
	for d.IsActive() {
		select {
		case <-ctx.Done():
			return d.result(), ctx.Err()
		default:
		}
		d.Advance()
	}
	if d.err != nil {
		return d.result(), d.err
	}
	return d.result(), nil
}

func (d *Driver) result() *Result {
	return &Result{
		Algorithm: d.name,
		Steps:     d.steps,
		Final:     d.current,
		Metrics:   metrics.Collect(d.metrics),
	}
}

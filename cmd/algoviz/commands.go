package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/dataset"
	"github.com/san-kum/algoviz/internal/export"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/trace"
	"github.com/san-kum/algoviz/internal/viz"
)

func argOr(args []string, fallback string) string {
	if len(args) > 0 {
		return args[0]
	}
	return fallback
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, argOr(args, ""))
	if err != nil {
		return err
	}
	arr, err := explicitArray()
	if err != nil {
		return err
	}
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()
	return viz.Run(reg, viz.Options{Config: cfg, Algorithms: []string{cfg.Algorithm}, Array: arr})
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, argOr(args, ""))
	if err != nil {
		return err
	}
	names := args
	if len(names) == 0 {
		names = cfg.Compare
	}
	if len(names) == 0 {
		names = reg.Sorts()
	}
	if err := viz.CheckSelection(reg, names); err != nil {
		return err
	}
	arr, err := explicitArray()
	if err != nil {
		return err
	}
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()
	return viz.Run(reg, viz.Options{Config: cfg, Algorithms: names, Array: arr})
}

// headless is one run driven to completion on the caller's goroutine.
type headless struct {
	driver *playback.Driver
	input  []int
	result *playback.Result
}

func runToEnd(cmd *cobra.Command, cfg *config.Config, arr []int, observers ...playback.Observer) (*headless, error) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	d := playback.New(reg)
	for _, m := range metrics.Defaults() {
		d.AddMetric(m)
	}
	for _, o := range observers {
		d.AddObserver(o)
	}
	input := append([]int(nil), arr...)
	if err := d.Start(cfg.Algorithm, arr, runOptions(cfg, arr)); err != nil {
		return nil, err
	}
	res, err := d.RunToEnd(ctx)
	if err != nil {
		return nil, err
	}
	return &headless{driver: d, input: input, result: res}, nil
}

func prepare(cmd *cobra.Command, args []string) (*config.Config, []int, error) {
	cfg, err := resolveConfig(cmd, argOr(args, ""))
	if err != nil {
		return nil, nil, err
	}
	arr, err := buildInput(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, arr, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, arr, err := prepare(cmd, args)
	if err != nil {
		return err
	}

	kinds := make(map[algo.Kind]int)
	counter := playback.ObserverFunc(func(_ string, _ int, s algo.Step) { kinds[s.Kind]++ })

	fmt.Printf("running %s on %d values...\n", cfg.Algorithm, len(arr))
	start := time.Now()
	h, err := runToEnd(cmd, cfg, arr, counter)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("input:  %v\n", h.input)
	fmt.Printf("final:  %v\n", h.result.Final.Array)
	fmt.Printf("steps:  %d\n", h.result.Steps)
	if h.result.Final.Kind == algo.KindFound {
		fmt.Printf("found at index %d\n", h.result.Final.SwapA)
	}

	fmt.Println("\nsteps by kind:")
	for _, k := range algo.Kinds() {
		if n := kinds[k]; n > 0 {
			fmt.Printf("  %-9s %d\n", k, n)
		}
	}

	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(h.result.Metrics))
	for name := range h.result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.3f\n", name, h.result.Metrics[name])
	}
	return nil
}

func benchAlgorithm(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, argOr(args, ""))
	if err != nil {
		return err
	}
	sizes, err := dataset.ParseArray(benchSet)
	if err != nil {
		return fmt.Errorf("invalid --sizes: %w", err)
	}

	fmt.Printf("benchmarking %s\n\n", cfg.Algorithm)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tPATTERN\tSTEPS\tCOMPARES\tSWAPS\tWRITES\tTIME")

	for _, n := range sizes {
		for _, p := range dataset.Patterns() {
			spec := cfg.DatasetSpec()
			spec.Size, spec.Pattern = n, p
			arr, err := dataset.Generate(spec)
			if err != nil {
				return err
			}
			start := time.Now()
			h, err := runToEnd(cmd, cfg, arr)
			if err != nil {
				return err
			}
			m := h.result.Metrics
			fmt.Fprintf(w, "%d\t%s\t%d\t%.0f\t%.0f\t%.0f\t%v\n",
				n, p, h.result.Steps, m["compares"], m["swaps"], m["writes"], time.Since(start).Round(time.Microsecond))
		}
	}
	return w.Flush()
}

func toFloats(arr []int) []float64 {
	out := make([]float64, len(arr))
	for i, v := range arr {
		out[i] = float64(v)
	}
	return out
}

func plotAlgorithm(cmd *cobra.Command, args []string) error {
	cfg, arr, err := prepare(cmd, args)
	if err != nil {
		return err
	}
	h, err := runToEnd(cmd, cfg, arr)
	if err != nil {
		return err
	}

	fmt.Printf("algorithm: %s\n", cfg.Algorithm)
	fmt.Printf("steps: %d\n\n", h.result.Steps)

	if len(h.input) > 0 {
		fmt.Println(asciigraph.Plot(toFloats(h.input), asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption("input")))
		fmt.Println()
		fmt.Println(asciigraph.Plot(toFloats(h.result.Final.Array), asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption("final")))
		fmt.Println()
	}
	for _, m := range h.driver.Metrics() {
		if so, ok := m.(*metrics.Sortedness); ok && len(so.History()) > 1 {
			fmt.Println(asciigraph.Plot(so.History(), asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("sortedness over steps")))
		}
	}
	return nil
}

// output returns the command's stdout or the file named by -o.
func output(cmd *cobra.Command) (io.Writer, func() error, error) {
	if outFile == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func recordRun(cmd *cobra.Command, args []string) (*config.Config, *headless, *trace.Recorder, error) {
	cfg, arr, err := prepare(cmd, args)
	if err != nil {
		return nil, nil, nil, err
	}
	rec := trace.NewRecorder(0)
	h, err := runToEnd(cmd, cfg, arr, rec)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, h, rec, nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, _, rec, err := recordRun(cmd, args)
	if err != nil {
		return err
	}
	w, closeOut, err := output(cmd)
	if err != nil {
		return err
	}
	if err := trace.WriteCSV(w, rec.Frames()); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, h, rec, err := recordRun(cmd, args)
	if err != nil {
		return err
	}
	w, closeOut, err := output(cmd)
	if err != nil {
		return err
	}
	data := trace.NewExport(cfg.Algorithm, h.input, rec.Frames(), h.result.Metrics)
	if err := trace.WriteJSON(w, data); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, _, rec, err := recordRun(cmd, args)
	if err != nil {
		return err
	}
	frame, ok := rec.At(rec.Len() - 1)
	if atStep >= 0 {
		frame, ok = rec.At(atStep)
	}
	if !ok {
		return fmt.Errorf("step %d out of range (run has %d steps)", atStep, rec.Len())
	}

	th := viz.GetTheme(cfg.Theme)
	var svg string
	if braille {
		canvas, roles := viz.BarCanvas(frame.Step, width/8, height/16)
		svg = export.CanvasToSVG(canvas, roles, th, 4)
	} else {
		svg = export.StepToSVG(frame.Step, th, width, height)
	}
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote step %d (%s) to %s\n", frame.Index, frame.Step.Kind, svgOut)
	return nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLABEL\tKIND\tRANGE")
	for _, name := range reg.Names() {
		e, err := reg.Get(name)
		if err != nil {
			return err
		}
		kind := "sort"
		if e.Search {
			kind = "search"
		}
		ranged := "-"
		if e.Ranged {
			ranged = "low..high"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.Label, kind, ranged)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\nthemes: %s\n", strings.Join(viz.ThemeNames(), ", "))
	return nil
}

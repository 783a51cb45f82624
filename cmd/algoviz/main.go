package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/registry"
	"github.com/san-kum/algoviz/internal/viz"
)

var (
	// input
	configFile string
	preset     string
	size       int
	minVal     int
	maxVal     int
	pattern    string
	seed       int64
	arrayText  string
	target     int
	low        int
	high       int
	// live view
	frameRate    int
	stepsPerTick int
	theme        string
	logFile      string
	// output
	outFile  string
	svgOut   string
	atStep   int
	width    int
	height   int
	braille  bool
	benchSet string
)

var reg = registry.New()

// main runs the command tree and exits 1 if the command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers commands and flags. The root command opens the
// picker when no subcommand is given.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "algoviz",
		Short:        "step-by-step sorting and search visualizer",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, "")
			if err != nil {
				return err
			}
			closeLog, err := setupLogging()
			if err != nil {
				return err
			}
			defer closeLog()
			return viz.RunPicker(reg, cfg)
		},
	}
	addInputFlags(rootCmd)
	addViewFlags(rootCmd)

	liveCmd := &cobra.Command{
		Use:   "live [algorithm]",
		Short: "visualize one algorithm",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addInputFlags(liveCmd)
	addViewFlags(liveCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [algorithm...]",
		Short: "run several algorithms side by side on the same array",
		RunE:  runCompare,
	}
	addInputFlags(compareCmd)
	addViewFlags(compareCmd)

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "run to completion without the TUI and print a summary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	addInputFlags(runCmd)

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm]",
		Short: "step counts across sizes and patterns",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchAlgorithm,
	}
	addInputFlags(benchCmd)
	benchCmd.Flags().StringVar(&benchSet, "sizes", "8,32,128", "comma separated array sizes")

	plotCmd := &cobra.Command{
		Use:   "plot [algorithm]",
		Short: "plot input, output and sortedness over steps",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotAlgorithm,
	}
	addInputFlags(plotCmd)

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [algorithm]",
		Short: "export the step trace as CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportCSV,
	}
	addInputFlags(exportCSVCmd)
	exportCSVCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [algorithm]",
		Short: "export the step trace as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportJSON,
	}
	addInputFlags(exportJSONCmd)
	exportJSONCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [algorithm]",
		Short: "render one step as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	addInputFlags(exportSVGCmd)
	exportSVGCmd.Flags().StringVarP(&svgOut, "output", "o", "step.svg", "output file")
	exportSVGCmd.Flags().IntVar(&atStep, "at", -1, "step index to render (default: last)")
	exportSVGCmd.Flags().IntVar(&width, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&height, "height", 300, "image height")
	exportSVGCmd.Flags().BoolVar(&braille, "braille", false, "render the braille canvas instead of bars")
	exportSVGCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list registered algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list available presets for an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for algorithm: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(liveCmd, compareCmd, runCmd, benchCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, listCmd, presetsCmd)
	return rootCmd
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVar(&size, "size", 32, "array size")
	cmd.Flags().IntVar(&minVal, "min", 10, "smallest generated value")
	cmd.Flags().IntVar(&maxVal, "max", 400, "largest generated value")
	cmd.Flags().StringVar(&pattern, "pattern", "random", "random, sorted, reversed, nearly_sorted or few_unique")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	cmd.Flags().StringVar(&arrayText, "array", "", "explicit comma separated array")
	cmd.Flags().IntVar(&target, "target", 0, "search target (default: a value in the array)")
	cmd.Flags().IntVar(&low, "low", 0, "first index of the sorted range (merge/quick)")
	cmd.Flags().IntVar(&high, "high", -1, "last index of the sorted range (merge/quick, -1 = end)")
}

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	cmd.Flags().IntVar(&stepsPerTick, "steps-per-tick", config.DefaultStepsPerTick, "steps per frame")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	cmd.Flags().StringVar(&logFile, "log", "", "write debug log to this file")
}

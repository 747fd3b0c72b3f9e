package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/metaballs/internal/export"
	"github.com/san-kum/metaballs/internal/metrics"
	"github.com/spf13/cobra"
)

// plotCeiling bounds the probe series; the field is unbounded near a centre.
const plotCeiling = 4.0

func traceRun(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		if err := fitTerminal(cfg, os.Stdout); err != nil {
			return fmt.Errorf("trace needs --width and --height off a terminal: %w", err)
		}
	}
	if traceFrames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", traceFrames)
	}

	loop, err := headless(cfg)
	if err != nil {
		return err
	}
	start := loop.Balls().Clone()

	coverage := metrics.NewCoverage()
	kinetic := metrics.NewKinetic()
	loop.AddMetric(coverage)
	loop.AddMetric(kinetic)
	loop.AddMetric(metrics.NewOvershoot())

	drawn := metrics.NewSeries("drawn cells", traceFrames, metrics.DrawnCells)
	cx, cy := float64(cfg.Width)/2, float64(cfg.Height)/2
	probe := metrics.NewSeries(fmt.Sprintf("field at (%.0f, %.0f)", cx, cy), traceFrames, metrics.FieldAt(cx, cy))
	loop.AddObserver(drawn)
	loop.AddObserver(probe)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "tracing %d frames on a %dx%d grid...\n", traceFrames, cfg.Width, cfg.Height)
	began := time.Now()
	for i := 0; i < traceFrames; i++ {
		if err := loop.Tick(); err != nil {
			return err
		}
	}
	elapsed := time.Since(began)

	fmt.Fprintf(out, "completed in %v (%.0f frames/s, %.0f needed)\n\n",
		elapsed, float64(traceFrames)/elapsed.Seconds(), float64(cfg.FPS))

	probed := clamp(probe.Values, plotCeiling*cfg.Threshold)
	plot(out, drawn.Values, drawn.Name)
	plot(out, probed, probe.Name)

	extra := []row{
		{"final coverage", coverage.Last()},
		{"kinetic drift", kinetic.Drift()},
		{"max speed", cfg.MaxSpeed()},
	}
	if err := printMetrics(out, loop.Metrics(), extra); err != nil {
		return err
	}
	if jsonPath == "" {
		return nil
	}
	return export.SaveJSON(jsonPath, &export.Trace{
		Config:  cfg,
		Frames:  traceFrames,
		Start:   start,
		End:     loop.Balls(),
		Series:  map[string][]float64{"drawn": drawn.Values, "field": probed},
		Metrics: loop.Metrics(),
	})
}

func plot(out io.Writer, data []float64, caption string) {
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Fprintln(out, graph)
	fmt.Fprintln(out)
}

func clamp(values []float64, ceiling float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Min(v, ceiling)
	}
	return out
}

type row struct {
	name  string
	value float64
}

// printMetrics lists the registered metrics by name, then the extra rows in
// order.
func printMetrics(out io.Writer, values map[string]float64, extra []row) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.6f\n", name, values[name])
	}
	for _, r := range extra {
		fmt.Fprintf(w, "%s\t%.6f\n", r.name, r.value)
	}
	return w.Flush()
}

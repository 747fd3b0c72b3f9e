package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/metaballs/internal/anim"
	"github.com/san-kum/metaballs/internal/config"
	"github.com/san-kum/metaballs/internal/export"
	"github.com/san-kum/metaballs/internal/logging"
	"github.com/san-kum/metaballs/internal/pacer"
	"github.com/san-kum/metaballs/internal/term"
	"github.com/san-kum/metaballs/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	logFile    string
	verbose    bool
	seed       int64

	glyph     string
	balls     int
	fps       int
	threshold float64
	width     int
	height    int

	advance     int
	traceFrames int
	svgPath     string
	ballsPath   string
	jsonPath    string
)

// main exits with status 1 if the command fails.
func main() {
	err := newRootCmd().Execute()
	if closeLog != nil {
		closeLog()
	}
	if err != nil {
		os.Exit(1)
	}
}

var closeLog func() error

const svgScale = 8

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "metaballs",
		Short:        "metaball animation for the terminal",
		SilenceUsage: true,
		RunE:         runAnimation,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logFile, "log", "", "append logs to this file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	pf.StringVar(&glyph, "glyph", config.DefaultGlyph, "character drawn on the contour")
	pf.IntVar(&balls, "balls", config.DefaultBalls, "number of balls")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	pf.Float64Var(&threshold, "threshold", config.DefaultThreshold, "field threshold")
	pf.IntVar(&width, "width", 0, "grid width (0 uses the terminal)")
	pf.IntVar(&height, "height", 0, "grid height (0 uses the terminal)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if logFile == "" {
			return nil
		}
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		f, err := logging.ToFile(logFile, level)
		if err != nil {
			return fmt.Errorf("failed to open log: %w", err)
		}
		closeLog = f.Close
		return nil
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the animation until interrupted",
		RunE:  runAnimation,
	}

	frameCmd := &cobra.Command{
		Use:   "frame",
		Short: "print a single frame as plain text",
		RunE:  printFrame,
	}
	frameCmd.Flags().IntVar(&advance, "frames", 0, "advance this many frames first")
	frameCmd.Flags().StringVar(&svgPath, "svg", "", "also write the frame as svg")
	frameCmd.Flags().StringVar(&ballsPath, "balls-svg", "", "also write the ball outlines as svg")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "simulate without drawing and plot frame metrics",
		RunE:  traceRun,
	}
	traceCmd.Flags().IntVar(&traceFrames, "frames", 240, "number of frames to simulate")
	traceCmd.Flags().StringVar(&jsonPath, "json", "", "write series and metrics as json")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive animation with status line",
		RunE:  runLive,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "presets:")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(out, "  %-8s glyph=%s balls=%d fps=%d threshold=%.1f\n", name, p.Glyph, p.Balls, p.FPS, p.Threshold)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writeConfig,
	}

	rootCmd.AddCommand(runCmd, frameCmd, traceCmd, liveCmd, presetsCmd, configCmd)
	return rootCmd
}

// resolveConfig layers preset, config file and explicitly set flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("glyph") {
		cfg.Glyph = glyph
	}
	if flags.Changed("balls") {
		cfg.Balls = balls
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("threshold") {
		cfg.Threshold = threshold
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	return cfg, nil
}

// fitTerminal fills a zero width or height from the terminal behind f.
func fitTerminal(cfg *config.Config, f *os.File) error {
	if cfg.Width > 0 && cfg.Height > 0 {
		return nil
	}
	w, h, err := term.Size(f)
	if err != nil {
		return err
	}
	if cfg.Width <= 0 {
		cfg.Width = w
	}
	if cfg.Height <= 0 {
		cfg.Height = h
	}
	return nil
}

func newRand(cfg *config.Config) *rand.Rand {
	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	logging.Logger().Debug("seeded", "seed", s)
	return rand.New(rand.NewSource(s))
}

func runAnimation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	w, h, err := term.Size(os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf("Your terminal is %d cols wide and %d lines tall\n", w, h)
	if cfg.Width <= 0 {
		cfg.Width = w
	}
	if cfg.Height <= 0 {
		cfg.Height = h
	}

	loop, err := anim.New(cfg, term.NewScreen(os.Stdout), pacer.System, newRand(cfg))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return loop.Run(ctx)
}

func printFrame(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := fitTerminal(cfg, os.Stdout); err != nil {
		return err
	}

	loop, err := headless(cfg)
	if err != nil {
		return err
	}
	for i := 0; i < advance; i++ {
		if err := loop.Tick(); err != nil {
			return err
		}
	}

	s := loop.Sampler()
	s.Sample(loop.Balls())
	out := cmd.OutOrStdout()
	for _, row := range s.Rows(cfg.Glyph) {
		fmt.Fprintln(out, row)
	}

	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.GridToSVG(s.Grid(), svgScale)), 0644); err != nil {
			return fmt.Errorf("failed to write svg: %w", err)
		}
	}
	if ballsPath != "" {
		outline := export.BallsToSVG(loop.Balls(), cfg.Width, cfg.Height, svgScale, "#ff00ff")
		if err := os.WriteFile(ballsPath, []byte(outline), 0644); err != nil {
			return fmt.Errorf("failed to write svg: %w", err)
		}
	}
	return nil
}

// headless builds an initialized loop whose output is discarded.
func headless(cfg *config.Config) (*anim.Loop, error) {
	loop, err := anim.New(cfg, term.NewScreen(io.Discard), pacer.System, newRand(cfg))
	if err != nil {
		return nil, err
	}
	if err := loop.Init(); err != nil {
		return nil, err
	}
	return loop, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	fitW, fitH := cfg.Width <= 0, cfg.Height <= 0
	if err := fitTerminal(cfg, os.Stdout); err != nil {
		return err
	}
	if fitW {
		cfg.Width -= viz.ChromeWidth
	}
	if fitH {
		cfg.Height -= viz.ChromeHeight
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	m := viz.NewModel(cfg, newRand(cfg))
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(viz.Model); ok {
		fmt.Printf("%d frames, mean coverage %.1f%%\n", fm.Frame(), 100*fm.MeanCoverage())
	}
	return nil
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return config.Write(cmd.OutOrStdout(), cfg)
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
	return nil
}

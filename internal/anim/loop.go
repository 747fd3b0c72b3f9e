package anim

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/metaballs/internal/config"
	"github.com/san-kum/metaballs/internal/field"
	"github.com/san-kum/metaballs/internal/logging"
	"github.com/san-kum/metaballs/internal/pacer"
	"github.com/san-kum/metaballs/internal/raster"
)

// Sink is the terminal the loop draws on.
type Sink interface {
	Clear()
	HideCursor()
	ShowCursor()
	MoveTo(col, row int)
	WriteString(s string)
	Flush() error
}

type Observer interface {
	OnFrame(frame int, balls field.Balls, grid *raster.Grid)
}

type Metric interface {
	Observer
	Name() string
	Value() float64
	Reset()
}

type Loop struct {
	cfg       *config.Config
	sink      Sink
	pacer     *pacer.Pacer
	rng       *rand.Rand
	balls     field.Balls
	sampler   *raster.Sampler
	frame     int
	metrics   []Metric
	observers []Observer
}

func New(cfg *config.Config, sink Sink, clock pacer.Clock, rng *rand.Rand) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Loop{
		cfg:       cfg,
		sink:      sink,
		pacer:     pacer.New(clock, cfg.FPS, cfg.Poll),
		rng:       rng,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}, nil
}

func (l *Loop) AddMetric(m Metric)     { l.metrics = append(l.metrics, m) }
func (l *Loop) AddObserver(o Observer) { l.observers = append(l.observers, o) }

// Init allocates the grid, spawns the balls, prepares the screen and starts
// the pacer. Balls already placed with SetBalls are kept.
func (l *Loop) Init() error {
	l.sampler = raster.NewSampler(raster.NewGrid(l.cfg.Width, l.cfg.Height), l.cfg.Threshold)
	if l.balls == nil {
		l.balls = field.Spawn(l.rng, l.cfg)
	}
	for i, b := range l.balls {
		logging.Logger().Debug("ball", "index", i, "radius", b.Radius, "x", b.X, "y", b.Y, "vx", b.VX, "vy", b.VY)
	}
	for _, m := range l.metrics {
		m.Reset()
	}
	l.frame = 0

	l.sink.Clear()
	l.sink.HideCursor()
	if err := l.sink.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	l.pacer.Start()
	return nil
}

// SetBalls replaces the ball set, e.g. with a fixed scenario before Init.
func (l *Loop) SetBalls(bs field.Balls) { l.balls = bs }

func (l *Loop) Balls() field.Balls       { return l.balls }
func (l *Loop) Sampler() *raster.Sampler { return l.sampler }
func (l *Loop) Frame() int               { return l.frame }

// Render samples the field and writes one positioned row per grid line,
// then flushes once.
func (l *Loop) Render() error {
	if l.sampler == nil {
		return ErrNotInitialized
	}
	l.sampler.Sample(l.balls)
	for y := 0; y < l.cfg.Height; y++ {
		l.sink.MoveTo(0, y)
		l.sink.WriteString(l.sampler.Row(y, l.cfg.Glyph))
	}
	if err := l.sink.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}

	grid := l.sampler.Grid()
	for _, m := range l.metrics {
		m.OnFrame(l.frame, l.balls, grid)
	}
	for _, obs := range l.observers {
		obs.OnFrame(l.frame, l.balls, grid)
	}
	return nil
}

// Tick renders the current frame and advances the physics one step,
// without pacing.
func (l *Loop) Tick() error {
	if err := l.Render(); err != nil {
		return err
	}
	l.balls.Advance(l.cfg.Width, l.cfg.Height)
	l.frame++
	return nil
}

// Step is one full cycle: render, advance, then wait for the next frame slot.
func (l *Loop) Step() error {
	if err := l.Tick(); err != nil {
		return err
	}
	l.pacer.Wait()
	return nil
}

// Run initializes the loop and steps until ctx is cancelled. The cursor is
// restored on the way out; a failure to do so is returned unless a frame
// already failed.
func (l *Loop) Run(ctx context.Context) (err error) {
	if err := l.Init(); err != nil {
		return err
	}
	log := logging.Logger()
	log.Info("animation started", "width", l.cfg.Width, "height", l.cfg.Height, "balls", len(l.balls), "fps", l.cfg.FPS)

	defer func() {
		l.sink.MoveTo(0, l.cfg.Height-1)
		l.sink.ShowCursor()
		if ferr := l.sink.Flush(); ferr != nil {
			log.Warn("cursor restore failed", "err", ferr)
			if err == nil {
				err = fmt.Errorf("%w: %w", ErrOutput, ferr)
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info("animation stopped", "frames", l.frame)
			return nil
		default:
		}

		if err := l.Step(); err != nil {
			log.Error("frame failed", "frame", l.frame, "err", err)
			return err
		}
	}
}

// Metrics reports the current value of every registered metric.
func (l *Loop) Metrics() map[string]float64 {
	out := make(map[string]float64, len(l.metrics))
	for _, m := range l.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const (
	DefaultGlyph     = "A"
	DefaultBalls     = 3
	DefaultRadiusMin = 3.0
	DefaultRadiusMax = 10.0
	DefaultSpeedMin  = -2.0
	DefaultSpeedMax  = 2.0
	DefaultFPS       = 24
	DefaultThreshold = 1.0
	DefaultPoll      = 10 * time.Millisecond
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	Width     int           `yaml:"width,omitempty"`
	Height    int           `yaml:"height,omitempty"`
	Glyph     string        `yaml:"glyph"`
	Balls     int           `yaml:"balls"`
	Radius    Range         `yaml:"radius"`
	Speed     Range         `yaml:"speed"`
	FPS       int           `yaml:"fps"`
	Threshold float64       `yaml:"threshold"`
	Poll      time.Duration `yaml:"poll"`
	Seed      int64         `yaml:"seed,omitempty"`
}

// Range is a closed interval [Min, Max].
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func (r Range) Span() float64 { return r.Max - r.Min }

// DefaultConfig matches the classic animation: three balls, radius 3..10,
// per-axis speed -2..2, 24 frames per second. Width and Height are left zero
// and filled from the terminal at startup.
func DefaultConfig() *Config {
	return &Config{
		Glyph:     DefaultGlyph,
		Balls:     DefaultBalls,
		Radius:    Range{Min: DefaultRadiusMin, Max: DefaultRadiusMax},
		Speed:     Range{Min: DefaultSpeedMin, Max: DefaultSpeedMax},
		FPS:       DefaultFPS,
		Threshold: DefaultThreshold,
		Poll:      DefaultPoll,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base, so keys missing from the
// file keep base's values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Write encodes cfg as yaml to w.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks that cfg can drive an animation. Width and Height must already be set.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalid, c.Width, c.Height)
	case utf8.RuneCountInString(c.Glyph) != 1:
		return fmt.Errorf("%w: glyph %q must be a single character", ErrInvalid, c.Glyph)
	case c.Balls <= 0:
		return fmt.Errorf("%w: ball count %d must be positive", ErrInvalid, c.Balls)
	case c.Radius.Min <= 0 || c.Radius.Min > c.Radius.Max:
		return fmt.Errorf("%w: radius range [%g, %g]", ErrInvalid, c.Radius.Min, c.Radius.Max)
	case c.Speed.Min > c.Speed.Max:
		return fmt.Errorf("%w: speed range [%g, %g]", ErrInvalid, c.Speed.Min, c.Speed.Max)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d must be positive", ErrInvalid, c.FPS)
	case c.Threshold <= 0:
		return fmt.Errorf("%w: threshold %g must be positive", ErrInvalid, c.Threshold)
	case c.Poll <= 0:
		return fmt.Errorf("%w: poll interval %v must be positive", ErrInvalid, c.Poll)
	}
	return nil
}

// Interval is the target duration of one frame.
func (c *Config) Interval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// MaxSpeed is the largest per-axis velocity magnitude a spawned ball can have.
func (c *Config) MaxSpeed() float64 {
	lo, hi := c.Speed.Min, c.Speed.Max
	if lo < 0 {
		lo = -lo
	}
	if hi < 0 {
		hi = -hi
	}
	if lo > hi {
		return lo
	}
	return hi
}

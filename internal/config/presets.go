package config

import (
	"sort"
	"time"
)

var Presets = map[string]*Config{
	"classic": {
		Glyph: DefaultGlyph, Balls: DefaultBalls, FPS: DefaultFPS, Threshold: DefaultThreshold, Poll: DefaultPoll,
		Radius: Range{Min: DefaultRadiusMin, Max: DefaultRadiusMax},
		Speed:  Range{Min: DefaultSpeedMin, Max: DefaultSpeedMax},
	},
	"lava": {
		Glyph: "#", Balls: 5, FPS: 15, Threshold: 1.2, Poll: DefaultPoll,
		Radius: Range{Min: 4, Max: 8},
		Speed:  Range{Min: -0.6, Max: 0.6},
	},
	"swarm": {
		Glyph: "*", Balls: 12, FPS: 30, Threshold: 1.0, Poll: 5 * time.Millisecond,
		Radius: Range{Min: 1, Max: 3},
		Speed:  Range{Min: -1.5, Max: 1.5},
	},
	"calm": {
		Glyph: "o", Balls: 2, FPS: 12, Threshold: 0.8, Poll: 20 * time.Millisecond,
		Radius: Range{Min: 5, Max: 7},
		Speed:  Range{Min: -0.4, Max: 0.4},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

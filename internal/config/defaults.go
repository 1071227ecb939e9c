package config

import (
	_ "embed"
)

//go:embed defaults/mathcity.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration: a 1124x798 board of
// 40 px cells (28x19), 60 ticks per second, messages shown for 60 ticks.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Width:    1124,
			Height:   798,
			CellSize: 40,
		},
		TickRate:     60,
		MessageTicks: 60,
		ShowHelp:     true,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

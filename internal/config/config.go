// Package config provides YAML-based configuration loading for math city.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// Config contains all tunable settings of a session.
type Config struct {
	Board        BoardConfig `yaml:"board"`
	TickRate     int         `yaml:"tick_rate"`     // frames per second
	MessageTicks int         `yaml:"message_ticks"` // lifetime of a status message
	ShowHelp     bool        `yaml:"show_help"`
	Log          LogConfig   `yaml:"log"`
}

// BoardConfig describes the board in window pixels;
// the grid has Width/CellSize columns and Height/CellSize rows.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// LogConfig controls the session logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty discards output in TUI mode
}

// Columns returns the grid width in cells.
func (b BoardConfig) Columns() int {
	if b.CellSize <= 0 {
		return 0
	}
	return b.Width / b.CellSize
}

// Rows returns the grid height in cells.
func (b BoardConfig) Rows() int {
	if b.CellSize <= 0 {
		return 0
	}
	return b.Height / b.CellSize
}

// Validate reports the first setting that would leave the game unplayable.
func (c Config) Validate() error {
	if c.Board.CellSize <= 0 {
		return fmt.Errorf("config: cell_size must be positive, got %d", c.Board.CellSize)
	}
	if c.Board.Columns() < 1 || c.Board.Rows() < 1 {
		return fmt.Errorf("config: board %dx%d is smaller than one %d px cell",
			c.Board.Width, c.Board.Height, c.Board.CellSize)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.TickRate)
	}
	if c.MessageTicks <= 0 {
		return fmt.Errorf("config: message_ticks must be positive, got %d", c.MessageTicks)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Log.Level. An empty level means info.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, errors.Join(fmt.Errorf("config: unknown log level %q", c.Log.Level), err)
	}
	return lvl, nil
}

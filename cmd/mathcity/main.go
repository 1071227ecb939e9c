// mathcity is a terminal city builder where every building costs a solved
// math problem.
//
// Usage:
//
//	mathcity                 - Start the game (same as play)
//	mathcity play            - Start the game
//	mathcity kinds           - List building kinds and their problems
//	mathcity quiz [kind]     - Practice problems on the console
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.mathcity/config.yaml)
//	--fps <rate>        - Override tick rate
//	--seed <value>      - Set RNG seed for reproducible problems
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mathcity",
	Short: "Math City - build a city by solving math problems",
	Long: `Math City is a terminal city builder. Pick a building, pick a spot
on the grid, and answer an area, perimeter or volume problem to build it.

Available commands:
  play     - Start the game (default)
  kinds    - Show building kinds and their problems
  quiz     - Practice problems without the board

Examples:
  mathcity
  mathcity play --seed 42
  mathcity kinds
  mathcity quiz factory --count 3`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(quizCmd)
}

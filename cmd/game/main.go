// catleap is a single-screen platformer: reach the goal of each level while
// avoiding spikes, timed spikes and patrols.
//
// Usage:
//
//	catleap                      - Play the bundled campaign
//	catleap levels               - List the levels in the campaign
//	catleap replay <file>        - Re-run a recording headlessly and print the outcome
//
// Global flags:
//
//	--config-dir <dir>  - Load configs from disk instead of the bundled copy
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfigDir string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catleap",
	Short: "Cat Leap - a single-screen platformer",
	Long: `Cat Leap is a single-screen platformer. Run, jump and reach the goal
of each level while avoiding spikes, timed spikes and patrols.

Controls:
  Left/Right or A/D   move
  Up, W or Space      jump
  Space or Enter      continue after a level
  F5                  save the recording (with --record)
  Esc                 quit

Examples:
  catleap
  catleap --record run.json
  catleap --config-dir ./configs --watch
  catleap levels
  catleap replay run.json`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Config directory (default: bundled configs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(replayCmd)
}

// platformer is a deterministic side-scrolling platformer for the terminal.
//
// Usage:
//
//	platformer play               - Play the built-in level
//	platformer play --level f.txt - Play a level file
//	platformer verify <replay>    - Re-run a recorded replay and print its hash
//	platformer check <level>      - Validate a level file
//	platformer scores [level]     - Show recorded runs
//	platformer serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.platformer/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Deterministic terminal platformer",
	Long: `A side-scrolling platformer that runs entirely in your terminal.

The simulation is tick-based and fully deterministic: replaying the same
inputs over the same level always produces the same run, verified by a
state hash.

Available commands:
  play     - Play a level (optionally recording a replay)
  verify   - Re-run a recorded replay and print the final state hash
  check    - Validate a level file without playing it
  scores   - View recorded runs
  serve    - Start SSH server for remote play

Examples:
  platformer play
  platformer play --level levels/level1.txt --record run.jsonl
  platformer verify run.jsonl
  platformer check levels/level1.txt
  platformer serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

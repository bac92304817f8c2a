package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

var flagCheckConfig string

var checkCmd = &cobra.Command{
	Use:   "check <level>",
	Short: "Validate a level file",
	Long: `Parse a level file and report its dimensions and contents, or the
first parse error with its row and column.

Examples:
  platformer check levels/level1.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&flagCheckConfig, "config", "", "Path to custom tuning YAML")
}

func runCheck(cmd *cobra.Command, args []string) {
	text, err := level.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading level: %v\n", err)
		os.Exit(1)
	}

	tuning, err := config.Load(flagCheckConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tuning: %v\n", err)
		os.Exit(1)
	}
	simCfg := tuning.ToSim()

	world, err := level.ParseASCII(text, simCfg.TileSize, simCfg.MushroomSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid level: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Level OK: %s\n", args[0])
	fmt.Printf("  Size:      %d x %d tiles\n", world.Width, world.Height)
	fmt.Printf("  Solids:    %d\n", len(world.Solids))
	fmt.Printf("  Coins:     %d\n", len(world.Coins))
	fmt.Printf("  Mushrooms: %d\n", len(world.Mushrooms))
	fmt.Printf("  Enemies:   %d\n", len(world.EnemySpawns))
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/replay"
	"github.com/vovakirdan/tui-platformer/internal/sim"
)

var (
	flagVerifyLevel  string
	flagVerifyConfig string
	flagExpectHash   string
)

var verifyCmd = &cobra.Command{
	Use:   "verify <replay>",
	Short: "Re-run a recorded replay and print its final state hash",
	Long: `Load a replay file, re-run every recorded input over the level it was
recorded on, and print the final tick count, score and state hash.

The replay header names the level; --level overrides it with an explicit
file path ("builtin" in the header means the built-in level). Tuning must
match the recording for the hashes to agree, so pass the same --config.

With --hash the computed hash is compared against the expected value and
the command exits non-zero on mismatch.

Examples:
  platformer verify run.jsonl
  platformer verify run.jsonl --level levels/level1.txt
  platformer verify run.jsonl --hash 9f86d081884c7d65`,
	Args: cobra.ExactArgs(1),
	Run:  runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&flagVerifyLevel, "level", "", "Level file path (overrides the replay header)")
	verifyCmd.Flags().StringVar(&flagVerifyConfig, "config", "", "Path to custom tuning YAML")
	verifyCmd.Flags().StringVar(&flagExpectHash, "hash", "", "Expected final state hash (hex)")
}

func runVerify(cmd *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading replay: %v\n", err)
		os.Exit(1)
	}

	rec, err := replay.Decode(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding replay: %v\n", err)
		os.Exit(1)
	}

	tuning, err := config.Load(flagVerifyConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tuning: %v\n", err)
		os.Exit(1)
	}
	simCfg := tuning.ToSim()

	levelText, err := resolveLevel(rec.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading level: %v\n", err)
		os.Exit(1)
	}

	world, err := level.ParseASCII(levelText, simCfg.TileSize, simCfg.MushroomSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing level: %v\n", err)
		os.Exit(1)
	}

	state := sim.NewState(world, simCfg)
	for _, in := range rec.Inputs {
		state.Step(in)
	}

	hash := sim.HashHex(state)
	fmt.Printf("Ticks:  %d\n", state.Tick)
	fmt.Printf("Phase:  %s\n", state.Phase)
	fmt.Printf("Score:  %d\n", state.Score)
	fmt.Printf("Hash:   %s\n", hash)

	if flagExpectHash != "" && hash != flagExpectHash {
		fmt.Fprintf(os.Stderr, "Hash mismatch: expected %s\n", flagExpectHash)
		os.Exit(1)
	}
}

// resolveLevel picks the level text for a replay: --level wins, then the
// header's level name as a file path, then the built-in level.
func resolveLevel(headerLevel string) (string, error) {
	if flagVerifyLevel != "" {
		return level.Load(flagVerifyLevel)
	}
	if headerLevel == "" || headerLevel == "builtin" {
		return level.FallbackLevel, nil
	}
	return level.Load(headerLevel)
}

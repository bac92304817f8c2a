package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/replay"
	"github.com/vovakirdan/tui-platformer/internal/sim"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagLevel  string
	flagConfig string
	flagRecord string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level",
	Long: `Start playing a level. Without --level the built-in level is used.

Controls:
  ←/a        - Move left
  →/d        - Move right
  Space/↑    - Jump (release early for a shorter jump)
  Enter      - Start (title screen)
  R          - Restart
  Q/Ctrl+C   - Quit

With --record, every simulation tick's input is written to a replay file
on exit; 'platformer verify' can re-run it later.

Examples:
  platformer play
  platformer play --level levels/level1.txt
  platformer play --config ./my-tuning.yaml
  platformer play --record run.jsonl`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Path to level file (built-in level if not specified)")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write a replay of the session to this file")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "platformer"})

	tuning, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tuning: %v\n", err)
		os.Exit(1)
	}
	simCfg := tuning.ToSim()

	levelText := level.FallbackLevel
	levelName := "builtin"
	if flagLevel != "" {
		text, loadErr := level.Load(flagLevel)
		if loadErr != nil {
			logger.Warn("could not load level, using built-in", "path", flagLevel, "error", loadErr)
		} else {
			levelText = text
			levelName = filepath.Base(flagLevel)
		}
	}

	world, err := level.ParseASCII(levelText, simCfg.TileSize, simCfg.MushroomSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing level: %v\n", err)
		os.Exit(1)
	}

	// Terminal size for the initial screen buffer
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	state := sim.NewState(world, simCfg)
	recorded, runErr := tui.Run(state, store, tui.Options{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  flagFPS,
		LevelName: levelName,
		Record:    flagRecord != "",
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if flagRecord != "" {
		if err := writeReplay(flagRecord, levelName, recorded); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing replay: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Replay written to %s (%d ticks)\n", flagRecord, len(recorded))
	}
}

func writeReplay(path, levelName string, inputs []sim.StepInput) error {
	rec := replay.Replay{
		Version: replay.Version,
		Level:   levelName,
		Inputs:  inputs,
	}
	text, err := rec.Encode()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

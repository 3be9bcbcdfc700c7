package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/chaos-arcade/internal/audio"
	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
	"github.com/vovakirdan/chaos-arcade/internal/games/chaosrun"
	"github.com/vovakirdan/chaos-arcade/internal/platform/tui"
	"github.com/vovakirdan/chaos-arcade/internal/registry"
	"github.com/vovakirdan/chaos-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: chaos).

Modes:
  chaos       - The full run: runner, then the snake grid
  chaos_grid  - Practice the snake grid directly

Controls:
  Space/Up/Click   - Start, jump
  Arrows/WASD      - Steer the snake (click steers too)
  P/Esc            - Pause
  Any key          - Restart, once the run is over
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower start, speeds up over time
  normal - Standard start, speeds up over time
  hard   - Faster start, speeds up over time
  fixed  - No speed-up

Examples:
  chaos play
  chaos play chaos_grid
  chaos play --difficulty easy
  chaos play --mute --config ./my-chaos.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable the siren audio")
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. A failure leaves the game playable
// without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// configureGame passes the play flags to the game package. Must run before
// the game is created.
func configureGame() {
	chaosrun.SetConfigPath(flagConfig)
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Warning: unknown difficulty %q, using config defaults\n", flagDifficulty)
	}
	chaosrun.SetDifficultyPreset(flagDifficulty)
}

// closeAudio releases the speaker if one was opened.
func closeAudio(a core.AudioLoop) {
	if s, ok := a.(*audio.Siren); ok {
		s.Close()
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := string(chaosrun.ModeFull)
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'chaos list' to see available modes.")
		os.Exit(1)
	}

	configureGame()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()
	cfg.Audio = audio.Open(flagMute, logger)

	store := openStore()

	runErr := tui.Run(game, store, cfg)

	// Release resources before potential exit
	closeAudio(cfg.Audio)
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// chaos is Chaos Run in the terminal: an endless runner that flips,
// strobes and wails as the score climbs, then turns into a snake game.
//
// Usage:
//
//	chaos list              - List available modes
//	chaos play [mode]       - Play a mode (default: chaos)
//	chaos menu              - Pick modes interactively
//	chaos serve             - Start SSH server for remote play
//	chaos scores [mode]     - Show the best runs
//	chaos config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--log <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/chaos-arcade/internal/games/chaosrun"
	"github.com/vovakirdan/chaos-arcade/internal/platform/tui"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string

	logFile *os.File
	logger  = log.New(os.Stderr)
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chaos",
	Short: "Chaos Run - outrun the chaos in your terminal",
	Long: `Chaos Run is an endless runner where the screen turns against you:
it flips, mirrors, strobes and wails as your score climbs. Survive to the
end and the run collapses into a snake game judged by 22 very strict Judges.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View the best runs
  config   - Print or check configuration

Examples:
  chaos play
  chaos play chaos_grid
  chaos play --difficulty hard --mute
  chaos serve --ssh :2222
  chaos scores chaos`,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (default: discard)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging routes game and platform logs to --log. The terminal
// belongs to the TUI, so logs are discarded without it.
func setupLogging(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagLogPath == "" {
		return nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	fileLogger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	chaosrun.SetLogger(fileLogger.WithPrefix("game"))
	tui.SetLogger(fileLogger.WithPrefix("tui"))
	logger = fileLogger
	return nil
}

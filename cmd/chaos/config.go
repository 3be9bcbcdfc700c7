package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chaos-arcade/internal/config"
)

var flagCheckConfig string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check the game configuration",
	Long: `Print the default configuration as YAML, ready to be copied to
~/.arcade/configs/chaos.yaml and edited. With --check, load and validate a
config file instead.

Examples:
  chaos config > ~/.arcade/configs/chaos.yaml
  chaos config --check ./my-chaos.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheckConfig, "check", "", "Validate this config file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagCheckConfig == "" {
		os.Stdout.Write(config.GetDefaultYAML("chaos"))
		return
	}

	cfg, err := config.LoadChaos(flagCheckConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s is valid: stop score %d, grid %dx%d, %d judges\n",
		flagCheckConfig, cfg.Chaos.StopScore, cfg.Grid.Size, cfg.Grid.Size, cfg.Grid.Collectibles)
}

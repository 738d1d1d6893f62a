package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pingpong/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the tuning in effect",
	Long: `Print the arena, paddle, ball, AI and timing constants as YAML.

Without flags the output is the tuning that would be used after searching
--config, ~/.pingpong/pong.yaml and ./configs/pong.yaml. Save it to one of
those paths to start customizing.

Examples:
  pingpong config
  pingpong config --defaults > ~/.pingpong/pong.yaml
  pingpong config --config ./slow.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	tuning, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(tuning)
	if err != nil {
		return fmt.Errorf("encoding tuning: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}

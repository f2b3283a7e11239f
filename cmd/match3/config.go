package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
)

var (
	flagConfigWrite bool
	flagConfigForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or write the default config",
	Long: `Print the default match 3 config as YAML.

With --write the defaults are saved to ~/.arcade/configs/match3.yaml,
which every later game picks up. An existing file is kept unless
--force is given.

Examples:
  match3 config > my-match3.yaml
  match3 config --write
  match3 play --config my-match3.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigWrite, "write", false, "Write the defaults to the user config file")
	configCmd.Flags().BoolVar(&flagConfigForce, "force", false, "Overwrite an existing user config file")
}

// loadGameConfig loads the config selected by --config and --difficulty.
func loadGameConfig() (config.Match3Config, error) {
	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		if err := config.ApplyMatch3Preset(&cfg, preset); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if !flagConfigWrite {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	path := config.UserMatch3Path()
	if path == "" {
		return errors.New("cannot find the home directory")
	}
	if _, err := os.Stat(path); err == nil && !flagConfigForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

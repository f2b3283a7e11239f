package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const match3File = "match3.yaml"

// LoadMatch3 loads the match-3 configuration.
// Search order: customPath -> ~/.arcade/configs/match3.yaml ->
// ./configs/match3.yaml -> embedded default.
// Fields missing from a file keep their default values. The file's
// difficulty preset is applied before the result is validated.
func LoadMatch3(customPath string) (Match3Config, error) {
	cfg, err := readMatch3(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyMatch3Preset(&cfg, cfg.Difficulty); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func readMatch3(customPath string) (Match3Config, error) {
	cfg := DefaultMatch3Config()

	// A custom path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// The well-known locations are optional and skipped when unreadable
	for _, path := range []string{userConfigPath(match3File), filepath.Join("configs", match3File)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fromFile := DefaultMatch3Config()
		if err := yaml.Unmarshal(data, &fromFile); err == nil {
			return fromFile, nil
		}
	}

	if err := yaml.Unmarshal(defaultMatch3YAML, &cfg); err != nil {
		return DefaultMatch3Config(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path of a file in ~/.arcade/configs, or ""
// when the home directory is unknown.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyMatch3Preset adjusts the kind count and the idle hint delay.
// Fewer kinds mean more matches and longer cascades. The fixed preset and
// the empty preset leave the config untouched.
func ApplyMatch3Preset(cfg *Match3Config, preset DifficultyPreset) error {
	switch preset {
	case "", DifficultyFixed:
	case DifficultyEasy:
		cfg.Board.Kinds = 5
		cfg.Presentation.HintIdleTicks = 180
	case DifficultyNormal:
		cfg.Board.Kinds = 6
		cfg.Presentation.HintIdleTicks = 300
	case DifficultyHard:
		cfg.Board.Kinds = 7
		cfg.Presentation.HintIdleTicks = 600
	default:
		return fmt.Errorf("config: unknown difficulty %q", preset)
	}
	if preset != "" {
		cfg.Difficulty = preset
	}
	return nil
}

// UserMatch3Path returns where LoadMatch3 looks for the user's config file.
func UserMatch3Path() string {
	return userConfigPath(match3File)
}

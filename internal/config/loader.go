package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config sources reported by LoadBlast.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// AppDir is the per-user directory for configs, logs and the score database.
const AppDir = ".tile-blast"

// LoadBlast loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.tile-blast/configs/blast.yaml ->
// ./configs/blast.yaml -> embedded default -> DefaultBlastConfig.
//
// Only a broken customPath is an error; unreadable optional files are skipped.
func LoadBlast(customPath string) (BlastConfig, string, error) {
	var cfg BlastConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{
		UserPath("configs", "blast.yaml"),
		filepath.Join("configs", "blast.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var fileCfg BlastConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			return fileCfg, path, nil
		}
	}

	if err := yaml.Unmarshal(defaultBlastYAML, &cfg); err != nil {
		return DefaultBlastConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// UserPath joins elem under ~/.tile-blast, or returns empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, AppDir}, elem...)...)
}

// ApplyBlastPreset modifies the config based on a difficulty preset.
func ApplyBlastPreset(cfg *BlastConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Endless.PaletteSize = 2
		cfg.Endless.MoveLimit += 5
	case DifficultyHard:
		cfg.Endless.PaletteSize = 4
		cfg.Endless.MoveLimit -= 5
		if cfg.Endless.MoveLimit < 1 {
			cfg.Endless.MoveLimit = 1
		}
	}
}

package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const settingsName = "heroes_ai"

type Settings struct {
	LogLevel string           `mapstructure:"logLevel"`
	Grid     GridSettings     `mapstructure:"grid"`
	Preset   PresetSettings   `mapstructure:"preset"`
	Battle   BattleSettings   `mapstructure:"battle"`
	Skirmish SkirmishSettings `mapstructure:"skirmish"`
	Batch    BatchSettings    `mapstructure:"batch"`
}

type GridSettings struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type PresetSettings struct {
	MaxPerType int `mapstructure:"maxPerType"`
	MaxPoints  int `mapstructure:"maxPoints"`
}

type BattleSettings struct {
	// MaxRounds of 0 lets a battle run until one side is wiped out.
	MaxRounds int `mapstructure:"maxRounds"`
}

type SkirmishSettings struct {
	MoveRange int `mapstructure:"moveRange"`
}

type BatchSettings struct {
	Workers int `mapstructure:"workers"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")

	v.SetDefault("grid.width", 27)
	v.SetDefault("grid.height", 21)

	v.SetDefault("preset.maxPerType", 11)
	v.SetDefault("preset.maxPoints", 1500)

	v.SetDefault("battle.maxRounds", 0)

	v.SetDefault("skirmish.moveRange", 1)

	v.SetDefault("batch.workers", 8)
}

// LoadSettings reads heroes_ai.yaml from dir on top of the defaults. A missing file is
// fine; a malformed one is not. An empty dir returns the defaults.
func LoadSettings(dir string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	if dir != "" {
		v.SetConfigName(settingsName)
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &s, nil
}

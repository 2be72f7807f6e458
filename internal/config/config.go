package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env-default:"info"`
	LogFile  string `yaml:"log-file" env-default:"tictactoe.log"`
	Theme    Theme  `yaml:"theme"`
}

// Theme holds the board colors as hex strings. Defaults mirror the classic
// skin: gray empty cells, red X, blue O.
type Theme struct {
	XColor      string `yaml:"x-color" env-default:"#ff6b6b"`
	OColor      string `yaml:"o-color" env-default:"#4dabf7"`
	CellColor   string `yaml:"cell-color" env-default:"#404040"`
	CursorColor string `yaml:"cursor-color" env-default:"#505050"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

package app

import (
	"errors"
	"flag"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// ConfigEnv names the environment variable holding an optional YAML config path.
const ConfigEnv = "TICTACTOE_CONFIG"

// Config represents the settings for the application. Values come from an
// optional YAML file, then the environment, then command-line flags.
type Config struct {
	Title        string `yaml:"title" env:"TICTACTOE_TITLE" env-default:"Tic-Tac-Toe"`
	AssetDir     string `yaml:"asset-dir" env:"TICTACTOE_ASSET_DIR" env-default:"assets"`
	BoardImage   string `yaml:"board-image" env:"TICTACTOE_BOARD_IMAGE" env-default:"board.png"`
	RestartKey   string `yaml:"restart-key" env:"TICTACTOE_RESTART_KEY" env-default:"space"`
	TPS          int    `yaml:"tps" env:"TICTACTOE_TPS" env-default:"60"`
	LogLevel     string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	KeepConsole  bool   `yaml:"keep-console" env:"TICTACTOE_KEEP_CONSOLE"`
}

// LoadConfig reads the config file at path, or only the environment when
// path is empty.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("read config from env: %w", err)
		}
		return cfg, nil
	}
	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.StringVar(&c.AssetDir, "assets", c.AssetDir, "asset directory")
	fs.StringVar(&c.BoardImage, "board", c.BoardImage, "partition image inside the asset directory")
	fs.StringVar(&c.RestartKey, "restart-key", c.RestartKey, "key that starts a new game after game over")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&c.KeepConsole, "keep-console", c.KeepConsole, "do not clear the terminal when a new game starts")
}

// Validate checks the values that would otherwise fail later in setup.
func (c *Config) Validate() error {
	var errs []error
	if c.AssetDir == "" {
		errs = append(errs, errors.New("asset directory is empty"))
	}
	if c.BoardImage == "" {
		errs = append(errs, errors.New("board image is empty"))
	}
	if c.RestartKey == "" {
		errs = append(errs, errors.New("restart key is empty"))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	return errors.Join(errs...)
}

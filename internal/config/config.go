package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	BotName  string        `yaml:"bot-name" env:"BOT_NAME" env-default:"Bot 🤖"`
	BotDelay time.Duration `yaml:"bot-delay" env:"BOT_DELAY" env-default:"600ms"`
}

// DefaultPath is the configuration file location under the user's
// config directory.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "tictactoe-chatbot", "config.yml")
}

// MustLoad reads the configuration from path, falling back to
// environment variables alone when the file does not exist.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment config: %w", err))
		}
		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

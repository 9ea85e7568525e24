package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/gomokun/internal/apperror"
)

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"GOMOKU_LOG_LEVEL" env-default:"info"`
	BoardSize int     `yaml:"board-size" env:"GOMOKU_BOARD_SIZE" env-default:"0"`
	Results   Results `yaml:"results"`
}

// Results configures the optional scoreboard of finished games.
type Results struct {
	Enabled bool  `yaml:"enabled" env:"GOMOKU_RESULTS_ENABLED" env-default:"false"`
	Redis   Redis `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"GOMOKU_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"GOMOKU_REDIS_PORT" env-default:"6379"`
}

// Load - reads the YAML file at path, then the environment. An empty path reads the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in the config file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Validate - a board size of 0 means the players are asked for it.
func (that *Config) Validate() error {
	if that.BoardSize != 0 && that.BoardSize <= 2 {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidSize, that.BoardSize)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	BoardSize         int           `yaml:"board-size" env:"BOARD_SIZE" env-default:"15"`
	ReplayPause       time.Duration `yaml:"replay-pause" env:"REPLAY_PAUSE" env-default:"1s"`
	Redis             Redis         `yaml:"redis"`
	SQLiteArchivePath string        `yaml:"sqlite-archive-path" env:"SQLITE_ARCHIVE_PATH"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

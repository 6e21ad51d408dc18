package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env-default:"info"`
	Player   int    `yaml:"player" env-default:"1"`
	Strategy string `yaml:"strategy" env-default:"random"`
	GameID   string `yaml:"game-id" env-default:""`
	Server   Server `yaml:"server"`
	Redis    Redis  `yaml:"redis"`
}

type Server struct {
	Host     string `yaml:"host" env-default:"localhost"`
	BasePort int    `yaml:"base-port" env-default:"3333"`
}

// Redis - turn archive storage; an empty host disables archiving.
type Redis struct {
	Host string `yaml:"host" env-default:""`
	Port string `yaml:"port" env-default:"6379"`
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

package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string        `yaml:"log-level" env-default:"info"`
	HTTPPort   string        `yaml:"http-port" env-default:"9090"`
	SocketPort string        `yaml:"socket-port" env-default:"8080"`
	SessionTTL time.Duration `yaml:"session-ttl" env-default:"24h"`
	Redis      Redis         `yaml:"redis"`
	Players    Players       `yaml:"players"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

// Players - the pair seated at every new game, first one moves first.
type Players struct {
	First  PlayerSeat `yaml:"first"`
	Second PlayerSeat `yaml:"second"`
}

type PlayerSeat struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
}

func (that PlayerSeat) orDefault(name, symbol string) PlayerSeat {
	if that.Name == "" {
		that.Name = name
	}

	if that.Symbol == "" {
		that.Symbol = symbol
	}

	return that
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	config.Players.First = config.Players.First.orDefault("Player 1", "X")
	config.Players.Second = config.Players.Second.orDefault("Player 2", "O")

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

package raiderlog

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

// LoadConfig reads the TOML config file and then applies environment
// overrides, so deployments can keep secrets out of the file.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	if err = env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env overrides: %w", err)
	}
	return &cfg, nil
}

type Config struct {
	Log  LogConfig  `toml:"log"`
	Web  WebConfig  `toml:"web"`
	DB   DBConfig   `toml:"db"`
	Auth AuthConfig `toml:"auth"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level" env:"LOG_LEVEL"`
	Format    string     `toml:"format" env:"LOG_FORMAT"`
	AddSource bool       `toml:"add_source" env:"LOG_ADD_SOURCE"`
}

type WebConfig struct {
	Host         string `toml:"host" env:"WEB_HOST"`
	Port         int    `toml:"port" env:"WEB_PORT"`
	AllowOrigins string `toml:"allow_origins" env:"WEB_ALLOW_ORIGINS"`
}

// DBConfig selects the backing store. Driver is either "postgres" or
// "sqlite"; the sqlite fields are ignored for postgres and vice versa.
type DBConfig struct {
	Driver   string `toml:"driver" env:"DB_DRIVER"`
	Host     string `toml:"host" env:"DB_HOST"`
	Port     int    `toml:"port" env:"DB_PORT"`
	User     string `toml:"user" env:"DB_USER"`
	Password string `toml:"password" env:"DB_PASSWORD"`
	Database string `toml:"database" env:"DB_DATABASE"`
	PoolSize int    `toml:"pool_size" env:"DB_POOL_SIZE"`
	Path     string `toml:"path" env:"DB_PATH"`
}

type AuthConfig struct {
	Secret   string `toml:"secret" env:"AUTH_SECRET"`
	Issuer   string `toml:"issuer" env:"AUTH_ISSUER"`
	Audience string `toml:"audience" env:"AUTH_AUDIENCE"`
}

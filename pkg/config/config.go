package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	SourceSampleAPIs = "sampleapis"
	SourceDataDragon = "ddragon"

	StorageDuckDB = "duckdb"
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

type Config struct {
	Source      string        `env:"CHAMPIONS_SOURCE" envDefault:"sampleapis"`
	APIURL      string        `env:"CHAMPIONS_API_URL" envDefault:"https://sampleapis.assimilate.be/lol/champions"`
	DDragonURL  string        `env:"CHAMPIONS_DDRAGON_URL" envDefault:"https://ddragon.leagueoflegends.com/"`
	Language    string        `env:"CHAMPIONS_LANGUAGE" envDefault:"en_US"`
	HTTPTimeout time.Duration `env:"CHAMPIONS_HTTP_TIMEOUT" envDefault:"15s"`

	Storage  string `env:"CHAMPIONS_STORAGE" envDefault:"duckdb"`
	DataDir  string `env:"CHAMPIONS_DATA_DIR"`
	LikedKey string `env:"CHAMPIONS_LIKED_KEY" envDefault:"likedChampionsIds"`
	LogLevel string `env:"CHAMPIONS_LOG_LEVEL" envDefault:"info"`

	Redis RedisConfig
}

type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
}

func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

// Load reads an optional .env file from the working directory and then
// parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse builds the configuration from the current environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".champions")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.Source = strings.ToLower(strings.TrimSpace(c.Source))
	c.Storage = strings.ToLower(strings.TrimSpace(c.Storage))

	switch c.Source {
	case SourceSampleAPIs, SourceDataDragon:
	default:
		return fmt.Errorf("invalid CHAMPIONS_SOURCE %q", c.Source)
	}

	switch c.Storage {
	case StorageDuckDB, StorageSQLite, StorageRedis, StorageMemory:
	default:
		return fmt.Errorf("invalid CHAMPIONS_STORAGE %q", c.Storage)
	}

	if c.LikedKey == "" {
		return errors.New("CHAMPIONS_LIKED_KEY must not be empty")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("invalid CHAMPIONS_HTTP_TIMEOUT %s", c.HTTPTimeout)
	}
	return nil
}

func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "champions."+c.Storage)
}

func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, "champions.log")
}

func (c *Config) ExportDir() string {
	return filepath.Join(c.DataDir, "exports")
}

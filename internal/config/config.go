package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	Env     string        `yaml:"env" env-default:"local"`
	Storage StorageConfig `yaml:"storage"`
	Cache   CacheConfig   `yaml:"cache"`
	Redis   RedisConf     `yaml:"redis"`
	HTTP    HTTPConfig    `yaml:"http"`
}

type StorageConfig struct {
	Backend      string        `yaml:"backend" env:"STORAGE_BACKEND" env-default:"memory"`
	DSN          string        `yaml:"dsn" env:"STORAGE_DSN"`
	QueryTimeout time.Duration `yaml:"query_timeout" env-default:"5s"`
	Seed         bool          `yaml:"seed" env:"STORAGE_SEED" env-default:"true"`
}

type CacheConfig struct {
	Driver string        `yaml:"driver" env:"CACHE_DRIVER" env-default:"local"`
	TTL    time.Duration `yaml:"ttl" env-default:"5m"`
}

type HTTPConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	AdminKey string `yaml:"admin_key" env:"ADMIN_KEY"`
}

type RedisConf struct {
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `yaml:"redispassword" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env-default:"0"`
	// Required makes an unreachable redis at startup fatal instead of a warning.
	Required bool `yaml:"required" env:"REDIS_REQUIRED" env-default:"false"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	if err := cfg.validate(); err != nil {
		panic("invalid config: " + err.Error())
	}

	return &cfg
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendMemory:
	case BackendPostgres:
		if c.Storage.DSN == "" {
			return errors.New("storage.dsn is required for the postgres backend")
		}
	default:
		return fmt.Errorf("storage.backend must be memory or postgres, got %q", c.Storage.Backend)
	}

	switch c.Cache.Driver {
	case "local", "redis", "none":
	default:
		return fmt.Errorf("cache.driver must be local, redis or none, got %q", c.Cache.Driver)
	}

	return nil
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type Config struct {
	Server       ServerConfig `yaml:"server"`
	SeedDemoData bool         `yaml:"seed_demo_data"`
}

func defaults() *Config {
	return &Config{
		Server:       ServerConfig{Port: "8080"},
		SeedDemoData: true,
	}
}

// Load reads the YAML file at path when it exists, then applies environment
// overrides. A missing file is fine — the defaults make the binary
// runnable as-is.
func Load(path string) (*Config, error) {
	cfg := defaults()

	file, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open config %s: %w", path, err)
		}
	} else {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	overrideFromEnv(cfg)
	return cfg, nil
}

func overrideFromEnv(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if seed := os.Getenv("SEED_DEMO_DATA"); seed != "" {
		if parsed, err := strconv.ParseBool(seed); err == nil {
			cfg.SeedDemoData = parsed
		}
	}
}

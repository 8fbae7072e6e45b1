package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/zyreny/zye/store"
)

// Config stores app configuration
type Config struct {
	Server struct {
		Address     string `yaml:"address"`
		Timeout     int    `yaml:"timeout"`
		OtlpAddress string `yaml:"otlp_address"`
		BaseURL     string `yaml:"base_url"`
	} `yaml:"server"`
	Auth struct {
		APIKeyHash string `yaml:"api_key_hash"`
	} `yaml:"auth"`
	Redis struct {
		Address string `yaml:"address"`
	} `yaml:"redis"`
	store.MongoConfig  `yaml:"mongo"`
	store.SQLiteConfig `yaml:"sqlite"`
}

// ConfigPath returns the config file path, checking the ZYE_CONFIG
// environment variable (an .env file is loaded first if present)
func ConfigPath(fallback string) string {
	_ = godotenv.Load()
	if p := os.Getenv("ZYE_CONFIG"); p != "" {
		return p
	}
	return fallback
}

// AppConfig reads config from file and creates config struct
func AppConfig(cfgPath string, logger *zap.Logger) (*Config, error) {
	f, err := os.Open(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("can't open config file: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			logger.Error("can't close config file: %w", zap.Error(err))
		}
	}()

	cfg := new(Config)
	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("can't decode config file: %w", err)
	}
	return cfg, nil
}

package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"
)

type Config struct {
	MongoURI          string           `json:"mongo_uri"`
	MongoDatabase     string           `json:"mongo_database"`
	JWTSecret         string           `json:"jwt_secret"`
	Port              int              `json:"port"`
	RequestTimeoutSec int              `json:"request_timeout_seconds"`
	CORSAllowlist     []string         `json:"cors_allowlist"`
	LogConfig         logger.LogConfig `json:"log_config"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("mongo_uri is required")
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = "todod"
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required")
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.RequestTimeoutSec == 0 {
		cfg.RequestTimeoutSec = 10
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	return &cfg, nil
}

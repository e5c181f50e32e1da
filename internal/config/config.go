// Package config содержит логику чтения конфигурации сервиса лавки.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Режимы работы склада.
const (
	InventoryModeUnit   = "unit"
	InventoryModeGraded = "graded"
)

// Config содержит параметры конфигурации сервиса лавки.
type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	InventoryMode string `env:"INVENTORY_MODE"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных
// окружения; переменные окружения имеют приоритет.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envInventoryMode := cfg.InventoryMode

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "address and port for HTTP server")
	flag.StringVar(&cfg.InventoryMode, "i", InventoryModeGraded, "inventory mode: unit or graded")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envInventoryMode != "" {
		cfg.InventoryMode = envInventoryMode
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = "localhost:8080"
	}
	if cfg.InventoryMode == "" {
		cfg.InventoryMode = InventoryModeGraded
	}

	if cfg.InventoryMode != InventoryModeUnit && cfg.InventoryMode != InventoryModeGraded {
		return nil, fmt.Errorf("unknown inventory mode: %q", cfg.InventoryMode)
	}

	return cfg, nil
}

package config

import (
	"fmt"
	"path/filepath"

	pkgconfig "github.com/dReyko-sff/herreria-backend1/pkg/config"
)

// Config holds all configuration for the service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// Data files. Each collection lives in its own JSON file under DataDir.
	DataDir      string `env:"DATA_DIR" envDefault:"./data"`
	ProductsFile string `env:"PRODUCTS_FILE" envDefault:"products.json"`
	CartsFile    string `env:"CARTS_FILE" envDefault:"carts.json"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.HTTPPort < 1 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("invalid HTTP port: %d", cfg.HTTPPort)
	}
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("DATA_DIR is required")
	}
	if cfg.ProductsFile == cfg.CartsFile {
		return nil, fmt.Errorf("PRODUCTS_FILE and CARTS_FILE must differ: %s", cfg.ProductsFile)
	}
	return cfg, nil
}

// ProductsPath returns the full path of the product collection file.
func (c *Config) ProductsPath() string {
	return filepath.Join(c.DataDir, c.ProductsFile)
}

// CartsPath returns the full path of the cart collection file.
func (c *Config) CartsPath() string {
	return filepath.Join(c.DataDir, c.CartsFile)
}

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "products.json", cfg.ProductsFile)
	assert.Equal(t, "carts.json", cfg.CartsFile)
}

func TestLoad_InvalidHTTPPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "0")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid HTTP port")
}

func TestLoad_SameCollectionFile(t *testing.T) {
	t.Setenv("PRODUCTS_FILE", "store.json")
	t.Setenv("CARTS_FILE", "store.json")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must differ")
}

func TestLoad_CustomDataDir(t *testing.T) {
	t.Setenv("DATA_DIR", "/var/lib/herreria")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/var/lib/herreria", "products.json"), cfg.ProductsPath())
	assert.Equal(t, filepath.Join("/var/lib/herreria", "carts.json"), cfg.CartsPath())
}

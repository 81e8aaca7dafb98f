package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, ":8081", cfg.HTTPAddr)
	assert.Equal(t, 20, cfg.StockThreshold)
	assert.False(t, cfg.StrictStatus)
	assert.True(t, cfg.SeedCatalog)
	assert.Equal(t, []string{"kafka:9092"}, cfg.KafkaBrokers)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STOCK_THRESHOLD", "5")
	t.Setenv("STATUS_STRICT", "true")
	t.Setenv("KAFKA_BROKERS", "a:9092, b:9092 ,")
	t.Setenv("SEED_CATALOG", "false")

	cfg := Load()
	assert.Equal(t, 5, cfg.StockThreshold)
	assert.True(t, cfg.StrictStatus)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.KafkaBrokers)
	assert.False(t, cfg.SeedCatalog)
}

func TestLoadIgnoresGarbageValues(t *testing.T) {
	t.Setenv("STOCK_THRESHOLD", "lots")
	t.Setenv("STATUS_STRICT", "yep")

	cfg := Load()
	assert.Equal(t, 20, cfg.StockThreshold)
	assert.False(t, cfg.StrictStatus)
}

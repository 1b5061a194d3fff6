package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("STATE_TTL", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"localhost:9092", "localhost:9093", "localhost:9094"}, cfg.KafkaBrokers)
	assert.Equal(t, 30*24*time.Hour, cfg.StateTTL)
	assert.Equal(t, "6281234567890", cfg.WhatsAppNumber)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("CATALOG_CACHE_TTL", "5m")
	t.Setenv("RATE_BURST", "3")
	t.Setenv("DB_USER", "khaleed")
	t.Setenv("DB_PASS", "pw")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_NAME", "menu")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
	assert.Equal(t, 3, cfg.RateBurst)
	assert.Equal(t, "khaleed:pw@tcp(db:3307)/menu?parseTime=true", cfg.DSN())
}

func TestLocation_FallsBackToUTC(t *testing.T) {
	cfg := Config{TimeZone: "Nowhere/Special"}
	assert.Equal(t, time.UTC, cfg.Location())
}

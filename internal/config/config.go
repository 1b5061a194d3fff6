package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds the storefront service settings, read from the environment.
type Config struct {
	Port string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	RedisAddr string

	KafkaBrokers  []string
	ProductTopic  string
	ConsumerGroup string

	JWTSecret      string
	WhatsAppNumber string
	TimeZone       string

	StateTTL        time.Duration
	CatalogCacheTTL time.Duration
	RateLimit       float64
	RateBurst       int
	LockStripes     int
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	return Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		DBHost:          getEnvOrDefault("DB_HOST", "127.0.0.1"),
		DBPort:          getEnvOrDefault("DB_PORT", "3306"),
		DBUser:          getEnvOrDefault("DB_USER", "root"),
		DBPass:          getEnvOrDefault("DB_PASS", ""),
		DBName:          getEnvOrDefault("DB_NAME", "khaleed-db"),
		RedisAddr:       getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		KafkaBrokers:    getKafkaBrokerURLs(),
		ProductTopic:    getEnvOrDefault("KAFKA_PRODUCT_TOPIC", "product-topic"),
		ConsumerGroup:   getEnvOrDefault("KAFKA_GROUP_ID", "storefront-service-group"),
		JWTSecret:       getEnvOrDefault("JWT_SECRET", "secret"),
		WhatsAppNumber:  getEnvOrDefault("WHATSAPP_NUMBER", "6281234567890"),
		TimeZone:        getEnvOrDefault("STORE_TIMEZONE", "Asia/Jakarta"),
		StateTTL:        getDurationOrDefault("STATE_TTL", 30*24*time.Hour),
		CatalogCacheTTL: getDurationOrDefault("CATALOG_CACHE_TTL", time.Minute),
		RateLimit:       getFloatOrDefault("RATE_LIMIT", 5),
		RateBurst:       getIntOrDefault("RATE_BURST", 10),
		LockStripes:     getIntOrDefault("LOCK_STRIPES", 64),
	}
}

// DSN is the go-sql-driver/mysql data source name.
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}

// Location resolves the store's time zone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		log.Warn().Err(err).Msgf("Unknown time zone %q, using UTC", c.TimeZone)
		return time.UTC
	}
	return loc
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getFloatOrDefault(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

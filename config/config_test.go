package config_test

import (
	"slices"
	"testing"
	"time"

	cfg "github.com/solrxtin/mprimo-core/config"
)

// TestLoadWithPrefix_Defaults — проверка наличия значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("MPRIMO_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" || c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP defaults wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.WriteTimeout != 10*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadHeaderTimeout != 5*time.Second || c.HTTP.IdleTimeout != 60*time.Second {
		t.Fatalf("HTTP header/idle timeouts wrong: %+v", c.HTTP)
	}

	// Metrics
	if c.Metrics.Addr != ":2112" {
		t.Fatalf("Metrics.Addr: want :2112, got %q", c.Metrics.Addr)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "mprimo-core" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Postgres
	if c.Postgres.DSN == "" || c.Postgres.MaxConns != 10 {
		t.Fatalf("Postgres defaults wrong: %+v", c.Postgres)
	}

	// Redis
	if c.Redis.Addr != "redis:6379" || c.Redis.DB != 0 {
		t.Fatalf("Redis defaults wrong: %+v", c.Redis)
	}

	// Kafka
	if !slices.Equal(c.Kafka.Brokers, []string{"kafka:9092"}) {
		t.Fatalf("Kafka.Brokers: want [kafka:9092], got %v", c.Kafka.Brokers)
	}
	if c.Kafka.Topic != "tracking-events" || c.Kafka.StartOffset != "last" {
		t.Fatalf("Kafka defaults wrong: %+v", c.Kafka)
	}

	// Cache TTLs
	if c.Cache.CartTTL != 30*time.Minute || c.Cache.ProductTTL != 10*time.Minute {
		t.Fatalf("Cache defaults wrong: %+v", c.Cache)
	}

	// Lock
	if c.Lock.TTL != 10*time.Second {
		t.Fatalf("Lock.TTL: want 10s, got %v", c.Lock.TTL)
	}

	// Analytics
	if c.Analytics.BufferSize != 1024 || c.Analytics.FlushInterval != time.Hour {
		t.Fatalf("Analytics defaults wrong: %+v", c.Analytics)
	}

	// Payment
	if c.Payment.ProcessTimeout != 15*time.Second || c.Payment.RefundTimeout != 10*time.Second {
		t.Fatalf("Payment timeouts wrong: %+v", c.Payment)
	}

	// Logger
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// Меняем окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "MPRIMO_TEST_OVR"

	t.Setenv(p+"_HTTP_ADDR", ":9999")
	t.Setenv(p+"_HTTP_GIN_MODE", "release")
	t.Setenv(p+"_POSTGRES_DSN", "postgres://u:p@h:5432/db?sslmode=disable")
	t.Setenv(p+"_POSTGRES_MAX_CONNS", "42")
	t.Setenv(p+"_REDIS_ADDR", "cache:6380")
	t.Setenv(p+"_REDIS_DB", "3")
	t.Setenv(p+"_KAFKA_BROKERS", "k1:9092,k2:9093")
	t.Setenv(p+"_KAFKA_TOPIC", "events-test")
	t.Setenv(p+"_CACHE_CART_TTL", "5m")
	t.Setenv(p+"_LOCK_TTL", "30s")
	t.Setenv(p+"_ANALYTICS_FLUSH_INTERVAL", "15m")
	t.Setenv(p+"_ANALYTICS_BUFFER_SIZE", "64")
	t.Setenv(p+"_PAYMENT_BASE_URL", "http://pay.test")
	t.Setenv(p+"_PAYMENT_PROCESS_TIMEOUT", "7s")
	t.Setenv(p+"_LOGGER_IS_PROD", "true")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	if c.HTTP.Addr != ":9999" || c.HTTP.GinMode != "release" {
		t.Fatalf("HTTP overrides wrong: %+v", c.HTTP)
	}
	if c.Postgres.DSN != "postgres://u:p@h:5432/db?sslmode=disable" || c.Postgres.MaxConns != 42 {
		t.Fatalf("Postgres overrides wrong: %+v", c.Postgres)
	}
	if c.Redis.Addr != "cache:6380" || c.Redis.DB != 3 {
		t.Fatalf("Redis overrides wrong: %+v", c.Redis)
	}
	if !slices.Equal(c.Kafka.Brokers, []string{"k1:9092", "k2:9093"}) || c.Kafka.Topic != "events-test" {
		t.Fatalf("Kafka overrides wrong: %+v", c.Kafka)
	}
	if c.Cache.CartTTL != 5*time.Minute {
		t.Fatalf("Cache.CartTTL override wrong: %v", c.Cache.CartTTL)
	}
	if c.Lock.TTL != 30*time.Second {
		t.Fatalf("Lock.TTL override wrong: %v", c.Lock.TTL)
	}
	if c.Analytics.FlushInterval != 15*time.Minute || c.Analytics.BufferSize != 64 {
		t.Fatalf("Analytics overrides wrong: %+v", c.Analytics)
	}
	if c.Payment.BaseURL != "http://pay.test" || c.Payment.ProcessTimeout != 7*time.Second {
		t.Fatalf("Payment overrides wrong: %+v", c.Payment)
	}
	if !c.Logger.IsProd {
		t.Fatalf("Logger.IsProd override wrong: %+v", c.Logger)
	}
}

// Тоже меняем окружение — но с невалидным значением.
func TestLoadWithPrefix_InvalidValue_ReturnsError(t *testing.T) {
	const p = "MPRIMO_TEST_BAD"
	t.Setenv(p+"_PAYMENT_PROCESS_TIMEOUT", "not-a-duration")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected error for invalid duration, got nil")
	}
}

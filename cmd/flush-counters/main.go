package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/solrxtin/mprimo-core/config"
	"github.com/solrxtin/mprimo-core/internal/analytics"
	rediscache "github.com/solrxtin/mprimo-core/internal/cache/redis"
	"github.com/solrxtin/mprimo-core/internal/repo/postgres"
	"github.com/solrxtin/mprimo-core/pkg/logger"
)

// CLI-приложение для ручного слива счётчиков Redis в дневную статистику.
// Используется при остановленном сервисе или из cron вне штатного интервала.
func main() {
	_ = godotenv.Load(".env.local")
	timeout := flag.Duration("timeout", 30*time.Second, "flush deadline")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = cleanupLogger() }()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	kv, err := rediscache.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "redis: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = kv.Close() }()

	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "postgres: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	flusher := analytics.NewFlusher(kv, postgres.NewAnalyticsRepository(pool), logg, 0)
	if err := flusher.FlushNow(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "flush: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "counters flushed")
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/solrxtin/mprimo-core/internal/domain"
	"github.com/solrxtin/mprimo-core/internal/ports"
)

// Проверка, что AnalyticsRepository удовлетворяет интерфейсу AnalyticsRepository.
var _ ports.AnalyticsRepository = (*AnalyticsRepository)(nil)

// AnalyticsRepository — суточные агрегаты на Postgres (pgxpool).
type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

// UpsertDaily — аддитивный upsert по (entity_id, entity_type, day):
// повторный слив за тот же день прибавляет, а не перетирает.
func (r *AnalyticsRepository) UpsertDaily(ctx context.Context, stats domain.DailyStats) error {
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO analytics_daily (
			entity_id, entity_type, day, views, clicks, add_to_cart, purchases, revenue_cents
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (entity_id, entity_type, day) DO UPDATE SET
			views = analytics_daily.views + EXCLUDED.views,
			clicks = analytics_daily.clicks + EXCLUDED.clicks,
			add_to_cart = analytics_daily.add_to_cart + EXCLUDED.add_to_cart,
			purchases = analytics_daily.purchases + EXCLUDED.purchases,
			revenue_cents = analytics_daily.revenue_cents + EXCLUDED.revenue_cents
	`,
		stats.EntityID, stats.EntityType, stats.Day,
		stats.Views, stats.Clicks, stats.AddToCart, stats.Purchases, stats.RevenueCents,
	); err != nil {
		return fmt.Errorf("upsert daily stats: %w", err)
	}
	return nil
}

package analytics

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/solrxtin/mprimo-core/internal/domain"
	"github.com/solrxtin/mprimo-core/internal/ports"
	"github.com/solrxtin/mprimo-core/pkg/metrics"
)

// Flusher — периодический слив эфемерных счётчиков в analytics_daily.
// Порядок строго «сначала upsert, потом DEL»: при падении между ними
// счётчики сольются повторно (at-least-once, возможен дубль за день),
// обратный порядок терял бы данные насовсем.
type Flusher struct {
	kv       ports.KeyValueCache
	repo     ports.AnalyticsRepository
	log      ports.Logger
	interval time.Duration
}

func NewFlusher(kv ports.KeyValueCache, repo ports.AnalyticsRepository, log ports.Logger, interval time.Duration) *Flusher {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Flusher{kv: kv, repo: repo, log: log, interval: interval}
}

// Run — цикл по тикеру до отмены контекста.
func (f *Flusher) Run(ctx context.Context) {
	f.log.Infof(ctx, "analytics flusher: started (interval=%s)", f.interval)
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			f.log.Infof(ctx, "analytics flusher: stopped")
			return
		case <-ticker.C:
			if err := f.FlushNow(ctx); err != nil {
				f.log.Errorf(ctx, "analytics flusher: %v", err)
			}
		}
	}
}

// entityStats — накопленные за проход счётчики одной сущности
// вместе с ключами, которые надо удалить после upsert'а.
type entityStats struct {
	stats domain.DailyStats
	keys  []string
}

// FlushNow — один проход: SCAN счётчиков, аддитивный upsert по сущностям,
// удаление слитых ключей. Ошибка одной сущности не прерывает остальные.
func (f *Flusher) FlushNow(ctx context.Context) error {
	day := time.Now().UTC().Truncate(24 * time.Hour)

	acc := make(map[string]*entityStats)

	eventKeys, err := f.kv.Scan(ctx, "events:*")
	if err != nil {
		metrics.FlushErrors.Inc()
		return err
	}
	for _, k := range eventKeys {
		// events:{entityType}:{entityId}:{eventType}
		parts := strings.SplitN(k, ":", 4)
		if len(parts) != 4 {
			f.log.Warnf(ctx, "analytics flush: skipping malformed key %q", k)
			continue
		}
		// тип распознаём до statsFor: нераспознанный ключ не должен
		// порождать пустую запись в analytics_daily
		typ := domain.EventType(parts[3])
		if !domain.ValidEventType(typ) {
			f.log.Warnf(ctx, "analytics flush: skipping unknown event key %q", k)
			continue
		}
		n, ok := f.readCounter(ctx, k)
		if !ok {
			continue
		}
		st := f.statsFor(acc, parts[1], parts[2], day)
		switch typ {
		case domain.EventView:
			st.stats.Views += n
		case domain.EventClick:
			st.stats.Clicks += n
		case domain.EventAddToCart:
			st.stats.AddToCart += n
		case domain.EventPurchase:
			st.stats.Purchases += n
		}
		st.keys = append(st.keys, k)
	}

	revenueKeys, err := f.kv.Scan(ctx, "revenue:*")
	if err != nil {
		metrics.FlushErrors.Inc()
		return err
	}
	for _, k := range revenueKeys {
		// revenue:{entityType}:{entityId}
		parts := strings.SplitN(k, ":", 3)
		if len(parts) != 3 {
			f.log.Warnf(ctx, "analytics flush: skipping malformed key %q", k)
			continue
		}
		n, ok := f.readCounter(ctx, k)
		if !ok {
			continue
		}
		st := f.statsFor(acc, parts[1], parts[2], day)
		st.stats.RevenueCents += n
		st.keys = append(st.keys, k)
	}

	var errs []error
	for _, st := range acc {
		if err := f.repo.UpsertDaily(ctx, st.stats); err != nil {
			metrics.FlushErrors.Inc()
			errs = append(errs, err)
			continue // ключи остаются: досольются следующим проходом
		}
		if err := f.kv.Delete(ctx, st.keys...); err != nil {
			metrics.FlushErrors.Inc()
			f.log.Warnf(ctx, "analytics flush: delete drained keys %v: %v", st.keys, err)
			continue
		}
		metrics.CountersFlushed.Add(float64(len(st.keys)))
	}
	return errors.Join(errs...)
}

func (f *Flusher) statsFor(acc map[string]*entityStats, entityType, entityID string, day time.Time) *entityStats {
	id := entityType + ":" + entityID
	st, ok := acc[id]
	if !ok {
		st = &entityStats{stats: domain.DailyStats{
			EntityID:   entityID,
			EntityType: entityType,
			Day:        day,
		}}
		acc[id] = st
	}
	return st
}

// readCounter — значение ключа как int64; пропавший или нечисловой
// ключ пропускается.
func (f *Flusher) readCounter(ctx context.Context, key string) (int64, bool) {
	raw, err := f.kv.Get(ctx, key)
	if errors.Is(err, ports.ErrCacheMiss) {
		return 0, false
	}
	if err != nil {
		metrics.FlushErrors.Inc()
		f.log.Warnf(ctx, "analytics flush: get %q: %v", key, err)
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f.log.Warnf(ctx, "analytics flush: non-numeric counter %q=%q", key, raw)
		return 0, false
	}
	return n, true
}

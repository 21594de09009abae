package cached

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/solrxtin/mprimo-core/internal/ports"
	"github.com/solrxtin/mprimo-core/pkg/metrics"
)

// Loader — сквозное чтение через кэш для одной сущности.
// Кэш вспомогательный: любая его ошибка логируется и поглощается,
// источником истины остаётся durable-хранилище (loader).
type Loader[T any] struct {
	kv     ports.KeyValueCache
	log    ports.Logger
	entity string // метка для метрик: "cart", "product", ...
	ttl    time.Duration
}

func NewLoader[T any](kv ports.KeyValueCache, log ports.Logger, entity string, ttl time.Duration) *Loader[T] {
	return &Loader[T]{kv: kv, log: log, entity: entity, ttl: ttl}
}

// GetOrLoad — сначала кэш, при промахе или ошибке — load из хранилища
// с последующей записью значения в кэш (best-effort).
func (l *Loader[T]) GetOrLoad(ctx context.Context, key string, load func(context.Context) (T, error)) (T, error) {
	var zero T

	raw, err := l.kv.Get(ctx, key)
	switch {
	case err == nil:
		var v T
		if uerr := json.Unmarshal([]byte(raw), &v); uerr == nil {
			metrics.CacheOps.WithLabelValues(l.entity, "hit").Inc()
			return v, nil
		}
		// битая запись — убираем и идём в хранилище
		l.log.Warnf(ctx, "cache: corrupt entry %q, dropping: unmarshal failed", key)
		_ = l.kv.Delete(ctx, key)
	case errors.Is(err, ports.ErrCacheMiss):
		metrics.CacheOps.WithLabelValues(l.entity, "miss").Inc()
	default:
		metrics.CacheOps.WithLabelValues(l.entity, "error").Inc()
		l.log.Warnf(ctx, "cache: get %q: %v", key, err)
	}

	v, err := load(ctx)
	if err != nil {
		return zero, err
	}

	l.Store(ctx, key, v)
	return v, nil
}

// Store — сериализует и кладёт значение в кэш. Ошибки не возвращаются:
// чтение из хранилища уже успело, терять результат из-за кэша нельзя.
func (l *Loader[T]) Store(ctx context.Context, key string, v T) {
	raw, err := json.Marshal(v)
	if err != nil {
		l.log.Warnf(ctx, "cache: marshal %q: %v", key, err)
		return
	}
	if err := l.kv.Set(ctx, key, string(raw), l.ttl); err != nil {
		metrics.CacheOps.WithLabelValues(l.entity, "error").Inc()
		l.log.Warnf(ctx, "cache: set %q: %v", key, err)
		return
	}
	metrics.CacheOps.WithLabelValues(l.entity, "set").Inc()
}

// Invalidate — удаляет ключи после записи в хранилище (write-through).
func (l *Loader[T]) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := l.kv.Delete(ctx, keys...); err != nil {
		metrics.CacheOps.WithLabelValues(l.entity, "error").Inc()
		l.log.Warnf(ctx, "cache: delete %v: %v", keys, err)
		return
	}
	metrics.CacheOps.WithLabelValues(l.entity, "invalidate").Inc()
}

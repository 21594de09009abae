package analytics

import (
	"context"

	"github.com/solrxtin/mprimo-core/internal/domain"
	"github.com/solrxtin/mprimo-core/internal/ports"
	"github.com/solrxtin/mprimo-core/pkg/metrics"
)

// Проверка, что Tracker удовлетворяет интерфейсу EventTracker.
var _ ports.EventTracker = (*Tracker)(nil)

// popularSet — рейтинг товаров по просмотрам (sorted set).
const popularSet = "popular:products"

// Tracker — приём событий аналитики без блокировки вызывающего:
// Track кладёт событие в буферизованный канал, воркер инкрементирует
// счётчики в KV. Переполненный буфер — события отбрасываются
// (деградация допустима, заказы важнее статистики).
type Tracker struct {
	kv     ports.KeyValueCache
	log    ports.Logger
	events chan domain.Event
}

func NewTracker(kv ports.KeyValueCache, log ports.Logger, bufferSize int) *Tracker {
	if bufferSize <= 0 {
		bufferSize = 1024
	}
	return &Tracker{
		kv:     kv,
		log:    log,
		events: make(chan domain.Event, bufferSize),
	}
}

// Track — неблокирующая передача события воркеру.
func (t *Tracker) Track(e domain.Event) {
	if !domain.ValidEventType(e.Type) || e.EntityID == "" {
		return
	}
	select {
	case t.events <- e:
		metrics.EventsTracked.WithLabelValues(string(e.Type)).Inc()
	default:
		metrics.EventsDropped.Inc()
		t.log.Warnf(context.Background(), "analytics: buffer full, dropping %s for %s", e.Type, e.EntityID)
	}
}

// Run — воркер: применяет события к счётчикам до отмены контекста.
func (t *Tracker) Run(ctx context.Context) {
	t.log.Infof(ctx, "analytics tracker: started (buffer=%d)", cap(t.events))
	for {
		select {
		case <-ctx.Done():
			t.log.Infof(ctx, "analytics tracker: stopped")
			return
		case e := <-t.events:
			t.apply(ctx, e)
		}
	}
}

// apply — инкременты best-effort: ошибка KV логируется, событие теряется.
func (t *Tracker) apply(ctx context.Context, e domain.Event) {
	if _, err := t.kv.IncrBy(ctx, eventKey(e.EntityType, e.EntityID, e.Type), 1); err != nil {
		t.log.Warnf(ctx, "analytics: incr %s for %s: %v", e.Type, e.EntityID, err)
		return
	}

	if e.Type == domain.EventPurchase && e.AmountCents > 0 {
		if _, err := t.kv.IncrBy(ctx, revenueKey(e.EntityType, e.EntityID), e.AmountCents); err != nil {
			t.log.Warnf(ctx, "analytics: incr revenue for %s: %v", e.EntityID, err)
		}
	}

	if e.Type == domain.EventView && e.EntityType == "product" {
		if err := t.kv.ZIncrBy(ctx, popularSet, e.EntityID, 1); err != nil {
			t.log.Warnf(ctx, "analytics: rank view for %s: %v", e.EntityID, err)
		}
	}
}

func eventKey(entityType, entityID string, t domain.EventType) string {
	return "events:" + entityType + ":" + entityID + ":" + string(t)
}

func revenueKey(entityType, entityID string) string {
	return "revenue:" + entityType + ":" + entityID
}

package domain

import "time"

// EventType — тип пользовательского события.
type EventType string

const (
	EventView      EventType = "view"
	EventClick     EventType = "click"
	EventAddToCart EventType = "add_to_cart"
	EventPurchase  EventType = "purchase"
)

// ValidEventType — проверка принадлежности к известным типам.
func ValidEventType(t EventType) bool {
	switch t {
	case EventView, EventClick, EventAddToCart, EventPurchase:
		return true
	}
	return false
}

// Event — fire-and-forget событие аналитики.
// AmountCents имеет смысл только для purchase (minor units, без float).
type Event struct {
	EntityID    string    `json:"entity_id"`
	EntityType  string    `json:"entity_type"`
	Type        EventType `json:"event_type"`
	UserID      string    `json:"user_id,omitempty"`
	AmountCents int64     `json:"amount_cents,omitempty"`
}

// DailyStats — суточная аналитическая запись (одна на сущность и день),
// пополняется аддитивным upsert'ом при сливе счётчиков.
type DailyStats struct {
	EntityID     string    `json:"entity_id"`
	EntityType   string    `json:"entity_type"`
	Day          time.Time `json:"day"`
	Views        int64     `json:"views"`
	Clicks       int64     `json:"clicks"`
	AddToCart    int64     `json:"add_to_cart"`
	Purchases    int64     `json:"purchases"`
	RevenueCents int64     `json:"revenue_cents"`
}

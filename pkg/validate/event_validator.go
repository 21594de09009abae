package validate

import (
	"context"
	"fmt"
	"strings"

	"github.com/solrxtin/mprimo-core/internal/domain"
	"github.com/solrxtin/mprimo-core/internal/ports"
)

// Проверка, что EventValidator удовлетворяет интерфейсу EventValidator.
var _ ports.EventValidator = (*EventValidator)(nil)

// EventValidator — структура для валидации событий аналитики.
// Оборачивает причину в domain.ErrValidation: по этой ошибке
// HTTP отвечает 400, а консьюмер пропускает сообщение навсегда.
type EventValidator struct{}

// NewEventValidator — конструктор EventValidator.
func NewEventValidator() *EventValidator { return &EventValidator{} }

// Validate — проверяет корректность полей события.
// Двоеточие в entity_id/entity_type запрещено: из этих полей
// собираются Redis-ключи `events:{type}:{id}:{event}`, и лишний
// разделитель делает ключ неразбираемым для слива счётчиков.
func (v *EventValidator) Validate(_ context.Context, event domain.Event) error {
	if event.EntityID == "" {
		return fmt.Errorf("%w: entity_id обязателен", domain.ErrValidation)
	}
	if event.EntityType == "" {
		return fmt.Errorf("%w: entity_type обязателен", domain.ErrValidation)
	}
	if strings.Contains(event.EntityID, ":") {
		return fmt.Errorf("%w: entity_id не должен содержать ':'", domain.ErrValidation)
	}
	if strings.Contains(event.EntityType, ":") {
		return fmt.Errorf("%w: entity_type не должен содержать ':'", domain.ErrValidation)
	}
	if !domain.ValidEventType(event.Type) {
		return fmt.Errorf("%w: неизвестный event_type %q", domain.ErrValidation, event.Type)
	}
	if event.Type == domain.EventPurchase && event.AmountCents < 0 {
		return fmt.Errorf("%w: amount_cents должен быть неотрицательным", domain.ErrValidation)
	}
	return nil
}

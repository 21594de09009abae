package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/solrxtin/mprimo-core/internal/domain"
	"github.com/solrxtin/mprimo-core/internal/ports"
)

// EventService — приём событий аналитики из обоих источников
// (HTTP и Kafka) с одинаковой валидацией.
type EventService struct {
	tracker   ports.EventTracker
	validator ports.EventValidator // прямой доступ к валидатору
	log       ports.Logger
}

func NewEventService(tracker ports.EventTracker, validator ports.EventValidator, log ports.Logger) *EventService {
	return &EventService{tracker: tracker, validator: validator, log: log}
}

// Track — валидация и передача события трекеру (fire-and-forget).
func (s *EventService) Track(ctx context.Context, e domain.Event) error {
	if err := s.validator.Validate(ctx, e); err != nil {
		return err
	}
	s.tracker.Track(e)
	return nil
}

// IngestEvent — событие из Kafka (raw JSON). Строгий парсинг:
// неизвестные поля и мусор после объекта — ошибка валидации,
// такие сообщения пропускаются навсегда.
func (s *EventService) IngestEvent(ctx context.Context, raw []byte) error {
	var e domain.Event
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&e); err != nil {
		return fmt.Errorf("%w: invalid json: %v", domain.ErrValidation, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return fmt.Errorf("%w: trailing data after event", domain.ErrValidation)
	}
	return s.Track(ctx, e)
}

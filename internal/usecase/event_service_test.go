package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/solrxtin/mprimo-core/internal/domain"
	"github.com/solrxtin/mprimo-core/internal/ports/mocks"
	"github.com/solrxtin/mprimo-core/internal/usecase"
)

func TestEventTrack_Valid_PassedToTracker(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := mocks.NewMockEventValidator(ctrl)
	tracker := &recordingTracker{}

	e := domain.Event{EntityID: "p1", EntityType: "product", Type: domain.EventView}
	validator.EXPECT().Validate(gomock.Any(), e).Return(nil)

	svc := usecase.NewEventService(tracker, validator, noopLogger{})
	if err := svc.Track(context.Background(), e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tracker.byType(domain.EventView); len(got) != 1 || got[0].EntityID != "p1" {
		t.Fatalf("tracker did not receive event: %+v", got)
	}
}

func TestEventTrack_Invalid_NotTracked(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := mocks.NewMockEventValidator(ctrl)
	tracker := &recordingTracker{}

	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(domain.ErrValidation)

	svc := usecase.NewEventService(tracker, validator, noopLogger{})
	err := svc.Track(context.Background(), domain.Event{Type: "teleport"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(tracker.byType("teleport")) != 0 {
		t.Fatalf("invalid event must not reach tracker")
	}
}

func TestEventIngest_StrictJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := mocks.NewMockEventValidator(ctrl)
	tracker := &recordingTracker{}
	svc := usecase.NewEventService(tracker, validator, noopLogger{})
	ctx := context.Background()

	// валидное событие проходит до трекера
	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	raw := []byte(`{"entity_id":"p1","entity_type":"product","event_type":"purchase","amount_cents":2500}`)
	if err := svc.IngestEvent(ctx, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tracker.byType(domain.EventPurchase); len(got) != 1 || got[0].AmountCents != 2500 {
		t.Fatalf("tracker did not receive event: %+v", got)
	}

	// неизвестное поле — ошибка до вызова валидатора
	bad := []byte(`{"entity_id":"p1","entity_type":"product","event_type":"view","extra":1}`)
	if err := svc.IngestEvent(ctx, bad); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown field, got %v", err)
	}

	// мусор после объекта
	trailing := []byte(`{"entity_id":"p1","entity_type":"product","event_type":"view"} garbage`)
	if err := svc.IngestEvent(ctx, trailing); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for trailing data, got %v", err)
	}
}

package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/solrxtin/mprimo-core/internal/domain"
	"github.com/solrxtin/mprimo-core/internal/ports"
)

// ValidateEventFromJSON — валидация события из JSON.
// Парсинг строгий: неизвестные поля и мусор после объекта — ошибка.
func ValidateEventFromJSON(ctx context.Context, validator ports.EventValidator, raw []byte) (domain.Event, error) {
	var event domain.Event
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&event); err != nil {
		return domain.Event{}, fmt.Errorf("%w: invalid json: %v", domain.ErrValidation, err)
	}
	// гарантируем отсутствие данных вне объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return domain.Event{}, fmt.Errorf("%w: trailing data after event", domain.ErrValidation)
	}
	if err := validator.Validate(ctx, event); err != nil {
		return domain.Event{}, err
	}
	return event, nil
}

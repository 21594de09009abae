package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/solrxtin/mprimo-core/internal/domain"
)

func eventJSONL(entityID, eventType string) string {
	return fmt.Sprintf(`{"entity_id":%q,"entity_type":"product","event_type":%q}`, entityID, eventType)
}

func TestValidateJSONLStream_Mixed(t *testing.T) {
	ctx := context.Background()
	validator := NewEventValidator()

	line1 := eventJSONL("p-1", "view")
	line2 := eventJSONL("p-2", "teleport") // неизвестный тип
	line3 := ""                            // пустая строка — ок
	line4 := eventJSONL("p-3", "click")

	input := strings.Join([]string{line1, line2, line3, line4}, "\n")
	var out bytes.Buffer

	res, err := ValidateJSONLStream(ctx, validator, strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 2 || res.InvalidLinesCount != 1 {
		t.Fatalf("unexpected counters: %+v", res)
	}

	outLines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(outLines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(outLines))
	}
	var e1, e2 domain.Event
	if err := json.Unmarshal([]byte(outLines[0]), &e1); err != nil {
		t.Fatalf("unmarshal line1: %v", err)
	}
	if err := json.Unmarshal([]byte(outLines[1]), &e2); err != nil {
		t.Fatalf("unmarshal line2: %v", err)
	}
	got := []string{e1.EntityID, e2.EntityID}
	wantSet := map[string]bool{"p-1": true, "p-3": true}
	for _, id := range got {
		if !wantSet[id] {
			t.Fatalf("unexpected entity id in output: %s", id)
		}
	}
}

func TestValidateJSONLStream_LargeLine(t *testing.T) {
	ctx := context.Background()
	validator := NewEventValidator()

	bigUser := strings.Repeat("X", 200_000) // > 64KB
	raw := fmt.Sprintf(`{"entity_id":"p-big","entity_type":"product","event_type":"view","user_id":%q}`, bigUser)

	var out bytes.Buffer
	res, err := ValidateJSONLStream(ctx, validator, strings.NewReader(raw), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 1 || res.InvalidLinesCount != 0 {
		t.Fatalf("unexpected counters: %+v", res)
	}
}

func TestValidateJSONLStream_BrokenJSONLine(t *testing.T) {
	ctx := context.Background()
	validator := NewEventValidator()

	input := strings.Join([]string{
		eventJSONL("p-1", "view"),
		`{"entity_id": broken`,
	}, "\n")

	var out bytes.Buffer
	res, err := ValidateJSONLStream(ctx, validator, strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 1 || res.InvalidLinesCount != 1 {
		t.Fatalf("unexpected counters: %+v", res)
	}
}

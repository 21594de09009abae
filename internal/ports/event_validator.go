package ports

import (
	"context"

	"github.com/solrxtin/mprimo-core/internal/domain"
)

type EventValidator interface {
	Validate(ctx context.Context, event domain.Event) error
}

package ports

import "github.com/solrxtin/mprimo-core/internal/domain"

// EventTracker — приём событий аналитики.
// Track не блокирует вызывающего и не возвращает ошибку:
// потери при переполнении буфера логируются и считаются в метриках.
type EventTracker interface {
	Track(event domain.Event)
}

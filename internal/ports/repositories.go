package ports

import (
	"context"

	"github.com/solrxtin/mprimo-core/internal/domain"
)

// CartRepository — корзина в БД (источник истины при расхождении с кэшем).
type CartRepository interface {
	// Items — позиции корзины, обогащённые метаданными товара.
	Items(ctx context.Context, userID string) ([]domain.CartItem, error)
	AddItem(ctx context.Context, userID string, item domain.CartItem) error
	RemoveItem(ctx context.Context, userID, productID, variantSKU string) error
	Clear(ctx context.Context, userID string) error
}

// WishlistRepository — список желаний в БД.
type WishlistRepository interface {
	Items(ctx context.Context, userID string) ([]domain.WishlistItem, error)
	AddItem(ctx context.Context, userID string, item domain.WishlistItem) error
	RemoveItem(ctx context.Context, userID, productID string) error
}

// ProductRepository — чтение товаров. Если записи нет, возвращает (nil, nil).
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	// ListPopular — фолбэк рейтинга популярности при недоступном кэше.
	ListPopular(ctx context.Context, limit int) ([]*domain.Product, error)
}

// AnalyticsRepository — долговременные суточные агрегаты.
type AnalyticsRepository interface {
	// UpsertDaily — аддитивный upsert: существующая запись за день
	// увеличивается на переданные значения.
	UpsertDaily(ctx context.Context, stats domain.DailyStats) error
}

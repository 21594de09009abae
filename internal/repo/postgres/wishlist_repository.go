package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/solrxtin/mprimo-core/internal/domain"
	"github.com/solrxtin/mprimo-core/internal/ports"
)

// Проверка, что WishlistRepository удовлетворяет интерфейсу WishlistRepository.
var _ ports.WishlistRepository = (*WishlistRepository)(nil)

// WishlistRepository — список желаний на Postgres (pgxpool).
type WishlistRepository struct {
	pool *pgxpool.Pool
}

func NewWishlistRepository(pool *pgxpool.Pool) *WishlistRepository {
	return &WishlistRepository{pool: pool}
}

func (r *WishlistRepository) Items(ctx context.Context, userID string) ([]domain.WishlistItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT product_id, price_cents, added_at
		FROM wishlist_items
		WHERE user_id = $1
		ORDER BY added_at, product_id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select wishlist: %w", err)
	}
	defer rows.Close()

	var items []domain.WishlistItem
	for rows.Next() {
		var item domain.WishlistItem
		if err := rows.Scan(&item.ProductID, &item.PriceCents, &item.AddedAt); err != nil {
			return nil, fmt.Errorf("scan wishlist item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("wishlist rows: %w", err)
	}
	return items, nil
}

// AddItem — повторное добавление того же товара идемпотентно.
func (r *WishlistRepository) AddItem(ctx context.Context, userID string, item domain.WishlistItem) error {
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO wishlist_items (user_id, product_id, price_cents, added_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, product_id) DO NOTHING
	`, userID, item.ProductID, item.PriceCents); err != nil {
		return fmt.Errorf("insert wishlist item: %w", err)
	}
	return nil
}

func (r *WishlistRepository) RemoveItem(ctx context.Context, userID, productID string) error {
	if _, err := r.pool.Exec(ctx, `
		DELETE FROM wishlist_items WHERE user_id = $1 AND product_id = $2
	`, userID, productID); err != nil {
		return fmt.Errorf("delete wishlist item: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/solrxtin/mprimo-core/internal/domain"
	"github.com/solrxtin/mprimo-core/internal/ports"
)

// Проверка, что CartRepository удовлетворяет интерфейсу CartRepository.
var _ ports.CartRepository = (*CartRepository)(nil)

// CartRepository — корзина на Postgres (pgxpool).
type CartRepository struct {
	pool *pgxpool.Pool
}

func NewCartRepository(pool *pgxpool.Pool) *CartRepository { return &CartRepository{pool: pool} }

// Items — позиции корзины вместе с метаданными товара.
func (r *CartRepository) Items(ctx context.Context, userID string) ([]domain.CartItem, error) {
	return selectCartItems(ctx, r.pool, userID)
}

// AddItem — upsert по (user_id, product_id, variant_sku): повторное
// добавление наращивает количество и обновляет зафиксированную цену.
func (r *CartRepository) AddItem(ctx context.Context, userID string, item domain.CartItem) error {
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO cart_items (user_id, product_id, variant_sku, option_id, quantity, price_cents, added_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (user_id, product_id, variant_sku) DO UPDATE SET
			quantity = cart_items.quantity + EXCLUDED.quantity,
			option_id = EXCLUDED.option_id,
			price_cents = EXCLUDED.price_cents
	`, userID, item.ProductID, item.VariantSKU, item.OptionID, item.Quantity, item.PriceCents); err != nil {
		return fmt.Errorf("upsert cart item: %w", err)
	}
	return nil
}

// RemoveItem — удаление одной позиции; отсутствующая позиция не ошибка.
func (r *CartRepository) RemoveItem(ctx context.Context, userID, productID, variantSKU string) error {
	if _, err := r.pool.Exec(ctx, `
		DELETE FROM cart_items
		WHERE user_id = $1 AND product_id = $2 AND variant_sku = $3
	`, userID, productID, variantSKU); err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// Clear — полная очистка корзины пользователя.
func (r *CartRepository) Clear(ctx context.Context, userID string) error {
	return clearCart(ctx, r.pool, userID)
}

// selectCartItems — общий запрос корзины; используется и репозиторием,
// и транзакцией заказа (чтение под изоляцией).
func selectCartItems(ctx context.Context, q querier, userID string) ([]domain.CartItem, error) {
	rows, err := q.Query(ctx, `
		SELECT ci.product_id, ci.variant_sku, ci.option_id, ci.quantity, ci.price_cents,
			p.name, p.image_urls, ci.added_at
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = $1
		ORDER BY ci.added_at, ci.product_id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select cart items: %w", err)
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(
			&item.ProductID, &item.VariantSKU, &item.OptionID, &item.Quantity, &item.PriceCents,
			&item.ProductName, &item.ImageURLs, &item.AddedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cart rows: %w", err)
	}
	return items, nil
}

func clearCart(ctx context.Context, q querier, userID string) error {
	if _, err := q.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

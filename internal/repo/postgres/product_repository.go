package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/solrxtin/mprimo-core/internal/domain"
	"github.com/solrxtin/mprimo-core/internal/ports"
)

// Проверка, что ProductRepository удовлетворяет интерфейсу ProductRepository.
var _ ports.ProductRepository = (*ProductRepository)(nil)

// ProductRepository — чтение каталога на Postgres (pgxpool).
type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// GetByID — товар с вариантами и опциями. Если не нашли, возвращает (nil, nil).
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return selectProduct(ctx, r.pool, id, false)
}

// ListPopular — фолбэк рейтинга при недоступном кэше: сортировка по
// накопленным в analytics_daily просмотрам. Подход N+1, как и при
// прогреве: сначала только ID, потом полные карточки.
func (r *ProductRepository) ListPopular(ctx context.Context, limit int) ([]*domain.Product, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.pool.Query(ctx, `
		SELECT entity_id
		FROM analytics_daily
		WHERE entity_type = 'product'
		GROUP BY entity_id
		ORDER BY SUM(views) DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("select popular ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan popular id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("popular rows: %w", err)
	}

	result := make([]*domain.Product, 0, len(ids))
	for _, id := range ids {
		p, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if p != nil {
			result = append(result, p)
		}
	}
	return result, nil
}

// selectProduct — сборка товара из трёх таблиц. forUpdate блокирует
// строки остатков (variant_options) до конца транзакции; вне
// транзакции флаг не используется.
func selectProduct(ctx context.Context, q querier, id string, forUpdate bool) (*domain.Product, error) {
	var p domain.Product
	err := q.QueryRow(ctx, `
		SELECT id, vendor_id, name, currency, image_urls
		FROM products WHERE id = $1
	`, id).Scan(&p.ID, &p.VendorID, &p.Name, &p.Currency, &p.ImageURLs)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select product: %w", err)
	}

	vRows, err := q.Query(ctx, `
		SELECT id, sku, is_default
		FROM product_variants
		WHERE product_id = $1
		ORDER BY id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("select variants: %w", err)
	}
	defer vRows.Close()

	byVariant := make(map[string]*domain.Variant)
	var variantIDs []string
	for vRows.Next() {
		var v domain.Variant
		if err := vRows.Scan(&v.ID, &v.SKU, &v.IsDefault); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		p.Variants = append(p.Variants, v)
		variantIDs = append(variantIDs, v.ID)
	}
	if err := vRows.Err(); err != nil {
		return nil, fmt.Errorf("variant rows: %w", err)
	}
	for i := range p.Variants {
		byVariant[p.Variants[i].ID] = &p.Variants[i]
	}
	if len(variantIDs) == 0 {
		return &p, nil
	}

	optQuery := `
		SELECT variant_id, id, name, quantity, price_cents, is_default
		FROM variant_options
		WHERE variant_id = ANY($1::text[])
		ORDER BY variant_id, id
	`
	if forUpdate {
		optQuery += ` FOR UPDATE`
	}
	oRows, err := q.Query(ctx, optQuery, variantIDs)
	if err != nil {
		return nil, fmt.Errorf("select options: %w", err)
	}
	defer oRows.Close()

	for oRows.Next() {
		var variantID string
		var o domain.Option
		if err := oRows.Scan(&variantID, &o.ID, &o.Name, &o.Quantity, &o.PriceCents, &o.IsDefault); err != nil {
			return nil, fmt.Errorf("scan option: %w", err)
		}
		if v := byVariant[variantID]; v != nil {
			v.Options = append(v.Options, o)
		}
	}
	if err := oRows.Err(); err != nil {
		return nil, fmt.Errorf("option rows: %w", err)
	}

	return &p, nil
}

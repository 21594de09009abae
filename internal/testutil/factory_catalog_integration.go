//go:build integration

package testutil

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// CatalogIDs — идентификаторы посеянного товара.
type CatalogIDs struct {
	ProductID  string
	VendorID   string
	VariantID  string
	VariantSKU string
	OptionID   string // дефолтная опция
	AltOption  string // вторая (недефолтная) опция
}

// SeedProduct — товар с одним вариантом и двумя опциями.
// stock — остаток дефолтной опции; priceCents — её цена.
func SeedProduct(ctx context.Context, pool *pgxpool.Pool, stock int, priceCents int64) (CatalogIDs, error) {
	suffix := UniqSuffix()
	ids := CatalogIDs{
		ProductID:  "prod-" + suffix,
		VendorID:   "vendor-" + suffix,
		VariantID:  "var-" + suffix,
		VariantSKU: "SKU-" + suffix,
		OptionID:   "opt-" + suffix,
		AltOption:  "opt-alt-" + suffix,
	}

	if _, err := pool.Exec(ctx, `
		INSERT INTO products (id, vendor_id, name, currency, image_urls)
		VALUES ($1, $2, $3, 'USD', ARRAY['https://img.test/p.jpg'])
	`, ids.ProductID, ids.VendorID, "Product "+suffix); err != nil {
		return ids, fmt.Errorf("seed product: %w", err)
	}
	if _, err := pool.Exec(ctx, `
		INSERT INTO product_variants (id, product_id, sku, is_default)
		VALUES ($1, $2, $3, true)
	`, ids.VariantID, ids.ProductID, ids.VariantSKU); err != nil {
		return ids, fmt.Errorf("seed variant: %w", err)
	}
	if _, err := pool.Exec(ctx, `
		INSERT INTO variant_options (id, variant_id, name, quantity, price_cents, is_default)
		VALUES ($1, $3, 'default', $4, $5, true),
		       ($2, $3, 'alt', 0, $5, false)
	`, ids.OptionID, ids.AltOption, ids.VariantID, stock, priceCents); err != nil {
		return ids, fmt.Errorf("seed options: %w", err)
	}
	return ids, nil
}

// SeedUser — пользователь с одним сохранённым адресом.
// Возвращает (userID, addressID).
func SeedUser(ctx context.Context, pool *pgxpool.Pool) (string, string, error) {
	suffix := UniqSuffix()
	userID := "user-" + suffix
	addressID := "addr-" + suffix

	if _, err := pool.Exec(ctx, `
		INSERT INTO users (id, email, name)
		VALUES ($1, $2, $3)
	`, userID, suffix+"@example.com", "Test User"); err != nil {
		return "", "", fmt.Errorf("seed user: %w", err)
	}
	if _, err := pool.Exec(ctx, `
		INSERT INTO user_addresses (id, user_id, line1, city, region, zip, country)
		VALUES ($1, $2, 'Main st 1', 'Metropolis', 'NA', '000000', 'US')
	`, addressID, userID); err != nil {
		return "", "", fmt.Errorf("seed address: %w", err)
	}
	return userID, addressID, nil
}

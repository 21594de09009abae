package domain

import "time"

// CartItem — позиция корзины. Идентичность — (userID, productID, variantSKU);
// цена фиксируется на момент добавления (minor units).
type CartItem struct {
	ProductID   string    `json:"product_id"`
	VariantSKU  string    `json:"variant_sku"`
	OptionID    string    `json:"option_id,omitempty"`
	Quantity    int       `json:"quantity"`
	PriceCents  int64     `json:"price_cents"`
	ProductName string    `json:"product_name"`
	ImageURLs   []string  `json:"image_urls"`
	AddedAt     time.Time `json:"added_at"`
}

// WishlistItem — позиция списка желаний; количества нет,
// фиксируется цена на момент добавления.
type WishlistItem struct {
	ProductID  string    `json:"product_id"`
	PriceCents int64     `json:"price_cents"`
	AddedAt    time.Time `json:"added_at"`
}

package domain

import "time"

// OrderStatus — статус заказа (конечный автомат).
type OrderStatus string

const (
	StatusPending          OrderStatus = "pending"
	StatusProcessing       OrderStatus = "processing"
	StatusPartiallyShipped OrderStatus = "partially_shipped"
	StatusShipped          OrderStatus = "shipped"
	StatusDelivered        OrderStatus = "delivered"
	StatusCancelled        OrderStatus = "cancelled"
)

// transitions — допустимые переходы статусов.
// delivered и cancelled — терминальные.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:          {StatusProcessing, StatusCancelled},
	StatusProcessing:       {StatusPartiallyShipped, StatusShipped, StatusCancelled},
	StatusPartiallyShipped: {StatusShipped, StatusDelivered},
	StatusShipped:          {StatusDelivered},
}

// CanTransition — проверяет допустимость перехода from → to.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Cancellable — отмена разрешена только из pending/processing.
func (s OrderStatus) Cancellable() bool {
	return s == StatusPending || s == StatusProcessing
}

// OrderItem — строка заказа. После создания заказа неизменяема
// (кроме полной отмены).
type OrderItem struct {
	ProductID  string `json:"product_id"`
	VariantID  string `json:"variant_id"`
	OptionID   string `json:"option_id"`
	VendorID   string `json:"vendor_id"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
}

// Shipment — отправление; ровно одно на каждого продавца в заказе.
// Создаётся только вместе с заказом.
type Shipment struct {
	ID                string    `json:"id"`
	VendorID          string    `json:"vendor_id"`
	TrackingRef       string    `json:"tracking_ref"`
	Status            string    `json:"status"`
	EstimatedDelivery time.Time `json:"estimated_delivery"`
}

// Order — заказ пользователя с вложенными строками и отправлениями.
type Order struct {
	ID         string      `json:"id"`
	UserID     string      `json:"user_id"`
	AddressID  string      `json:"address_id"`
	Items      []OrderItem `json:"items"`
	Shipments  []Shipment  `json:"shipments"`
	PaymentID  string      `json:"payment_id"`
	Status     OrderStatus `json:"status"`
	TotalCents int64       `json:"total_cents"`
	Currency   string      `json:"currency"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Address — сохранённый адрес доставки пользователя.
type Address struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	Line1   string `json:"line1"`
	City    string `json:"city"`
	Region  string `json:"region"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

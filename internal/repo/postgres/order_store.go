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

// Проверка, что OrderStore удовлетворяет интерфейсу OrderStore.
var _ ports.OrderStore = (*OrderStore)(nil)

// OrderStore — заказы на Postgres: чтение вне транзакции и
// транзакционная секция для create/cancel.
type OrderStore struct {
	pool *pgxpool.Pool
}

func NewOrderStore(pool *pgxpool.Pool) *OrderStore { return &OrderStore{pool: pool} }

// GetByID — заказ пользователя со строками и отправлениями.
// Если не нашли, возвращает (nil, nil).
func (s *OrderStore) GetByID(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	return selectOrder(ctx, s.pool, orderID, userID, false)
}

// WithTx — выполняет fn в транзакции БД. Ошибка fn (или паника до
// Commit) откатывает все шаги разом.
func (s *OrderStore) WithTx(ctx context.Context, fn func(ctx context.Context, tx ports.OrderTx) error) error {
	transaction, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		// При уже завершённой транзакции Rollback вернёт ErrTxClosed — игнорируем.
		if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	if err := fn(ctx, &orderTx{tx: transaction}); err != nil {
		return err
	}
	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// orderTx — операции внутри открытой транзакции.
type orderTx struct {
	tx pgx.Tx
}

var _ ports.OrderTx = (*orderTx)(nil)

func (t *orderTx) CartItems(ctx context.Context, userID string) ([]domain.CartItem, error) {
	return selectCartItems(ctx, t.tx, userID)
}

func (t *orderTx) Address(ctx context.Context, userID, addressID string) (*domain.Address, error) {
	var a domain.Address
	err := t.tx.QueryRow(ctx, `
		SELECT id, user_id, line1, city, region, zip, country
		FROM user_addresses
		WHERE id = $1 AND user_id = $2
	`, addressID, userID).Scan(&a.ID, &a.UserID, &a.Line1, &a.City, &a.Region, &a.Zip, &a.Country)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select address: %w", err)
	}
	return &a, nil
}

// ProductForUpdate — живой товар; строки остатков блокируются до
// конца транзакции, конкурирующие заказы на те же опции встанут в очередь.
func (t *orderTx) ProductForUpdate(ctx context.Context, productID string) (*domain.Product, error) {
	return selectProduct(ctx, t.tx, productID, true)
}

// DecrementStock — условное списание: пройдёт, только если остатка хватает.
func (t *orderTx) DecrementStock(ctx context.Context, optionID string, qty int) (bool, error) {
	tag, err := t.tx.Exec(ctx, `
		UPDATE variant_options
		SET quantity = quantity - $2
		WHERE id = $1 AND quantity >= $2
	`, optionID, qty)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (t *orderTx) RestoreStock(ctx context.Context, optionID string, qty int) error {
	if _, err := t.tx.Exec(ctx, `
		UPDATE variant_options
		SET quantity = quantity + $2
		WHERE id = $1
	`, optionID, qty); err != nil {
		return fmt.Errorf("restore stock: %w", err)
	}
	return nil
}

// InsertOrder — заказ, его строки (через COPY) и отправления.
func (t *orderTx) InsertOrder(ctx context.Context, order *domain.Order) error {
	if order == nil || order.ID == "" {
		return errors.New("order id is required")
	}

	if _, err := t.tx.Exec(ctx, `
		INSERT INTO orders (id, user_id, address_id, payment_id, status, total_cents, currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, order.ID, order.UserID, order.AddressID, order.PaymentID,
		order.Status, order.TotalCents, order.Currency, order.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	if len(order.Items) > 0 {
		rows := make([][]any, 0, len(order.Items))
		for _, item := range order.Items {
			rows = append(rows, []any{
				order.ID, item.ProductID, item.VariantID, item.OptionID,
				item.VendorID, item.Quantity, item.PriceCents,
			})
		}
		if _, err := t.tx.CopyFrom(
			ctx,
			pgx.Identifier{"order_items"},
			[]string{"order_id", "product_id", "variant_id", "option_id", "vendor_id", "quantity", "price_cents"},
			pgx.CopyFromRows(rows),
		); err != nil {
			return fmt.Errorf("copy order items: %w", err)
		}
	}

	for _, sh := range order.Shipments {
		if _, err := t.tx.Exec(ctx, `
			INSERT INTO shipments (id, order_id, vendor_id, tracking_ref, status, estimated_delivery)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, sh.ID, order.ID, sh.VendorID, sh.TrackingRef, sh.Status, sh.EstimatedDelivery); err != nil {
			return fmt.Errorf("insert shipment: %w", err)
		}
	}

	return nil
}

func (t *orderTx) ClearCart(ctx context.Context, userID string) error {
	return clearCart(ctx, t.tx, userID)
}

// OrderForUpdate — заказ с блокировкой строки: конкурирующие отмены
// одного заказа сериализуются.
func (t *orderTx) OrderForUpdate(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	return selectOrder(ctx, t.tx, orderID, userID, true)
}

func (t *orderTx) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE orders SET status = $2 WHERE id = $1
	`, orderID, status)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// selectOrder — сборка заказа из трёх таблиц.
func selectOrder(ctx context.Context, q querier, orderID, userID string, forUpdate bool) (*domain.Order, error) {
	orderQuery := `
		SELECT id, user_id, address_id, payment_id, status, total_cents, currency, created_at
		FROM orders
		WHERE id = $1 AND user_id = $2
	`
	if forUpdate {
		orderQuery += ` FOR UPDATE`
	}

	var order domain.Order
	err := q.QueryRow(ctx, orderQuery, orderID, userID).Scan(
		&order.ID, &order.UserID, &order.AddressID, &order.PaymentID,
		&order.Status, &order.TotalCents, &order.Currency, &order.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}

	iRows, err := q.Query(ctx, `
		SELECT product_id, variant_id, option_id, vendor_id, quantity, price_cents
		FROM order_items
		WHERE order_id = $1
		ORDER BY product_id, variant_id, option_id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer iRows.Close()

	for iRows.Next() {
		var item domain.OrderItem
		if err := iRows.Scan(
			&item.ProductID, &item.VariantID, &item.OptionID,
			&item.VendorID, &item.Quantity, &item.PriceCents,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		order.Items = append(order.Items, item)
	}
	if err := iRows.Err(); err != nil {
		return nil, fmt.Errorf("order item rows: %w", err)
	}

	sRows, err := q.Query(ctx, `
		SELECT id, vendor_id, tracking_ref, status, estimated_delivery
		FROM shipments
		WHERE order_id = $1
		ORDER BY vendor_id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("select shipments: %w", err)
	}
	defer sRows.Close()

	for sRows.Next() {
		var sh domain.Shipment
		if err := sRows.Scan(&sh.ID, &sh.VendorID, &sh.TrackingRef, &sh.Status, &sh.EstimatedDelivery); err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		order.Shipments = append(order.Shipments, sh)
	}
	if err := sRows.Err(); err != nil {
		return nil, fmt.Errorf("shipment rows: %w", err)
	}

	return &order, nil
}

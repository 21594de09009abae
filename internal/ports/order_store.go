package ports

import (
	"context"

	"github.com/solrxtin/mprimo-core/internal/domain"
)

// OrderTx — операции над заказом внутри одной транзакции БД.
// Координатор оркестрирует шаги, хранилище отвечает за атомарность:
// любая ошибка до Commit откатывает всё.
type OrderTx interface {
	// CartItems — позиции корзины, прочитанные под изоляцией транзакции.
	CartItems(ctx context.Context, userID string) ([]domain.CartItem, error)

	// Address — сохранённый адрес пользователя; (nil, nil), если не найден.
	Address(ctx context.Context, userID, addressID string) (*domain.Address, error)

	// ProductForUpdate — живой товар с блокировкой строк остатков
	// (перечитывание под транзакцией, а не из кэша, — ключ к корректности).
	ProductForUpdate(ctx context.Context, productID string) (*domain.Product, error)

	// DecrementStock — условное списание: false, если остатка не хватает.
	DecrementStock(ctx context.Context, optionID string, qty int) (bool, error)

	// RestoreStock — обратная операция для отмены заказа.
	RestoreStock(ctx context.Context, optionID string, qty int) error

	// InsertOrder — вставка заказа вместе со строками и отправлениями.
	InsertOrder(ctx context.Context, order *domain.Order) error

	// ClearCart — очистка корзины в рамках той же транзакции.
	ClearCart(ctx context.Context, userID string) error

	// OrderForUpdate — заказ с блокировкой строки; (nil, nil), если не найден.
	OrderForUpdate(ctx context.Context, orderID, userID string) (*domain.Order, error)

	// UpdateStatus — смена статуса заказа.
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
}

// OrderStore — доступ к заказам: чтение вне транзакции и
// транзакционная секция для create/cancel.
type OrderStore interface {
	// GetByID — заказ пользователя; (nil, nil), если не найден.
	GetByID(ctx context.Context, orderID, userID string) (*domain.Order, error)

	// WithTx — выполняет fn в транзакции БД; ошибка fn откатывает её целиком.
	WithTx(ctx context.Context, fn func(ctx context.Context, tx OrderTx) error) error
}

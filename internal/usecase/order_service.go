package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/solrxtin/mprimo-core/internal/cache/cached"
	"github.com/solrxtin/mprimo-core/internal/domain"
	"github.com/solrxtin/mprimo-core/internal/ports"
	"github.com/solrxtin/mprimo-core/pkg/metrics"
)

// shipmentLeadTime — оценка доставки, прибавляется к моменту создания заказа.
const shipmentLeadTime = 7 * 24 * time.Hour

// OrderService — координатор заказа: вся последовательность создания
// и отмены живёт в одной транзакции БД, платёжный шлюз вызывается
// между проверкой остатков и списанием. Кэши трогаются только после
// коммита.
type OrderService struct {
	store    ports.OrderStore
	payments ports.PaymentGateway
	tracker  ports.EventTracker
	products *ProductService
	carts    *CartService
	loader   *cached.Loader[*domain.Order]
	log      ports.Logger
}

func NewOrderService(
	store ports.OrderStore,
	payments ports.PaymentGateway,
	tracker ports.EventTracker,
	products *ProductService,
	carts *CartService,
	kv ports.KeyValueCache,
	log ports.Logger,
	orderTTL time.Duration,
) *OrderService {
	return &OrderService{
		store:    store,
		payments: payments,
		tracker:  tracker,
		products: products,
		carts:    carts,
		loader:   cached.NewLoader[*domain.Order](kv, log, "order", orderTTL),
		log:      log,
	}
}

// Get — заказ по ID: сначала кэш, при промахе — БД с записью в кэш.
// Принадлежность пользователю проверяется и на кэшированной записи.
func (s *OrderService) Get(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	if orderID == "" || userID == "" {
		return nil, fmt.Errorf("%w: order id and user id are required", domain.ErrValidation)
	}
	order, err := s.loader.GetOrLoad(ctx, orderKey(orderID), func(ctx context.Context) (*domain.Order, error) {
		o, err := s.store.GetByID(ctx, orderID, userID)
		if err != nil {
			return nil, err
		}
		if o == nil {
			return nil, domain.ErrOrderNotFound
		}
		return o, nil
	})
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

// Create — создание заказа из корзины.
//
// Внутри транзакции: корзина → адрес → перечитывание каждого товара
// под блокировкой строк → проверка остатков → платёж (жёсткий таймаут
// на стороне шлюза) → условное списание → вставка заказа со строками
// и отправлениями → очистка корзины → commit. Любая ошибка до коммита
// откатывает всё; провал после успешного платежа компенсируется
// best-effort возвратом.
func (s *OrderService) Create(ctx context.Context, userID, addressID, paymentMethod string) (*domain.Order, error) {
	if userID == "" || addressID == "" {
		return nil, fmt.Errorf("%w: user id and address id are required", domain.ErrValidation)
	}

	var order *domain.Order
	err := s.store.WithTx(ctx, func(ctx context.Context, tx ports.OrderTx) error {
		cartItems, err := tx.CartItems(ctx, userID)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return domain.ErrEmptyCart
		}

		address, err := tx.Address(ctx, userID, addressID)
		if err != nil {
			return err
		}
		if address == nil {
			return domain.ErrAddressNotFound
		}

		lines, total, currency, err := s.resolveLines(ctx, tx, cartItems)
		if err != nil {
			return err
		}

		payRes, err := s.payments.ProcessPayment(ctx, ports.PaymentRequest{
			AmountCents: total,
			Currency:    currency,
			Method:      paymentMethod,
			CustomerID:  userID,
		})
		if err != nil {
			return err
		}
		if !payRes.Success {
			metrics.OrdersFailed.WithLabelValues("payment").Inc()
			return &domain.PaymentError{Message: payRes.Message, Retryable: payRes.Retryable}
		}

		order = &domain.Order{
			ID:         uuid.NewString(),
			UserID:     userID,
			AddressID:  addressID,
			Items:      lines,
			Shipments:  buildShipments(lines),
			PaymentID:  payRes.TransactionID,
			Status:     domain.StatusProcessing,
			TotalCents: total,
			Currency:   currency,
			CreatedAt:  time.Now().UTC(),
		}

		// Платёж проведён: дальше любой провал требует компенсации.
		if err := s.persistOrder(ctx, tx, order, userID); err != nil {
			s.compensate(ctx, order.ID, payRes.TransactionID, total)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterCreate(ctx, order)
	return order, nil
}

// resolveLines — перечитывание товаров под транзакцией: кэшу при
// продаже не верим. Валидирует остаток и собирает строки заказа
// по живым ценам.
func (s *OrderService) resolveLines(ctx context.Context, tx ports.OrderTx, cartItems []domain.CartItem) ([]domain.OrderItem, int64, string, error) {
	var (
		lines    []domain.OrderItem
		total    int64
		currency string
	)
	for _, ci := range cartItems {
		p, err := tx.ProductForUpdate(ctx, ci.ProductID)
		if err != nil {
			return nil, 0, "", err
		}
		if p == nil {
			return nil, 0, "", fmt.Errorf("%w: %s", domain.ErrProductNotFound, ci.ProductID)
		}

		variant, option, err := resolveVariantOption(p, ci.VariantSKU, ci.OptionID)
		if err != nil {
			return nil, 0, "", err
		}
		if option.Quantity < ci.Quantity {
			metrics.OrdersFailed.WithLabelValues("stock").Inc()
			return nil, 0, "", &domain.InsufficientStockError{
				ProductName: p.Name,
				Requested:   ci.Quantity,
				Available:   option.Quantity,
			}
		}

		if currency == "" {
			currency = p.Currency
		}
		lines = append(lines, domain.OrderItem{
			ProductID:  p.ID,
			VariantID:  variant.ID,
			OptionID:   option.ID,
			VendorID:   p.VendorID,
			Quantity:   ci.Quantity,
			PriceCents: option.PriceCents,
		})
		total += option.PriceCents * int64(ci.Quantity)
	}
	return lines, total, currency, nil
}

// persistOrder — списание, вставка и очистка корзины; вызывается
// только после успешного платежа.
func (s *OrderService) persistOrder(ctx context.Context, tx ports.OrderTx, order *domain.Order, userID string) error {
	for _, line := range order.Items {
		ok, err := tx.DecrementStock(ctx, line.OptionID, line.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			// остаток увели между проверкой и списанием; перечитываем
			// товар, чтобы в ошибке было имя, а не ID
			metrics.OrdersFailed.WithLabelValues("stock").Inc()
			stockErr := &domain.InsufficientStockError{
				ProductName: line.ProductID,
				Requested:   line.Quantity,
			}
			if p, perr := tx.ProductForUpdate(ctx, line.ProductID); perr == nil && p != nil {
				stockErr.ProductName = p.Name
				if o, found := p.Option(line.OptionID); found {
					stockErr.Available = o.Quantity
				}
			}
			return stockErr
		}
	}
	if err := tx.InsertOrder(ctx, order); err != nil {
		return err
	}
	return tx.ClearCart(ctx, userID)
}

// compensate — best-effort возврат платежа при провале уже оплаченного
// заказа. Неудачный возврат только логируется: деньги требуют ручного
// вмешательства, заказ при этом не создаётся.
func (s *OrderService) compensate(ctx context.Context, orderID, transactionID string, amount int64) {
	res, err := s.payments.ProcessRefund(ctx, ports.RefundRequest{
		TransactionID: transactionID,
		AmountCents:   amount,
	})
	if err != nil || !res.Success {
		s.log.Errorf(ctx, "order %s: payment %s captured but order failed, refund unsuccessful (err=%v, res=%+v) — manual action required",
			orderID, transactionID, err, res)
		return
	}
	s.log.Warnf(ctx, "order %s: compensating refund issued for payment %s", orderID, transactionID)
}

// afterCreate — пост-коммитные эффекты: кэши, зеркала остатков,
// события покупки. Все best-effort, заказ уже создан.
func (s *OrderService) afterCreate(ctx context.Context, order *domain.Order) {
	metrics.OrdersCreated.Inc()

	s.carts.loader.Invalidate(ctx, cartKey(order.UserID))
	s.loader.Store(ctx, orderKey(order.ID), order)

	seen := make(map[string]bool)
	for _, line := range order.Items {
		s.tracker.Track(domain.Event{
			EntityID:    line.ProductID,
			EntityType:  "product",
			Type:        domain.EventPurchase,
			UserID:      order.UserID,
			AmountCents: line.PriceCents * int64(line.Quantity),
		})
		if seen[line.ProductID] {
			continue
		}
		seen[line.ProductID] = true
		s.products.Invalidate(ctx, line.ProductID)
		if err := s.products.RefreshInventoryMirror(ctx, line.ProductID); err != nil {
			s.log.Warnf(ctx, "order %s: inventory mirror refresh for %s: %v", order.ID, line.ProductID, err)
		}
	}

	s.log.Infof(ctx, "order created id=%s user=%s items=%d total=%d %s",
		order.ID, order.UserID, len(order.Items), order.TotalCents, order.Currency)
}

// Cancel — отмена заказа: допустима только из pending/processing.
// Возврат платежа, восстановление остатков и смена статуса — одна
// транзакция; неудачный возврат отменяет отмену.
func (s *OrderService) Cancel(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	if orderID == "" || userID == "" {
		return nil, fmt.Errorf("%w: order id and user id are required", domain.ErrValidation)
	}

	var cancelled *domain.Order
	err := s.store.WithTx(ctx, func(ctx context.Context, tx ports.OrderTx) error {
		order, err := tx.OrderForUpdate(ctx, orderID, userID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrOrderNotFound
		}
		if !order.Status.Cancellable() {
			return &domain.TransitionError{From: order.Status, To: domain.StatusCancelled}
		}

		if order.PaymentID != "" {
			res, err := s.payments.ProcessRefund(ctx, ports.RefundRequest{
				TransactionID: order.PaymentID,
				AmountCents:   order.TotalCents,
			})
			if err != nil {
				return err
			}
			if !res.Success {
				return &domain.PaymentError{Message: "refund failed: " + res.Message}
			}
		}

		for _, line := range order.Items {
			if err := tx.RestoreStock(ctx, line.OptionID, line.Quantity); err != nil {
				return err
			}
		}
		if err := tx.UpdateStatus(ctx, orderID, domain.StatusCancelled); err != nil {
			return err
		}

		order.Status = domain.StatusCancelled
		cancelled = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCancelled.Inc()
	s.loader.Invalidate(ctx, orderKey(orderID))
	seen := make(map[string]bool)
	for _, line := range cancelled.Items {
		if seen[line.ProductID] {
			continue
		}
		seen[line.ProductID] = true
		s.products.Invalidate(ctx, line.ProductID)
		if err := s.products.RefreshInventoryMirror(ctx, line.ProductID); err != nil {
			s.log.Warnf(ctx, "order %s: inventory mirror refresh for %s: %v", orderID, line.ProductID, err)
		}
	}

	s.log.Infof(ctx, "order cancelled id=%s user=%s", orderID, userID)
	return cancelled, nil
}

// buildShipments — ровно одно отправление на каждого продавца.
// Порядок стабилен: по первому вхождению продавца в строках заказа.
func buildShipments(lines []domain.OrderItem) []domain.Shipment {
	now := time.Now().UTC()
	var shipments []domain.Shipment
	seen := make(map[string]bool)
	for _, line := range lines {
		if seen[line.VendorID] {
			continue
		}
		seen[line.VendorID] = true
		shipments = append(shipments, domain.Shipment{
			ID:                uuid.NewString(),
			VendorID:          line.VendorID,
			TrackingRef:       "TRK-" + uuid.NewString(),
			Status:            "pending",
			EstimatedDelivery: now.Add(shipmentLeadTime),
		})
	}
	return shipments
}

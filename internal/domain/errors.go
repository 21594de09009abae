package domain

import (
	"errors"
	"fmt"
)

// Базовые ошибки бизнес-правил и валидации.
// Все доводятся до вызывающего как структурированный результат,
// а не как непрозрачный 500.
var (
	ErrValidation        = errors.New("validation failed")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrAddressNotFound   = errors.New("shipping address not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrPaymentFailed     = errors.New("payment failed")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrOrderNotFound     = errors.New("order not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrLockNotAcquired   = errors.New("resource is busy")
)

// InsufficientStockError — нехватка остатка с указанием товара.
type InsufficientStockError struct {
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// PaymentError — отказ платёжного шлюза; Retryable прокидывается из ответа
// коллаборатора (таймаут считается retryable, но никогда — успехом).
type PaymentError struct {
	Message   string
	Retryable bool
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment failed: %s (retryable=%t)", e.Message, e.Retryable)
}

func (e *PaymentError) Unwrap() error { return ErrPaymentFailed }

// TransitionError — недопустимый переход статуса.
type TransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid order status transition %s -> %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

package ports

import "context"

// PaymentRequest — запрос на списание (minor units).
type PaymentRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
	Method      string `json:"method"`
	CustomerID  string `json:"customer_id"`
}

// PaymentResult — ответ шлюза. Retryable имеет смысл только при Success=false.
type PaymentResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id,omitempty"`
	Message       string `json:"message,omitempty"`
	Retryable     bool   `json:"retryable,omitempty"`
}

// RefundRequest — запрос на возврат по ранее проведённой транзакции.
type RefundRequest struct {
	TransactionID string `json:"transaction_id"`
	AmountCents   int64  `json:"amount_cents"`
}

// RefundResult — ответ шлюза на возврат.
type RefundResult struct {
	Success  bool   `json:"success"`
	RefundID string `json:"refund_id,omitempty"`
	Message  string `json:"message,omitempty"`
}

// PaymentGateway — внешний платёжный коллаборатор.
// Вызовы синхронные, с жёсткими таймаутами на стороне реализации;
// таймаут трактуется как retryable-отказ, никогда — как успех.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, req PaymentRequest) (PaymentResult, error)
	ProcessRefund(ctx context.Context, req RefundRequest) (RefundResult, error)
}

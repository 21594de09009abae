package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/solrxtin/mprimo-core/internal/ports"
	"github.com/solrxtin/mprimo-core/pkg/metrics"
)

// Проверка, что Client удовлетворяет интерфейсу PaymentGateway.
var _ ports.PaymentGateway = (*Client)(nil)

// Client — HTTP-клиент платёжного шлюза. Таймауты жёсткие: зависший
// шлюз не должен держать открытую транзакцию БД дольше лимита.
// Таймаут возвращается как retryable-отказ, не как ошибка транспорта.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	log            ports.Logger
	processTimeout time.Duration
	refundTimeout  time.Duration
}

func NewClient(baseURL string, log ports.Logger, processTimeout, refundTimeout time.Duration) *Client {
	if processTimeout <= 0 {
		processTimeout = 15 * time.Second
	}
	if refundTimeout <= 0 {
		refundTimeout = 10 * time.Second
	}
	return &Client{
		baseURL:        baseURL,
		httpClient:     &http.Client{},
		log:            log,
		processTimeout: processTimeout,
		refundTimeout:  refundTimeout,
	}
}

// ProcessPayment — синхронное списание с дедлайном processTimeout.
func (c *Client) ProcessPayment(ctx context.Context, req ports.PaymentRequest) (ports.PaymentResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.processTimeout)
	defer cancel()

	var res ports.PaymentResult
	err := c.post(ctx, "/payments", req, &res)
	if isTimeout(err) {
		c.log.Warnf(ctx, "payment: process timed out after %s", c.processTimeout)
		metrics.PaymentCalls.WithLabelValues("process", "timeout").Inc()
		return ports.PaymentResult{Success: false, Message: "gateway timeout", Retryable: true}, nil
	}
	if err != nil {
		metrics.PaymentCalls.WithLabelValues("process", "error").Inc()
		return ports.PaymentResult{}, err
	}

	if res.Success {
		metrics.PaymentCalls.WithLabelValues("process", "success").Inc()
	} else {
		metrics.PaymentCalls.WithLabelValues("process", "declined").Inc()
	}
	return res, nil
}

// ProcessRefund — возврат; таймаут короче, возврат можно повторить позже.
func (c *Client) ProcessRefund(ctx context.Context, req ports.RefundRequest) (ports.RefundResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.refundTimeout)
	defer cancel()

	var res ports.RefundResult
	err := c.post(ctx, "/refunds", req, &res)
	if isTimeout(err) {
		c.log.Warnf(ctx, "payment: refund timed out after %s", c.refundTimeout)
		metrics.PaymentCalls.WithLabelValues("refund", "timeout").Inc()
		return ports.RefundResult{Success: false, Message: "gateway timeout"}, nil
	}
	if err != nil {
		metrics.PaymentCalls.WithLabelValues("refund", "error").Inc()
		return ports.RefundResult{}, err
	}

	if res.Success {
		metrics.PaymentCalls.WithLabelValues("refund", "success").Inc()
	} else {
		metrics.PaymentCalls.WithLabelValues("refund", "declined").Inc()
	}
	return res, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gateway status %d: %s", resp.StatusCode, raw)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

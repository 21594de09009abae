package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"entity", "op"}, // op: hit|miss|error|set|invalidate
	)
	LockOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lock_operations_total",
			Help: "Distributed lock operations",
		},
		[]string{"op"}, // acquired|busy|failed|released|release_denied
	)
)

var (
	EventsTracked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_events_tracked_total",
			Help: "Analytics events accepted by the tracker",
		},
		[]string{"type"},
	)
	EventsDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_events_dropped_total",
			Help: "Analytics events dropped due to a full buffer",
		},
	)
	CountersFlushed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_counters_flushed_total",
			Help: "Ephemeral counters folded into daily records",
		},
	)
	FlushErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_flush_errors_total",
			Help: "Errors during the counter flush job",
		},
	)
)

var (
	OrdersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Orders committed successfully",
		},
	)
	OrdersCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_cancelled_total",
			Help: "Orders cancelled successfully",
		},
	)
	OrdersFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_failed_total",
			Help: "Order workflow failures",
		},
		[]string{"reason"}, // empty_cart|address|stock|payment|transition|internal
	)
	PaymentCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_calls_total",
			Help: "Payment gateway calls",
		},
		[]string{"op", "outcome"}, // op: process|refund; outcome: ok|declined|error
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует все коллекторы; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(register)
}

func register() {
	prometheus.MustRegister(
		KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
		CacheOps, LockOps,
		EventsTracked, EventsDropped, CountersFlushed, FlushErrors,
		OrdersCreated, OrdersCancelled, OrdersFailed, PaymentCalls,
	)
}

package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/solrxtin/mprimo-core/pkg/metrics"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestCacheOps_CountersByLabel(t *testing.T) {
	metrics.MustRegister()

	hitBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("cart", "hit"))
	missBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("cart", "miss"))

	metrics.CacheOps.WithLabelValues("cart", "hit").Inc()
	metrics.CacheOps.WithLabelValues("cart", "hit").Inc()

	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("cart", "hit")); got != hitBefore+2 {
		t.Fatalf("CacheOps(cart,hit): got=%v want=%v", got, hitBefore+2)
	}
	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("cart", "miss")); got != missBefore {
		t.Fatalf("CacheOps(cart,miss): got=%v want=%v", got, missBefore)
	}
}

func TestLockOps_Inc(t *testing.T) {
	metrics.MustRegister()

	before := testutil.ToFloat64(metrics.LockOps.WithLabelValues("acquired"))
	metrics.LockOps.WithLabelValues("acquired").Inc()
	if got := testutil.ToFloat64(metrics.LockOps.WithLabelValues("acquired")); got != before+1 {
		t.Fatalf("LockOps(acquired): got=%v want=%v", got, before+1)
	}
}

func TestOrderCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	createdBefore := testutil.ToFloat64(metrics.OrdersCreated)
	failedBefore := testutil.ToFloat64(metrics.OrdersFailed.WithLabelValues("stock"))

	metrics.OrdersCreated.Inc()
	metrics.OrdersFailed.WithLabelValues("stock").Inc()

	if got := testutil.ToFloat64(metrics.OrdersCreated); got != createdBefore+1 {
		t.Fatalf("OrdersCreated: got=%v want=%v", got, createdBefore+1)
	}
	if got := testutil.ToFloat64(metrics.OrdersFailed.WithLabelValues("stock")); got != failedBefore+1 {
		t.Fatalf("OrdersFailed(stock): got=%v want=%v", got, failedBefore+1)
	}
}

func TestEventCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	trackedBefore := testutil.ToFloat64(metrics.EventsTracked.WithLabelValues("view"))
	droppedBefore := testutil.ToFloat64(metrics.EventsDropped)

	metrics.EventsTracked.WithLabelValues("view").Inc()
	metrics.EventsDropped.Inc()

	if got := testutil.ToFloat64(metrics.EventsTracked.WithLabelValues("view")); got != trackedBefore+1 {
		t.Fatalf("EventsTracked(view): got=%v want=%v", got, trackedBefore+1)
	}
	if got := testutil.ToFloat64(metrics.EventsDropped); got != droppedBefore+1 {
		t.Fatalf("EventsDropped: got=%v want=%v", got, droppedBefore+1)
	}
}

//go:build !integration

package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/solrxtin/mprimo-core/internal/domain"
	"github.com/solrxtin/mprimo-core/internal/ports"
	"github.com/solrxtin/mprimo-core/internal/usecase"
)

// --- Бенчмарки ---

// Базовый бенч: GET /products/:id — сравниваем LEAN vs FULL пайплайн
func BenchmarkHTTP_GetProduct(b *testing.B) {
	h := benchHandler()

	lean := makeLeanRouter(h)
	full := makeFullRouter(h)

	b.Run("lean/no-mw", func(b *testing.B) {
		benchServeGET(b, lean, "/products/bench-p1")
	})
	b.Run("full/prod-mw", func(b *testing.B) {
		benchServeGET(b, full, "/products/bench-p1")
	})
}

// Потолок без маршалинга: тот же товар, но заранее закодированный JSON.
// Показывает, сколько «ест» encoding/json в хендлере.
func BenchmarkHTTP_GetProduct_PreMarshaledBytes(b *testing.B) {
	raw, _ := json.Marshal(benchProduct())

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/products/:id", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", raw)
	})

	benchServeGET(b, r, "/products/bench-p1")
}

// Ошибочный путь (404): "цена" роутера и 404-хендлера
func BenchmarkHTTP_404(b *testing.B) {
	r := makeLeanRouter(benchHandler())

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, "/nope", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusNotFound {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}

// --- nopLogger — логгер, который не делает ничего. ---

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// --- Стабы ---

func benchProduct() *domain.Product {
	return &domain.Product{
		ID:       "bench-p1",
		VendorID: "bench-vendor",
		Name:     "Bench Product",
		Currency: "USD",
		Variants: []domain.Variant{{
			ID: "v1", SKU: "SKU-1", IsDefault: true,
			Options: []domain.Option{{
				ID: "o1", Name: "default", Quantity: 100, PriceCents: 1500, IsDefault: true,
			}},
		}},
	}
}

// benchProductRepo — всегда отдаёт один и тот же товар.
type benchProductRepo struct{ p *domain.Product }

func (r benchProductRepo) GetByID(context.Context, string) (*domain.Product, error) { return r.p, nil }
func (r benchProductRepo) ListPopular(context.Context, int) ([]*domain.Product, error) {
	return []*domain.Product{r.p}, nil
}

// benchKV — кэш, который всегда промахивается; запись — no-op.
// Так бенч меряет полный путь хендлер → сервис → репозиторий.
type benchKV struct{}

func (benchKV) Get(context.Context, string) (string, error)                   { return "", ports.ErrCacheMiss }
func (benchKV) Set(context.Context, string, string, time.Duration) error      { return nil }
func (benchKV) Delete(context.Context, ...string) error                       { return nil }
func (benchKV) IncrBy(context.Context, string, int64) (int64, error)          { return 0, nil }
func (benchKV) ZIncrBy(context.Context, string, string, float64) error        { return nil }
func (benchKV) ZRevRange(context.Context, string, int64) ([]string, error)    { return nil, nil }
func (benchKV) SetNX(context.Context, string, string, time.Duration) (bool, error) { return true, nil }
func (benchKV) CompareAndDelete(context.Context, string, string) (bool, error) { return true, nil }
func (benchKV) Scan(context.Context, string) ([]string, error)                { return nil, nil }
func (benchKV) Publish(context.Context, string, string) error                 { return nil }
func (benchKV) Subscribe(context.Context, string, func(string)) error         { return nil }

type benchLocker struct{}

func (benchLocker) Acquire(context.Context, string, string, time.Duration) bool { return true }
func (benchLocker) Release(context.Context, string, string) bool                { return true }

func benchHandler() *Handler {
	log := nopLogger{}
	products := usecase.NewProductService(benchProductRepo{p: benchProduct()}, benchKV{}, benchLocker{}, log, 0, 0)
	return NewHandler(nil, nil, products, nil, nil, log, 2*time.Second)
}

// --- функции-помощники ---

func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New() // без Recovery/otel/logger — получаем меньшую аллокацию
	r.GET("/products/:id", h.getProduct)
	return r
}

func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	// prod пайплайн из NewRouter
	return NewRouter(h, "")
}

func benchServeGET(b *testing.B, r *gin.Engine, path string) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	// Параллельный режим ближе к реальности без TCP
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			// вычитываем тело
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusOK {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}

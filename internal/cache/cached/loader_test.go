package cached_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/solrxtin/mprimo-core/internal/cache/cached"
	"github.com/solrxtin/mprimo-core/internal/ports"
	"github.com/solrxtin/mprimo-core/internal/ports/mocks"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

type item struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

func TestGetOrLoad_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)

	kv := mocks.NewMockKeyValueCache(ctrl)
	kv.EXPECT().Get(gomock.Any(), "cart:u1").Return(`[{"name":"x","qty":2}]`, nil)

	l := cached.NewLoader[[]item](kv, noopLogger{}, "cart", time.Minute)

	got, err := l.GetOrLoad(context.Background(), "cart:u1", func(context.Context) ([]item, error) {
		t.Fatal("loader must not be called on hit")
		return nil, nil
	})
	if err != nil || len(got) != 1 || got[0].Qty != 2 {
		t.Fatalf("expected cached value, got err=%v, v=%+v", err, got)
	}
}

func TestGetOrLoad_Miss_LoadsAndStores(t *testing.T) {
	ctrl := gomock.NewController(t)

	kv := mocks.NewMockKeyValueCache(ctrl)
	gomock.InOrder(
		kv.EXPECT().Get(gomock.Any(), "cart:u1").Return("", ports.ErrCacheMiss),
		kv.EXPECT().Set(gomock.Any(), "cart:u1", `[{"name":"y","qty":1}]`, time.Minute).Return(nil),
	)

	l := cached.NewLoader[[]item](kv, noopLogger{}, "cart", time.Minute)

	got, err := l.GetOrLoad(context.Background(), "cart:u1", func(context.Context) ([]item, error) {
		return []item{{Name: "y", Qty: 1}}, nil
	})
	if err != nil || len(got) != 1 || got[0].Name != "y" {
		t.Fatalf("expected loaded value, got err=%v, v=%+v", err, got)
	}
}

func TestGetOrLoad_CacheErrorFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)

	kv := mocks.NewMockKeyValueCache(ctrl)
	kv.EXPECT().Get(gomock.Any(), "product:p1").Return("", errors.New("conn refused"))
	// запись после чтения из хранилища тоже может падать — и тоже поглощается
	kv.EXPECT().Set(gomock.Any(), "product:p1", gomock.Any(), gomock.Any()).Return(errors.New("conn refused"))

	l := cached.NewLoader[item](kv, noopLogger{}, "product", time.Minute)

	got, err := l.GetOrLoad(context.Background(), "product:p1", func(context.Context) (item, error) {
		return item{Name: "p", Qty: 3}, nil
	})
	if err != nil || got.Qty != 3 {
		t.Fatalf("cache failure must not fail the read: err=%v, v=%+v", err, got)
	}
}

func TestGetOrLoad_CorruptEntryDropped(t *testing.T) {
	ctrl := gomock.NewController(t)

	kv := mocks.NewMockKeyValueCache(ctrl)
	gomock.InOrder(
		kv.EXPECT().Get(gomock.Any(), "cart:u2").Return("{not json", nil),
		kv.EXPECT().Delete(gomock.Any(), "cart:u2").Return(nil),
		kv.EXPECT().Set(gomock.Any(), "cart:u2", gomock.Any(), gomock.Any()).Return(nil),
	)

	l := cached.NewLoader[[]item](kv, noopLogger{}, "cart", time.Minute)

	got, err := l.GetOrLoad(context.Background(), "cart:u2", func(context.Context) ([]item, error) {
		return []item{{Name: "z", Qty: 5}}, nil
	})
	if err != nil || len(got) != 1 {
		t.Fatalf("expected fallback to store, got err=%v, v=%+v", err, got)
	}
}

func TestGetOrLoad_LoaderErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)

	kv := mocks.NewMockKeyValueCache(ctrl)
	kv.EXPECT().Get(gomock.Any(), "cart:u3").Return("", ports.ErrCacheMiss)

	l := cached.NewLoader[[]item](kv, noopLogger{}, "cart", time.Minute)

	wantErr := errors.New("db down")
	_, err := l.GetOrLoad(context.Background(), "cart:u3", func(context.Context) ([]item, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected loader error, got %v", err)
	}
}

func TestInvalidate_AbsorbsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)

	kv := mocks.NewMockKeyValueCache(ctrl)
	kv.EXPECT().Delete(gomock.Any(), "cart:u1", "product:p1").Return(errors.New("conn refused"))

	l := cached.NewLoader[item](kv, noopLogger{}, "cart", time.Minute)
	l.Invalidate(context.Background(), "cart:u1", "product:p1")
}

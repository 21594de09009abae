package lock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/solrxtin/mprimo-core/internal/domain"
	"github.com/solrxtin/mprimo-core/internal/lock"
	"github.com/solrxtin/mprimo-core/internal/ports/mocks"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func TestAcquire_FirstWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKeyValueCache(ctrl)

	gomock.InOrder(
		kv.EXPECT().SetNX(gomock.Any(), "lock:inventory:p1", "owner-a", 10*time.Second).Return(true, nil),
		kv.EXPECT().SetNX(gomock.Any(), "lock:inventory:p1", "owner-b", 10*time.Second).Return(false, nil),
	)

	l := lock.New(kv, noopLogger{}, 10*time.Second)
	ctx := context.Background()

	if !l.Acquire(ctx, "inventory:p1", "owner-a", 0) {
		t.Fatal("first acquire must succeed")
	}
	if l.Acquire(ctx, "inventory:p1", "owner-b", 0) {
		t.Fatal("second acquire on held resource must fail")
	}
}

func TestAcquire_FailClosedOnCacheError(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKeyValueCache(ctrl)
	kv.EXPECT().SetNX(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("conn refused"))

	l := lock.New(kv, noopLogger{}, 10*time.Second)
	if l.Acquire(context.Background(), "inventory:p1", "owner-a", 0) {
		t.Fatal("cache error must not grant the lock")
	}
}

func TestRelease_OnlyOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKeyValueCache(ctrl)

	gomock.InOrder(
		kv.EXPECT().CompareAndDelete(gomock.Any(), "lock:inventory:p1", "stranger").Return(false, nil),
		kv.EXPECT().CompareAndDelete(gomock.Any(), "lock:inventory:p1", "owner-a").Return(true, nil),
	)

	l := lock.New(kv, noopLogger{}, 10*time.Second)
	ctx := context.Background()

	if l.Release(ctx, "inventory:p1", "stranger") {
		t.Fatal("non-owner release must be a no-op")
	}
	if !l.Release(ctx, "inventory:p1", "owner-a") {
		t.Fatal("owner release must succeed")
	}
}

func TestWithLock_RunsAndReleases(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKeyValueCache(ctrl)

	gomock.InOrder(
		kv.EXPECT().SetNX(gomock.Any(), "lock:refresh:p1", gomock.Any(), time.Minute).Return(true, nil),
		kv.EXPECT().CompareAndDelete(gomock.Any(), "lock:refresh:p1", gomock.Any()).Return(true, nil),
	)

	l := lock.New(kv, noopLogger{}, 10*time.Second)

	ran := false
	err := lock.WithLock(context.Background(), l, "refresh:p1", time.Minute, func(context.Context) error {
		ran = true
		return nil
	})
	if err != nil || !ran {
		t.Fatalf("expected section to run under lock, err=%v ran=%v", err, ran)
	}
}

func TestWithLock_BusyResourceSkipsSection(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKeyValueCache(ctrl)
	kv.EXPECT().SetNX(gomock.Any(), "lock:refresh:p1", gomock.Any(), gomock.Any()).Return(false, nil)

	l := lock.New(kv, noopLogger{}, 10*time.Second)

	err := lock.WithLock(context.Background(), l, "refresh:p1", time.Minute, func(context.Context) error {
		t.Fatal("section must not run when resource is busy")
		return nil
	})
	if !errors.Is(err, domain.ErrLockNotAcquired) {
		t.Fatalf("expected ErrLockNotAcquired, got %v", err)
	}
}

func TestWithLock_ReleasesOnSectionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKeyValueCache(ctrl)

	gomock.InOrder(
		kv.EXPECT().SetNX(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil),
		kv.EXPECT().CompareAndDelete(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil),
	)

	l := lock.New(kv, noopLogger{}, 10*time.Second)

	wantErr := errors.New("boom")
	err := lock.WithLock(context.Background(), l, "refresh:p1", time.Minute, func(context.Context) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected section error, got %v", err)
	}
}

package lock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/solrxtin/mprimo-core/internal/domain"
	"github.com/solrxtin/mprimo-core/internal/ports"
	"github.com/solrxtin/mprimo-core/pkg/metrics"
)

// Проверка, что KVLocker удовлетворяет интерфейсу Locker.
var _ ports.Locker = (*KVLocker)(nil)

// KVLocker — распределённая блокировка поверх KV-хранилища:
// захват через SetNX с TTL, освобождение через атомарное
// «сравнить и удалить» по токену владельца. TTL страхует от
// навечно зависших блокировок при падении владельца.
type KVLocker struct {
	kv  ports.KeyValueCache
	log ports.Logger
	ttl time.Duration
}

func New(kv ports.KeyValueCache, log ports.Logger, ttl time.Duration) *KVLocker {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &KVLocker{kv: kv, log: log, ttl: ttl}
}

func key(resource string) string { return "lock:" + resource }

// Acquire — пытается захватить ресурс. Ошибка KV трактуется как
// «занято»: лучше отказать в захвате, чем выдать блокировку двоим.
func (l *KVLocker) Acquire(ctx context.Context, resource, owner string, ttl time.Duration) bool {
	if ttl <= 0 {
		ttl = l.ttl
	}
	ok, err := l.kv.SetNX(ctx, key(resource), owner, ttl)
	if err != nil {
		metrics.LockOps.WithLabelValues("failed").Inc()
		l.log.Warnf(ctx, "lock: acquire %q: %v", resource, err)
		return false
	}
	if ok {
		metrics.LockOps.WithLabelValues("acquired").Inc()
	} else {
		metrics.LockOps.WithLabelValues("busy").Inc()
	}
	return ok
}

// Release — снимает блокировку, только если токен совпадает с владельцем.
// Чужую (переназначенную после истечения TTL) блокировку не трогает.
func (l *KVLocker) Release(ctx context.Context, resource, owner string) bool {
	ok, err := l.kv.CompareAndDelete(ctx, key(resource), owner)
	if err != nil {
		metrics.LockOps.WithLabelValues("failed").Inc()
		l.log.Warnf(ctx, "lock: release %q: %v", resource, err)
		return false
	}
	if ok {
		metrics.LockOps.WithLabelValues("released").Inc()
	} else {
		metrics.LockOps.WithLabelValues("release_denied").Inc()
	}
	return ok
}

// WithLock — выполняет fn под блокировкой ресурса со случайным
// токеном владельца. Возвращает domain.ErrLockNotAcquired, если
// ресурс занят; критическая секция при этом не выполняется.
func WithLock(ctx context.Context, l ports.Locker, resource string, ttl time.Duration, fn func(context.Context) error) error {
	owner := uuid.NewString()
	if !l.Acquire(ctx, resource, owner, ttl) {
		return domain.ErrLockNotAcquired
	}
	defer l.Release(ctx, resource, owner)
	return fn(ctx)
}

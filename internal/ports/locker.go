package ports

import (
	"context"
	"time"
)

// Locker — распределённая блокировка поверх условной записи кэша.
// Инвариант: не более одного владельца resource в каждый момент;
// TTL гарантирует освобождение при падении владельца.
type Locker interface {
	// Acquire — true, только если удалось стать эксклюзивным владельцем.
	// Недоступность кэша — тоже false (fail-closed: «не получил
	// эксклюзивность», а не «можно без защиты»).
	Acquire(ctx context.Context, resource, owner string, ttl time.Duration) bool

	// Release — true, только если владельцем был вызывающий;
	// чужую (переназначенную по TTL) блокировку снять нельзя.
	Release(ctx context.Context, resource, owner string) bool
}

package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss — ключ отсутствует (или истёк). Отличается от ошибок соединения:
// промах — нормальный сценарий read-through, ошибка соединения — повод
// сходить в БД и записать warning.
var ErrCacheMiss = errors.New("cache: key not found")

// KeyValueCache — контракт удалённого KV-хранилища (Redis).
// Все операции best-effort: ошибка соединения возвращается вызывающему,
// но никогда не должна попадать в бизнес-логику как фатальная —
// источником истины остаётся БД.
type KeyValueCache interface {
	// Get — значение по ключу; ErrCacheMiss при отсутствии.
	Get(ctx context.Context, key string) (string, error)

	// Set — записать значение; ttl <= 0 означает «без истечения».
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Delete — удалить ключи (отсутствующие игнорируются).
	Delete(ctx context.Context, keys ...string) error

	// IncrBy — атомарный инкремент целочисленного счётчика.
	IncrBy(ctx context.Context, key string, by int64) (int64, error)

	// ZIncrBy — инкремент веса элемента в sorted set (рейтинги).
	ZIncrBy(ctx context.Context, set, member string, by float64) error

	// ZRevRange — top-N элементов sorted set по убыванию веса.
	ZRevRange(ctx context.Context, set string, n int64) ([]string, error)

	// SetNX — условная запись «если не существует» с TTL;
	// основа распределённой блокировки.
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)

	// CompareAndDelete — атомарно удалить ключ, только если значение совпадает
	// (сравнение и удаление одним шагом на стороне хранилища).
	CompareAndDelete(ctx context.Context, key, value string) (bool, error)

	// Scan — ключи по шаблону (для слива счётчиков).
	Scan(ctx context.Context, pattern string) ([]string, error)

	// Publish — отправка сообщения в канал.
	Publish(ctx context.Context, channel, payload string) error

	// Subscribe — подписка на канал; handler вызывается на каждое сообщение
	// до отмены контекста.
	Subscribe(ctx context.Context, channel string, handler func(payload string)) error
}

package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/solrxtin/mprimo-core/internal/ports"
)

// Проверка, что Client удовлетворяет интерфейсу KeyValueCache.
var _ ports.KeyValueCache = (*Client)(nil)

// releaseScript — атомарное «сравнить и удалить»: ключ удаляется, только если
// значение совпадает с переданным. Нужен блокировке: GET+DEL двумя командами
// позволили бы медленному владельцу снять чужую (переназначенную по TTL) блокировку.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`)

// Client — тонкая обёртка над go-redis под контракт ports.KeyValueCache.
type Client struct {
	rdb *redis.Client
}

// New — создаёт клиент и проверяет соединение (fail-fast Ping).
func New(ctx context.Context, addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &Client{rdb: rdb}, nil
}

// Close — закрывает пул соединений.
func (c *Client) Close() error { return c.rdb.Close() }

// Get — значение по ключу; redis.Nil транслируется в ports.ErrCacheMiss.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ports.ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (c *Client) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

func (c *Client) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

func (c *Client) IncrBy(ctx context.Context, key string, by int64) (int64, error) {
	return c.rdb.IncrBy(ctx, key, by).Result()
}

func (c *Client) ZIncrBy(ctx context.Context, set, member string, by float64) error {
	return c.rdb.ZIncrBy(ctx, set, by, member).Err()
}

func (c *Client) ZRevRange(ctx context.Context, set string, n int64) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	return c.rdb.ZRevRange(ctx, set, 0, n-1).Result()
}

func (c *Client) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	return c.rdb.SetNX(ctx, key, value, ttl).Result()
}

func (c *Client) CompareAndDelete(ctx context.Context, key, value string) (bool, error) {
	res, err := releaseScript.Run(ctx, c.rdb, []string{key}, value).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

// Scan — полный проход курсором по ключам шаблона.
// Используется только джобом слива счётчиков, не на горячем пути.
func (c *Client) Scan(ctx context.Context, pattern string) ([]string, error) {
	var (
		cursor uint64
		keys   []string
	)
	for {
		batch, next, err := c.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}

func (c *Client) Publish(ctx context.Context, channel, payload string) error {
	return c.rdb.Publish(ctx, channel, payload).Err()
}

// Subscribe — блокирующая подписка; завершается по отмене контекста.
func (c *Client) Subscribe(ctx context.Context, channel string, handler func(payload string)) error {
	sub := c.rdb.Subscribe(ctx, channel)
	defer func() { _ = sub.Close() }()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			handler(msg.Payload)
		}
	}
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/solrxtin/mprimo-core/internal/cache/cached"
	"github.com/solrxtin/mprimo-core/internal/domain"
	"github.com/solrxtin/mprimo-core/internal/lock"
	"github.com/solrxtin/mprimo-core/internal/ports"
)

// ProductService — чтение каталога с TTL-кэшем карточек и рейтингом
// популярности из sorted set.
type ProductService struct {
	repo    ports.ProductRepository
	kv      ports.KeyValueCache
	locker  ports.Locker
	loader  *cached.Loader[*domain.Product]
	log     ports.Logger
	ttl     time.Duration
	lockTTL time.Duration
}

func NewProductService(
	repo ports.ProductRepository,
	kv ports.KeyValueCache,
	locker ports.Locker,
	log ports.Logger,
	ttl, lockTTL time.Duration,
) *ProductService {
	return &ProductService{
		repo:    repo,
		kv:      kv,
		locker:  locker,
		loader:  cached.NewLoader[*domain.Product](kv, log, "product", ttl),
		log:     log,
		ttl:     ttl,
		lockTTL: lockTTL,
	}
}

// Get — карточка товара. Отсутствие записи — ErrProductNotFound
// (и в кэш не попадает).
func (s *ProductService) Get(ctx context.Context, productID string) (*domain.Product, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product id is required", domain.ErrValidation)
	}
	return s.loader.GetOrLoad(ctx, productKey(productID), func(ctx context.Context) (*domain.Product, error) {
		p, err := s.repo.GetByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrProductNotFound
		}
		return p, nil
	})
}

// Popular — топ-N по просмотрам: сначала рейтинг из sorted set,
// при пустом или недоступном кэше — фолбэк на агрегаты в БД.
func (s *ProductService) Popular(ctx context.Context, limit int) ([]*domain.Product, error) {
	if limit <= 0 {
		limit = 10
	}

	ids, err := s.kv.ZRevRange(ctx, "popular:products", int64(limit))
	if err != nil {
		s.log.Warnf(ctx, "popular: rank unavailable, falling back to db: %v", err)
		return s.repo.ListPopular(ctx, limit)
	}
	if len(ids) == 0 {
		return s.repo.ListPopular(ctx, limit)
	}

	result := make([]*domain.Product, 0, len(ids))
	for _, id := range ids {
		p, err := s.Get(ctx, id)
		if err != nil {
			// товар мог исчезнуть после попадания в рейтинг
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

// Invalidate — явный сброс карточки после записи в каталог.
func (s *ProductService) Invalidate(ctx context.Context, productID string) {
	s.loader.Invalidate(ctx, productKey(productID))
}

// RefreshInventoryMirror — обновление справочного зеркала остатков
// inventory:{productId} под распределённой блокировкой. Зеркало
// только для чтения витриной, продажу оно не решает. Занятый ресурс —
// не ошибка: обновит тот, кто держит блокировку.
func (s *ProductService) RefreshInventoryMirror(ctx context.Context, productID string) error {
	err := lock.WithLock(ctx, s.locker, "inventory:"+productID, s.lockTTL, func(ctx context.Context) error {
		p, err := s.repo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if p == nil {
			return s.kv.Delete(ctx, inventoryKey(productID))
		}

		mirror := make(map[string]int)
		for _, v := range p.Variants {
			for _, o := range v.Options {
				mirror[o.ID] = o.Quantity
			}
		}
		raw, err := json.Marshal(mirror)
		if err != nil {
			return err
		}
		return s.kv.Set(ctx, inventoryKey(productID), string(raw), s.ttl)
	})
	if err != nil && !errors.Is(err, domain.ErrLockNotAcquired) {
		return err
	}
	return nil
}

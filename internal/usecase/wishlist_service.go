package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/solrxtin/mprimo-core/internal/cache/cached"
	"github.com/solrxtin/mprimo-core/internal/domain"
	"github.com/solrxtin/mprimo-core/internal/ports"
)

// WishlistService — список желаний; тот же сквозной контракт, что у корзины.
type WishlistService struct {
	repo     ports.WishlistRepository
	products ports.ProductRepository
	loader   *cached.Loader[[]domain.WishlistItem]
	log      ports.Logger
}

func NewWishlistService(
	repo ports.WishlistRepository,
	products ports.ProductRepository,
	kv ports.KeyValueCache,
	log ports.Logger,
	ttl time.Duration,
) *WishlistService {
	return &WishlistService{
		repo:     repo,
		products: products,
		loader:   cached.NewLoader[[]domain.WishlistItem](kv, log, "wishlist", ttl),
		log:      log,
	}
}

func (s *WishlistService) Items(ctx context.Context, userID string) ([]domain.WishlistItem, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	return s.loader.GetOrLoad(ctx, wishlistKey(userID), func(ctx context.Context) ([]domain.WishlistItem, error) {
		return s.repo.Items(ctx, userID)
	})
}

// Add — добавление товара; цена фиксируется с дефолтной опции.
// Повторное добавление идемпотентно.
func (s *WishlistService) Add(ctx context.Context, userID, productID string) (domain.WishlistItem, error) {
	var zero domain.WishlistItem
	if userID == "" || productID == "" {
		return zero, fmt.Errorf("%w: user id and product id are required", domain.ErrValidation)
	}

	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return zero, err
	}
	if p == nil {
		return zero, domain.ErrProductNotFound
	}

	_, option, err := resolveVariantOption(p, "", "")
	if err != nil {
		return zero, err
	}

	item := domain.WishlistItem{
		ProductID:  productID,
		PriceCents: option.PriceCents,
		AddedAt:    time.Now().UTC(),
	}

	if err := s.repo.AddItem(ctx, userID, item); err != nil {
		return zero, err
	}
	s.loader.Invalidate(ctx, wishlistKey(userID))
	return item, nil
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID string) error {
	if userID == "" || productID == "" {
		return fmt.Errorf("%w: user id and product id are required", domain.ErrValidation)
	}
	s.loader.Invalidate(ctx, wishlistKey(userID))
	return s.repo.RemoveItem(ctx, userID, productID)
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/solrxtin/mprimo-core/internal/cache/cached"
	"github.com/solrxtin/mprimo-core/internal/domain"
	"github.com/solrxtin/mprimo-core/internal/ports"
)

// CartService — корзина со сквозным кэшированием.
// Чтение: кэш → БД → пополнение кэша. Запись: сначала кэш (чтобы
// пользователь сразу видел позицию), затем БД; ошибка БД доводится
// до вызывающего, окно рассинхронизации закрывается TTL ключа.
type CartService struct {
	repo     ports.CartRepository
	products ports.ProductRepository
	loader   *cached.Loader[[]domain.CartItem]
	log      ports.Logger
}

func NewCartService(
	repo ports.CartRepository,
	products ports.ProductRepository,
	kv ports.KeyValueCache,
	log ports.Logger,
	ttl time.Duration,
) *CartService {
	return &CartService{
		repo:     repo,
		products: products,
		loader:   cached.NewLoader[[]domain.CartItem](kv, log, "cart", ttl),
		log:      log,
	}
}

// Items — содержимое корзины.
func (s *CartService) Items(ctx context.Context, userID string) ([]domain.CartItem, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	return s.loader.GetOrLoad(ctx, cartKey(userID), func(ctx context.Context) ([]domain.CartItem, error) {
		return s.repo.Items(ctx, userID)
	})
}

// Add — добавление позиции. Вариант и опция резолвятся по товару:
// пустой SKU/ID означает дефолтные; цена фиксируется на момент добавления.
func (s *CartService) Add(ctx context.Context, userID, productID, variantSKU, optionID string, quantity int) (domain.CartItem, error) {
	var zero domain.CartItem
	if userID == "" || productID == "" {
		return zero, fmt.Errorf("%w: user id and product id are required", domain.ErrValidation)
	}
	if quantity <= 0 {
		return zero, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}

	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return zero, err
	}
	if p == nil {
		return zero, domain.ErrProductNotFound
	}

	variant, option, err := resolveVariantOption(p, variantSKU, optionID)
	if err != nil {
		return zero, err
	}

	item := domain.CartItem{
		ProductID:   productID,
		VariantSKU:  variant.SKU,
		OptionID:    option.ID,
		Quantity:    quantity,
		PriceCents:  option.PriceCents,
		ProductName: p.Name,
		ImageURLs:   p.ImageURLs,
		AddedAt:     time.Now().UTC(),
	}

	// Кэш обновляется до БД: оптимистичная запись.
	if current, cerr := s.Items(ctx, userID); cerr == nil {
		s.loader.Store(ctx, cartKey(userID), mergeCartItem(current, item))
	}

	if err := s.repo.AddItem(ctx, userID, item); err != nil {
		// БД отказала — оптимистичную запись убираем.
		s.loader.Invalidate(ctx, cartKey(userID))
		return zero, err
	}
	return item, nil
}

// Remove — удаление позиции; кэш сбрасывается best-effort.
func (s *CartService) Remove(ctx context.Context, userID, productID, variantSKU string) error {
	if userID == "" || productID == "" {
		return fmt.Errorf("%w: user id and product id are required", domain.ErrValidation)
	}
	s.loader.Invalidate(ctx, cartKey(userID))
	return s.repo.RemoveItem(ctx, userID, productID, variantSKU)
}

// Clear — полная очистка корзины.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	s.loader.Invalidate(ctx, cartKey(userID))
	return s.repo.Clear(ctx, userID)
}

// mergeCartItem — слияние по идентичности (productID, variantSKU):
// существующая позиция наращивает количество, как и upsert в БД.
func mergeCartItem(items []domain.CartItem, item domain.CartItem) []domain.CartItem {
	for i := range items {
		if items[i].ProductID == item.ProductID && items[i].VariantSKU == item.VariantSKU {
			items[i].Quantity += item.Quantity
			items[i].OptionID = item.OptionID
			items[i].PriceCents = item.PriceCents
			return items
		}
	}
	return append(items, item)
}

// resolveVariantOption — выбор варианта по SKU (пустой — дефолтный)
// и опции по ID (пустой — дефолтная).
func resolveVariantOption(p *domain.Product, variantSKU, optionID string) (domain.Variant, domain.Option, error) {
	var variant domain.Variant
	var found bool
	if variantSKU == "" {
		variant, found = p.DefaultVariant()
	} else {
		for _, v := range p.Variants {
			if v.SKU == variantSKU {
				variant, found = v, true
				break
			}
		}
	}
	if !found {
		return domain.Variant{}, domain.Option{}, fmt.Errorf("%w: product %q has no variant %q", domain.ErrValidation, p.ID, variantSKU)
	}

	var option domain.Option
	found = false
	if optionID == "" {
		option, found = variant.DefaultOption()
	} else {
		for _, o := range variant.Options {
			if o.ID == optionID {
				option, found = o, true
				break
			}
		}
	}
	if !found {
		return domain.Variant{}, domain.Option{}, fmt.Errorf("%w: variant %q has no option %q", domain.ErrValidation, variant.SKU, optionID)
	}
	return variant, option, nil
}

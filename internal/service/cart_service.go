package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// CartService handles the caller's in-progress product selection. All
// operations are scoped by the authenticated user's ID; another user's line
// reads as absent.
type CartService interface {
	AddItem(ctx context.Context, userID, productID uint, qty int) (*model.CartItem, error)
	// UpdateQty sets a line's quantity. Quantity zero deletes the line and
	// reports removed=true with a nil item.
	UpdateQty(ctx context.Context, userID, id uint, qty int) (item *model.CartItem, removed bool, err error)
	Remove(ctx context.Context, userID, id uint) error
	ListForUser(ctx context.Context, userID uint) ([]model.CartItem, error)
	Get(ctx context.Context, userID, id uint) (*model.CartItem, error)
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{cartRepo: cartRepo, productRepo: productRepo}
}

// AddItem appends a line to the user's cart. Repeated adds of the same
// product create sibling lines rather than incrementing quantity.
func (s *cartService) AddItem(ctx context.Context, userID, productID uint, qty int) (*model.CartItem, error) {
	if qty < 1 {
		return nil, errors.ErrInvalidQty
	}
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProductNotExists
		}
		return nil, fmt.Errorf("check product: %w", err)
	}

	item := &model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Qty:       qty,
	}
	if err := s.cartRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create cart item: %w", err)
	}
	return item, nil
}

// UpdateQty merges update and delete: zero removes the line so a
// zero-quantity row is never persisted.
func (s *cartService) UpdateQty(ctx context.Context, userID, id uint, qty int) (*model.CartItem, bool, error) {
	if qty < 0 {
		return nil, false, errors.ErrInvalidQty
	}

	if qty == 0 {
		if err := s.cartRepo.DeleteByIDForUser(ctx, id, userID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, false, errors.ErrCartItemNotFound
			}
			return nil, false, fmt.Errorf("delete cart item: %w", err)
		}
		return nil, true, nil
	}

	if err := s.cartRepo.UpdateQty(ctx, id, userID, qty); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, errors.ErrCartItemNotFound
		}
		return nil, false, fmt.Errorf("update cart item: %w", err)
	}

	item, err := s.cartRepo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, false, fmt.Errorf("reload cart item: %w", err)
	}
	return item, false, nil
}

func (s *cartService) Remove(ctx context.Context, userID, id uint) error {
	if err := s.cartRepo.DeleteByIDForUser(ctx, id, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrCartItemNotFound
		}
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

func (s *cartService) ListForUser(ctx context.Context, userID uint) ([]model.CartItem, error) {
	return s.cartRepo.FindByUser(ctx, userID)
}

func (s *cartService) Get(ctx context.Context, userID, id uint) (*model.CartItem, error) {
	item, err := s.cartRepo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCartItemNotFound
		}
		return nil, err
	}
	return item, nil
}

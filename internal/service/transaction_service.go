package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// TransactionService converts carts into purchase records and serves the
// purchase history.
type TransactionService interface {
	// Checkout atomically turns the user's whole cart into transaction rows
	// and empties the cart. On any failure the cart is left untouched and no
	// transaction rows exist.
	Checkout(ctx context.Context, userID uint) ([]model.TransactionItem, error)
	ListForUser(ctx context.Context, userID uint) ([]model.TransactionItem, error)
	Get(ctx context.Context, userID, id uint) (*model.TransactionItem, error)
}

type transactionService struct {
	transactionRepo repository.TransactionRepository
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(transactionRepo repository.TransactionRepository) TransactionService {
	return &transactionService{transactionRepo: transactionRepo}
}

// Checkout runs read-insert-delete as one database transaction. The cart read
// takes row locks, so two concurrent checkouts for the same user serialize on
// the cart rows and the loser finds an empty cart; no application-level
// locking is added.
func (s *transactionService) Checkout(ctx context.Context, userID uint) ([]model.TransactionItem, error) {
	var created []model.TransactionItem

	err := s.transactionRepo.WithTransaction(ctx, func(ctx context.Context, carts repository.CartRepository, transactions repository.TransactionRepository) error {
		cartItems, err := carts.FindByUserForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("read cart: %w", err)
		}
		if len(cartItems) == 0 {
			return errors.ErrEmptyCart
		}

		items := make([]model.TransactionItem, 0, len(cartItems))
		for _, line := range cartItems {
			items = append(items, model.TransactionItem{
				UserID:    userID,
				ProductID: line.ProductID,
				Qty:       line.Qty,
			})
		}

		created, err = transactions.CreateBatch(ctx, items)
		if err != nil {
			return fmt.Errorf("create transaction items: %w", err)
		}

		if err := carts.DeleteByUser(ctx, userID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *transactionService) ListForUser(ctx context.Context, userID uint) ([]model.TransactionItem, error) {
	return s.transactionRepo.FindByUser(ctx, userID)
}

func (s *transactionService) Get(ctx context.Context, userID, id uint) (*model.TransactionItem, error) {
	item, err := s.transactionRepo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTransactionNotFound
		}
		return nil, err
	}
	return item, nil
}

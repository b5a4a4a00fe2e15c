package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront/internal/model"
)

// TransactionRepository defines transaction persistence operations. Rows are
// append-only: there is no update or delete.
type TransactionRepository interface {
	CreateBatch(ctx context.Context, items []model.TransactionItem) ([]model.TransactionItem, error)
	FindByIDForUser(ctx context.Context, id, userID uint) (*model.TransactionItem, error)
	FindByUser(ctx context.Context, userID uint) ([]model.TransactionItem, error)
	// WithTransaction runs fn inside one database transaction, handing it
	// cart and transaction repositories bound to the transaction handle.
	// Any error from fn rolls the whole unit back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, carts CartRepository, transactions TransactionRepository) error) error
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// CreateBatch inserts transaction rows in one statement batch and returns
// them with their assigned IDs.
func (r *transactionRepository) CreateBatch(ctx context.Context, items []model.TransactionItem) ([]model.TransactionItem, error) {
	if len(items) == 0 {
		return items, nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(&items, 100).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByIDForUser loads one transaction line with product joined. Cross-user
// access yields ErrRecordNotFound, never the row.
func (r *transactionRepository) FindByIDForUser(ctx context.Context, id, userID uint) (*model.TransactionItem, error) {
	var item model.TransactionItem
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ? AND user_id = ?", id, userID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByUser returns the user's purchase history in creation order.
func (r *transactionRepository) FindByUser(ctx context.Context, userID uint) ([]model.TransactionItem, error) {
	var items []model.TransactionItem
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// WithTransaction executes fn within a database transaction spanning the
// cart and transaction stores.
func (r *transactionRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, carts CartRepository, transactions TransactionRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &cartRepository{db: tx}, &transactionRepository{db: tx})
	})
}

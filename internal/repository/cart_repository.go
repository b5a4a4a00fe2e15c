package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront/internal/model"
)

// CartRepository defines cart persistence operations. Every query is scoped
// by the owning user; a row belonging to someone else reads as absent.
type CartRepository interface {
	Create(ctx context.Context, item *model.CartItem) error
	FindByIDForUser(ctx context.Context, id, userID uint) (*model.CartItem, error)
	FindByUser(ctx context.Context, userID uint) ([]model.CartItem, error)
	// FindByUserForUpdate reads the user's lines under row locks. Only valid
	// inside a transaction; checkout uses it so two concurrent checkouts
	// serialize on the cart rows instead of both reading the same snapshot.
	FindByUserForUpdate(ctx context.Context, userID uint) ([]model.CartItem, error)
	UpdateQty(ctx context.Context, id, userID uint, qty int) error
	DeleteByIDForUser(ctx context.Context, id, userID uint) error
	DeleteByUser(ctx context.Context, userID uint) error
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Create(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindByIDForUser loads one cart line with product and category joined.
// Cross-user access yields ErrRecordNotFound, never the row.
func (r *cartRepository) FindByIDForUser(ctx context.Context, id, userID uint) (*model.CartItem, error) {
	var item model.CartItem
	if err := r.db.WithContext(ctx).
		Preload("Product").Preload("Product.Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByUser returns the user's cart lines in insertion order.
func (r *cartRepository) FindByUser(ctx context.Context, userID uint) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := r.db.WithContext(ctx).
		Preload("Product").Preload("Product.Category").
		Where("user_id = ?", userID).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByUserForUpdate locks and returns the user's cart lines. No preloads:
// checkout only needs the product reference and quantity, and the lock must
// stay on the cart rows.
func (r *cartRepository) FindByUserForUpdate(ctx context.Context, userID uint) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateQty sets the quantity on a user-owned line. ErrRecordNotFound covers
// both a missing row and a row owned by another user.
func (r *cartRepository) UpdateQty(ctx context.Context, id, userID uint, qty int) error {
	res := r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("qty", qty)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByIDForUser removes one user-owned line.
func (r *cartRepository) DeleteByIDForUser(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByUser drains the user's whole cart. Deleting zero rows is not an
// error here; checkout guards emptiness before calling it.
func (r *cartRepository) DeleteByUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItem{}).Error
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"storefront/internal/errors"
	"storefront/internal/model"
)

func TestCartService_AddItem(t *testing.T) {
	product := &model.Product{ID: 7, Name: "HP", Price: 1000000, CategoryID: 1}

	tests := []struct {
		name          string
		productID     uint
		qty           int
		setupMock     func(*MockCartRepository, *MockProductRepository)
		expectedError error
	}{
		{
			name:      "successful add",
			productID: 7,
			qty:       2,
			setupMock: func(carts *MockCartRepository, products *MockProductRepository) {
				products.On("FindByID", mock.Anything, uint(7)).Return(product, nil)
				carts.On("Create", mock.Anything, mock.AnythingOfType("*model.CartItem")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "quantity below one",
			productID:     7,
			qty:           0,
			setupMock:     func(carts *MockCartRepository, products *MockProductRepository) {},
			expectedError: errors.ErrInvalidQty,
		},
		{
			name:      "product does not exist",
			productID: 99,
			qty:       1,
			setupMock: func(carts *MockCartRepository, products *MockProductRepository) {
				products.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrProductNotExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carts := new(MockCartRepository)
			products := new(MockProductRepository)
			tt.setupMock(carts, products)

			svc := NewCartService(carts, products)
			item, err := svc.AddItem(context.Background(), 1, tt.productID, tt.qty)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, item)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(1), item.UserID)
				assert.Equal(t, tt.productID, item.ProductID)
				assert.Equal(t, tt.qty, item.Qty)
			}
			carts.AssertExpectations(t)
			products.AssertExpectations(t)
		})
	}
}

func TestCartService_UpdateQty(t *testing.T) {
	t.Run("positive quantity updates the line", func(t *testing.T) {
		carts := new(MockCartRepository)
		carts.On("UpdateQty", mock.Anything, uint(5), uint(1), 3).Return(nil)
		carts.On("FindByIDForUser", mock.Anything, uint(5), uint(1)).
			Return(&model.CartItem{ID: 5, UserID: 1, ProductID: 7, Qty: 3}, nil)

		svc := NewCartService(carts, new(MockProductRepository))
		item, removed, err := svc.UpdateQty(context.Background(), 1, 5, 3)

		assert.NoError(t, err)
		assert.False(t, removed)
		assert.Equal(t, 3, item.Qty)
		carts.AssertExpectations(t)
	})

	t.Run("zero quantity deletes the line", func(t *testing.T) {
		carts := new(MockCartRepository)
		carts.On("DeleteByIDForUser", mock.Anything, uint(5), uint(1)).Return(nil)

		svc := NewCartService(carts, new(MockProductRepository))
		item, removed, err := svc.UpdateQty(context.Background(), 1, 5, 0)

		assert.NoError(t, err)
		assert.True(t, removed)
		assert.Nil(t, item)
		carts.AssertExpectations(t)
		// no UpdateQty call: a zero-qty row must never be persisted
		carts.AssertNotCalled(t, "UpdateQty", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("negative quantity is rejected", func(t *testing.T) {
		carts := new(MockCartRepository)

		svc := NewCartService(carts, new(MockProductRepository))
		_, _, err := svc.UpdateQty(context.Background(), 1, 5, -1)

		assert.ErrorIs(t, err, errors.ErrInvalidQty)
		carts.AssertNotCalled(t, "UpdateQty", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		carts.AssertNotCalled(t, "DeleteByIDForUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing line reports not found", func(t *testing.T) {
		carts := new(MockCartRepository)
		carts.On("UpdateQty", mock.Anything, uint(42), uint(1), 2).Return(gorm.ErrRecordNotFound)

		svc := NewCartService(carts, new(MockProductRepository))
		_, _, err := svc.UpdateQty(context.Background(), 1, 42, 2)

		assert.ErrorIs(t, err, errors.ErrCartItemNotFound)
	})
}

func TestCartService_CrossUserIsolation(t *testing.T) {
	// The repository scopes every lookup by owner, so another user's line
	// surfaces as a missing record, never as the row or a forbidden error.
	carts := new(MockCartRepository)
	carts.On("FindByIDForUser", mock.Anything, uint(5), uint(2)).Return(nil, gorm.ErrRecordNotFound)
	carts.On("DeleteByIDForUser", mock.Anything, uint(5), uint(2)).Return(gorm.ErrRecordNotFound)

	svc := NewCartService(carts, new(MockProductRepository))

	item, err := svc.Get(context.Background(), 2, 5)
	assert.ErrorIs(t, err, errors.ErrCartItemNotFound)
	assert.Nil(t, item)

	err = svc.Remove(context.Background(), 2, 5)
	assert.ErrorIs(t, err, errors.ErrCartItemNotFound)

	carts.AssertExpectations(t)
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"storefront/internal/cache"
	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

const categoryCacheTTL = 5 * time.Minute

// CategoryService handles catalog category operations.
type CategoryService interface {
	Create(ctx context.Context, name string) (*model.Category, error)
	Update(ctx context.Context, id uint, name string) (*model.Category, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*model.Category, error)
	List(ctx context.Context, page, pageSize int) ([]model.Category, int64, error)
}

type categoryService struct {
	repo  repository.CategoryRepository
	cache *cache.Client
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo repository.CategoryRepository, cache *cache.Client) CategoryService {
	return &categoryService{repo: repo, cache: cache}
}

func (s *categoryService) cacheKey(id uint) string {
	return fmt.Sprintf("category:%d", id)
}

func (s *categoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	category := &model.Category{Name: name}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id uint, name string) (*model.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCategoryNotFound
		}
		return nil, err
	}

	category.Name = name
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrCategoryNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// Get retrieves a category by ID with read-through caching.
func (s *categoryService) Get(ctx context.Context, id uint) (*model.Category, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Category
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCategoryNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(category); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, categoryCacheTTL)
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context, page, pageSize int) ([]model.Category, int64, error) {
	return s.repo.List(ctx, page, pageSize)
}

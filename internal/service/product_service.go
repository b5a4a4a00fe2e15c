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

const productCacheTTL = 5 * time.Minute

// ProductInput carries the writable product fields.
type ProductInput struct {
	Name       string
	Price      int64
	Image      string
	CategoryID uint
}

// ProductService handles catalog product operations.
type ProductService interface {
	Create(ctx context.Context, in ProductInput) (*model.Product, error)
	Update(ctx context.Context, id uint, in ProductInput) (*model.Product, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*model.Product, error)
	List(ctx context.Context, page, pageSize int) ([]model.Product, int64, error)
}

type productService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	cache        *cache.Client
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, cache *cache.Client) ProductService {
	return &productService{repo: repo, categoryRepo: categoryRepo, cache: cache}
}

func (s *productService) cacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

// checkCategory verifies the referenced category exists before a write.
func (s *productService) checkCategory(ctx context.Context, id uint) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrCategoryNotFound
		}
		return err
	}
	return nil
}

func (s *productService) Create(ctx context.Context, in ProductInput) (*model.Product, error) {
	if err := s.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:       in.Name,
		Price:      in.Price,
		Image:      in.Image,
		CategoryID: in.CategoryID,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, id uint, in ProductInput) (*model.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProductNotFound
		}
		return nil, err
	}

	if err := s.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.Price = in.Price
	product.CategoryID = in.CategoryID
	if in.Image != "" {
		product.Image = in.Image
	}
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrProductNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// Get retrieves a product by ID with read-through caching.
func (s *productService) Get(ctx context.Context, id uint) (*model.Product, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProductNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(product); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, productCacheTTL)
	}
	return product, nil
}

func (s *productService) List(ctx context.Context, page, pageSize int) ([]model.Product, int64, error) {
	return s.repo.List(ctx, page, pageSize)
}

package services

import (
	"context"
	"errors"

	"github.com/AyatoShirayouki/Online-Shop/cache"
	"github.com/AyatoShirayouki/Online-Shop/models"
	"github.com/AyatoShirayouki/Online-Shop/repository"
	"go.uber.org/zap"
)

// ProductService defines the catalog read operations.
type ProductService interface {
	ListProducts(ctx context.Context) ([]models.Product, *ServiceError)
	GetProduct(ctx context.Context, id string) (*models.Product, *ServiceError)
}

// productServiceImpl implements ProductService.
type productServiceImpl struct {
	repo   repository.ProductRepository
	cache  cache.ProductCache
	logger *zap.Logger
}

// NewProductService creates a new ProductService. The cache may be nil, in
// which case every listing goes to the store.
func NewProductService(repo repository.ProductRepository, productCache cache.ProductCache, logger *zap.Logger) ProductService {
	return &productServiceImpl{
		repo:   repo,
		cache:  productCache,
		logger: logger,
	}
}

// ListProducts returns all products sorted ascending by name, served from
// the cache when warm. Cache errors degrade to the store read.
func (s *productServiceImpl) ListProducts(ctx context.Context) ([]models.Product, *ServiceError) {
	if s.cache != nil {
		products, err := s.cache.GetAll(ctx)
		if err == nil {
			return products, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("Product cache read failed", zap.Error(err))
		}
	}

	products, err := s.repo.FindAllSortedByName(ctx)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, errInternal("Failed to list products")
	}

	if s.cache != nil {
		if err := s.cache.SetAll(ctx, products); err != nil {
			s.logger.Warn("Product cache write failed", zap.Error(err))
		}
	}

	return products, nil
}

// GetProduct returns a single product by id.
func (s *productServiceImpl) GetProduct(ctx context.Context, id string) (*models.Product, *ServiceError) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to look up product", zap.String("product_id", id), zap.Error(err))
		return nil, errInternal("Failed to look up product")
	}
	if product == nil {
		return nil, errProductNotFound()
	}
	return product, nil
}

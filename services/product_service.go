package services

import (
	"context"
	"strings"

	"storefront-service/cache"
	"storefront-service/models"
	"storefront-service/repository"

	"go.uber.org/zap"
)

// ProductCounter holds order/wishlist counts for one product.
type ProductCounter struct {
	OrderCount    int64 `json:"order_count"`
	WishlistCount int64 `json:"wishlist_count"`
}

// ProductService handles catalog CRUD and product detail lookups.
type ProductService interface {
	List(ctx context.Context) ([]models.Product, *ServiceError)
	Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError)
	Get(ctx context.Context, id uint) (*models.Product, *ServiceError)
	GetBySlug(ctx context.Context, slug string) (*models.FormattedProduct, *ServiceError)
	Update(ctx context.Context, id uint, req *models.UpdateProductRequest) (*models.Product, *ServiceError)
	Delete(ctx context.Context, id uint) *ServiceError
	Latest(ctx context.Context, limit, offset int) (*models.ProductPage, *ServiceError)
	Counter(ctx context.Context, id uint) (*ProductCounter, *ServiceError)
}

type productServiceImpl struct {
	repo      repository.ProductRepository
	formatter ProductFormatter
	cache     *cache.Manager
	logger    *zap.Logger
}

// NewProductService creates a new ProductService. cacheManager may be
// nil when redis is not configured.
func NewProductService(repo repository.ProductRepository, formatter ProductFormatter, cacheManager *cache.Manager, logger *zap.Logger) ProductService {
	return &productServiceImpl{repo: repo, formatter: formatter, cache: cacheManager, logger: logger}
}

func (s *productServiceImpl) List(ctx context.Context) ([]models.Product, *ServiceError) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("product listing failed", zap.Error(err))
		return nil, persistenceError("Failed to list products")
	}
	return products, nil
}

func (s *productServiceImpl) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError) {
	product := &models.Product{
		Name:             req.Name,
		Slug:             req.Slug,
		CategoryID:       req.CategoryID,
		SubCategoryID:    req.SubCategoryID,
		SubSubCategoryID: req.SubSubCategoryID,
		BrandID:          req.BrandID,
		UnitPrice:        req.UnitPrice,
		PurchasePrice:    req.PurchasePrice,
		PV:               req.PV,
		Nation:           req.Nation,
		Status:           models.ProductStatusActive,
	}
	if product.Slug == "" {
		product.Slug = slugify(req.Name)
	}

	if len(req.Tags) > 0 {
		tags, err := s.repo.FindOrCreateTags(ctx, req.Tags)
		if err != nil {
			s.logger.Error("tag resolution failed", zap.Error(err))
			return nil, persistenceError("Failed to create product")
		}
		product.Tags = tags
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.logger.Error("product create failed", zap.Error(err))
		if strings.Contains(err.Error(), "duplicate") {
			return nil, conflictError("Product with this slug already exists")
		}
		return nil, persistenceError("Failed to create product")
	}

	s.cache.InvalidateProduct(ctx, product.Slug)
	return product, nil
}

func (s *productServiceImpl) Get(ctx context.Context, id uint) (*models.Product, *ServiceError) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, notFoundError("Product not found")
		}
		s.logger.Error("product lookup failed", zap.Error(err), zap.Uint("product_id", id))
		return nil, persistenceError("Failed to load product")
	}
	return product, nil
}

// GetBySlug returns the formatted product detail, served from cache
// when possible.
func (s *productServiceImpl) GetBySlug(ctx context.Context, slug string) (*models.FormattedProduct, *ServiceError) {
	if cached, ok := s.cache.GetProduct(ctx, slug); ok {
		return cached, nil
	}

	product, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if isNotFound(err) {
			return nil, notFoundError("Product not found")
		}
		s.logger.Error("product lookup failed", zap.Error(err), zap.String("slug", slug))
		return nil, persistenceError("Failed to load product")
	}

	formatted, err := s.formatter.FormatProducts(ctx, []models.Product{*product})
	if err != nil {
		s.logger.Error("product formatting failed", zap.Error(err), zap.String("slug", slug))
		return nil, persistenceError("Failed to load product details")
	}

	detail := &formatted[0]
	s.cache.SetProductAsync(slug, detail)
	return detail, nil
}

func (s *productServiceImpl) Update(ctx context.Context, id uint, req *models.UpdateProductRequest) (*models.Product, *ServiceError) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, notFoundError("Product not found")
		}
		s.logger.Error("product lookup failed", zap.Error(err), zap.Uint("product_id", id))
		return nil, persistenceError("Failed to load product")
	}

	product.Name = req.Name
	product.CategoryID = req.CategoryID
	product.SubCategoryID = req.SubCategoryID
	product.SubSubCategoryID = req.SubSubCategoryID
	product.BrandID = req.BrandID
	product.UnitPrice = req.UnitPrice
	product.PurchasePrice = req.PurchasePrice
	product.PV = req.PV
	product.Nation = req.Nation
	if req.Status != "" {
		product.Status = req.Status
	}

	if len(req.Tags) > 0 {
		tags, tagErr := s.repo.FindOrCreateTags(ctx, req.Tags)
		if tagErr != nil {
			s.logger.Error("tag resolution failed", zap.Error(tagErr))
			return nil, persistenceError("Failed to update product")
		}
		product.Tags = tags
	}

	if err := s.repo.Update(ctx, product); err != nil {
		s.logger.Error("product update failed", zap.Error(err), zap.Uint("product_id", id))
		return nil, persistenceError("Failed to update product")
	}

	s.cache.InvalidateProduct(ctx, product.Slug)
	return product, nil
}

func (s *productServiceImpl) Delete(ctx context.Context, id uint) *ServiceError {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return notFoundError("Product not found")
		}
		s.logger.Error("product lookup failed", zap.Error(err), zap.Uint("product_id", id))
		return persistenceError("Failed to load product")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return notFoundError("Product not found")
		}
		s.logger.Error("product delete failed", zap.Error(err), zap.Uint("product_id", id))
		return persistenceError("Failed to delete product")
	}

	s.cache.InvalidateProduct(ctx, product.Slug)
	return nil
}

// Latest returns the newest active products as a formatted page,
// served from the versioned list cache when possible.
func (s *productServiceImpl) Latest(ctx context.Context, limit, offset int) (*models.ProductPage, *ServiceError) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	if cached, ok := s.cache.GetLatestPage(ctx, limit, offset); ok {
		return cached, nil
	}

	products, total, err := s.repo.Latest(ctx, limit, offset)
	if err != nil {
		s.logger.Error("latest products query failed", zap.Error(err))
		return nil, persistenceError("Failed to list products")
	}

	formatted, err := s.formatter.FormatProducts(ctx, products)
	if err != nil {
		s.logger.Error("product formatting failed", zap.Error(err))
		return nil, persistenceError("Failed to load product details")
	}

	page := &models.ProductPage{
		TotalSize: int(total),
		Limit:     limit,
		Offset:    offset,
		Products:  formatted,
	}
	page.MinPrice, page.MaxPrice = priceRange(products)

	s.cache.SetLatestPageAsync(limit, offset, page)
	return page, nil
}

// Counter reports how many order lines and wishlists reference a
// product.
func (s *productServiceImpl) Counter(ctx context.Context, id uint) (*ProductCounter, *ServiceError) {
	orders, err := s.repo.CountOrderDetails(ctx, id)
	if err != nil {
		s.logger.Error("order detail count failed", zap.Error(err), zap.Uint("product_id", id))
		return nil, persistenceError("Failed to count orders")
	}
	wishlists, err := s.repo.CountWishlists(ctx, id)
	if err != nil {
		s.logger.Error("wishlist count failed", zap.Error(err), zap.Uint("product_id", id))
		return nil, persistenceError("Failed to count wishlists")
	}
	return &ProductCounter{OrderCount: orders, WishlistCount: wishlists}, nil
}

// slugify builds a URL slug from a product name.
func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}

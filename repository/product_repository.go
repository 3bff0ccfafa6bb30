package repository

import (
	"context"
	"strings"

	"storefront-service/models"

	"gorm.io/gorm"
)

// ProductFilter is the predicate part of a product search: everything
// that can be pushed down into SQL. Ranking and pagination happen in
// the service layer on top of the rows this filter selects.
type ProductFilter struct {
	Term        string
	CategoryIDs []uint
	BrandIDs    []uint
	PriceMin    *float64
	PriceMax    *float64
}

// ReviewAggregate holds per-product review stats.
type ReviewAggregate struct {
	ProductID uint
	Average   float64
	Count     int
}

// ProductRepository defines data-access operations for the catalog.
type ProductRepository interface {
	Search(ctx context.Context, f ProductFilter) ([]models.Product, error)
	SearchTranslated(ctx context.Context, term string) ([]models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	FindBySlug(ctx context.Context, slug string) (*models.Product, error)
	Latest(ctx context.Context, limit, offset int) ([]models.Product, int64, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
	FindOrCreateTags(ctx context.Context, names []string) ([]models.Tag, error)
	ReviewAggregates(ctx context.Context, productIDs []uint) (map[uint]ReviewAggregate, error)
	WishlistCounts(ctx context.Context, productIDs []uint) (map[uint]int64, error)
	CountOrderDetails(ctx context.Context, productID uint) (int64, error)
	CountWishlists(ctx context.Context, productID uint) (int64, error)
}

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository.
func NewGormProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

const tagMatchSubquery = `products.id IN (SELECT product_tags.product_id FROM product_tags JOIN tags ON tags.id = product_tags.tag_id WHERE LOWER(tags.tag) LIKE ?)`

// Search returns every active product matching the filter, tags
// preloaded, ordered by recency then id so callers see a stable base
// order.
//
// Category and brand sets are combined with OR, not AND: a product
// matches when its brand OR any level of its category path intersects
// the requested sets. That mirrors the upstream storefront behavior
// and is pinned by tests; do not "fix" it to an intersection.
func (r *GormProductRepository) Search(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Preload("Tags").
		Where("status = ?", models.ProductStatusActive)

	if term := strings.TrimSpace(f.Term); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(products.name) LIKE ? OR "+tagMatchSubquery, like, like)
	}

	categoryClause := "category_id IN ? OR sub_category_id IN ? OR sub_sub_category_id IN ?"
	switch {
	case len(f.BrandIDs) > 0 && len(f.CategoryIDs) > 0:
		q = q.Where("brand_id IN ? OR "+categoryClause,
			f.BrandIDs, f.CategoryIDs, f.CategoryIDs, f.CategoryIDs)
	case len(f.BrandIDs) > 0:
		q = q.Where("brand_id IN ?", f.BrandIDs)
	case len(f.CategoryIDs) > 0:
		q = q.Where(categoryClause, f.CategoryIDs, f.CategoryIDs, f.CategoryIDs)
	}

	// A missing bound stays 0, so a lone min matches nothing. Mirrors
	// the upstream storefront; clients send both bounds or neither.
	if f.PriceMin != nil || f.PriceMax != nil {
		min, max := 0.0, 0.0
		if f.PriceMin != nil {
			min = *f.PriceMin
		}
		if f.PriceMax != nil {
			max = *f.PriceMax
		}
		q = q.Where("unit_price BETWEEN ? AND ?", min, max)
	}

	var products []models.Product
	if err := q.Order("created_at DESC, id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// SearchTranslated runs the fallback pass against localized product
// names. It is a full independent query; callers replace the primary
// result set with these rows, never merge them.
func (r *GormProductRepository) SearchTranslated(ctx context.Context, term string) ([]models.Product, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	var products []models.Product
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Preload("Tags").
		Where("status = ?", models.ProductStatusActive).
		Where("products.id IN (SELECT translatable_id FROM translations WHERE translatable_key = ? AND LOWER(value) LIKE ?)", "name", like).
		Order("created_at DESC, id ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := r.db.WithContext(ctx).Preload("Tags").First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormProductRepository) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var p models.Product
	if err := r.db.WithContext(ctx).
		Preload("Tags").
		Where("slug = ?", slug).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormProductRepository) Latest(ctx context.Context, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	q := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("status = ?", models.ProductStatusActive)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.
		Preload("Tags").
		Order("created_at DESC, id ASC").
		Limit(limit).Offset(offset).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *GormProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *GormProductRepository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *GormProductRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindOrCreateTags resolves tag names to rows, creating any that do
// not exist yet.
func (r *GormProductRepository) FindOrCreateTags(ctx context.Context, names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		var tag models.Tag
		if err := r.db.WithContext(ctx).
			Where(models.Tag{Tag: name}).
			FirstOrCreate(&tag).Error; err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// ReviewAggregates returns average rating and review count per product
// in one grouped query.
func (r *GormProductRepository) ReviewAggregates(ctx context.Context, productIDs []uint) (map[uint]ReviewAggregate, error) {
	out := make(map[uint]ReviewAggregate, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		ProductID uint
		Average   float64
		Count     int
	}
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("product_id, AVG(rating) AS average, COUNT(*) AS count").
		Where("product_id IN ?", productIDs).
		Group("product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ProductID] = ReviewAggregate{ProductID: row.ProductID, Average: row.Average, Count: row.Count}
	}
	return out, nil
}

// WishlistCounts returns the wishlist count per product in one grouped
// query.
func (r *GormProductRepository) WishlistCounts(ctx context.Context, productIDs []uint) (map[uint]int64, error) {
	out := make(map[uint]int64, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		ProductID uint
		Count     int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Wishlist{}).
		Select("product_id, COUNT(*) AS count").
		Where("product_id IN ?", productIDs).
		Group("product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ProductID] = row.Count
	}
	return out, nil
}

func (r *GormProductRepository) CountOrderDetails(ctx context.Context, productID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.OrderDetail{}).
		Where("product_id = ?", productID).
		Count(&n).Error
	return n, err
}

func (r *GormProductRepository) CountWishlists(ctx context.Context, productID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Wishlist{}).
		Where("product_id = ?", productID).
		Count(&n).Error
	return n, err
}

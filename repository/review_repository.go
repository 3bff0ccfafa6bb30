package repository

import (
	"context"

	"storefront-service/models"

	"gorm.io/gorm"
)

// ReviewRepository defines data-access operations for reviews.
type ReviewRepository interface {
	ListByProduct(ctx context.Context, productID uint) ([]models.Review, error)
	FindForOrder(ctx context.Context, memberID, productID, orderID uint) (*models.Review, error)
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review) error
}

// GormReviewRepository implements ReviewRepository using GORM.
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository.
func NewGormReviewRepository(db *gorm.DB) ReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) ListByProduct(ctx context.Context, productID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Preload("Member").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *GormReviewRepository) FindForOrder(ctx context.Context, memberID, productID, orderID uint) (*models.Review, error) {
	var rev models.Review
	err := r.db.WithContext(ctx).
		Where("member_id = ? AND product_id = ? AND order_id = ?", memberID, productID, orderID).
		First(&rev).Error
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *GormReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *GormReviewRepository) Update(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

package repository

import (
	"context"

	"storefront-service/models"

	"gorm.io/gorm"
)

// BranchRepository defines data-access operations for branches.
type BranchRepository interface {
	FindAll(ctx context.Context) ([]models.Branch, error)
	FindByID(ctx context.Context, id uint) (*models.Branch, error)
	Create(ctx context.Context, branch *models.Branch) error
	Update(ctx context.Context, branch *models.Branch) error
	Delete(ctx context.Context, id uint) error
}

// GormBranchRepository implements BranchRepository using GORM.
type GormBranchRepository struct {
	db *gorm.DB
}

// NewGormBranchRepository creates a new GormBranchRepository.
func NewGormBranchRepository(db *gorm.DB) BranchRepository {
	return &GormBranchRepository{db: db}
}

func (r *GormBranchRepository) FindAll(ctx context.Context) ([]models.Branch, error) {
	var branches []models.Branch
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&branches).Error; err != nil {
		return nil, err
	}
	return branches, nil
}

func (r *GormBranchRepository) FindByID(ctx context.Context, id uint) (*models.Branch, error) {
	var b models.Branch
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormBranchRepository) Create(ctx context.Context, branch *models.Branch) error {
	return r.db.WithContext(ctx).Create(branch).Error
}

func (r *GormBranchRepository) Update(ctx context.Context, branch *models.Branch) error {
	return r.db.WithContext(ctx).Save(branch).Error
}

func (r *GormBranchRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Branch{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

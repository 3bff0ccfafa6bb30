package repository

import (
	"context"

	"storefront-service/models"

	"gorm.io/gorm"
)

// MemberRepository defines data-access operations for member accounts.
type MemberRepository interface {
	FindAll(ctx context.Context) ([]models.Member, error)
	FindByID(ctx context.Context, id uint) (*models.Member, error)
	FindByEmail(ctx context.Context, email string) (*models.Member, error)
	FindByReferralCode(ctx context.Context, code string) (*models.Member, error)
	Create(ctx context.Context, member *models.Member) error
}

// GormMemberRepository implements MemberRepository using GORM.
type GormMemberRepository struct {
	db *gorm.DB
}

// NewGormMemberRepository creates a new GormMemberRepository.
func NewGormMemberRepository(db *gorm.DB) MemberRepository {
	return &GormMemberRepository{db: db}
}

func (r *GormMemberRepository) FindAll(ctx context.Context) ([]models.Member, error) {
	var members []models.Member
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *GormMemberRepository) FindByID(ctx context.Context, id uint) (*models.Member, error) {
	var m models.Member
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *GormMemberRepository) FindByEmail(ctx context.Context, email string) (*models.Member, error) {
	var m models.Member
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *GormMemberRepository) FindByReferralCode(ctx context.Context, code string) (*models.Member, error) {
	var m models.Member
	if err := r.db.WithContext(ctx).Where("referral_code = ?", code).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *GormMemberRepository) Create(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

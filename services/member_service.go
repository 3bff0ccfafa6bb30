package services

import (
	"context"

	"storefront-service/models"
	"storefront-service/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// MemberService handles member account records. Session issuance and
// login live in the auth layer, not here.
type MemberService interface {
	List(ctx context.Context) ([]models.Member, *ServiceError)
	Register(ctx context.Context, req *models.RegisterMemberRequest) (*models.Member, *ServiceError)
	Get(ctx context.Context, id uint) (*models.Member, *ServiceError)
}

type memberServiceImpl struct {
	repo   repository.MemberRepository
	logger *zap.Logger
}

// NewMemberService creates a new MemberService.
func NewMemberService(repo repository.MemberRepository, logger *zap.Logger) MemberService {
	return &memberServiceImpl{repo: repo, logger: logger}
}

func (s *memberServiceImpl) List(ctx context.Context) ([]models.Member, *ServiceError) {
	members, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("member listing failed", zap.Error(err))
		return nil, persistenceError("Failed to list members")
	}
	return members, nil
}

// Register creates a member account with a bcrypt password hash and a
// fresh referral code. A referral code in the request is resolved to
// the referring member when it exists.
func (s *memberServiceImpl) Register(ctx context.Context, req *models.RegisterMemberRequest) (*models.Member, *ServiceError) {
	if existing, err := s.repo.FindByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, conflictError("This email is already registered")
	} else if err != nil && !isNotFound(err) {
		s.logger.Error("member email lookup failed", zap.Error(err))
		return nil, persistenceError("Failed to register member")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("password hashing failed", zap.Error(err))
		return nil, persistenceError("Failed to register member")
	}

	member := &models.Member{
		FName:        req.FName,
		LName:        req.LName,
		Email:        req.Email,
		Phone:        req.Phone,
		Password:     string(hash),
		BranchID:     req.BranchID,
		Rank:         req.Rank,
		ReferralCode: uuid.NewString(),
	}

	if req.ReferralCode != "" {
		if referrer, refErr := s.repo.FindByReferralCode(ctx, req.ReferralCode); refErr == nil && referrer != nil {
			member.ReferredBy = referrer.ID
		}
	}

	if err := s.repo.Create(ctx, member); err != nil {
		s.logger.Error("member create failed", zap.Error(err))
		return nil, persistenceError("Failed to register member")
	}

	s.logger.Info("member registered", zap.Uint("member_id", member.ID), zap.String("email", member.Email))
	return member, nil
}

func (s *memberServiceImpl) Get(ctx context.Context, id uint) (*models.Member, *ServiceError) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, notFoundError("Member not found")
		}
		s.logger.Error("member lookup failed", zap.Error(err), zap.Uint("member_id", id))
		return nil, persistenceError("Failed to load member")
	}
	return member, nil
}

package services

import (
	"context"

	"storefront-service/models"
	"storefront-service/repository"

	"go.uber.org/zap"
)

// BranchService handles branch CRUD.
type BranchService interface {
	List(ctx context.Context) ([]models.Branch, *ServiceError)
	Create(ctx context.Context, branch *models.Branch) (*models.Branch, *ServiceError)
	Get(ctx context.Context, id uint) (*models.Branch, *ServiceError)
	Update(ctx context.Context, id uint, update *models.Branch) (*models.Branch, *ServiceError)
	Delete(ctx context.Context, id uint) *ServiceError
}

type branchServiceImpl struct {
	repo   repository.BranchRepository
	logger *zap.Logger
}

// NewBranchService creates a new BranchService.
func NewBranchService(repo repository.BranchRepository, logger *zap.Logger) BranchService {
	return &branchServiceImpl{repo: repo, logger: logger}
}

func (s *branchServiceImpl) List(ctx context.Context) ([]models.Branch, *ServiceError) {
	branches, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("branch listing failed", zap.Error(err))
		return nil, persistenceError("Failed to list branches")
	}
	return branches, nil
}

func (s *branchServiceImpl) Create(ctx context.Context, branch *models.Branch) (*models.Branch, *ServiceError) {
	if branch.BranchName == "" {
		return nil, validationError("The branch_name field is required")
	}
	if err := s.repo.Create(ctx, branch); err != nil {
		s.logger.Error("branch create failed", zap.Error(err))
		return nil, persistenceError("Failed to create branch")
	}
	return branch, nil
}

func (s *branchServiceImpl) Get(ctx context.Context, id uint) (*models.Branch, *ServiceError) {
	branch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, notFoundError("Branch not found")
		}
		s.logger.Error("branch lookup failed", zap.Error(err), zap.Uint("branch_id", id))
		return nil, persistenceError("Failed to load branch")
	}
	return branch, nil
}

func (s *branchServiceImpl) Update(ctx context.Context, id uint, update *models.Branch) (*models.Branch, *ServiceError) {
	branch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, notFoundError("Branch not found")
		}
		s.logger.Error("branch lookup failed", zap.Error(err), zap.Uint("branch_id", id))
		return nil, persistenceError("Failed to load branch")
	}

	if update.BranchName == "" {
		return nil, validationError("The branch_name field is required")
	}

	branch.BranchName = update.BranchName
	branch.NumberOfMembers = update.NumberOfMembers
	branch.BranchManager = update.BranchManager
	branch.CellPhone = update.CellPhone
	branch.PhoneNumber = update.PhoneNumber
	branch.FaxNumber = update.FaxNumber
	branch.AccountNumber = update.AccountNumber
	branch.DepositWithdrawalHistory = update.DepositWithdrawalHistory
	branch.AffiliatedMembers = update.AffiliatedMembers
	branch.StopAllowance = update.StopAllowance

	if err := s.repo.Update(ctx, branch); err != nil {
		s.logger.Error("branch update failed", zap.Error(err), zap.Uint("branch_id", id))
		return nil, persistenceError("Failed to update branch")
	}
	return branch, nil
}

func (s *branchServiceImpl) Delete(ctx context.Context, id uint) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return notFoundError("Branch not found")
		}
		s.logger.Error("branch delete failed", zap.Error(err), zap.Uint("branch_id", id))
		return persistenceError("Failed to delete branch")
	}
	return nil
}

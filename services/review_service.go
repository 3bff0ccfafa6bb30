package services

import (
	"context"

	"storefront-service/models"
	"storefront-service/repository"

	"go.uber.org/zap"
)

// ReviewService handles product reviews.
type ReviewService interface {
	ListByProduct(ctx context.Context, productID uint) ([]models.Review, *ServiceError)
	Submit(ctx context.Context, memberID uint, req *models.SubmitReviewRequest) (*models.Review, *ServiceError)
	OverallRating(ctx context.Context, productID uint) (float64, *ServiceError)
}

type reviewServiceImpl struct {
	repo   repository.ReviewRepository
	logger *zap.Logger
}

// NewReviewService creates a new ReviewService.
func NewReviewService(repo repository.ReviewRepository, logger *zap.Logger) ReviewService {
	return &reviewServiceImpl{repo: repo, logger: logger}
}

func (s *reviewServiceImpl) ListByProduct(ctx context.Context, productID uint) ([]models.Review, *ServiceError) {
	reviews, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		s.logger.Error("review listing failed", zap.Error(err), zap.Uint("product_id", productID))
		return nil, persistenceError("Failed to list reviews")
	}
	return reviews, nil
}

// Submit updates the member's existing review for the product/order
// pair when one exists, otherwise creates a new one.
func (s *reviewServiceImpl) Submit(ctx context.Context, memberID uint, req *models.SubmitReviewRequest) (*models.Review, *ServiceError) {
	existing, err := s.repo.FindForOrder(ctx, memberID, req.ProductID, req.OrderID)
	if err != nil && !isNotFound(err) {
		s.logger.Error("review lookup failed", zap.Error(err))
		return nil, persistenceError("Failed to submit review")
	}

	if existing != nil && err == nil {
		existing.Comment = req.Comment
		existing.Rating = req.Rating
		if err := s.repo.Update(ctx, existing); err != nil {
			s.logger.Error("review update failed", zap.Error(err), zap.Uint("review_id", existing.ID))
			return nil, persistenceError("Failed to submit review")
		}
		return existing, nil
	}

	review := &models.Review{
		ProductID: req.ProductID,
		MemberID:  memberID,
		OrderID:   req.OrderID,
		Comment:   req.Comment,
		Rating:    req.Rating,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		s.logger.Error("review create failed", zap.Error(err))
		return nil, persistenceError("Failed to submit review")
	}
	return review, nil
}

// OverallRating averages the ratings of a product's reviews; zero when
// there are none.
func (s *reviewServiceImpl) OverallRating(ctx context.Context, productID uint) (float64, *ServiceError) {
	reviews, svcErr := s.ListByProduct(ctx, productID)
	if svcErr != nil {
		return 0, svcErr
	}
	if len(reviews) == 0 {
		return 0, nil
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews)), nil
}

package services_test

import (
	"context"
	"testing"

	"storefront-service/models"
	"storefront-service/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ---- fake review repository ----

type fakeReviewRepo struct {
	existing  *models.Review
	findErr   error
	reviews   []models.Review
	listErr   error
	created   *models.Review
	updated   *models.Review
	createErr error
	updateErr error
}

func (f *fakeReviewRepo) ListByProduct(_ context.Context, _ uint) ([]models.Review, error) {
	return f.reviews, f.listErr
}
func (f *fakeReviewRepo) FindForOrder(_ context.Context, _, _, _ uint) (*models.Review, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.existing == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.existing, nil
}
func (f *fakeReviewRepo) Create(_ context.Context, review *models.Review) error {
	if f.createErr != nil {
		return f.createErr
	}
	review.ID = 21
	f.created = review
	return nil
}
func (f *fakeReviewRepo) Update(_ context.Context, review *models.Review) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = review
	return nil
}

func newTestReviewService(repo *fakeReviewRepo) services.ReviewService {
	logger, _ := zap.NewDevelopment()
	return services.NewReviewService(repo, logger)
}

func reviewRequest() *models.SubmitReviewRequest {
	return &models.SubmitReviewRequest{
		ProductID: 5,
		OrderID:   8,
		Comment:   "works great",
		Rating:    4,
	}
}

// ---- tests ----

func TestSubmitReview_CreatesWhenNoneExists(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc := newTestReviewService(repo)

	review, svcErr := svc.Submit(context.Background(), 3, reviewRequest())

	assert.Nil(t, svcErr)
	assert.NotNil(t, repo.created)
	assert.Nil(t, repo.updated)
	assert.Equal(t, uint(3), review.MemberID)
	assert.Equal(t, uint(5), review.ProductID)
	assert.Equal(t, uint(8), review.OrderID)
	assert.Equal(t, 4, review.Rating)
}

func TestSubmitReview_UpdatesExistingForSamePurchase(t *testing.T) {
	// Resubmitting for the same member/product/order pair overwrites the
	// earlier review instead of stacking a second row.
	repo := &fakeReviewRepo{existing: &models.Review{
		ID: 13, MemberID: 3, ProductID: 5, OrderID: 8,
		Comment: "meh", Rating: 2,
	}}
	svc := newTestReviewService(repo)

	review, svcErr := svc.Submit(context.Background(), 3, reviewRequest())

	assert.Nil(t, svcErr)
	assert.Nil(t, repo.created)
	assert.NotNil(t, repo.updated)
	assert.Equal(t, uint(13), review.ID)
	assert.Equal(t, "works great", review.Comment)
	assert.Equal(t, 4, review.Rating)
}

func TestSubmitReview_LookupFailureIsSurfaced(t *testing.T) {
	repo := &fakeReviewRepo{findErr: assert.AnError}
	svc := newTestReviewService(repo)

	review, svcErr := svc.Submit(context.Background(), 3, reviewRequest())

	assert.Nil(t, review)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 500, svcErr.StatusCode)
	assert.Nil(t, repo.created)
}

func TestOverallRating_AveragesRatings(t *testing.T) {
	repo := &fakeReviewRepo{reviews: []models.Review{
		{Rating: 5}, {Rating: 4}, {Rating: 3},
	}}
	svc := newTestReviewService(repo)

	rating, svcErr := svc.OverallRating(context.Background(), 5)

	assert.Nil(t, svcErr)
	assert.Equal(t, 4.0, rating)
}

func TestOverallRating_NoReviewsIsZero(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc := newTestReviewService(repo)

	rating, svcErr := svc.OverallRating(context.Background(), 5)

	assert.Nil(t, svcErr)
	assert.Equal(t, 0.0, rating)
}

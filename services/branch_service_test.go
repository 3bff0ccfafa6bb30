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

// ---- fake branch repository ----

type fakeBranchRepo struct {
	branch    *models.Branch
	created   *models.Branch
	updated   *models.Branch
	createErr error
	updateErr error
	deleteErr error
}

func (f *fakeBranchRepo) FindAll(_ context.Context) ([]models.Branch, error) { return nil, nil }
func (f *fakeBranchRepo) FindByID(_ context.Context, _ uint) (*models.Branch, error) {
	if f.branch == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.branch, nil
}
func (f *fakeBranchRepo) Create(_ context.Context, b *models.Branch) error {
	if f.createErr != nil {
		return f.createErr
	}
	b.ID = 31
	f.created = b
	return nil
}
func (f *fakeBranchRepo) Update(_ context.Context, b *models.Branch) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = b
	return nil
}
func (f *fakeBranchRepo) Delete(_ context.Context, _ uint) error { return f.deleteErr }

func newTestBranchService(repo *fakeBranchRepo) services.BranchService {
	logger, _ := zap.NewDevelopment()
	return services.NewBranchService(repo, logger)
}

// ---- tests ----

func TestCreateBranch_RequiresName(t *testing.T) {
	repo := &fakeBranchRepo{}
	svc := newTestBranchService(repo)

	branch, svcErr := svc.Create(context.Background(), &models.Branch{BranchManager: "Lee"})

	assert.Nil(t, branch)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
	assert.Nil(t, repo.created)
}

func TestCreateBranch_Success(t *testing.T) {
	repo := &fakeBranchRepo{}
	svc := newTestBranchService(repo)

	branch, svcErr := svc.Create(context.Background(), &models.Branch{BranchName: "Seoul Center"})

	assert.Nil(t, svcErr)
	assert.Equal(t, uint(31), branch.ID)
	assert.NotNil(t, repo.created)
}

func TestUpdateBranch_AppliesFields(t *testing.T) {
	repo := &fakeBranchRepo{branch: &models.Branch{ID: 2, BranchName: "Old Name"}}
	svc := newTestBranchService(repo)

	branch, svcErr := svc.Update(context.Background(), 2, &models.Branch{
		BranchName:    "Busan Center",
		BranchManager: "Park",
		StopAllowance: true,
	})

	assert.Nil(t, svcErr)
	assert.NotNil(t, repo.updated)
	assert.Equal(t, "Busan Center", branch.BranchName)
	assert.Equal(t, "Park", branch.BranchManager)
	assert.True(t, branch.StopAllowance)
}

func TestUpdateBranch_NotFound(t *testing.T) {
	repo := &fakeBranchRepo{}
	svc := newTestBranchService(repo)

	branch, svcErr := svc.Update(context.Background(), 99, &models.Branch{BranchName: "Anywhere"})

	assert.Nil(t, branch)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}

func TestDeleteBranch_NotFound(t *testing.T) {
	repo := &fakeBranchRepo{deleteErr: gorm.ErrRecordNotFound}
	svc := newTestBranchService(repo)

	svcErr := svc.Delete(context.Background(), 99)

	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}

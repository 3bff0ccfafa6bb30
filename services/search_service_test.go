package services_test

import (
	"context"
	"testing"
	"time"

	"storefront-service/models"
	"storefront-service/repository"
	"storefront-service/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// ---- fake product repository ----

type fakeProductRepo struct {
	searchResults     []models.Product
	searchErr         error
	translatedResults []models.Product
	translatedErr     error
	translatedCalled  bool
	capturedFilter    repository.ProductFilter
}

func (f *fakeProductRepo) Search(_ context.Context, filter repository.ProductFilter) ([]models.Product, error) {
	f.capturedFilter = filter
	return append([]models.Product(nil), f.searchResults...), f.searchErr
}
func (f *fakeProductRepo) SearchTranslated(_ context.Context, _ string) ([]models.Product, error) {
	f.translatedCalled = true
	return append([]models.Product(nil), f.translatedResults...), f.translatedErr
}
func (f *fakeProductRepo) FindAll(_ context.Context) ([]models.Product, error) { return nil, nil }
func (f *fakeProductRepo) FindByID(_ context.Context, _ uint) (*models.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) FindBySlug(_ context.Context, _ string) (*models.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Latest(_ context.Context, _, _ int) ([]models.Product, int64, error) {
	return nil, 0, nil
}
func (f *fakeProductRepo) Create(_ context.Context, _ *models.Product) error { return nil }
func (f *fakeProductRepo) Update(_ context.Context, _ *models.Product) error { return nil }
func (f *fakeProductRepo) Delete(_ context.Context, _ uint) error            { return nil }
func (f *fakeProductRepo) FindOrCreateTags(_ context.Context, _ []string) ([]models.Tag, error) {
	return nil, nil
}
func (f *fakeProductRepo) ReviewAggregates(_ context.Context, _ []uint) (map[uint]repository.ReviewAggregate, error) {
	return map[uint]repository.ReviewAggregate{}, nil
}
func (f *fakeProductRepo) WishlistCounts(_ context.Context, _ []uint) (map[uint]int64, error) {
	return map[uint]int64{}, nil
}
func (f *fakeProductRepo) CountOrderDetails(_ context.Context, _ uint) (int64, error) {
	return 0, nil
}
func (f *fakeProductRepo) CountWishlists(_ context.Context, _ uint) (int64, error) { return 0, nil }

// ---- helpers ----

func newTestSearchService(repo *fakeProductRepo) services.SearchService {
	logger, _ := zap.NewDevelopment()
	formatter := services.NewProductFormatter(repo, logger)
	return services.NewSearchService(repo, formatter, logger)
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 12, 0, 0, 0, time.UTC)
}

func product(id uint, name string, price float64, created time.Time) models.Product {
	return models.Product{
		ID:        id,
		Name:      name,
		UnitPrice: price,
		Status:    models.ProductStatusActive,
		CreatedAt: created,
	}
}

func resultNames(page *models.ProductPage) []string {
	names := make([]string, 0, len(page.Products))
	for _, p := range page.Products {
		names = append(names, p.Name)
	}
	return names
}

// ---- tests ----

func TestSearch_EmptyCatalog(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := newTestSearchService(repo)

	page, svcErr := svc.Search(context.Background(), models.SearchQuery{Term: "anything", Limit: 10})

	assert.Nil(t, svcErr)
	assert.Equal(t, 0, page.TotalSize)
	assert.Empty(t, page.Products)
	assert.Nil(t, page.MinPrice)
	assert.Nil(t, page.MaxPrice)
}

func TestSearch_PriorityTiering(t *testing.T) {
	// Deliberately fed newest-first so recency alone would invert the
	// expected order; the tiering has to dominate.
	repo := &fakeProductRepo{searchResults: []models.Product{
		{ID: 4, Name: "Crimson Sneaker", Status: models.ProductStatusActive, CreatedAt: day(9),
			Tags: []models.Tag{{ID: 1, Tag: "red shoe"}}},
		{ID: 3, Name: "My Red Shoe Bag", Status: models.ProductStatusActive, CreatedAt: day(8)},
		{ID: 2, Name: "Red Shoes XL", Status: models.ProductStatusActive, CreatedAt: day(7)},
		{ID: 1, Name: "Red Shoe", Status: models.ProductStatusActive, CreatedAt: day(6)},
	}}
	svc := newTestSearchService(repo)

	page, svcErr := svc.Search(context.Background(), models.SearchQuery{Term: "Red Shoe", Limit: 10})

	assert.Nil(t, svcErr)
	assert.Equal(t, []string{"Red Shoe", "Red Shoes XL", "My Red Shoe Bag", "Crimson Sneaker"}, resultNames(page))
}

func TestSearch_PaginationIsStable(t *testing.T) {
	// Same tier, same timestamp: ids must break the tie, identically on
	// every call.
	created := day(1)
	repo := &fakeProductRepo{searchResults: []models.Product{
		product(30, "red mug", 3, created),
		product(10, "red cup", 1, created),
		product(20, "red bowl", 2, created),
	}}
	svc := newTestSearchService(repo)

	q := models.SearchQuery{Term: "red", Limit: 2, Offset: 0}
	first, err1 := svc.Search(context.Background(), q)
	second, err2 := svc.Search(context.Background(), q)

	assert.Nil(t, err1)
	assert.Nil(t, err2)
	assert.Equal(t, resultNames(first), resultNames(second))
	assert.Equal(t, []string{"red cup", "red bowl"}, resultNames(first))
}

func TestSearch_PriceRangeCoversWholeFilteredSet(t *testing.T) {
	repo := &fakeProductRepo{}
	for i := 1; i <= 50; i++ {
		repo.searchResults = append(repo.searchResults,
			product(uint(i), "widget", float64(i), day(1)))
	}
	svc := newTestSearchService(repo)

	page, svcErr := svc.Search(context.Background(), models.SearchQuery{Term: "widget", Limit: 10})

	assert.Nil(t, svcErr)
	assert.Equal(t, 50, page.TotalSize)
	assert.Len(t, page.Products, 10)
	assert.Equal(t, 1.0, *page.MinPrice)
	assert.Equal(t, 50.0, *page.MaxPrice)
}

func TestSearch_ExplicitSortKeys(t *testing.T) {
	repo := &fakeProductRepo{searchResults: []models.Product{
		product(1, "banana", 30, day(1)),
		product(2, "apple", 10, day(2)),
		product(3, "cherry", 20, day(3)),
	}}
	svc := newTestSearchService(repo)

	cases := []struct {
		sortBy string
		want   []string
	}{
		{models.SortLowHigh, []string{"apple", "cherry", "banana"}},
		{models.SortHighLow, []string{"banana", "cherry", "apple"}},
		{models.SortAtoZ, []string{"apple", "banana", "cherry"}},
		{models.SortZtoA, []string{"cherry", "banana", "apple"}},
		{models.SortLatest, []string{"cherry", "apple", "banana"}},
	}
	for _, tc := range cases {
		page, svcErr := svc.Search(context.Background(), models.SearchQuery{SortBy: tc.sortBy, Limit: 10})
		assert.Nil(t, svcErr)
		assert.Equal(t, tc.want, resultNames(page), "sort_by=%s", tc.sortBy)
	}
}

func TestSearch_OffsetBeyondEnd(t *testing.T) {
	repo := &fakeProductRepo{searchResults: []models.Product{
		product(1, "lone widget", 5, day(1)),
	}}
	svc := newTestSearchService(repo)

	page, svcErr := svc.Search(context.Background(), models.SearchQuery{Term: "widget", Limit: 10, Offset: 40})

	assert.Nil(t, svcErr)
	assert.Equal(t, 1, page.TotalSize)
	assert.Empty(t, page.Products)
}

func TestSearch_PassesFiltersThrough(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := newTestSearchService(repo)

	min, max := 5.0, 50.0
	_, svcErr := svc.Search(context.Background(), models.SearchQuery{
		Term:        "shoe",
		CategoryIDs: []uint{1, 2},
		BrandIDs:    []uint{9},
		PriceMin:    &min,
		PriceMax:    &max,
		Limit:       10,
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, "shoe", repo.capturedFilter.Term)
	assert.Equal(t, []uint{1, 2}, repo.capturedFilter.CategoryIDs)
	assert.Equal(t, []uint{9}, repo.capturedFilter.BrandIDs)
	assert.Equal(t, 5.0, *repo.capturedFilter.PriceMin)
	assert.Equal(t, 50.0, *repo.capturedFilter.PriceMax)
}

func TestSearchByTerm_RequiresTerm(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := newTestSearchService(repo)

	page, svcErr := svc.SearchByTerm(context.Background(), "   ", 10, 0)

	assert.Nil(t, page)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestSearchByTerm_FallbackReplacesPrimary(t *testing.T) {
	repo := &fakeProductRepo{
		translatedResults: []models.Product{
			product(7, "chaussure rouge", 12, day(2)),
			product(8, "soulier rouge", 15, day(1)),
		},
	}
	svc := newTestSearchService(repo)

	page, svcErr := svc.SearchByTerm(context.Background(), "rouge", 10, 0)

	assert.Nil(t, svcErr)
	assert.True(t, repo.translatedCalled)
	assert.Equal(t, 2, page.TotalSize)
	assert.Equal(t, []string{"chaussure rouge", "soulier rouge"}, resultNames(page))
}

func TestSearchByTerm_NoFallbackWhenPrimaryMatches(t *testing.T) {
	repo := &fakeProductRepo{
		searchResults: []models.Product{
			product(1, "red shoe", 10, day(1)),
		},
		translatedResults: []models.Product{
			product(7, "chaussure rouge", 12, day(2)),
		},
	}
	svc := newTestSearchService(repo)

	page, svcErr := svc.SearchByTerm(context.Background(), "red", 10, 0)

	assert.Nil(t, svcErr)
	assert.False(t, repo.translatedCalled)
	assert.Equal(t, []string{"red shoe"}, resultNames(page))
}

func TestSuggest_ReturnsSlimProjection(t *testing.T) {
	repo := &fakeProductRepo{searchResults: []models.Product{
		product(1, "red shoe", 10, day(1)),
		product(2, "red shirt", 20, day(2)),
	}}
	svc := newTestSearchService(repo)

	suggestions, svcErr := svc.Suggest(context.Background(), "red", 10, 0)

	assert.Nil(t, svcErr)
	assert.Len(t, suggestions, 2)
	for _, s := range suggestions {
		assert.NotZero(t, s.ID)
		assert.NotEmpty(t, s.Name)
	}
}

func TestSearch_RepositoryError(t *testing.T) {
	repo := &fakeProductRepo{searchErr: assert.AnError}
	svc := newTestSearchService(repo)

	page, svcErr := svc.Search(context.Background(), models.SearchQuery{Term: "x", Limit: 10})

	assert.Nil(t, page)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 500, svcErr.StatusCode)
}

package services

import (
	"context"
	"sort"
	"strings"

	"storefront-service/models"
	"storefront-service/repository"

	"go.uber.org/zap"
)

const defaultPageLimit = 10

// Priority tiers for term ranking when no explicit sort key is given.
// Lower wins.
const (
	tierExactName = iota
	tierNamePrefix
	tierNameContains
	tierTagOnly
)

// SearchService is the product search/filter/ranking engine.
type SearchService interface {
	Search(ctx context.Context, q models.SearchQuery) (*models.ProductPage, *ServiceError)
	SearchByTerm(ctx context.Context, term string, limit, offset int) (*models.ProductPage, *ServiceError)
	Suggest(ctx context.Context, term string, limit, offset int) ([]models.ProductSuggestion, *ServiceError)
}

type searchServiceImpl struct {
	repo      repository.ProductRepository
	formatter ProductFormatter
	logger    *zap.Logger
}

// NewSearchService creates a new SearchService.
func NewSearchService(repo repository.ProductRepository, formatter ProductFormatter, logger *zap.Logger) SearchService {
	return &searchServiceImpl{repo: repo, formatter: formatter, logger: logger}
}

// Search runs the full filter pipeline: predicate filtering in the
// repository, then ranking, whole-set price aggregation and pagination
// here. An empty term is allowed; the category/brand/price filters
// still apply.
func (s *searchServiceImpl) Search(ctx context.Context, q models.SearchQuery) (*models.ProductPage, *ServiceError) {
	matched, err := s.repo.Search(ctx, repository.ProductFilter{
		Term:        q.Term,
		CategoryIDs: q.CategoryIDs,
		BrandIDs:    q.BrandIDs,
		PriceMin:    q.PriceMin,
		PriceMax:    q.PriceMax,
	})
	if err != nil {
		s.logger.Error("product search query failed", zap.Error(err))
		return nil, persistenceError("Failed to search products")
	}

	orderProducts(matched, q.SortBy, q.Term)
	return s.buildPage(ctx, matched, q.Limit, q.Offset)
}

// SearchByTerm is the text-search entry point. The term is mandatory.
// When the primary pass matches nothing, a second pass against
// translated names runs and its results replace the primary set
// entirely.
func (s *searchServiceImpl) SearchByTerm(ctx context.Context, term string, limit, offset int) (*models.ProductPage, *ServiceError) {
	if strings.TrimSpace(term) == "" {
		return nil, validationError("The name field is required")
	}

	matched, err := s.repo.Search(ctx, repository.ProductFilter{Term: term})
	if err != nil {
		s.logger.Error("product search query failed", zap.Error(err))
		return nil, persistenceError("Failed to search products")
	}

	if len(matched) == 0 {
		matched, err = s.repo.SearchTranslated(ctx, term)
		if err != nil {
			s.logger.Error("translated product search failed", zap.Error(err))
			return nil, persistenceError("Failed to search products")
		}
	}

	orderProducts(matched, "", term)
	return s.buildPage(ctx, matched, limit, offset)
}

// Suggest returns the id/name projection of a term search.
func (s *searchServiceImpl) Suggest(ctx context.Context, term string, limit, offset int) ([]models.ProductSuggestion, *ServiceError) {
	page, svcErr := s.SearchByTerm(ctx, term, limit, offset)
	if svcErr != nil {
		return nil, svcErr
	}

	suggestions := make([]models.ProductSuggestion, 0, len(page.Products))
	for _, p := range page.Products {
		suggestions = append(suggestions, models.ProductSuggestion{ID: p.ID, Name: p.Name})
	}
	return suggestions, nil
}

// buildPage aggregates total/min/max over the whole matched set, then
// slices and formats the requested window.
func (s *searchServiceImpl) buildPage(ctx context.Context, matched []models.Product, limit, offset int) (*models.ProductPage, *ServiceError) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	page := &models.ProductPage{
		TotalSize: len(matched),
		Limit:     limit,
		Offset:    offset,
		Products:  []models.FormattedProduct{},
	}
	page.MinPrice, page.MaxPrice = priceRange(matched)

	window := pageWindow(matched, limit, offset)
	formatted, err := s.formatter.FormatProducts(ctx, window)
	if err != nil {
		s.logger.Error("product formatting failed", zap.Error(err))
		return nil, persistenceError("Failed to load product details")
	}
	page.Products = formatted
	return page, nil
}

// orderProducts sorts matched products in place. An empty sortBy means
// priority-wise ranking against the term; otherwise one of the five
// explicit sort keys applies. Ties always end at ascending id so
// pagination is deterministic across requests.
func orderProducts(products []models.Product, sortBy, term string) {
	switch sortBy {
	case models.SortLowHigh:
		sort.Slice(products, func(i, j int) bool {
			if products[i].UnitPrice != products[j].UnitPrice {
				return products[i].UnitPrice < products[j].UnitPrice
			}
			return products[i].ID < products[j].ID
		})
	case models.SortHighLow:
		sort.Slice(products, func(i, j int) bool {
			if products[i].UnitPrice != products[j].UnitPrice {
				return products[i].UnitPrice > products[j].UnitPrice
			}
			return products[i].ID < products[j].ID
		})
	case models.SortAtoZ:
		sort.Slice(products, func(i, j int) bool {
			if products[i].Name != products[j].Name {
				return products[i].Name < products[j].Name
			}
			return products[i].ID < products[j].ID
		})
	case models.SortZtoA:
		sort.Slice(products, func(i, j int) bool {
			if products[i].Name != products[j].Name {
				return products[i].Name > products[j].Name
			}
			return products[i].ID < products[j].ID
		})
	case models.SortLatest:
		sort.Slice(products, func(i, j int) bool {
			if !products[i].CreatedAt.Equal(products[j].CreatedAt) {
				return products[i].CreatedAt.After(products[j].CreatedAt)
			}
			return products[i].ID < products[j].ID
		})
	default:
		rankByPriority(products, term)
	}
}

// rankByPriority orders products by match tier (exact name, name
// prefix, name substring, tag-only), newest first within a tier, id
// ascending on equal timestamps.
func rankByPriority(products []models.Product, term string) {
	needle := strings.ToLower(strings.TrimSpace(term))
	tiers := make(map[uint]int, len(products))
	for _, p := range products {
		tiers[p.ID] = matchTier(p, needle)
	}

	sort.Slice(products, func(i, j int) bool {
		ti, tj := tiers[products[i].ID], tiers[products[j].ID]
		if ti != tj {
			return ti < tj
		}
		if !products[i].CreatedAt.Equal(products[j].CreatedAt) {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		}
		return products[i].ID < products[j].ID
	})
}

func matchTier(p models.Product, needle string) int {
	if needle == "" {
		return tierTagOnly
	}
	name := strings.ToLower(p.Name)
	switch {
	case name == needle:
		return tierExactName
	case strings.HasPrefix(name, needle):
		return tierNamePrefix
	case strings.Contains(name, needle):
		return tierNameContains
	default:
		return tierTagOnly
	}
}

// priceRange returns min/max unit price over the whole set, nil/nil
// when the set is empty.
func priceRange(products []models.Product) (*float64, *float64) {
	if len(products) == 0 {
		return nil, nil
	}
	min, max := products[0].UnitPrice, products[0].UnitPrice
	for _, p := range products[1:] {
		if p.UnitPrice < min {
			min = p.UnitPrice
		}
		if p.UnitPrice > max {
			max = p.UnitPrice
		}
	}
	return &min, &max
}

func pageWindow(products []models.Product, limit, offset int) []models.Product {
	if offset >= len(products) {
		return nil
	}
	end := offset + limit
	if end > len(products) {
		end = len(products)
	}
	return products[offset:end]
}

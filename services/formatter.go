package services

import (
	"context"

	"storefront-service/models"
	"storefront-service/repository"

	"go.uber.org/zap"
)

// ProductFormatter expands raw product rows into the externally visible
// entries, attaching review and wishlist aggregates.
type ProductFormatter interface {
	FormatProducts(ctx context.Context, products []models.Product) ([]models.FormattedProduct, error)
}

type aggregateFormatter struct {
	repo   repository.ProductRepository
	logger *zap.Logger
}

// NewProductFormatter creates the repository-backed ProductFormatter.
func NewProductFormatter(repo repository.ProductRepository, logger *zap.Logger) ProductFormatter {
	return &aggregateFormatter{repo: repo, logger: logger}
}

// FormatProducts loads per-product review and wishlist aggregates with
// two grouped queries and merges them into the rows.
func (f *aggregateFormatter) FormatProducts(ctx context.Context, products []models.Product) ([]models.FormattedProduct, error) {
	formatted := make([]models.FormattedProduct, 0, len(products))
	if len(products) == 0 {
		return formatted, nil
	}

	ids := make([]uint, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	reviews, err := f.repo.ReviewAggregates(ctx, ids)
	if err != nil {
		return nil, err
	}
	wishlists, err := f.repo.WishlistCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		entry := models.FormattedProduct{Product: p}
		if agg, ok := reviews[p.ID]; ok {
			entry.AverageReview = agg.Average
			entry.ReviewsCount = agg.Count
		}
		entry.WishlistCount = int(wishlists[p.ID])
		formatted = append(formatted, entry)
	}
	return formatted, nil
}

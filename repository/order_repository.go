package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront-service/models"

	"gorm.io/gorm"
)

// OrderFilter is the predicate part of an order listing call. The
// period column is whitelisted by periodColumn before it reaches SQL.
type OrderFilter struct {
	PeriodType  string
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	SearchField string
	SearchQuery string
	OrderStatus string
}

// OrderRepository defines data-access operations for orders.
type OrderRepository interface {
	List(ctx context.Context, f OrderFilter) ([]models.Order, error)
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository.
func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

// periodColumn maps the requested period type onto a known date column.
// Anything unrecognized falls back to order_date.
func periodColumn(periodType string) string {
	switch periodType {
	case "delivery_date":
		return "delivery_date"
	default:
		return "order_date"
	}
}

// List returns orders matching the filter with details and the
// buyer/customer/center relations preloaded, newest first.
func (r *GormOrderRepository) List(ctx context.Context, f OrderFilter) ([]models.Order, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Preload("Details").
		Preload("Buyer").
		Preload("Customer").
		Preload("Center")

	if f.PeriodStart != nil && f.PeriodEnd != nil {
		col := periodColumn(f.PeriodType)
		q = q.Where(fmt.Sprintf("%s BETWEEN ? AND ?", col), *f.PeriodStart, *f.PeriodEnd)
	}

	if f.SearchField != "" && f.SearchQuery != "" {
		like := "%" + strings.ToLower(f.SearchQuery) + "%"
		switch f.SearchField {
		case models.OrderSearchBuyer:
			memberMatch := "SELECT id FROM members WHERE LOWER(f_name || ' ' || l_name) LIKE ?"
			q = q.Where("buyer_id IN ("+memberMatch+") OR customer_id IN ("+memberMatch+")", like, like)
		case models.OrderSearchProductName:
			q = q.Where("orders.id IN (SELECT order_id FROM order_details WHERE LOWER(product_name) LIKE ?)", like)
		}
	}

	if f.OrderStatus != "" {
		q = q.Where("order_status = ?", f.OrderStatus)
	}

	var orders []models.Order
	if err := q.Order("order_date DESC, id ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var o models.Order
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatus changes a single order's status inside a transaction.
// Either the update commits or nothing happens; a missing row rolls
// back with gorm.ErrRecordNotFound.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).
			Where("id = ?", id).
			Update("order_status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

package services

import (
	"context"
	"encoding/json"
	"time"

	"storefront-service/events"
	"storefront-service/models"
	"storefront-service/repository"

	"go.uber.org/zap"
)

// OrderService handles order listing and the one mutation this service
// owns: moving an order into the terminal withdraw_order state.
type OrderService interface {
	ListOrders(ctx context.Context, q models.OrderListQuery) ([]models.OrderSummary, *ServiceError)
	WithdrawOrder(ctx context.Context, orderID uint) *ServiceError
}

type orderServiceImpl struct {
	repo        repository.OrderRepository
	publisher   events.Publisher
	snsTopicArn string
	logger      *zap.Logger
}

// NewOrderService creates a new OrderService. publisher may be nil when
// event publishing is not configured.
func NewOrderService(repo repository.OrderRepository, publisher events.Publisher, snsTopicArn string, logger *zap.Logger) OrderService {
	return &orderServiceImpl{
		repo:        repo,
		publisher:   publisher,
		snsTopicArn: snsTopicArn,
		logger:      logger,
	}
}

// ListOrders filters orders by period/status/text and flattens each
// into a single summary row via firstLineItem.
func (s *orderServiceImpl) ListOrders(ctx context.Context, q models.OrderListQuery) ([]models.OrderSummary, *ServiceError) {
	filter := repository.OrderFilter{
		PeriodType:  q.PeriodType,
		SearchField: q.SearchField,
		SearchQuery: q.SearchQuery,
		OrderStatus: q.OrderStatus,
	}

	if q.StartDate != "" && q.EndDate != "" {
		start, end, err := orderPeriodBounds(q.StartDate, q.EndDate)
		if err != nil {
			return nil, validationError("start_date and end_date must be YYYY-MM-DD")
		}
		filter.PeriodStart = &start
		filter.PeriodEnd = &end
	}

	orders, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("order listing query failed", zap.Error(err))
		return nil, persistenceError("Failed to list orders")
	}

	summaries := make([]models.OrderSummary, 0, len(orders))
	for _, o := range orders {
		summaries = append(summaries, summarizeOrder(o))
	}
	return summaries, nil
}

// WithdrawOrder soft-cancels an order: a single transactional status
// update to withdraw_order, never a row delete. Withdrawing an already
// withdrawn order succeeds without touching the row.
func (s *orderServiceImpl) WithdrawOrder(ctx context.Context, orderID uint) *ServiceError {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if isNotFound(err) {
			return notFoundError("Order not found")
		}
		s.logger.Error("order lookup failed", zap.Error(err), zap.Uint("order_id", orderID))
		return persistenceError("Failed to load order")
	}

	if order.OrderStatus == models.OrderStatusWithdraw {
		return nil
	}

	if err := s.repo.UpdateStatus(ctx, orderID, models.OrderStatusWithdraw); err != nil {
		if isNotFound(err) {
			return notFoundError("Order not found")
		}
		s.logger.Error("order withdrawal failed", zap.Error(err), zap.Uint("order_id", orderID))
		return persistenceError("Failed to withdraw order")
	}

	s.logger.Info("order withdrawn",
		zap.Uint("order_id", orderID),
		zap.String("order_number", order.OrderNumber),
	)

	s.publishWithdrawn(ctx, order)
	return nil
}

// publishWithdrawn emits the order_withdrawn event (non-fatal on error).
func (s *orderServiceImpl) publishWithdrawn(ctx context.Context, order *models.Order) {
	if s.publisher == nil || s.snsTopicArn == "" {
		return
	}
	b, err := json.Marshal(models.OrderWithdrawnEvent{
		EventType:   "order_withdrawn",
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Timestamp:   time.Now(),
	})
	if err != nil {
		s.logger.Error("failed to marshal order_withdrawn event", zap.Error(err))
		return
	}
	if err := s.publisher.Publish(ctx, s.snsTopicArn, b); err != nil {
		s.logger.Error("failed to publish order_withdrawn event", zap.Error(err))
	}
}

// orderPeriodBounds parses the inclusive date range. The end bound is
// pushed to the last second of its day, so an order stamped
// 23:59:59 on the end date is included and midnight of the next day is
// not.
func orderPeriodBounds(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end = end.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return start, end, nil
}

// firstLineItem picks the representative line of an order for the
// flattened listing: the first detail row. Swap this policy out for a
// full line-item expansion without touching the filter logic.
func firstLineItem(order models.Order) models.OrderDetail {
	if len(order.Details) == 0 {
		return models.OrderDetail{}
	}
	return order.Details[0]
}

func summarizeOrder(order models.Order) models.OrderSummary {
	line := firstLineItem(order)

	buyer := ""
	if order.Buyer != nil {
		buyer = order.Buyer.FName + " " + order.Buyer.LName
	} else if order.Customer != nil {
		buyer = order.Customer.FName + " " + order.Customer.LName
	}

	center := ""
	if order.Center != nil {
		center = order.Center.BranchName
	}

	return models.OrderSummary{
		ID:            order.ID,
		OrderNumber:   order.OrderNumber,
		ProductName:   line.ProductName,
		Amount:        line.Price,
		PV:            line.PV,
		Quantity:      line.Quantity,
		OrderAmount:   order.OrderAmount,
		Buyer:         buyer,
		Center:        center,
		OrderStatus:   order.OrderStatus,
		OrderDate:     order.OrderDate,
		UpdatedAt:     order.UpdatedAt,
		DeliveryDate:  order.DeliveryDate,
		PaymentStatus: order.PaymentStatus,
		PaymentMethod: order.PaymentMethod,
	}
}

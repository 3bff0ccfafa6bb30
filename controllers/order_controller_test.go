package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-service/controllers"
	"storefront-service/models"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// ---- concrete mock implementing services.OrderService ----

type mockOrderSvc struct {
	summaries     []models.OrderSummary
	listErr       *services.ServiceError
	withdrawErr   *services.ServiceError
	capturedQuery models.OrderListQuery
	withdrawnID   uint
}

func (m *mockOrderSvc) ListOrders(ctx context.Context, q models.OrderListQuery) ([]models.OrderSummary, *services.ServiceError) {
	m.capturedQuery = q
	return m.summaries, m.listErr
}
func (m *mockOrderSvc) WithdrawOrder(ctx context.Context, orderID uint) *services.ServiceError {
	m.withdrawnID = orderID
	return m.withdrawErr
}

// ---- helpers ----

func setupOrderRouter(svc services.OrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c := controllers.NewOrderController(svc)

	r.GET("/orders", c.GetOrders)
	r.DELETE("/orders/:id", c.WithdrawOrder)
	return r
}

// ---- tests ----

func TestGetOrders_PassesFiltersThrough(t *testing.T) {
	svc := &mockOrderSvc{summaries: []models.OrderSummary{}}
	r := setupOrderRouter(svc)

	req := httptest.NewRequest(http.MethodGet,
		"/orders?period_type=delivery_date&start_date=2024-01-01&end_date=2024-01-31&search_field=buyer&search_query=kim&order_status=pending", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	q := svc.capturedQuery
	assert.Equal(t, "delivery_date", q.PeriodType)
	assert.Equal(t, "2024-01-01", q.StartDate)
	assert.Equal(t, "2024-01-31", q.EndDate)
	assert.Equal(t, models.OrderSearchBuyer, q.SearchField)
	assert.Equal(t, "kim", q.SearchQuery)
	assert.Equal(t, models.OrderStatusPending, q.OrderStatus)
}

func TestGetOrders_Success(t *testing.T) {
	svc := &mockOrderSvc{summaries: []models.OrderSummary{
		{ID: 1, OrderNumber: "ORD-0001", ProductName: "Ginseng Extract"},
	}}
	r := setupOrderRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "success", resp["status"])
	data, ok := resp["data"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, data, 1)
}

func TestGetOrders_BadDateRange(t *testing.T) {
	svc := &mockOrderSvc{
		listErr: &services.ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid start_date"},
	}
	r := setupOrderRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/orders?start_date=garbage&end_date=2024-01-31", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "error", resp["status"])
}

func TestWithdrawOrder_Success(t *testing.T) {
	svc := &mockOrderSvc{}
	r := setupOrderRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/orders/5", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(5), svc.withdrawnID)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Order withdrawn successfully", resp["message"])
}

func TestWithdrawOrder_NotFound(t *testing.T) {
	svc := &mockOrderSvc{
		withdrawErr: &services.ServiceError{StatusCode: http.StatusNotFound, Message: "Order not found"},
	}
	r := setupOrderRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/orders/99", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWithdrawOrder_InvalidID(t *testing.T) {
	svc := &mockOrderSvc{}
	r := setupOrderRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/orders/not-a-number", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.withdrawnID)
}

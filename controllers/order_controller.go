package controllers

import (
	"net/http"

	"storefront-service/models"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests for order listing and
// withdrawal.
type OrderController struct {
	orderService services.OrderService
}

// NewOrderController creates a new OrderController.
func NewOrderController(svc services.OrderService) *OrderController {
	return &OrderController{orderService: svc}
}

// GetOrders handles GET /orders
func (oc *OrderController) GetOrders(ctx *gin.Context) {
	query := models.OrderListQuery{
		PeriodType:  ctx.Query("period_type"),
		StartDate:   ctx.Query("start_date"),
		EndDate:     ctx.Query("end_date"),
		SearchField: ctx.Query("search_field"),
		SearchQuery: ctx.Query("search_query"),
		OrderStatus: ctx.Query("order_status"),
	}

	orders, svcErr := oc.orderService.ListOrders(ctx.Request.Context(), query)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"status": "error", "message": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": orders})
}

// WithdrawOrder handles DELETE /orders/:id — a soft status change to
// withdraw_order, never a physical delete.
func (oc *OrderController) WithdrawOrder(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if svcErr := oc.orderService.WithdrawOrder(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"status": "error", "message": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "message": "Order withdrawn successfully"})
}

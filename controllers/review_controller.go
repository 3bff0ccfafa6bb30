package controllers

import (
	"net/http"
	"strconv"

	"storefront-service/models"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
)

// MemberIDHeader names the header carrying the acting member's id,
// resolved by the upstream auth layer.
const MemberIDHeader = "X-Member-ID"

// ReviewController handles HTTP requests for product reviews.
type ReviewController struct {
	reviewService services.ReviewService
}

// NewReviewController creates a new ReviewController.
func NewReviewController(svc services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: svc}
}

// ListByProduct handles GET /products/:id/reviews
func (rc *ReviewController) ListByProduct(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	reviews, svcErr := rc.reviewService.ListByProduct(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}

// Rating handles GET /products/:id/rating
func (rc *ReviewController) Rating(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	rating, svcErr := rc.reviewService.OverallRating(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, rating)
}

// Submit handles POST /reviews
func (rc *ReviewController) Submit(ctx *gin.Context) {
	memberID, err := strconv.ParseUint(ctx.GetHeader(MemberIDHeader), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Member id is required"})
		return
	}

	var req models.SubmitReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	review, svcErr := rc.reviewService.Submit(ctx.Request.Context(), uint(memberID), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Review submitted successfully", "data": review})
}

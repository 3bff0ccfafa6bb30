package controllers

import (
	"net/http"

	"storefront-service/models"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
)

// MemberController handles HTTP requests for member accounts.
type MemberController struct {
	memberService services.MemberService
}

// NewMemberController creates a new MemberController.
func NewMemberController(svc services.MemberService) *MemberController {
	return &MemberController{memberService: svc}
}

// List handles GET /members
func (mc *MemberController) List(ctx *gin.Context) {
	members, svcErr := mc.memberService.List(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": members})
}

// Register handles POST /members
func (mc *MemberController) Register(ctx *gin.Context) {
	var req models.RegisterMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	member, svcErr := mc.memberService.Register(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"status": "success", "data": member})
}

// Show handles GET /members/:id
func (mc *MemberController) Show(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	member, svcErr := mc.memberService.Get(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": member})
}

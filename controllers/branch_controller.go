package controllers

import (
	"net/http"

	"storefront-service/models"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
)

// BranchController handles HTTP requests for branch management.
type BranchController struct {
	branchService services.BranchService
}

// NewBranchController creates a new BranchController.
func NewBranchController(svc services.BranchService) *BranchController {
	return &BranchController{branchService: svc}
}

// List handles GET /branches
func (bc *BranchController) List(ctx *gin.Context) {
	branches, svcErr := bc.branchService.List(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": branches})
}

// Create handles POST /branches
func (bc *BranchController) Create(ctx *gin.Context) {
	var branch models.Branch
	if err := ctx.ShouldBindJSON(&branch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	created, svcErr := bc.branchService.Create(ctx.Request.Context(), &branch)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"status": "success", "data": created})
}

// Show handles GET /branches/:id
func (bc *BranchController) Show(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	branch, svcErr := bc.branchService.Get(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": branch})
}

// Update handles PUT /branches/:id
func (bc *BranchController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var update models.Branch
	if err := ctx.ShouldBindJSON(&update); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	branch, svcErr := bc.branchService.Update(ctx.Request.Context(), id, &update)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": branch})
}

// Destroy handles DELETE /branches/:id
func (bc *BranchController) Destroy(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if svcErr := bc.branchService.Delete(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "message": "Branch deleted successfully"})
}

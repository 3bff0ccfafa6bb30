package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"storefront-service/models"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
)

// ProductController handles HTTP requests for the catalog and the
// search endpoints.
type ProductController struct {
	productService services.ProductService
	searchService  services.SearchService
}

// NewProductController creates a new ProductController.
func NewProductController(productService services.ProductService, searchService services.SearchService) *ProductController {
	return &ProductController{productService: productService, searchService: searchService}
}

// List handles GET /products
func (pc *ProductController) List(ctx *gin.Context) {
	products, svcErr := pc.productService.List(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": products})
}

// Create handles POST /products
func (pc *ProductController) Create(ctx *gin.Context) {
	var req models.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product, svcErr := pc.productService.Create(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"status": "success", "data": product})
}

// Show handles GET /products/:id
func (pc *ProductController) Show(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	product, svcErr := pc.productService.Get(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": product})
}

// Update handles PUT /products/:id
func (pc *ProductController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req models.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product, svcErr := pc.productService.Update(ctx.Request.Context(), id, &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": product})
}

// Destroy handles DELETE /products/:id
func (pc *ProductController) Destroy(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if svcErr := pc.productService.Delete(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "message": "Product deleted successfully"})
}

// Filter handles GET /products/filter — the full search pipeline with
// category/brand/price filters and optional sort key.
func (pc *ProductController) Filter(ctx *gin.Context) {
	limit, offset := parseLimitOffset(ctx)
	query := models.SearchQuery{
		Term:        ctx.Query("search"),
		CategoryIDs: parseIDSet(ctx.Query("category")),
		BrandIDs:    parseIDSet(ctx.Query("brand")),
		SortBy:      ctx.Query("sort_by"),
		Limit:       limit,
		Offset:      offset,
	}
	if v, err := strconv.ParseFloat(ctx.Query("price_min"), 64); err == nil {
		query.PriceMin = &v
	}
	if v, err := strconv.ParseFloat(ctx.Query("price_max"), 64); err == nil {
		query.PriceMax = &v
	}

	page, svcErr := pc.searchService.Search(ctx.Request.Context(), query)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// Search handles GET /products/search — text search with the required
// name term and the translated-name fallback.
func (pc *ProductController) Search(ctx *gin.Context) {
	limit, offset := parseLimitOffset(ctx)
	page, svcErr := pc.searchService.SearchByTerm(ctx.Request.Context(), ctx.Query("name"), limit, offset)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// Suggest handles GET /products/suggestions
func (pc *ProductController) Suggest(ctx *gin.Context) {
	limit, offset := parseLimitOffset(ctx)
	suggestions, svcErr := pc.searchService.Suggest(ctx.Request.Context(), ctx.Query("name"), limit, offset)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"products": suggestions})
}

// Latest handles GET /products/latest
func (pc *ProductController) Latest(ctx *gin.Context) {
	limit, offset := parseLimitOffset(ctx)
	page, svcErr := pc.productService.Latest(ctx.Request.Context(), limit, offset)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// Details handles GET /products/details/:slug
func (pc *ProductController) Details(ctx *gin.Context) {
	slug := ctx.Param("slug")
	if slug == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Slug is required"})
		return
	}

	product, svcErr := pc.productService.GetBySlug(ctx.Request.Context(), slug)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, product)
}

// Counter handles GET /products/:id/counter
func (pc *ProductController) Counter(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	counter, svcErr := pc.productService.Counter(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, counter)
}

// parseID extracts the :id path param, replying 400 itself on garbage.
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// parseLimitOffset extracts limit/offset query params with defaults.
func parseLimitOffset(ctx *gin.Context) (int, int) {
	const maxLimit = 100
	limit, offset := 10, 0
	if l, err := strconv.Atoi(ctx.DefaultQuery("limit", "10")); err == nil && l > 0 {
		if l > maxLimit {
			l = maxLimit
		}
		limit = l
	}
	if o, err := strconv.Atoi(ctx.DefaultQuery("offset", "0")); err == nil && o >= 0 {
		offset = o
	}
	return limit, offset
}

// parseIDSet decodes an id set passed either as a JSON array ("[1,2]")
// or a comma-separated list ("1,2").
func parseIDSet(raw string) []uint {
	if raw == "" {
		return nil
	}

	var ids []uint
	if err := json.Unmarshal([]byte(raw), &ids); err == nil {
		return ids
	}

	var out []uint
	for _, part := range strings.Split(raw, ",") {
		if id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64); err == nil {
			out = append(out, uint(id))
		}
	}
	return out
}

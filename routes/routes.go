package routes

import (
	"storefront-service/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all storefront routes.
func RegisterRoutes(
	r *gin.Engine,
	pc *controllers.ProductController,
	oc *controllers.OrderController,
	bc *controllers.BranchController,
	mc *controllers.MemberController,
	rc *controllers.ReviewController,
) {
	products := r.Group("/products")
	{
		// Search/listing endpoints first so they don't collide with :id
		products.GET("/filter", pc.Filter)
		products.GET("/search", pc.Search)
		products.GET("/suggestions", pc.Suggest)
		products.GET("/latest", pc.Latest)
		products.GET("/details/:slug", pc.Details)

		products.GET("", pc.List)
		products.POST("", pc.Create)
		products.GET("/:id", pc.Show)
		products.PUT("/:id", pc.Update)
		products.DELETE("/:id", pc.Destroy)
		products.GET("/:id/counter", pc.Counter)
		products.GET("/:id/reviews", rc.ListByProduct)
		products.GET("/:id/rating", rc.Rating)
	}

	orders := r.Group("/orders")
	{
		orders.GET("", oc.GetOrders)
		orders.DELETE("/:id", oc.WithdrawOrder)
	}

	branches := r.Group("/branches")
	{
		branches.GET("", bc.List)
		branches.POST("", bc.Create)
		branches.GET("/:id", bc.Show)
		branches.PUT("/:id", bc.Update)
		branches.DELETE("/:id", bc.Destroy)
	}

	members := r.Group("/members")
	{
		members.GET("", mc.List)
		members.POST("", mc.Register)
		members.GET("/:id", mc.Show)
	}

	r.POST("/reviews", rc.Submit)
}

package routes

import (
	"github.com/gin-gonic/gin"

	blogControllers "github.com/RAJ-RHR/ecommerce/controllers/blog"
	contactControllers "github.com/RAJ-RHR/ecommerce/controllers/contact"
	orderControllers "github.com/RAJ-RHR/ecommerce/controllers/order"
	productcontroller "github.com/RAJ-RHR/ecommerce/controllers/product"
	reviewControllers "github.com/RAJ-RHR/ecommerce/controllers/review"
)

// SetupShopRoutes registers the public storefront endpoints.
func SetupShopRoutes(r *gin.Engine, deps Deps) {
	// ──────────────── Catalog ────────────────
	r.GET("/products", productcontroller.GetProducts(deps.DB))
	r.GET("/products/:id", productcontroller.GetProductByID(deps.DB))
	r.GET("/products/slug/:slug", productcontroller.GetProductBySlug(deps.DB))
	r.GET("/products/:id/reviews", reviewControllers.GetProductReviews(deps.DB))
	r.GET("/categories", productcontroller.GetAllCategories(deps.DB))
	r.GET("/categories/:slug/products", productcontroller.GetProductsByCategory(deps.DB))

	// ──────────────── Blog ────────────────
	r.GET("/blogs", blogControllers.GetBlogs(deps.DB))
	r.GET("/blogs/:slug", blogControllers.GetBlogBySlug(deps.DB))

	// ──────────────── Reviews & Contact ────────────────
	r.POST("/reviews", reviewControllers.SubmitReview(deps.DB))
	r.POST("/contact", contactControllers.SubmitContact(deps.DB))

	// ──────────────── Checkout ────────────────
	r.POST("/orders/place", orderControllers.PlaceOrderHandler(deps.DB, deps.Carts))
	r.GET("/orders/:orderNumber", orderControllers.GetOrderByNumberHandler(deps.DB))
}

package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/RAJ-RHR/ecommerce/controllers/admin"
	blogControllers "github.com/RAJ-RHR/ecommerce/controllers/blog"
	contactControllers "github.com/RAJ-RHR/ecommerce/controllers/contact"
	orderControllers "github.com/RAJ-RHR/ecommerce/controllers/order"
	productcontroller "github.com/RAJ-RHR/ecommerce/controllers/product"
	reviewControllers "github.com/RAJ-RHR/ecommerce/controllers/review"
	uploadcontroller "github.com/RAJ-RHR/ecommerce/controllers/upload"
	"github.com/RAJ-RHR/ecommerce/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints behind the session
// gate.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	r.POST("/admin/login", adminController.AdminLogin())

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAdminSession)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(deps.DB, deps.UploadDir, deps.PublicBaseURL))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(deps.DB, deps.UploadDir, deps.PublicBaseURL))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(deps.DB, deps.UploadDir, deps.PublicBaseURL))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(deps.DB, deps.UploadDir, deps.PublicBaseURL))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(deps.DB, deps.UploadDir, deps.PublicBaseURL))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(deps.DB))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(deps.DB))
			orderAdmin.GET("/report", orderControllers.ExportOrdersToExcel(deps.DB))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(deps.DB))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(deps.DB))
		}

		// ─────────── Blog Management ───────────
		blogAdmin := adminGroup.Group("/blogs")
		{
			blogAdmin.POST("", blogControllers.CreateBlog(deps.DB, deps.UploadDir, deps.PublicBaseURL))
			blogAdmin.PUT("/:id", blogControllers.UpdateBlog(deps.DB, deps.UploadDir, deps.PublicBaseURL))
			blogAdmin.DELETE("/:id", blogControllers.DeleteBlog(deps.DB))
		}

		// ─────────── Review Moderation ───────────
		reviewAdmin := adminGroup.Group("/reviews")
		{
			reviewAdmin.GET("", reviewControllers.GetAllReviews(deps.DB))
			reviewAdmin.POST("/:id/approve", reviewControllers.ApproveReview(deps.DB))
			reviewAdmin.DELETE("/:id", reviewControllers.DeleteReview(deps.DB))
		}

		// ─────────── Contact Inbox ───────────
		contactAdmin := adminGroup.Group("/contacts")
		{
			contactAdmin.GET("", contactControllers.GetAllContacts(deps.DB))
			contactAdmin.DELETE("/:id", contactControllers.DeleteContact(deps.DB))
		}

		// ─────────── Image Library ───────────
		imageAdmin := adminGroup.Group("/images")
		{
			imageAdmin.POST("", uploadcontroller.HandleImageUpload(deps.DB, deps.UploadDir, deps.PublicBaseURL))
			imageAdmin.GET("", uploadcontroller.ListImages(deps.DB))
			imageAdmin.DELETE("/:id", uploadcontroller.DeleteImageHandler(deps.DB, deps.UploadDir))
		}
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/RAJ-RHR/ecommerce/controllers/cart"
)

// SetupCartRoutes registers the cart session endpoints. Every route takes
// the session key from the X-Cart-Session header (or ?session=).
func SetupCartRoutes(r *gin.Engine, deps Deps) {
	cartGroup := r.Group("/cart")
	{
		cartGroup.POST("/session", cartControllers.NewCartSession())
		cartGroup.GET("", cartControllers.GetCart(deps.Carts))
		cartGroup.POST("/items", cartControllers.AddToCart(deps.DB, deps.Carts))
		cartGroup.POST("/items/:product_id/increase", cartControllers.IncreaseQuantity(deps.Carts))
		cartGroup.POST("/items/:product_id/decrease", cartControllers.DecreaseQuantity(deps.Carts))
		cartGroup.PUT("/items/:product_id", cartControllers.SetQuantity(deps.Carts))
		cartGroup.DELETE("/items/:product_id", cartControllers.RemoveFromCart(deps.Carts))
		cartGroup.DELETE("", cartControllers.ClearCart(deps.Carts))

		// websocket endpoint for cross-client cart sync
		cartGroup.GET("/ws", cartControllers.CartWebSocketHandler(deps.Carts))
	}
}

// cart_web_socket.go
package cartControllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/RAJ-RHR/ecommerce/cart"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GET /cart/ws?session=...
// Pushes the persisted cart to every other connected client of the same
// session whenever one of them writes.
func CartWebSocketHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := sessionKey(c)
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart session is required"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var writeMu sync.Mutex
		push := func(lines []cart.Line) {
			writeMu.Lock()
			defer writeMu.Unlock()
			_ = conn.WriteJSON(gin.H{"items": lines})
		}

		// Initial state, then every update from other clients.
		push(carts.Session(key).Lines())
		sub := carts.Broker().Subscribe(key, push)
		defer sub.Cancel()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}
}

package ws

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // chỉ để phát triển, nên giới hạn ở production
	},
}

// gửi message dạng JSON qua WebSocket
func sendJSON(conn *websocket.Conn, data interface{}) {
	msg, err := json.Marshal(data)
	if err != nil {
		log.Println("Lỗi JSON marshal:", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		log.Println("Lỗi gửi message:", err)
	}
}

// WebSocket theo scope: client trang danh sách nội dung của một (class, subject)
// GET /ws/scope?class=...&subject=...
func HandleScopeWebSocket(c *gin.Context) {
	class := c.Query("class")
	subject := c.Query("subject")
	if class == "" || subject == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "class và subject bắt buộc"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade thất bại:", err)
		return
	}

	H.Register(class, subject, conn)
	sendJSON(conn, gin.H{"type": "connected", "scope": class + "/" + subject})
}

// WebSocket global: trang quản trị theo dõi mọi thay đổi catalog
// GET /ws/status
func HandleGlobalWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade thất bại:", err)
		return
	}

	H.RegisterGlobal(conn)
	sendJSON(conn, gin.H{"type": "connected", "message": "Connected to catalog status"})
}

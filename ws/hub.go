package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

type Hub struct {
	Clients       map[string]map[*websocket.Conn]*Client // Theo từng scope "class/subject"
	GlobalClients map[*websocket.Conn]*Client            // Dành cho trang danh sách admin
	Mutex         sync.RWMutex
}

var H = Hub{
	Clients:       make(map[string]map[*websocket.Conn]*Client),
	GlobalClients: make(map[*websocket.Conn]*Client),
}

// Thông điệp báo catalog trong một scope đã thay đổi, client nên refetch
type CatalogChanged struct {
	Type    string `json:"type"`
	Class   string `json:"class"`
	Subject string `json:"subject"`
}

func scopeKey(class, subject string) string {
	return class + "/" + subject
}

// Register theo scope riêng
func (h *Hub) Register(class, subject string, conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	key := scopeKey(class, subject)
	if _, ok := h.Clients[key]; !ok {
		h.Clients[key] = make(map[*websocket.Conn]*Client)
	}

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	h.Clients[key][conn] = client

	go h.readPump(key, conn)
	go h.writePump(key, conn)
}

// Register global cho trang danh sách
func (h *Hub) RegisterGlobal(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	h.GlobalClients[conn] = client

	go h.readGlobalPump(conn)
	go h.writeGlobalPump(conn)
}

// Broadcast theo scope
func (h *Hub) Broadcast(class, subject string, data []byte) {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	if clients, ok := h.Clients[scopeKey(class, subject)]; ok {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
			}
		}
	}
}

// Broadcast toàn bộ global clients (danh sách)
func (h *Hub) BroadcastGlobal(data []byte) {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	for _, client := range h.GlobalClients {
		select {
		case client.Send <- data:
		default:
		}
	}
}

// BroadcastCatalogChanged gửi signal cho scope bị ảnh hưởng và cho danh sách admin
func BroadcastCatalogChanged(class, subject string) {
	msg := CatalogChanged{
		Type:    "catalog_list_changed",
		Class:   class,
		Subject: subject,
	}
	data, err := json.Marshal(msg)
	if err != nil {
		log.Println("JSON marshal error:", err)
		return
	}
	H.Broadcast(class, subject, data)
	H.BroadcastGlobal(data)
}

// GetStats trả số client đang kết nối (cho health check)
func (h *Hub) GetStats() map[string]int {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	scoped := 0
	for _, clients := range h.Clients {
		scoped += len(clients)
	}
	return map[string]int{
		"scoped_clients": scoped,
		"global_clients": len(h.GlobalClients),
	}
}

// Unregister client theo scope
func (h *Hub) Unregister(key string, conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if clients, ok := h.Clients[key]; ok {
		if client, ok := clients[conn]; ok {
			close(client.Send)
			delete(clients, conn)
		}
		if len(clients) == 0 {
			delete(h.Clients, key)
		}
	}
}

// Unregister global client
func (h *Hub) UnregisterGlobal(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if client, ok := h.GlobalClients[conn]; ok {
		close(client.Send)
		delete(h.GlobalClients, conn)
	}
}

// Read pump riêng theo scope
func (h *Hub) readPump(key string, conn *websocket.Conn) {
	defer h.Unregister(key, conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Write pump riêng theo scope
func (h *Hub) writePump(key string, conn *websocket.Conn) {
	h.Mutex.RLock()
	client := h.Clients[key][conn]
	h.Mutex.RUnlock()

	// client có thể đã bị Unregister trước khi pump kịp chạy
	if client == nil {
		conn.Close()
		return
	}

	defer func() {
		conn.WriteMessage(websocket.CloseMessage, []byte{})
		conn.Close()
	}()
	for msg := range client.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// Read pump global
func (h *Hub) readGlobalPump(conn *websocket.Conn) {
	defer h.UnregisterGlobal(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Write pump global
func (h *Hub) writeGlobalPump(conn *websocket.Conn) {
	h.Mutex.RLock()
	client := h.GlobalClients[conn]
	h.Mutex.RUnlock()

	if client == nil {
		conn.Close()
		return
	}

	defer func() {
		conn.WriteMessage(websocket.CloseMessage, []byte{})
		conn.Close()
	}()
	for msg := range client.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func dialTestConn(t *testing.T) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serverConn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		// giữ phía server sống tới khi client đóng
		for {
			if _, _, err := serverConn.ReadMessage(); err != nil {
				serverConn.Close()
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial websocket lỗi: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// Pump chạy sau khi client đã bị gỡ khỏi hub: phải thoát êm, không panic
func TestWritePumpAfterUnregister(t *testing.T) {
	conn := dialTestConn(t)
	key := scopeKey("1st", "math")

	H.Register("1st", "math", conn)
	H.Unregister(key, conn)

	H.writePump(key, conn)
}

func TestWriteGlobalPumpAfterUnregister(t *testing.T) {
	conn := dialTestConn(t)

	H.RegisterGlobal(conn)
	H.UnregisterGlobal(conn)

	H.writeGlobalPump(conn)
}

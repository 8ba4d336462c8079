package room

import (
	"time"

	"github.com/gofiber/contrib/websocket"
)

// Conn is the transport a player reads from and writes to. Production wraps
// a websocket connection; tests substitute fakes.
type Conn interface {
	Read() ([]byte, error)
	Write(data []byte) error
	Ping() error
	Close()
}

const writeWait = 10 * time.Second

type wsConn struct {
	sock *websocket.Conn
}

func NewWSConn(c *websocket.Conn) Conn {
	return &wsConn{sock: c}
}

func (w *wsConn) Read() ([]byte, error) {
	_, data, err := w.sock.ReadMessage()
	return data, err
}

func (w *wsConn) Write(data []byte) error {
	w.sock.SetWriteDeadline(time.Now().Add(writeWait))
	return w.sock.WriteMessage(websocket.TextMessage, data)
}

func (w *wsConn) Ping() error {
	w.sock.SetWriteDeadline(time.Now().Add(writeWait))
	return w.sock.WriteMessage(websocket.PingMessage, nil)
}

func (w *wsConn) Close() {
	w.sock.Close()
}

package feed

import (
	"encoding/json"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const sendBufferSize = 256

// Connection wraps the WebSocket connection with its outgoing queue.
type Connection struct {
	ws        *websocket.Conn
	send      chan []byte
	closeOnce sync.Once
}

func NewConnection(ws *websocket.Conn) *Connection {
	return &Connection{
		ws:   ws,
		send: make(chan []byte, sendBufferSize),
	}
}

// MessageHandler handles one raw inbound message.
type MessageHandler interface {
	HandleMessage(conn *Connection, message []byte)
}

// ReadPump reads messages until the peer goes away. Messages are handled one
// at a time, in order.
func (c *Connection) ReadPump(h MessageHandler) {
	defer c.ws.Close()

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn("Error reading message", "remote", c.ws.RemoteAddr(), "error", err)
			}
			return
		}
		h.HandleMessage(c, message)
	}
}

// WritePump drains the outgoing queue until Close is called.
func (c *Connection) WritePump() {
	defer c.ws.Close()

	for message := range c.send {
		w, err := c.ws.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		if _, err := w.Write(message); err != nil {
			return
		}
		if err := w.Close(); err != nil {
			return
		}
	}
	c.ws.WriteMessage(websocket.CloseMessage, []byte{})
}

// SendMessage queues msg as JSON. A peer too slow to keep up is dropped.
func (c *Connection) SendMessage(msg interface{}) error {
	messageBytes, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	select {
	case c.send <- messageBytes:
	default:
		log.Warn("Send queue full, dropping connection", "remote", c.ws.RemoteAddr())
		c.ws.Close()
	}
	return nil
}

// Close stops the write pump once the queue is drained. No message may be
// sent afterwards.
func (c *Connection) Close() {
	c.closeOnce.Do(func() { close(c.send) })
}

package web

import (
	"github.com/gorilla/websocket"

	"github.com/dotmatrix-emu/dotmatrix/internal/joypad"
)

// Client is one websocket connection. Outgoing messages are
// buffered on Send; incoming messages are button events of the
// form [button, state] with state 1 for pressed.
type Client struct {
	hub  *hub
	conn *websocket.Conn
	Send chan []byte
}

// ReadPump reads button events from the client until the
// connection closes.
func (c *Client) ReadPump(pressed, released chan<- joypad.Button) {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return // connection closed
		}
		if len(message) < 2 || message[0] > joypad.ButtonDown {
			continue
		}

		if message[1] == 0 {
			released <- message[0]
		} else {
			pressed <- message[0]
		}
	}
}

// WritePump writes queued messages to the client until Send is
// closed or a write fails.
func (c *Client) WritePump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	for message := range c.Send {
		if err := c.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
			return
		}
	}

	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

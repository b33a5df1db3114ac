package event

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096

	// Outbound frames queued per client before broadcasts start dropping.
	sendBufferSize = 16
)

// Client is one live websocket connection. The userID and topics fields are
// owned by the Registry and must only be touched under its lock; everything
// else is fixed at registration.
type Client struct {
	ID   string
	conn *websocket.Conn
	send chan OutboundMessage
	done chan struct{}

	userID string
	topics map[string]struct{}
}

// Outbound returns the client's queued outbound frames. The write pump is
// the normal consumer; tests read it directly when no socket is attached.
func (c *Client) Outbound() <-chan OutboundMessage {
	return c.send
}

// Enqueue queues a frame for delivery without blocking. It reports false if
// the client is gone or its buffer is full; the frame is dropped either way.
func (c *Client) Enqueue(msg OutboundMessage) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// WritePump owns all writes to the socket. It drains the send queue, pings
// the peer, and closes the connection when the client is unregistered.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				log.Warn().Err(err).Str("connection_id", c.ID).Msg("websocket write failed")
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

// ReadPump decodes inbound frames and hands each to handle. It returns when
// the peer disconnects or a read fails; the caller unregisters afterwards.
func (c *Client) ReadPump(handle func(InboundMessage)) {
	defer c.conn.Close()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg InboundMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				log.Warn().Err(err).Str("connection_id", c.ID).Msg("websocket read failed")
			}
			return
		}
		handle(msg)
	}
}

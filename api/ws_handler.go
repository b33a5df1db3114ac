package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hnamzia/silent-auction-BE/internal/event"
	"github.com/rs/zerolog/log"
)

// Store calls triggered by socket events run on their own deadline, detached
// from the connection: a client disconnecting mid-join must not cancel the
// in-flight watch write.
const storeOpTimeout = 10 * time.Second

// @Summary		Live auction event stream
// @Description	Upgrades to a websocket carrying init/joinRoom/leaveRoom inbound and confirmation/ack/newBid outbound frames
// @Tags			events
// @Success		101	{string}	string	"Switching protocols"
// @Router			/ws [get]
func (server *Server) serveWebSocket(c *gin.Context) {
	conn, err := server.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := server.registry.Register(conn)
	log.Info().Str("connection_id", client.ID).Msg("client connected")

	go client.WritePump()
	client.Enqueue(event.ConfirmationMessage())

	client.ReadPump(func(msg event.InboundMessage) {
		server.handleClientEvent(client, msg)
	})

	server.registry.Unregister(client.ID)
	log.Info().Str("connection_id", client.ID).Msg("client disconnected")
}

func (server *Server) handleClientEvent(client *event.Client, msg event.InboundMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), storeOpTimeout)
	defer cancel()

	switch msg.Event {
	case event.EventInit:
		if err := server.membership.OnIdentify(ctx, client.ID, msg.UserID); err != nil {
			log.Err(err).Str("connection_id", client.ID).Str("user_id", msg.UserID).Msg("identify failed")
		}

	case event.EventJoinRoom:
		ack := server.membership.Join(ctx, client.ID, msg.AuctionItemID)
		client.Enqueue(event.AckMessage(event.EventJoinRoom, msg.AuctionItemID, ack))

	case event.EventLeaveRoom:
		server.registry.Leave(client.ID, msg.AuctionItemID)
		ack := server.membership.Leave(ctx, client.ID, msg.AuctionItemID)
		client.Enqueue(event.AckMessage(event.EventLeaveRoom, msg.AuctionItemID, ack))

	default:
		log.Warn().Str("connection_id", client.ID).Str("event", msg.Event).Msg("unknown inbound event")
	}
}

package event

// Inbound event names carried in the "event" field of a client frame.
const (
	EventInit      = "init"
	EventJoinRoom  = "joinRoom"
	EventLeaveRoom = "leaveRoom"
)

// Outbound event names carried in the "event" field of a server frame.
const (
	EventConfirmation = "confirmation"
	EventAck          = "ack"
	EventNewBid       = "newBid"
)

// InboundMessage is one frame received from a client. Which payload fields
// are meaningful depends on Event: init carries UserID, joinRoom and
// leaveRoom carry AuctionItemID.
type InboundMessage struct {
	Event         string `json:"event"`
	UserID        string `json:"userId,omitempty"`
	AuctionItemID string `json:"auctionItemId,omitempty"`
}

// BidEvent is the payload of a newBid frame, built from an accepted bid.
type BidEvent struct {
	AuctionItemID string  `json:"auctionItemId"`
	Amount        int64   `json:"amount"`
	ItemName      *string `json:"itemName,omitempty"`
	UserID        *string `json:"userId,omitempty"`
}

// Ack reports the outcome of a joinRoom or leaveRoom request back to the
// requesting client. It is the only channel for surfacing store failures
// across the socket boundary.
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AckPayload correlates an Ack with the request it answers.
type AckPayload struct {
	For           string `json:"for"`
	AuctionItemID string `json:"auctionItemId"`
	Success       bool   `json:"success"`
	Message       string `json:"message"`
}

// OutboundMessage is one frame sent to a client. Data is set for newBid
// frames, Ack for ack frames; confirmation has no payload.
type OutboundMessage struct {
	Event string      `json:"event"`
	Data  *BidEvent   `json:"data,omitempty"`
	Ack   *AckPayload `json:"ack,omitempty"`
}

// ConfirmationMessage signals the channel is ready to receive init.
func ConfirmationMessage() OutboundMessage {
	return OutboundMessage{Event: EventConfirmation}
}

// NewBidMessage wraps a bid event for broadcast to the item's topic.
func NewBidMessage(bid BidEvent) OutboundMessage {
	return OutboundMessage{Event: EventNewBid, Data: &bid}
}

// AckMessage answers the request named by forEvent for one auction item.
func AckMessage(forEvent, auctionItemID string, ack Ack) OutboundMessage {
	return OutboundMessage{
		Event: EventAck,
		Ack: &AckPayload{
			For:           forEvent,
			AuctionItemID: auctionItemID,
			Success:       ack.Success,
			Message:       ack.Message,
		},
	}
}

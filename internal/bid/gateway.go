package bid

import (
	"context"
	"fmt"

	"github.com/hnamzia/silent-auction-BE/internal/db"
	"github.com/hnamzia/silent-auction-BE/internal/event"
	"github.com/rs/zerolog/log"
)

// Gateway turns an already-validated bid into a persisted row and a newBid
// broadcast to the item's watchers. It does not retry failed persistence;
// retry policy belongs to the HTTP layer in front of it.
type Gateway struct {
	store      db.Store
	dispatcher *event.Dispatcher
}

func NewGateway(store db.Store, dispatcher *event.Dispatcher) *Gateway {
	return &Gateway{
		store:      store,
		dispatcher: dispatcher,
	}
}

type SubmitBidParams struct {
	UserID        string
	AuctionItemID string
	Amount        int64
}

type SubmitBidResult struct {
	ItemName *string
}

// SubmitBid persists the bid and, only on success, publishes the bid event
// to the auction item's topic. On persistence failure no broadcast occurs
// and the error carries the underlying cause.
func (g *Gateway) SubmitBid(ctx context.Context, arg SubmitBidParams) (SubmitBidResult, error) {
	persisted, err := g.store.CreateBid(ctx, db.CreateBidParams{
		UserID:        arg.UserID,
		AuctionItemID: arg.AuctionItemID,
		Amount:        arg.Amount,
	})
	if err != nil {
		return SubmitBidResult{}, fmt.Errorf("failed to create bid: %w", err)
	}

	userID := arg.UserID
	g.dispatcher.Publish(arg.AuctionItemID, event.NewBidMessage(event.BidEvent{
		AuctionItemID: arg.AuctionItemID,
		Amount:        arg.Amount,
		ItemName:      persisted.ItemName,
		UserID:        &userID,
	}))

	log.Info().
		Str("auction_item_id", arg.AuctionItemID).
		Str("bidder_id", arg.UserID).
		Int64("amount", arg.Amount).
		Msg("bid placed successfully")

	return SubmitBidResult{ItemName: persisted.ItemName}, nil
}

package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type CreateBidParams struct {
	UserID        string `json:"user_id"`
	AuctionItemID string `json:"auction_item_id"`
	Amount        int64  `json:"amount"`
}

const createBid = `
INSERT INTO bids (id, user_id, auction_item_id, amount)
VALUES ($1, $2, $3, $4)
RETURNING created_at
`

const getAuctionItemName = `
SELECT name FROM auction_items WHERE id = $1
`

// CreateBid inserts the bid and resolves the item's display name for the
// broadcast payload. A failed name lookup does not fail the bid: the name is
// optional in the outgoing event.
func (store *SQLStore) CreateBid(ctx context.Context, arg CreateBidParams) (Bid, error) {
	bid := Bid{
		ID:            uuid.New(),
		UserID:        arg.UserID,
		AuctionItemID: arg.AuctionItemID,
		Amount:        arg.Amount,
	}

	err := store.connPool.QueryRow(ctx, createBid, bid.ID, arg.UserID, arg.AuctionItemID, arg.Amount).Scan(&bid.CreatedAt)
	if err != nil {
		return Bid{}, err
	}

	var name string
	if err = store.connPool.QueryRow(ctx, getAuctionItemName, arg.AuctionItemID).Scan(&name); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			log.Warn().Str("auction_item_id", arg.AuctionItemID).Msg("auction item has no name row")
		} else {
			log.Warn().Err(err).Str("auction_item_id", arg.AuctionItemID).Msg("failed to resolve auction item name")
		}
		return bid, nil
	}
	bid.ItemName = &name

	return bid, nil
}

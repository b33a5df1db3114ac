package db

import (
	"time"

	"github.com/google/uuid"
)

// UserWatch is the projection of a watches row returned by GetUserWatches.
// The full row carries (user_id, auction_item_id, active) with at most one
// row per (user, item) pair.
type UserWatch struct {
	AuctionItemID string `json:"auction_item_id"`
}

// Bid is a persisted bid plus the display name of the item it was placed on.
// ItemName is nil when the name lookup fails; the bid itself still stands.
type Bid struct {
	ID            uuid.UUID `json:"id"`
	UserID        string    `json:"user_id"`
	AuctionItemID string    `json:"auction_item_id"`
	Amount        int64     `json:"amount"`
	ItemName      *string   `json:"item_name"`
	CreatedAt     time.Time `json:"created_at"`
}

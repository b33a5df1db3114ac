package db

import (
	"context"
)

const getUserWatches = `
SELECT auction_item_id FROM watches
WHERE user_id = $1 AND active = true
`

func (store *SQLStore) GetUserWatches(ctx context.Context, userID string) ([]UserWatch, error) {
	rows, err := store.connPool.Query(ctx, getUserWatches, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var watches []UserWatch
	for rows.Next() {
		var w UserWatch
		if err = rows.Scan(&w.AuctionItemID); err != nil {
			return nil, err
		}
		watches = append(watches, w)
	}
	return watches, rows.Err()
}

type SetWatchParams struct {
	UserID        string `json:"user_id"`
	AuctionItemID string `json:"auction_item_id"`
}

const setWatch = `
INSERT INTO watches (user_id, auction_item_id, active)
VALUES ($1, $2, true)
ON CONFLICT ON CONSTRAINT watches_un
DO UPDATE SET active = true
`

func (store *SQLStore) SetWatch(ctx context.Context, arg SetWatchParams) error {
	_, err := store.connPool.Exec(ctx, setWatch, arg.UserID, arg.AuctionItemID)
	return err
}

type UnwatchParams struct {
	UserID        string `json:"user_id"`
	AuctionItemID string `json:"auction_item_id"`
}

const unwatch = `
UPDATE watches SET active = false
WHERE user_id = $1 AND auction_item_id = $2
`

// Unwatch is idempotent: deactivating a watch that does not exist or is
// already inactive updates nothing and is not an error.
func (store *SQLStore) Unwatch(ctx context.Context, arg UnwatchParams) error {
	_, err := store.connPool.Exec(ctx, unwatch, arg.UserID, arg.AuctionItemID)
	return err
}

package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store provides all functions to execute db queries.
type Store interface {
	// GetUserWatches returns the auction items the user actively watches.
	GetUserWatches(ctx context.Context, userID string) ([]UserWatch, error)
	// SetWatch upserts a watch as active, reactivating a deactivated one.
	SetWatch(ctx context.Context, arg SetWatchParams) error
	// Unwatch deactivates a watch. Rows are never deleted.
	Unwatch(ctx context.Context, arg UnwatchParams) error
	// CreateBid persists an already-validated bid and resolves the item name.
	CreateBid(ctx context.Context, arg CreateBidParams) (Bid, error)
	// Ping checks if the database connection is alive.
	Ping(ctx context.Context) error
}

type SQLStore struct {
	connPool *pgxpool.Pool
}

// NewStore creates a new Store.
func NewStore(db *pgxpool.Pool) Store {
	return &SQLStore{connPool: db}
}

func (store *SQLStore) Ping(ctx context.Context) error {
	return store.connPool.Ping(ctx)
}

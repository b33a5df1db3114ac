package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/hnamzia/silent-auction-BE/internal/db"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestCreateBidUnknownItem(t *testing.T) {
	store := &fakeStore{
		createBidFunc: func(ctx context.Context, arg db.CreateBidParams) (db.Bid, error) {
			return db.Bid{}, fmt.Errorf("exec failed: %w", &pgconn.PgError{
				Code:           db.ForeignKeyViolationCode,
				ConstraintName: "bids_auction_item_id_fkey",
			})
		},
	}
	_, ts := newTestServer(t, store)

	resp := postBid(t, ts, "no-such-item", "u2", 50)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateBidStoreFailure(t *testing.T) {
	store := &fakeStore{
		createBidFunc: func(ctx context.Context, arg db.CreateBidParams) (db.Bid, error) {
			return db.Bid{}, fmt.Errorf("dial tcp: connection refused")
		},
	}
	_, ts := newTestServer(t, store)

	resp := postBid(t, ts, "item-1", "u2", 50)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestCreateBidValidation(t *testing.T) {
	store := &fakeStore{}
	_, ts := newTestServer(t, store)

	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
	}{
		{name: "missing_user", body: map[string]any{"amount": 50}, wantStatus: http.StatusBadRequest},
		{name: "zero_amount", body: map[string]any{"user_id": "u2", "amount": 0}, wantStatus: http.StatusBadRequest},
		{name: "negative_amount", body: map[string]any{"user_id": "u2", "amount": -5}, wantStatus: http.StatusBadRequest},
		{name: "valid", body: map[string]any{"user_id": "u2", "amount": 50}, wantStatus: http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body, err := json.Marshal(tc.body)
			require.NoError(t, err)
			resp, err := http.Post(ts.URL+"/v1/auction-items/item-1/bids", "application/json", bytes.NewReader(body))
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}

package watch

import (
	"context"
	"fmt"

	"github.com/hnamzia/silent-auction-BE/internal/db"
	"github.com/hnamzia/silent-auction-BE/internal/event"
	"github.com/rs/zerolog/log"
)

// MembershipManager keeps in-memory topic membership consistent with the
// persisted watch intent in the store. It is the single mutation path for
// watch rows; the registry stays the single mutation path for the topic index.
type MembershipManager struct {
	registry *event.Registry
	store    db.Store

	// When set, join and leave from a connection that never announced an
	// identity fail explicitly instead of succeeding without persistence.
	requireIdentity bool
}

func NewMembershipManager(registry *event.Registry, store db.Store, requireIdentity bool) *MembershipManager {
	return &MembershipManager{
		registry:        registry,
		store:           store,
		requireIdentity: requireIdentity,
	}
}

// OnIdentify sets the user on the connection and replays their persisted
// active watches as topic joins. If the store read fails, no joins are
// applied and the connection keeps empty topics; the caller may retry the
// whole identify step.
func (m *MembershipManager) OnIdentify(ctx context.Context, connID, userID string) error {
	m.registry.Identify(connID, userID)

	watches, err := m.store.GetUserWatches(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load watches for user %s: %w", userID, err)
	}

	for _, w := range watches {
		m.registry.Join(connID, w.AuctionItemID)
	}

	log.Info().
		Str("connection_id", connID).
		Str("user_id", userID).
		Int("watches", len(watches)).
		Msg("user identified, watches replayed")

	return nil
}

// Join adds the connection to the topic, then durably upserts the watch.
// The in-memory join happens first and is kept even when the upsert fails;
// the ack carries the persistence outcome. An unidentified connection joins
// in memory only and still gets a success ack, unless requireIdentity is on.
func (m *MembershipManager) Join(ctx context.Context, connID, auctionItemID string) event.Ack {
	userID := m.registry.UserOf(connID)
	if userID == "" && m.requireIdentity {
		return event.Ack{Success: false, Message: "init required before joinRoom"}
	}

	m.registry.Join(connID, auctionItemID)

	if userID == "" {
		return event.Ack{Success: true, Message: "ok"}
	}

	err := m.store.SetWatch(ctx, db.SetWatchParams{
		UserID:        userID,
		AuctionItemID: auctionItemID,
	})
	if err != nil {
		log.Err(err).Str("user_id", userID).Str("auction_item_id", auctionItemID).Msg("failed to persist watch")
		return event.Ack{Success: false, Message: fmt.Sprintf("joinRoom failed: %v", err)}
	}

	return event.Ack{Success: true, Message: "ok"}
}

// Leave deactivates the persisted watch. The in-memory topic removal is the
// caller's separate, unconditional step via the registry. Leaving a topic
// never joined is not an error.
func (m *MembershipManager) Leave(ctx context.Context, connID, auctionItemID string) event.Ack {
	userID := m.registry.UserOf(connID)
	if userID == "" {
		if m.requireIdentity {
			return event.Ack{Success: false, Message: "init required before leaveRoom"}
		}
		return event.Ack{Success: true, Message: "ok"}
	}

	err := m.store.Unwatch(ctx, db.UnwatchParams{
		UserID:        userID,
		AuctionItemID: auctionItemID,
	})
	if err != nil {
		log.Err(err).Str("user_id", userID).Str("auction_item_id", auctionItemID).Msg("failed to deactivate watch")
		return event.Ack{Success: false, Message: fmt.Sprintf("leaveRoom failed: %v", err)}
	}

	return event.Ack{Success: true, Message: "ok"}
}

package event

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func drainOne(t *testing.T, c *Client) OutboundMessage {
	t.Helper()
	select {
	case msg := <-c.send:
		return msg
	default:
		t.Fatal("expected a queued frame")
		return OutboundMessage{}
	}
}

func TestPublishScopedToTopicMembers(t *testing.T) {
	r := NewRegistry()
	d := NewDispatcher(r)

	watcher1 := r.Register(nil)
	watcher2 := r.Register(nil)
	bystander := r.Register(nil)

	r.Join(watcher1.ID, "item-42")
	r.Join(watcher2.ID, "item-42")
	r.Join(bystander.ID, "item-7")

	name := "Painting"
	userID := "u2"
	d.Publish("item-42", NewBidMessage(BidEvent{
		AuctionItemID: "item-42",
		Amount:        50,
		ItemName:      &name,
		UserID:        &userID,
	}))

	for _, watcher := range []*Client{watcher1, watcher2} {
		msg := drainOne(t, watcher)
		require.Equal(t, EventNewBid, msg.Event)
		require.NotNil(t, msg.Data)
		require.Equal(t, "item-42", msg.Data.AuctionItemID)
		require.Equal(t, int64(50), msg.Data.Amount)
		require.Equal(t, "u2", *msg.Data.UserID)
	}

	require.Empty(t, bystander.send)
}

func TestPublishToEmptyTopic(t *testing.T) {
	r := NewRegistry()
	d := NewDispatcher(r)

	d.Publish("item-1", NewBidMessage(BidEvent{AuctionItemID: "item-1", Amount: 10}))
}

func TestPublishSkipsUnregisteredConnection(t *testing.T) {
	r := NewRegistry()
	d := NewDispatcher(r)

	gone := r.Register(nil)
	alive := r.Register(nil)
	r.Join(gone.ID, "item-1")
	r.Join(alive.ID, "item-1")
	r.Unregister(gone.ID)

	d.Publish("item-1", NewBidMessage(BidEvent{AuctionItemID: "item-1", Amount: 10}))

	require.Empty(t, gone.send)
	require.Len(t, alive.send, 1)
}

func TestPublishIsolatesFullSubscriber(t *testing.T) {
	r := NewRegistry()
	d := NewDispatcher(r)

	stuck := r.Register(nil)
	healthy := r.Register(nil)
	r.Join(stuck.ID, "item-1")
	r.Join(healthy.ID, "item-1")

	for i := 0; i < sendBufferSize; i++ {
		require.True(t, stuck.Enqueue(ConfirmationMessage()))
	}

	d.Publish("item-1", NewBidMessage(BidEvent{AuctionItemID: "item-1", Amount: 10}))

	// The stuck subscriber dropped the frame, the healthy one got it.
	require.Len(t, stuck.send, sendBufferSize)
	msg := drainOne(t, healthy)
	require.Equal(t, EventNewBid, msg.Event)
}

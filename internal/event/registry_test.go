package event

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func memberIDs(clients []*Client) []string {
	ids := make([]string, 0, len(clients))
	for _, c := range clients {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestRegistryRegisterStartsEmpty(t *testing.T) {
	r := NewRegistry()

	client := r.Register(nil)
	require.NotEmpty(t, client.ID)
	require.Equal(t, "", r.UserOf(client.ID))
	require.Empty(t, r.MembersOf("item-1"))
}

func TestRegistryIdentifyLastWriterWins(t *testing.T) {
	r := NewRegistry()
	client := r.Register(nil)

	r.Identify(client.ID, "u1")
	require.Equal(t, "u1", r.UserOf(client.ID))

	r.Identify(client.ID, "u2")
	require.Equal(t, "u2", r.UserOf(client.ID))
}

func TestRegistryJoinLeave(t *testing.T) {
	r := NewRegistry()
	c1 := r.Register(nil)
	c2 := r.Register(nil)

	r.Join(c1.ID, "item-1")
	r.Join(c2.ID, "item-1")
	r.Join(c1.ID, "item-2")

	require.ElementsMatch(t, []string{c1.ID, c2.ID}, memberIDs(r.MembersOf("item-1")))
	require.ElementsMatch(t, []string{c1.ID}, memberIDs(r.MembersOf("item-2")))

	// Joining again changes nothing.
	r.Join(c1.ID, "item-1")
	require.Len(t, r.MembersOf("item-1"), 2)

	r.Leave(c1.ID, "item-1")
	require.ElementsMatch(t, []string{c2.ID}, memberIDs(r.MembersOf("item-1")))

	// Leaving a topic not joined is a no-op.
	r.Leave(c1.ID, "item-1")
	require.Len(t, r.MembersOf("item-1"), 1)
}

func TestRegistryPrunesEmptyTopics(t *testing.T) {
	r := NewRegistry()
	client := r.Register(nil)

	r.Join(client.ID, "item-1")
	r.Leave(client.ID, "item-1")

	r.mu.Lock()
	_, ok := r.topics["item-1"]
	r.mu.Unlock()
	require.False(t, ok, "empty topic entry should be pruned")
}

func TestRegistryUnregisterEvictsEverywhere(t *testing.T) {
	r := NewRegistry()
	c1 := r.Register(nil)
	c2 := r.Register(nil)

	r.Join(c1.ID, "item-1")
	r.Join(c1.ID, "item-2")
	r.Join(c2.ID, "item-1")

	r.Unregister(c1.ID)

	require.ElementsMatch(t, []string{c2.ID}, memberIDs(r.MembersOf("item-1")))
	require.Empty(t, r.MembersOf("item-2"))
	require.Equal(t, "", r.UserOf(c1.ID))

	// The gone client never accepts frames again.
	require.False(t, c1.Enqueue(ConfirmationMessage()))

	// A second unregister is harmless.
	r.Unregister(c1.ID)
}

func TestRegistryJoinUnknownConnection(t *testing.T) {
	r := NewRegistry()

	r.Join("nope", "item-1")
	r.Leave("nope", "item-1")
	r.Identify("nope", "u1")

	require.Empty(t, r.MembersOf("item-1"))
}

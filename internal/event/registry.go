package event

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Registry tracks every live connection and which auction-item topics each
// one receives events for. The topics index is kept as the exact inverse of
// the per-client topic sets; both views change only under the registry lock.
type Registry struct {
	mu      sync.Mutex
	clients map[string]*Client
	topics  map[string]map[string]*Client
}

func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[string]*Client),
		topics:  make(map[string]map[string]*Client),
	}
}

// Register admits a new connection with no identity and no topics.
func (r *Registry) Register(conn *websocket.Conn) *Client {
	client := &Client{
		ID:     uuid.NewString(),
		conn:   conn,
		send:   make(chan OutboundMessage, sendBufferSize),
		done:   make(chan struct{}),
		topics: make(map[string]struct{}),
	}

	r.mu.Lock()
	r.clients[client.ID] = client
	r.mu.Unlock()

	return client
}

// Identify sets the user on a connection. Calling again overwrites; the last
// writer wins.
func (r *Registry) Identify(connID, userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if client, ok := r.clients[connID]; ok {
		client.userID = userID
	}
}

// UserOf returns the identified user of a connection, or "" if the
// connection is unknown or has not announced an identity yet.
func (r *Registry) UserOf(connID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if client, ok := r.clients[connID]; ok {
		return client.userID
	}
	return ""
}

// Join adds the topic to the connection's set and the connection to the
// topic index. Joining a topic already joined is a no-op.
func (r *Registry) Join(connID, topic string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, ok := r.clients[connID]
	if !ok {
		return
	}

	client.topics[topic] = struct{}{}
	if _, ok := r.topics[topic]; !ok {
		r.topics[topic] = make(map[string]*Client)
	}
	r.topics[topic][connID] = client

	log.Debug().Str("connection_id", connID).Str("topic", topic).Int("members", len(r.topics[topic])).Msg("client joined topic")
}

// Leave removes the topic from the connection's set and the connection from
// the topic index. Leaving a topic not joined is a no-op.
func (r *Registry) Leave(connID, topic string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, ok := r.clients[connID]
	if !ok {
		return
	}

	delete(client.topics, topic)
	r.evictFromTopic(connID, topic)
}

// Unregister removes the connection and evicts it from every topic it
// belonged to. Safe to call concurrently with an in-flight join or leave;
// the durable write completes on its own while the in-memory state is gone.
func (r *Registry) Unregister(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, ok := r.clients[connID]
	if !ok {
		return
	}

	for topic := range client.topics {
		r.evictFromTopic(connID, topic)
	}
	delete(r.clients, connID)
	close(client.done)
}

// MembersOf returns the current subscriber set of a topic. The slice is a
// snapshot taken under the registry lock.
func (r *Registry) MembersOf(topic string) []*Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	members := make([]*Client, 0, len(r.topics[topic]))
	for _, client := range r.topics[topic] {
		members = append(members, client)
	}
	return members
}

// evictFromTopic must be called with the lock held. Empty topic entries are
// pruned so the index only holds topics with at least one member.
func (r *Registry) evictFromTopic(connID, topic string) {
	members, ok := r.topics[topic]
	if !ok {
		return
	}
	delete(members, connID)
	if len(members) == 0 {
		delete(r.topics, topic)
	}
}

package event

import (
	"github.com/rs/zerolog/log"
)

// Dispatcher fans an outbound frame out to every current member of a topic.
// Delivery is fire and forget: a slow or gone subscriber is skipped and
// logged, never blocking the publish or the other subscribers.
type Dispatcher struct {
	registry *Registry
}

func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Publish delivers msg to the members of topic at call time.
func (d *Dispatcher) Publish(topic string, msg OutboundMessage) {
	members := d.registry.MembersOf(topic)

	delivered := 0
	for _, client := range members {
		if client.Enqueue(msg) {
			delivered++
			continue
		}
		log.Warn().
			Str("connection_id", client.ID).
			Str("topic", topic).
			Str("event", msg.Event).
			Msg("subscriber buffer full, event dropped")
	}

	log.Info().
		Str("topic", topic).
		Str("event", msg.Event).
		Int("members", len(members)).
		Int("delivered", delivered).
		Msg("event published")
}

// Package notifier fans mutation events out to connected clients. Delivery is
// best-effort and at-least-once; there is no replay, clients that reconnect
// re-fetch full state over the query API.
package notifier

import "context"

type Topic string

// Broadcast topics go to every connection; clients filter by relevance.
const (
	TopicOrderUpdate    Topic = "order_update"
	TopicProductUpdate  Topic = "product_update"
	TopicProductDelete  Topic = "product_delete"
	TopicUserUpdate     Topic = "user_update"
	TopicUserDelete     Topic = "user_delete"
	TopicColonyUpdate   Topic = "colony_update"
	TopicColonyDelete   Topic = "colony_delete"
	TopicSettingsUpdate Topic = "settings_update"

	// TopicNewMessage is room-scoped: only participants of an order's
	// conversation room receive it.
	TopicNewMessage Topic = "new_message"
)

// Event is the wire envelope. Payload is always the full current entity,
// never a diff.
type Event struct {
	Topic   Topic  `json:"topic"`
	Room    string `json:"room,omitempty"`
	Payload any    `json:"payload"`
}

type Bus interface {
	// Broadcast publishes to every connected client.
	Broadcast(ctx context.Context, topic Topic, payload any) error
	// Room publishes to the members of one room only. Membership is
	// connection state: clients join explicitly and must rejoin after a
	// reconnect.
	Room(ctx context.Context, room string, topic Topic, payload any) error
	Close() error
}

// OrderRoom names the conversation room of an order.
func OrderRoom(orderID string) string {
	return "order:" + orderID
}

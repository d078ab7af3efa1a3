package notifier

import (
	"context"
	"sync"
)

// MemoryBus is an in-process Bus for tests and single-node runs. Each
// subscriber owns one buffered channel, so delivery order per subscriber
// follows publish order; full buffers drop rather than block a publisher.
type MemoryBus struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}
}

type Subscription struct {
	C chan Event

	bus   *MemoryBus
	mu    sync.RWMutex
	rooms map[string]struct{}
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: make(map[*Subscription]struct{})}
}

func (b *MemoryBus) Subscribe(buffer int) *Subscription {
	sub := &Subscription{
		C:     make(chan Event, buffer),
		bus:   b,
		rooms: make(map[string]struct{}),
	}

	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	return sub
}

// Join adds the subscription to a room. Membership lives only on the
// subscription; a reconnecting client gets a fresh one and must rejoin.
func (s *Subscription) Join(room string) {
	s.mu.Lock()
	s.rooms[room] = struct{}{}
	s.mu.Unlock()
}

func (s *Subscription) Leave(room string) {
	s.mu.Lock()
	delete(s.rooms, room)
	s.mu.Unlock()
}

func (s *Subscription) in(room string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rooms[room]
	return ok
}

func (s *Subscription) Unsubscribe() {
	s.bus.mu.Lock()
	if _, ok := s.bus.subs[s]; ok {
		delete(s.bus.subs, s)
		close(s.C)
	}
	s.bus.mu.Unlock()
}

func (b *MemoryBus) Broadcast(_ context.Context, topic Topic, payload any) error {
	b.deliver(Event{Topic: topic, Payload: payload}, nil)
	return nil
}

func (b *MemoryBus) Room(_ context.Context, room string, topic Topic, payload any) error {
	b.deliver(Event{Topic: topic, Room: room, Payload: payload}, func(s *Subscription) bool {
		return s.in(room)
	})
	return nil
}

func (b *MemoryBus) deliver(ev Event, match func(*Subscription) bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs {
		if match != nil && !match(sub) {
			continue
		}
		select {
		case sub.C <- ev:
		default:
			// Slow consumer; best-effort delivery drops instead of blocking.
		}
	}
}

func (b *MemoryBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for sub := range b.subs {
		delete(b.subs, sub)
		close(sub.C)
	}
	return nil
}

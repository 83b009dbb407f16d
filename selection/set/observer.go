package set

import (
	"slices"

	"github.com/hnimtadd/gridsel/selection/area"
)

// Change describes one committed mutation of a Set.
type Change struct {
	Added   []area.Area
	Removed []area.Area
	// Cleared is set when every area was dropped at once.
	Cleared bool
}

// Listener is notified after each committed mutation, in subscription order.
type Listener func(Change)

type subscriber struct {
	id       uint64
	listener Listener
}

// registry owns the listeners of one Set. Subscribers only hold a
// Subscription and drop out through Cancel.
type registry struct {
	nextID      uint64
	subscribers []subscriber
}

// Subscription is the handle returned by Set.Subscribe.
type Subscription struct {
	registry *registry
	id       uint64
}

func (r *registry) add(l Listener) *Subscription {
	r.nextID++
	r.subscribers = append(r.subscribers, subscriber{id: r.nextID, listener: l})
	return &Subscription{registry: r, id: r.nextID}
}

func (r *registry) notify(c Change) {
	// Listeners may cancel themselves while being notified.
	for _, sub := range slices.Clone(r.subscribers) {
		sub.listener(c)
	}
}

// Cancel stops further notifications. Calling it again is a no-op.
func (s *Subscription) Cancel() {
	if s.registry == nil {
		return
	}
	s.registry.subscribers = slices.DeleteFunc(s.registry.subscribers,
		func(sub subscriber) bool { return sub.id == s.id })
	s.registry = nil
}

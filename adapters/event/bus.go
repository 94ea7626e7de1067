// Package event carries change notifications between the store and its
// subscribers: an in-process bus for same-process listeners, a Redis
// pub/sub bus for other processes sharing the same store file, and a Kafka
// producer for downstream consumers such as the snapshot publisher worker.
package event

import "sync"

// Bus fans a topic out to its subscribers. Publish carries no payload:
// subscribers are expected to re-read the store, which is cheap.
type Bus interface {
	Publish(topic string)
	Subscribe(topic string, fn func()) (unsubscribe func())
}

type InprocBus struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]func()
}

func NewInprocBus() *InprocBus {
	return &InprocBus{subs: make(map[string]map[int]func())}
}

func (b *InprocBus) Publish(topic string) {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs[topic]))
	for _, fn := range b.subs[topic] {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	// Callbacks run outside the lock so a subscriber may save again.
	for _, fn := range fns {
		fn()
	}
}

func (b *InprocBus) Subscribe(topic string, fn func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]func())
	}
	id := b.nextID
	b.nextID++
	b.subs[topic][id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}
}

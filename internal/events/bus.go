// Package events is a small typed publish/subscribe bus.
package events

import (
	"context"
	"sync"
)

// Bus delivers values of type T to subscribers synchronously, in
// subscription order. Subscriptions are scoped to a context.
type Bus[T any] struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscription[T]
}

type subscription[T any] struct {
	id uint64
	fn func(T)
}

func NewBus[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Subscribe registers fn until ctx is done or the returned func is called,
// whichever comes first. The returned func is safe to call more than once.
func (b *Bus[T]) Subscribe(ctx context.Context, fn func(T)) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription[T]{id: id, fn: fn})
	b.mu.Unlock()

	remove := func() { b.remove(id) }
	stop := context.AfterFunc(ctx, remove)

	return func() {
		stop()
		remove()
	}
}

// Publish calls every current subscriber with v.
func (b *Bus[T]) Publish(v T) {
	b.mu.RLock()
	subs := make([]subscription[T], len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	for _, s := range subs {
		s.fn(v)
	}
}

// Len returns the number of live subscriptions.
func (b *Bus[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

func (b *Bus[T]) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/optifit/web/internal/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishInOrder(t *testing.T) {
	bus := NewBus[int]()
	var got []string

	bus.Subscribe(context.Background(), func(v int) { got = append(got, "a") })
	bus.Subscribe(context.Background(), func(v int) { got = append(got, "b") })

	bus.Publish(1)

	assert.Equal(t, []string{"a", "b"}, got)
}

func TestBus_UnsubscribeOnContextDone(t *testing.T) {
	bus := NewBus[string]()
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	bus.Subscribe(ctx, func(string) { calls++ })
	require.Equal(t, 1, bus.Len())

	bus.Publish("first")
	cancel()

	require.Eventually(t, func() bool { return bus.Len() == 0 }, time.Second, 5*time.Millisecond)
	bus.Publish("second")
	assert.Equal(t, 1, calls)
}

func TestBus_UnsubscribeFunc(t *testing.T) {
	bus := NewBus[string]()

	unsubscribe := bus.Subscribe(context.Background(), func(string) {})
	other := bus.Subscribe(context.Background(), func(string) {})
	require.Equal(t, 2, bus.Len())

	unsubscribe()
	unsubscribe()
	assert.Equal(t, 1, bus.Len())

	other()
	assert.Equal(t, 0, bus.Len())
}

func TestBus_SubscriberMayUnsubscribeDuringPublish(t *testing.T) {
	bus := NewBus[int]()

	var unsubscribe func()
	calls := 0
	unsubscribe = bus.Subscribe(context.Background(), func(int) {
		calls++
		unsubscribe()
	})

	bus.Publish(1)
	bus.Publish(2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, bus.Len())
}

func TestBus_ConcurrentUse(t *testing.T) {
	bus := NewPlanBus()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			ctx, cancel := context.WithCancel(context.Background())
			bus.Subscribe(ctx, func(PlanUpdated) {})
			cancel()
		}()
		go func() {
			defer wg.Done()
			bus.Publish(PlanUpdated{UserID: "u1", Kind: plan.KindWorkout})
		}()
	}
	wg.Wait()

	assert.Eventually(t, func() bool { return bus.Len() == 0 }, time.Second, 5*time.Millisecond)
}

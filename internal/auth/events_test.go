package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_DeliversToSubscriber(t *testing.T) {
	broker := NewBroker()

	events, unsubscribe := broker.Subscribe()
	defer unsubscribe()

	published := Event{Type: EventSignedIn, UserID: uuid.New(), Email: "user@example.com", At: time.Now()}
	broker.Publish(published)

	select {
	case got := <-events:
		assert.Equal(t, published, got)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestBroker_PublishWithoutSubscribersDoesNotBlock(t *testing.T) {
	broker := NewBroker()

	done := make(chan struct{})
	go func() {
		broker.Publish(Event{Type: EventSignedOut})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked with no subscribers")
	}
}

func TestBroker_UnsubscribeClosesChannel(t *testing.T) {
	broker := NewBroker()

	events, unsubscribe := broker.Subscribe()
	unsubscribe()

	_, open := <-events
	require.False(t, open)

	// Повторная отписка безопасна
	unsubscribe()
}

func TestBroker_SlowSubscriberDropsEvents(t *testing.T) {
	broker := NewBroker()

	events, unsubscribe := broker.Subscribe()
	defer unsubscribe()

	// Переполняем буфер: лишние события молча теряются
	for i := 0; i < 32; i++ {
		broker.Publish(Event{Type: EventSignedIn})
	}

	received := 0
	for {
		select {
		case <-events:
			received++
		default:
			assert.Equal(t, 16, received)
			return
		}
	}
}

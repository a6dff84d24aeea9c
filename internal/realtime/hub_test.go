package realtime

import (
	"sync"
	"testing"
	"time"

	"siparis-backend/internal/models"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	hub := NewHub()
	a := hub.Subscribe()
	b := hub.Subscribe()
	defer a.Close()
	defer b.Close()

	hub.Publish(Event{Type: EventOrderCreated, OrderID: 7})

	for _, sub := range []*Subscription{a, b} {
		select {
		case ev := <-sub.C:
			if ev.Type != EventOrderCreated || ev.OrderID != 7 {
				t.Errorf("event = %+v, want order_created/7", ev)
			}
		case <-time.After(time.Second):
			t.Fatal("event alınamadı")
		}
	}
}

func TestNoEventAfterClose(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	sub.Close()

	hub.Publish(Event{Type: EventOrderCreated, OrderID: 1})

	// Kapalı abonelik için kanal da kapalıdır; event gelmez
	if ev, ok := <-sub.C; ok {
		t.Errorf("closed subscription received %+v", ev)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	sub.Close()
	sub.Close() // ikinci çağrı panic'lememeli

	hub.Publish(Event{Type: EventOrderDeleted, OrderID: 2})
}

func TestConcurrentPublishAndClose(t *testing.T) {
	hub := NewHub()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		sub := hub.Subscribe()
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Yayın sürerken kapat; kapalı kanala yazma olmamalı
			sub.Close()
		}()
	}

	for i := 0; i < 100; i++ {
		hub.Publish(Event{Type: EventOrderUpdated, OrderID: uint(i), Order: &models.Order{ID: uint(i)}})
	}
	wg.Wait()
}

func TestSlowSubscriberDoesNotBlockPublish(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer sub.Close()

	// Tamponun üstünde yayın yap; Publish bloklamamalı
	for i := 0; i < subscriptionBuffer+10; i++ {
		hub.Publish(Event{Type: EventOrderCreated, OrderID: uint(i)})
	}

	if hub.Dropped() == 0 {
		t.Error("dolu tamponda düşen event sayısı 0 olmamalı")
	}
}

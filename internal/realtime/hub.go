package realtime

import (
	"sync"

	"siparis-backend/internal/models"
)

type EventType string

const (
	EventOrderCreated EventType = "order_created"
	EventOrderUpdated EventType = "order_updated"
	EventOrderDeleted EventType = "order_deleted"
)

type Event struct {
	Type    EventType     `json:"type"`
	OrderID uint          `json:"order_id"`
	Order   *models.Order `json:"order,omitempty"` // delete'te boş
}

// Subscription: tek bir izleyicinin kanalı. Sahibi işi bitince Close çağırmak
// zorundadır; Close tekrarlanabilir ve sonrasında C'ye hiçbir event düşmez.
type Subscription struct {
	C chan Event

	hub  *Hub
	id   uint64
	once sync.Once
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.remove(s.id)
	})
}

// Hub: sipariş olaylarını bağlı tüm personel ekranlarına dağıtır.
// Yavaş bir abone yayını bloklamaz; tamponu dolan abonenin o event'i düşer
// (istemci zaten aktif listeyi yeniden çekerek toparlanır).
type Hub struct {
	mu      sync.Mutex
	subs    map[uint64]*Subscription
	nextID  uint64
	dropped uint64
}

const subscriptionBuffer = 32

func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]*Subscription)}
}

func (h *Hub) Subscribe() *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	sub := &Subscription{
		C:   make(chan Event, subscriptionBuffer),
		hub: h,
		id:  h.nextID,
	}
	h.subs[sub.id] = sub
	return sub
}

// Publish: event'i o anda kayıtlı tüm abonelere iletir. Kanal kapatma ile
// gönderim aynı kilidin altında olduğundan kapalı kanala yazma olmaz;
// Close sonrası abone hiçbir event almaz.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs {
		select {
		case sub.C <- ev:
		default:
			h.dropped++
		}
	}
}

// Dropped: tampon dolduğu için iletilemeyen event sayısı.
func (h *Hub) Dropped() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

func (h *Hub) remove(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sub, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(sub.C)
	}
}

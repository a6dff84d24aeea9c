package cart

import (
	"sync"

	"siparis-backend/internal/models"
)

// Line: sepetteki tek kalem. Fiyat sepete eklendiği andaki menü fiyatıdır.
type Line struct {
	MenuItemID uint
	Name       string
	UnitPrice  float64
	Quantity   int
}

// Cart, tek bir müşteri oturumuna ait bellek içi sepet. Gönderime kadar
// hiçbir yere yazılmaz; Snapshot ile değişmez sipariş kalemlerine çevrilir.
type Cart struct {
	mu    sync.Mutex
	lines []Line // ekleme sırası korunur
}

func New() *Cart {
	return &Cart{}
}

// Add: ürün sepette varsa adedini artırır, yoksa yeni satır açar.
func (c *Cart) Add(item models.MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].MenuItemID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{
		MenuItemID: item.ID,
		Name:       item.Name,
		UnitPrice:  item.Price,
		Quantity:   1,
	})
}

// Remove: adedi bir azaltır, sıfıra inen satırı siler.
func (c *Cart) Remove(menuItemID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].MenuItemID != menuItemID {
			continue
		}
		c.lines[i].Quantity--
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

func (c *Cart) TotalAmount() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return totalOf(c.lines)
}

// Snapshot: sepetin o anki halini sipariş kalemlerine kopyalar.
// Dönen dilim sepetten bağımsızdır; sonraki Add/Remove'lar etkilemez.
func (c *Cart) Snapshot() ([]models.OrderItem, float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.OrderItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, models.OrderItem{
			MenuItemID: l.MenuItemID,
			Name:       l.Name,
			UnitPrice:  l.UnitPrice,
			Quantity:   l.Quantity,
		})
	}
	return items, totalOf(c.lines)
}

func totalOf(lines []Line) float64 {
	var total float64
	for _, l := range lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}

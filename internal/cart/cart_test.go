package cart

import (
	"testing"

	"siparis-backend/internal/models"
)

func menuItem(id uint, name string, price float64) models.MenuItem {
	return models.MenuItem{ID: id, Name: name, Price: price, Category: "test", IsAvailable: true}
}

func TestAddIncrementsQuantity(t *testing.T) {
	c := New()
	noodle := menuItem(1, "牛肉麵", 180)

	c.Add(noodle)
	c.Add(noodle)

	if got := c.TotalItems(); got != 2 {
		t.Errorf("TotalItems = %d, want 2", got)
	}
	if got := c.TotalAmount(); got != 360 {
		t.Errorf("TotalAmount = %v, want 360", got)
	}
}

func TestRemoveDropsLineAtZero(t *testing.T) {
	c := New()
	tea := menuItem(3, "珍珠奶茶", 60)

	c.Add(tea)
	c.Add(tea)
	c.Remove(3)
	if got := c.TotalItems(); got != 1 {
		t.Fatalf("TotalItems after first remove = %d, want 1", got)
	}

	c.Remove(3)
	if got := c.TotalItems(); got != 0 {
		t.Errorf("TotalItems after second remove = %d, want 0", got)
	}
	if got := c.TotalAmount(); got != 0 {
		t.Errorf("TotalAmount after emptying = %v, want 0", got)
	}

	// Olmayan ürünü çıkarmak sessizce no-op olmalı
	c.Remove(99)
}

func TestTotalAmount(t *testing.T) {
	tests := []struct {
		name string
		fill func(c *Cart)
		want float64
	}{
		{
			name: "emptyCart",
			fill: func(c *Cart) {},
			want: 0,
		},
		{
			name: "twoOfOneAndOneOfAnother",
			fill: func(c *Cart) {
				a := menuItem(1, "a", 100)
				b := menuItem(2, "b", 60)
				c.Add(a)
				c.Add(a)
				c.Add(b)
			},
			want: 260,
		},
		{
			name: "clearResetsTotal",
			fill: func(c *Cart) {
				c.Add(menuItem(1, "a", 100))
				c.Clear()
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			tt.fill(c)
			if got := c.TotalAmount(); got != tt.want {
				t.Errorf("TotalAmount = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	c := New()
	a := menuItem(1, "a", 100)
	b := menuItem(2, "b", 60)
	c.Add(a)
	c.Add(a)
	c.Add(b)

	items, total := c.Snapshot()

	if total != 260 {
		t.Errorf("snapshot total = %v, want 260", total)
	}
	if len(items) != 2 {
		t.Fatalf("snapshot has %d lines, want 2", len(items))
	}
	if items[0].Quantity != 2 || items[0].UnitPrice != 100 {
		t.Errorf("first line = %+v, want quantity 2 unit price 100", items[0])
	}

	// Snapshot alındıktan sonra sepet değişse bile kopya sabit kalır
	c.Add(b)
	c.Clear()
	if items[1].Quantity != 1 || items[1].UnitPrice != 60 {
		t.Errorf("snapshot line mutated after cart changes: %+v", items[1])
	}
}

func TestSnapshotFreezesPrice(t *testing.T) {
	c := New()
	item := menuItem(1, "a", 100)
	c.Add(item)

	items, total := c.Snapshot()

	// Menü fiyatının sonradan değişmesi snapshot'ı etkilemez
	item.Price = 999
	if items[0].UnitPrice != 100 || total != 100 {
		t.Errorf("snapshot price changed: unit=%v total=%v, want 100/100", items[0].UnitPrice, total)
	}
}

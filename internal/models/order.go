package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // yeni sipariş, mutfak henüz görmedi
	OrderStatusPreparing OrderStatus = "preparing" // hazırlanıyor
	OrderStatusCompleted OrderStatus = "completed" // hazır, teslim bekliyor
	OrderStatusServed    OrderStatus = "served"    // teslim edildi (kapalı)
	OrderStatusCancelled OrderStatus = "cancelled" // iptal edildi (kapalı)
)

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Günlük fiş numarası. Aynı gün içinde benzersiz, 1'den başlar.
	OrderNumber int    `gorm:"not null;uniqueIndex:idx_orders_date_number" json:"order_number"`
	DateKey     string `gorm:"size:10;not null;uniqueIndex:idx_orders_date_number;index" json:"date_key"` // YYYY-MM-DD (yerel saat)

	Status OrderStatus `gorm:"size:20;not null;index" json:"status"`

	// Sipariş anındaki toplam. Menü fiyatı sonradan değişse bile sabit kalır.
	TotalAmount float64 `gorm:"not null" json:"total_amount"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:50;not null" json:"customer_phone"`
	CustomerNote  string `gorm:"size:255" json:"customer_note"` // Opsiyonel

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem, sipariş anında menüden alınan bir kopyadır (snapshot).
// Oluşturulduktan sonra asla güncellenmez.
type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	OrderID    uint    `gorm:"index;not null" json:"order_id"`
	MenuItemID uint    `gorm:"index" json:"menu_item_id"`
	Name       string  `gorm:"size:100;not null" json:"name"`
	UnitPrice  float64 `gorm:"not null" json:"unit_price"`
	Quantity   int     `gorm:"not null" json:"quantity"`
}

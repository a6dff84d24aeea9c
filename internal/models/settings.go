package models

import "time"

// Tek satırlık ayar kayıtları (id=1). Eksikse database.Init varsayılanla oluşturur.

type StoreSettings struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	IsOpen    bool      `gorm:"not null;default:true" json:"is_open"` // kapalıyken yeni sipariş alınmaz
	StoreName string    `gorm:"size:100" json:"store_name"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BannerSettings struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Enabled   bool      `gorm:"not null;default:false" json:"enabled"`
	Content   string    `gorm:"size:500" json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

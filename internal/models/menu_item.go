package models

import "time"

type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Price       float64   `gorm:"not null" json:"price"` // negatif olamaz
	Image       string    `gorm:"size:500" json:"image"` // Opsiyonel görsel URL
	Category    string    `gorm:"size:50;not null;index" json:"category"`
	Description string    `gorm:"size:500" json:"description"` // Opsiyonel açıklama
	IsAvailable bool      `gorm:"not null;default:true" json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

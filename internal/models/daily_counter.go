package models

import "time"

// DailyCounter, günlük fiş numarası sayacı. Gün başına tek kayıt.
// Sadece orders.CreateOrder içindeki transaction tarafından artırılır,
// asla azaltılmaz ve normal akışta silinmez.
type DailyCounter struct {
	DateKey   string    `gorm:"primaryKey;size:10" json:"date_key"` // YYYY-MM-DD (yerel saat)
	Count     int       `gorm:"not null;default:0" json:"count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package orders

import (
	"errors"

	"siparis-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrInvalidTransition = errors.New("geçersiz durum geçişi")
	ErrOrderConflict     = errors.New("sipariş bulunamadı veya durumu bu arada değişti")
)

// validTransitions: izinli geçişlerin tek kaynağı. Hem handler hem testler
// buradan okur; UI buton mantığı da /api/orders/:id üzerinden bu tabloya çarpar.
//
// İleri yol: pending -> preparing -> completed -> served
// İptal: pending ve preparing'den. completed sonrası iptal yok; mutfak
// siparişi hazırladıktan sonra iptalin anlamı kalmıyor.
var validTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending:   {models.OrderStatusPreparing, models.OrderStatusCancelled},
	models.OrderStatusPreparing: {models.OrderStatusCompleted, models.OrderStatusCancelled},
	models.OrderStatusCompleted: {models.OrderStatusServed},
}

func CanTransition(from, to models.OrderStatus) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal: served ve cancelled kapalı durumlardır, ileri geçiş yok.
func IsTerminal(s models.OrderStatus) bool {
	return s == models.OrderStatusServed || s == models.OrderStatusCancelled
}

// Transition: tek alanlık koşullu güncelleme. Sadece sipariş hâlâ `from`
// durumundaysa yazar; başka bir personel aynı anda durumu değiştirdiyse ya da
// siparişi sildiyse RowsAffected 0 döner ve hata veririz. Bayat istemci
// durumuna karşı sessiz başarı yok.
func Transition(db *gorm.DB, orderID uint, from, to models.OrderStatus) error {
	if !CanTransition(from, to) {
		return ErrInvalidTransition
	}

	res := db.Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderConflict
	}
	return nil
}

package orders

import (
	"errors"

	"siparis-backend/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sayaç çekişmesinde en fazla bu kadar deneme yapılır; sonrası müşteriye
// "tekrar deneyin" olarak döner.
const maxAllocateAttempts = 3

var ErrCounterContention = errors.New("fiş numarası alınamadı, lütfen tekrar deneyin")

// nextOrderNumber: günün sayacını kilitleyip bir artırır. Kayıt yoksa 1 ile
// oluşturur. Mutlaka CreateOrder'ın transaction'ı içinde çağrılmalı; sayaç
// artışı ile sipariş kaydı tek atomik birimdir, ayrıştırılırsa iki eşzamanlı
// müşteri aynı numarayı alır (kayıp güncelleme).
func nextOrderNumber(tx *gorm.DB, dateKey string) (int, error) {
	var counter models.DailyCounter
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&counter, "date_key = ?", dateKey).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Günün ilk siparişi. İki istemci aynı anda buraya düşerse unique
		// ihlali alan taraf üst katmanda yeniden dener.
		counter = models.DailyCounter{DateKey: dateKey, Count: 1}
		if err := tx.Create(&counter).Error; err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}

	counter.Count++
	if err := tx.Model(&models.DailyCounter{}).
		Where("date_key = ?", dateKey).
		Update("count", counter.Count).Error; err != nil {
		return 0, err
	}
	return counter.Count, nil
}

// CreateOrder: fiş numarası tahsisi ve sipariş kaydını tek transaction'da
// yapar. Çekişme (serialization failure ya da sayaç/numara unique ihlali)
// görülürse baştan dener; deneme hakkı bitince hiçbir şey yazılmadan
// ErrCounterContention döner. Numarasız sipariş asla kalıcı olmaz.
func CreateOrder(db *gorm.DB, order *models.Order) error {
	for attempt := 0; attempt < maxAllocateAttempts; attempt++ {
		err := db.Transaction(func(tx *gorm.DB) error {
			n, err := nextOrderNumber(tx, order.DateKey)
			if err != nil {
				return err
			}

			order.ID = 0
			order.OrderNumber = n
			order.Status = models.OrderStatusPending
			return tx.Create(order).Error
		})
		if err == nil {
			return nil
		}
		if !isRetryableConflict(err) {
			return err
		}
	}

	return ErrCounterContention
}

// isRetryableConflict: Postgres serialization failure (40001), deadlock (40P01)
// ve unique ihlali (23505) yeniden denenebilir; gerisi kalıcı hatadır.
func isRetryableConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "23505":
			return true
		}
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

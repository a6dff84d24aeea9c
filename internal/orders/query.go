package orders

import (
	"time"

	"siparis-backend/internal/models"

	"gorm.io/gorm"
)

// Aktif küme: kapalı olmayan durumlar. Pano bu kümeyi canlı izler.
var ActiveStatuses = []models.OrderStatus{
	models.OrderStatusPending,
	models.OrderStatusPreparing,
	models.OrderStatusCompleted,
}

// Geçmiş küme: kapalı durumlar. Canlı izlenmez, tarih aralığıyla çekilir.
var HistoricalStatuses = []models.OrderStatus{
	models.OrderStatusServed,
	models.OrderStatusCancelled,
}

// StatusCounts: pano rozetleri için türetilmiş sayılar. Asla ayrıca saklanmaz.
type StatusCounts struct {
	Pending   int `json:"pending"`
	Preparing int `json:"preparing"`
	Completed int `json:"completed"`
	All       int `json:"all"` // aktif küme toplamı
}

func CountByStatus(orders []models.Order) StatusCounts {
	var counts StatusCounts
	for _, o := range orders {
		switch o.Status {
		case models.OrderStatusPending:
			counts.Pending++
		case models.OrderStatusPreparing:
			counts.Preparing++
		case models.OrderStatusCompleted:
			counts.Completed++
		}
		if !IsTerminal(o.Status) {
			counts.All++
		}
	}
	return counts
}

// ClosedRevenue: kapanmış tarih aralığı cirosu. Sadece served sayılır;
// cancelled hiçbir zaman, completed ise henüz teslim edilmediği için sayılmaz.
func ClosedRevenue(orders []models.Order) float64 {
	var total float64
	for _, o := range orders {
		if o.Status == models.OrderStatusServed {
			total += o.TotalAmount
		}
	}
	return total
}

// RunningRevenue: gün içi anlık ciro. Teslim edilenin yanında hazır bekleyen
// (completed) siparişler de sayılır; iptal yine hariç.
func RunningRevenue(orders []models.Order) float64 {
	var total float64
	for _, o := range orders {
		if o.Status == models.OrderStatusServed || o.Status == models.OrderStatusCompleted {
			total += o.TotalAmount
		}
	}
	return total
}

// FindActive: aktif siparişler, eskiden yeniye (mutfak sırası).
func FindActive(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("Items").
		Where("status IN ?", ActiveStatuses).
		Order("created_at asc").
		Find(&orders).Error
	return orders, err
}

// FindHistory: kapalı siparişler, [from, to] günleri dahil, yeniden eskiye.
func FindHistory(db *gorm.DB, from, to time.Time, loc *time.Location) ([]models.Order, error) {
	start, _ := DayBounds(from, loc)
	_, end := DayBounds(to, loc)

	var orders []models.Order
	err := db.Preload("Items").
		Where("status IN ?", HistoricalStatuses).
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

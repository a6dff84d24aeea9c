package orders

import "time"

// DateKey: fiş numarası sayacının gün anahtarı (YYYY-MM-DD).
// Mağazanın saat dilimine göre hesaplanır; UTC kullanılırsa numara
// gece yarısı yerine yanlış bir saatte sıfırlanır.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// DayBounds: verilen günün [başlangıç, bitiş) aralığı, mağaza saat diliminde.
func DayBounds(day time.Time, loc *time.Location) (time.Time, time.Time) {
	d := day.In(loc)
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

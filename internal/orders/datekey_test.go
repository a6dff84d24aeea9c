package orders

import (
	"testing"
	"time"
)

func TestDateKeyUsesStoreTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Istanbul")
	if err != nil {
		t.Fatalf("saat dilimi yüklenemedi: %v", err)
	}

	// UTC'de 31 Aralık 22:30 = İstanbul'da 1 Ocak 01:30. Sayaç yeni günün
	// anahtarını kullanmalı; UTC kullanılsaydı numara eski güne yazılırdı.
	utcEvening := time.Date(2023, 12, 31, 22, 30, 0, 0, time.UTC)
	if got := DateKey(utcEvening, loc); got != "2024-01-01" {
		t.Errorf("DateKey = %s, want 2024-01-01", got)
	}

	// Aynı anın UTC anahtarı farklı gündür
	if got := DateKey(utcEvening, time.UTC); got != "2023-12-31" {
		t.Errorf("DateKey(UTC) = %s, want 2023-12-31", got)
	}
}

func TestDateKeySeparateDays(t *testing.T) {
	loc := time.UTC
	d1 := time.Date(2024, 1, 1, 12, 0, 0, 0, loc)
	d2 := time.Date(2024, 1, 2, 12, 0, 0, 0, loc)

	// Farklı günler farklı sayaç anahtarı üretir; her gün 1'den başlar
	if DateKey(d1, loc) == DateKey(d2, loc) {
		t.Error("farklı günler aynı anahtarı üretmemeli")
	}
}

func TestDayBounds(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Istanbul")
	if err != nil {
		t.Fatalf("saat dilimi yüklenemedi: %v", err)
	}

	day := time.Date(2024, 3, 15, 14, 45, 0, 0, loc)
	start, end := DayBounds(day, loc)

	if !start.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, loc)) {
		t.Errorf("start = %v, want günün başı", start)
	}
	if !end.Equal(time.Date(2024, 3, 16, 0, 0, 0, 0, loc)) {
		t.Errorf("end = %v, want ertesi günün başı", end)
	}
	if !day.After(start) || !day.Before(end) {
		t.Error("günün ortası [start, end) aralığında olmalı")
	}
}

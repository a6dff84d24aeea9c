package reports

import (
	"fmt"
	"time"

	"siparis-backend/internal/config"
	"siparis-backend/internal/database"
	"siparis-backend/internal/models"
	"siparis-backend/internal/orders"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type DailyOrderSummary struct {
	Date       string  `json:"date"`
	OrderCount int     `json:"order_count"` // served + cancelled toplamı
	Served     int     `json:"served"`
	Cancelled  int     `json:"cancelled"`
	Revenue    float64 `json:"revenue"` // sadece served
}

type SummaryResponse struct {
	From           string              `json:"from"`
	To             string              `json:"to"`
	TotalRevenue   float64             `json:"total_revenue"`
	TotalServed    int                 `json:"total_served"`
	TotalCancelled int                 `json:"total_cancelled"`
	DailyBreakdown []DailyOrderSummary `json:"daily_breakdown"`
}

// GET /api/admin/reports/daily?from=YYYY-MM-DD&to=YYYY-MM-DD (sadece admin)
// Gün bazında kapanmış sipariş sayısı ve ciro dökümü.
func DailySummaryHandler(cfg *config.Config) fiber.Handler {
	loc := cfg.Location()

	return func(c *fiber.Ctx) error {
		from, to, err := parseRange(c, loc)
		if err != nil {
			return err
		}

		list, err := orders.FindHistory(database.DB, from, to, loc)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Geçmiş siparişler okunamadı")
		}

		// Aralıktaki her gün için boş satır aç, sonra siparişleri dağıt
		dailyMap := make(map[string]DailyOrderSummary)
		for current := from; !current.After(to); current = current.AddDate(0, 0, 1) {
			dateStr := current.Format("2006-01-02")
			dailyMap[dateStr] = DailyOrderSummary{Date: dateStr}
		}

		for _, o := range list {
			dateStr := orders.DateKey(o.CreatedAt, loc)
			ds, ok := dailyMap[dateStr]
			if !ok {
				continue
			}
			ds.OrderCount++
			switch o.Status {
			case models.OrderStatusServed:
				ds.Served++
				ds.Revenue += o.TotalAmount
			case models.OrderStatusCancelled:
				ds.Cancelled++
			}
			dailyMap[dateStr] = ds
		}

		res := SummaryResponse{
			From: from.Format("2006-01-02"),
			To:   to.Format("2006-01-02"),
		}
		for current := from; !current.After(to); current = current.AddDate(0, 0, 1) {
			ds := dailyMap[current.Format("2006-01-02")]
			res.DailyBreakdown = append(res.DailyBreakdown, ds)
			res.TotalRevenue += ds.Revenue
			res.TotalServed += ds.Served
			res.TotalCancelled += ds.Cancelled
		}

		return c.JSON(res)
	}
}

// GET /api/admin/reports/export?from=YYYY-MM-DD&to=YYYY-MM-DD (sadece admin)
// Kapalı siparişleri xlsx olarak indirir.
func ExportHistoryHandler(cfg *config.Config) fiber.Handler {
	loc := cfg.Location()

	return func(c *fiber.Ctx) error {
		from, to, err := parseRange(c, loc)
		if err != nil {
			return err
		}

		list, err := orders.FindHistory(database.DB, from, to, loc)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Geçmiş siparişler okunamadı")
		}

		f := excelize.NewFile()
		defer f.Close()

		sheet := "Siparisler"
		f.SetSheetName("Sheet1", sheet)

		headers := []string{"Tarih", "Fiş No", "Durum", "Müşteri", "Telefon", "Tutar", "Kalemler"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}

		for row, o := range list {
			itemsDesc := ""
			for i, item := range o.Items {
				if i > 0 {
					itemsDesc += ", "
				}
				itemsDesc += fmt.Sprintf("%s x%d", item.Name, item.Quantity)
			}

			values := []any{
				o.CreatedAt.In(loc).Format("2006-01-02 15:04"),
				o.OrderNumber,
				string(o.Status),
				o.CustomerName,
				o.CustomerPhone,
				o.TotalAmount,
				itemsDesc,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(sheet, cell, v)
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor oluşturulamadı")
		}

		filename := fmt.Sprintf("siparisler_%s_%s.xlsx", from.Format("2006-01-02"), to.Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
		return c.Send(buf.Bytes())
	}
}

// from/to query parametrelerini mağaza saat diliminde çözer (YYYY-MM-DD)
func parseRange(c *fiber.Ctx, loc *time.Location) (time.Time, time.Time, error) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "from ve to tarihleri zorunlu (YYYY-MM-DD)")
	}

	from, err := time.ParseInLocation("2006-01-02", fromStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "from tarihi geçersiz")
	}
	to, err := time.ParseInLocation("2006-01-02", toStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "to tarihi geçersiz")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "to, from'dan önce olamaz")
	}
	return from, to, nil
}

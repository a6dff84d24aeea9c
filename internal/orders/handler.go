package orders

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"siparis-backend/internal/audit"
	"siparis-backend/internal/auth"
	"siparis-backend/internal/cart"
	"siparis-backend/internal/config"
	"siparis-backend/internal/database"
	"siparis-backend/internal/models"
	"siparis-backend/internal/realtime"

	"github.com/gofiber/fiber/v2"
)

type OrderLineRequest struct {
	MenuItemID uint `json:"menu_item_id"`
	Quantity   int  `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	CustomerNote  string             `json:"customer_note"` // Opsiyonel
	Items         []OrderLineRequest `json:"items"`
}

type TransitionRequest struct {
	Status models.OrderStatus `json:"status"`
}

type HistoryResponse struct {
	From    string         `json:"from"`
	To      string         `json:"to"`
	Orders  []models.Order `json:"orders"`
	Count   int            `json:"count"`
	Revenue float64        `json:"revenue"` // sadece served
}

// validateCreateOrder: backend'e gitmeden reddedilecek her şey burada.
func validateCreateOrder(body *CreateOrderRequest) error {
	body.CustomerName = strings.TrimSpace(body.CustomerName)
	body.CustomerPhone = strings.TrimSpace(body.CustomerPhone)
	body.CustomerNote = strings.TrimSpace(body.CustomerNote)

	if body.CustomerName == "" || body.CustomerPhone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "İsim ve telefon zorunlu")
	}
	if len(body.Items) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Sepet boş")
	}
	for _, line := range body.Items {
		if line.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Adet pozitif olmalı")
		}
	}
	return nil
}

// POST /api/orders (public, müşteri gönderimi)
func CreateOrderHandler(cfg *config.Config, hub *realtime.Hub) fiber.Handler {
	loc := cfg.Location()

	return func(c *fiber.Ctx) error {
		var body CreateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validateCreateOrder(&body); err != nil {
			return err
		}

		// Mağaza kapalıyken sipariş alınmaz
		var store models.StoreSettings
		if err := database.DB.First(&store, 1).Error; err == nil && !store.IsOpen {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Mağaza şu an kapalı, yeni sipariş alınamıyor")
		}

		// Menü fiyatları sunucudan okunur; istemcinin gönderdiği fiyata güvenilmez
		basket := cart.New()
		for _, line := range body.Items {
			var item models.MenuItem
			if err := database.DB.First(&item, line.MenuItemID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Ürün bulunamadı: %d", line.MenuItemID))
			}
			if !item.IsAvailable {
				return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Ürün şu an satışta değil: %s", item.Name))
			}
			for i := 0; i < line.Quantity; i++ {
				basket.Add(item)
			}
		}

		items, total := basket.Snapshot()
		order := models.Order{
			DateKey:       DateKey(time.Now(), loc),
			TotalAmount:   total,
			CustomerName:  body.CustomerName,
			CustomerPhone: body.CustomerPhone,
			CustomerNote:  body.CustomerNote,
			Items:         items,
		}

		if err := CreateOrder(database.DB, &order); err != nil {
			if errors.Is(err, ErrCounterContention) {
				return fiber.NewError(fiber.StatusServiceUnavailable, ErrCounterContention.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş oluşturulamadı")
		}

		hub.Publish(realtime.Event{Type: realtime.EventOrderCreated, OrderID: order.ID, Order: &order})

		return c.Status(fiber.StatusCreated).JSON(order)
	}
}

// GET /api/orders/active (personel) - pano bu listeyi açılışta çeker,
// sonrasını websocket'ten izler
func ListActiveOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		orders, err := FindActive(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Siparişler listelenemedi")
		}
		return c.JSON(orders)
	}
}

// GET /api/orders/counts (personel) - rozet sayıları
func OrderCountsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		orders, err := FindActive(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Siparişler listelenemedi")
		}
		return c.JSON(CountByStatus(orders))
	}
}

// GET /api/orders/history?from=YYYY-MM-DD&to=YYYY-MM-DD (personel)
func ListOrderHistoryHandler(cfg *config.Config) fiber.Handler {
	loc := cfg.Location()

	return func(c *fiber.Ctx) error {
		from, to, err := parseRange(c, loc)
		if err != nil {
			return err
		}

		orders, err := FindHistory(database.DB, from, to, loc)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Geçmiş siparişler listelenemedi")
		}

		return c.JSON(HistoryResponse{
			From:    from.Format("2006-01-02"),
			To:      to.Format("2006-01-02"),
			Orders:  orders,
			Count:   len(orders),
			Revenue: ClosedRevenue(orders),
		})
	}
}

// PUT /api/orders/:id/status (personel)
func TransitionOrderHandler(hub *realtime.Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id geçersiz")
		}

		var body TransitionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		var order models.Order
		if err := database.DB.First(&order, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
		}

		before := order.Status
		if err := Transition(database.DB, order.ID, before, body.Status); err != nil {
			switch {
			case errors.Is(err, ErrInvalidTransition):
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Geçersiz durum geçişi: %s -> %s", before, body.Status))
			case errors.Is(err, ErrOrderConflict):
				// Başka bir personel önce davrandı; istemci listeyi tazelemeli
				return fiber.NewError(fiber.StatusConflict, ErrOrderConflict.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Durum güncellenemedi")
			}
		}

		order.Status = body.Status
		writeOrderAudit(c, order.ID, models.AuditActionUpdate,
			fmt.Sprintf("Sipariş #%d durumu: %s -> %s", order.OrderNumber, before, body.Status),
			fiber.Map{"status": before}, fiber.Map{"status": body.Status})

		if err := database.DB.Preload("Items").First(&order, order.ID).Error; err == nil {
			hub.Publish(realtime.Event{Type: realtime.EventOrderUpdated, OrderID: order.ID, Order: &order})
		}

		return c.JSON(order)
	}
}

// DELETE /api/orders/:id (personel) - durumdan bağımsız, geri alınamaz
func DeleteOrderHandler(hub *realtime.Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id geçersiz")
		}

		var order models.Order
		if err := database.DB.Preload("Items").First(&order, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
		}

		if err := database.DB.Select("Items").Delete(&order).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş silinemedi")
		}

		writeOrderAudit(c, order.ID, models.AuditActionDelete,
			fmt.Sprintf("Sipariş #%d silindi (%s)", order.OrderNumber, order.DateKey),
			order, nil)

		hub.Publish(realtime.Event{Type: realtime.EventOrderDeleted, OrderID: order.ID})

		return c.JSON(fiber.Map{"deleted": order.ID})
	}
}

// POST /api/admin/orders/history/clear (sadece admin)
// Aralıktaki kapalı siparişleri tek transaction'da siler. Sayaçlara dokunmaz;
// gün içinde temizlik yapılsa bile numaralar kaldığı yerden devam eder.
func ClearHistoryHandler(cfg *config.Config) fiber.Handler {
	loc := cfg.Location()

	return func(c *fiber.Ctx) error {
		from, to, err := parseRange(c, loc)
		if err != nil {
			return err
		}
		start, _ := DayBounds(from, loc)
		_, end := DayBounds(to, loc)

		var ids []uint
		if err := database.DB.Model(&models.Order{}).
			Where("status IN ?", HistoricalStatuses).
			Where("created_at >= ? AND created_at < ?", start, end).
			Pluck("id", &ids).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Geçmiş siparişler okunamadı")
		}
		if len(ids) == 0 {
			return c.JSON(fiber.Map{"deleted_count": 0})
		}

		tx := database.DB.Begin()
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
			}
		}()

		if err := tx.Where("order_id IN ?", ids).Delete(&models.OrderItem{}).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Geçmiş temizlenemedi")
		}
		if err := tx.Where("id IN ?", ids).Delete(&models.Order{}).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Geçmiş temizlenemedi")
		}
		if err := tx.Commit().Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Geçmiş temizlenemedi")
		}

		writeOrderAudit(c, 0, models.AuditActionDelete,
			fmt.Sprintf("Geçmiş temizlendi: %s - %s, %d sipariş",
				from.Format("2006-01-02"), to.Format("2006-01-02"), len(ids)),
			fiber.Map{"order_ids": ids}, nil)

		return c.JSON(fiber.Map{"deleted_count": len(ids)})
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

func writeOrderAudit(c *fiber.Ctx, entityID uint, action models.AuditAction, desc string, before, after any) {
	userID, userName := auditUser(c)
	_ = audit.WriteLog(audit.LogOptions{
		UserID:      userID,
		UserName:    userName,
		EntityType:  "order",
		EntityID:    entityID,
		Action:      action,
		Description: desc,
		Before:      before,
		After:       after,
	})
}

func auditUser(c *fiber.Ctx) (uint, string) {
	userID, _ := c.Locals(auth.CtxUserIDKey).(uint)
	var user models.User
	if userID != 0 {
		if err := database.DB.First(&user, userID).Error; err == nil {
			return userID, user.Name
		}
	}
	return userID, ""
}

package settings

import (
	"fmt"
	"strings"

	"siparis-backend/internal/audit"
	"siparis-backend/internal/auth"
	"siparis-backend/internal/database"
	"siparis-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type UpdateStoreRequest struct {
	IsOpen    *bool   `json:"is_open"`
	StoreName *string `json:"store_name"`
}

type UpdateBannerRequest struct {
	Enabled *bool   `json:"enabled"`
	Content *string `json:"content"`
}

// GET /api/settings (public) - ana sayfa mağaza durumu ve duyuruyu tek
// istekle alır. Kayıt bulunamazsa varsayılanlar döner (açık, duyuru yok).
func GetSettingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		store := models.StoreSettings{IsOpen: true}
		database.DB.First(&store, 1)

		banner := models.BannerSettings{Enabled: false}
		database.DB.First(&banner, 1)

		return c.JSON(fiber.Map{
			"store":  store,
			"banner": banner,
		})
	}
}

// PUT /api/admin/settings/store (sadece admin)
func UpdateStoreHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateStoreRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		var store models.StoreSettings
		if err := database.DB.First(&store, 1).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ayarlar okunamadı")
		}
		before := store

		if body.IsOpen != nil {
			store.IsOpen = *body.IsOpen
		}
		if body.StoreName != nil {
			store.StoreName = strings.TrimSpace(*body.StoreName)
		}

		if err := database.DB.Save(&store).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ayarlar güncellenemedi")
		}

		writeSettingsAudit(c, fmt.Sprintf("Mağaza ayarı güncellendi (is_open=%v)", store.IsOpen), before, store)

		return c.JSON(store)
	}
}

// PUT /api/admin/settings/banner (sadece admin)
func UpdateBannerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateBannerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		var banner models.BannerSettings
		if err := database.DB.First(&banner, 1).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ayarlar okunamadı")
		}
		before := banner

		if body.Enabled != nil {
			banner.Enabled = *body.Enabled
		}
		if body.Content != nil {
			banner.Content = strings.TrimSpace(*body.Content)
		}
		if banner.Enabled && banner.Content == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Duyuru açıkken içerik boş olamaz")
		}

		if err := database.DB.Save(&banner).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ayarlar güncellenemedi")
		}

		writeSettingsAudit(c, fmt.Sprintf("Duyuru güncellendi (enabled=%v)", banner.Enabled), before, banner)

		return c.JSON(banner)
	}
}

func writeSettingsAudit(c *fiber.Ctx, desc string, before, after any) {
	userID, _ := c.Locals(auth.CtxUserIDKey).(uint)
	userName := ""
	var user models.User
	if userID != 0 {
		if err := database.DB.First(&user, userID).Error; err == nil {
			userName = user.Name
		}
	}
	_ = audit.WriteLog(audit.LogOptions{
		UserID:      userID,
		UserName:    userName,
		EntityType:  "settings",
		EntityID:    1,
		Action:      models.AuditActionUpdate,
		Description: desc,
		Before:      before,
		After:       after,
	})
}

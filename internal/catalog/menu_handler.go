package catalog

import (
	"fmt"
	"strings"

	"siparis-backend/internal/audit"
	"siparis-backend/internal/auth"
	"siparis-backend/internal/database"
	"siparis-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateMenuItemRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`       // Opsiyonel
	Category    string  `json:"category"`
	Description string  `json:"description"` // Opsiyonel
	IsAvailable *bool   `json:"is_available"`
}

type UpdateMenuItemRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	IsAvailable *bool    `json:"is_available"`
}

// GET /api/menu (public) - müşteri sadece satıştaki ürünleri görür,
// ?all=true ile admin paneli tüm listeyi çeker
func ListMenuItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.MenuItem{})
		if c.Query("all") != "true" {
			dbq = dbq.Where("is_available = ?", true)
		}
		if category := c.Query("category"); category != "" {
			dbq = dbq.Where("category = ?", category)
		}

		var items []models.MenuItem
		if err := dbq.Order("category asc, name asc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü listelenemedi")
		}
		return c.JSON(items)
	}
}

// POST /api/admin/menu (sadece admin)
func CreateMenuItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMenuItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Category = strings.TrimSpace(body.Category)

		if body.Name == "" || body.Category == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name ve category zorunlu")
		}
		if body.Price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Fiyat negatif olamaz")
		}

		item := models.MenuItem{
			Name:        body.Name,
			Price:       body.Price,
			Image:       body.Image,
			Category:    body.Category,
			Description: body.Description,
			IsAvailable: true, // belirtilmezse satışta
		}
		if body.IsAvailable != nil {
			item.IsAvailable = *body.IsAvailable
		}

		if err := database.DB.Create(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün oluşturulamadı")
		}

		writeMenuAudit(c, item.ID, models.AuditActionCreate,
			fmt.Sprintf("Menü ürünü eklendi: %s", item.Name), nil, item)

		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// PUT /api/admin/menu/:id (sadece admin)
func UpdateMenuItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var item models.MenuItem
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}
		before := item

		var body UpdateMenuItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name boş olamaz")
			}
			item.Name = name
		}
		if body.Price != nil {
			if *body.Price < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Fiyat negatif olamaz")
			}
			item.Price = *body.Price
		}
		if body.Image != nil {
			item.Image = *body.Image
		}
		if body.Category != nil {
			category := strings.TrimSpace(*body.Category)
			if category == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Category boş olamaz")
			}
			item.Category = category
		}
		if body.Description != nil {
			item.Description = *body.Description
		}
		if body.IsAvailable != nil {
			item.IsAvailable = *body.IsAvailable
		}

		if err := database.DB.Save(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün güncellenemedi")
		}

		writeMenuAudit(c, item.ID, models.AuditActionUpdate,
			fmt.Sprintf("Menü ürünü güncellendi: %s", item.Name), before, item)

		return c.JSON(item)
	}
}

// DELETE /api/admin/menu/:id (sadece admin)
// Eski siparişlerin kalemleri snapshot olduğu için silme onları etkilemez.
func DeleteMenuItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var item models.MenuItem
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		if err := database.DB.Delete(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}

		writeMenuAudit(c, item.ID, models.AuditActionDelete,
			fmt.Sprintf("Menü ürünü silindi: %s", item.Name), item, nil)

		return c.JSON(fiber.Map{"deleted": item.ID})
	}
}

func writeMenuAudit(c *fiber.Ctx, entityID uint, action models.AuditAction, desc string, before, after any) {
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
		EntityType:  "menu_item",
		EntityID:    entityID,
		Action:      action,
		Description: desc,
		Before:      before,
		After:       after,
	})
}

package main

import (
	"log"
	"strings"

	"siparis-backend/internal/audit"
	"siparis-backend/internal/auth"
	"siparis-backend/internal/catalog"
	"siparis-backend/internal/config"
	"siparis-backend/internal/database"
	"siparis-backend/internal/models"
	"siparis-backend/internal/orders"
	"siparis-backend/internal/realtime"
	"siparis-backend/internal/reports"
	"siparis-backend/internal/settings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	hub := realtime.NewHub()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Müşteri tarafı (auth gerektirmez)
	api.Get("/menu", catalog.ListMenuItemsHandler())
	api.Get("/settings", settings.GetSettingsHandler())
	api.Post("/orders", orders.CreateOrderHandler(cfg, hub))

	// Canlı sipariş akışı (token query parametresiyle doğrulanır)
	api.Get("/ws/orders", realtime.UpgradeMiddleware(cfg), realtime.OrdersFeedHandler(hub))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Sipariş panosu (admin + staff)
	protected.Get("/orders/active", orders.ListActiveOrdersHandler())
	protected.Get("/orders/counts", orders.OrderCountsHandler())
	protected.Get("/orders/history", orders.ListOrderHistoryHandler(cfg))
	protected.Put("/orders/:id/status", orders.TransitionOrderHandler(hub))
	protected.Delete("/orders/:id", orders.DeleteOrderHandler(hub))

	// Admin routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	// Personel hesapları
	adminRoutes.Post("/staff", auth.CreateStaffHandler())

	// Menü yönetimi
	adminRoutes.Post("/menu", catalog.CreateMenuItemHandler())
	adminRoutes.Put("/menu/:id", catalog.UpdateMenuItemHandler())
	adminRoutes.Delete("/menu/:id", catalog.DeleteMenuItemHandler())

	// Mağaza ayarları
	adminRoutes.Put("/settings/store", settings.UpdateStoreHandler())
	adminRoutes.Put("/settings/banner", settings.UpdateBannerHandler())

	// Geçmiş temizliği ve raporlar
	adminRoutes.Post("/orders/history/clear", orders.ClearHistoryHandler(cfg))
	adminRoutes.Get("/reports/daily", reports.DailySummaryHandler(cfg))
	adminRoutes.Get("/reports/export", reports.ExportHistoryHandler(cfg))

	// Audit logs
	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}

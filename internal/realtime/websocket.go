package realtime

import (
	"log"

	"siparis-backend/internal/auth"
	"siparis-backend/internal/config"
	"siparis-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// UpgradeMiddleware: websocket upgrade isteği mi ve token geçerli mi kontrol
// eder. Tarayıcı websocket'te Authorization header gönderemediği için token
// query parametresiyle gelir (?token=...).
func UpgradeMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		claims, err := auth.ParseToken(cfg.JWTSecret, c.Query("token"))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}
		if claims.Role != models.RoleAdmin && claims.Role != models.RoleStaff {
			return fiber.NewError(fiber.StatusForbidden, "Bu işlem için yetkiniz yok")
		}

		return c.Next()
	}
}

// OrdersFeedHandler: GET /api/ws/orders - sipariş olaylarını personel
// ekranlarına push eder. Soket kapanınca abonelik mutlaka kapatılır.
func OrdersFeedHandler(hub *Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		sub := hub.Subscribe()
		defer sub.Close()

		// İstemci tarafı kapanışı yakalamak için okuma döngüsü
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case ev, ok := <-sub.C:
				if !ok {
					return
				}
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("websocket yazma hatası: %v", err)
					return
				}
			case <-done:
				return
			}
		}
	})
}

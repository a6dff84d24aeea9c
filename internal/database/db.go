package database

import (
	"log"

	"siparis-backend/internal/config"
	"siparis-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.DailyCounter{},
		&models.StoreSettings{},
		&models.BannerSettings{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	seedSettings()

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}

// seedSettings: ayar kayıtları yoksa varsayılanla oluştur.
// Mağaza varsayılan olarak açık, duyuru varsayılan olarak kapalı.
func seedSettings() {
	store := models.StoreSettings{ID: 1, IsOpen: true}
	if err := DB.FirstOrCreate(&store, models.StoreSettings{ID: 1}).Error; err != nil {
		log.Printf("StoreSettings seed hatası: %v", err)
	}

	banner := models.BannerSettings{ID: 1, Enabled: false}
	if err := DB.FirstOrCreate(&banner, models.BannerSettings{ID: 1}).Error; err != nil {
		log.Printf("BannerSettings seed hatası: %v", err)
	}
}

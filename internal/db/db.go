package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ericmelomp/PetFacil/internal/config"
	"github.com/ericmelomp/PetFacil/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Service{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedDefaultServices(db)

	return db
}

// seedDefaultServices popula o catálogo na primeira subida. Só roda
// com a tabela vazia.
func seedDefaultServices(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		log.Printf("failed to count services: %v", err)
		return
	}
	if count > 0 {
		return
	}

	defaults := []models.Service{
		{Name: "Banho", Duration: 60},
		{Name: "Tosa", Duration: 90},
		{Name: "Banho e Tosa", Duration: 120},
		{Name: "Consulta Veterinária", Duration: 30},
	}

	if err := db.Create(&defaults).Error; err != nil {
		log.Printf("failed to seed services: %v", err)
	}
}

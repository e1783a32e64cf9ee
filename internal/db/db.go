package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/agendaservices/salon-agenda/internal/config"
	"github.com/agendaservices/salon-agenda/internal/models"
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
		&models.Provider{},
		&models.Service{},
		&models.Establishment{},
		&models.Employee{},
		&models.Appointment{},
		&models.LoyaltyRecord{},
		&models.Address{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Índice parcial: dois agendamentos não cancelados nunca dividem o
	// mesmo (prestador, horário). É a barreira contra reservas
	// concorrentes no mesmo slot.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_provider_slot
        ON appointments (provider_id, starts_at)
        WHERE NOT canceled
    `)

	return db
}

package db

import (
	"log"
	"time"

	"github.com/Tai-brother/UthMentor/internal/config"
	"github.com/Tai-brother/UthMentor/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
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
		&models.User{},
		&models.Field{},
		&models.Member{},
		&models.Mentor{},
		&models.Schedule{},
		&models.MentorRequest{},
		&models.Appointment{},
		&models.Review{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

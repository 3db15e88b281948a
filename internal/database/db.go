package database

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ridersapp/internal/model"
	"ridersapp/pkg/logger"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Auto-migrate core models
	err = db.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.Country{},
		&model.City{},
		&model.Employee{},
		&model.DailyRide{},
		&model.Configuration{},
		&model.FineOrExpenseType{},
		&model.FineOrExpense{},
		&model.AuditLog{},
	)
	if err != nil {
		logger.L().Warn("failed to auto-migrate models", zap.Error(err))
	}

	return db, nil
}

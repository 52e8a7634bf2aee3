package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"credit-simplicity-backend/internal/domain/borrower"
	"credit-simplicity-backend/internal/domain/document"
	"credit-simplicity-backend/internal/domain/loan"
	"credit-simplicity-backend/internal/domain/meeting"
	"credit-simplicity-backend/internal/domain/message"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	gdb, err := gorm.Open(postgres.Open(dsn), cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return gdb, nil
}

// AutoMigrate brings the schema up to date. Referential integrity between
// the tables is the database's job; this only creates columns and indexes.
func AutoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&borrower.Borrower{},
		&loan.Application{},
		&document.Document{},
		&meeting.Meeting{},
		&message.Message{},
	)
}

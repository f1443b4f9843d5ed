package db

import (
	"time"

	glebsqlite "github.com/glebarez/sqlite"
	"github.com/smallbiznis/incidentbilling/internal/config"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// New opens the configured database and applies pool settings.
func New(cfg config.Config) (*gorm.DB, error) {
	dialect, err := Dialect(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(dialect, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConn)
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConn)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetime) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.DBConnMaxIdleTime) * time.Second)

	return conn, nil
}

// NewTest opens an in-memory sqlite database for tests.
func NewTest() (*gorm.DB, error) {
	return gorm.Open(glebsqlite.Open(":memory:"), &gorm.Config{})
}

var Module = fx.Module("db",
	fx.Provide(New),
)

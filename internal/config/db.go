package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

const (
	connectAttempts = 5
	connectBackoff  = 2 * time.Second
)

// Connect opens the Postgres pool, retrying while the database starts up.
func Connect(ctx context.Context, dsn string) error {
	if dsn == "" {
		return errors.New("DATABASE_DSN is empty")
	}

	var err error
	for i := 0; i < connectAttempts; i++ {
		var db *gorm.DB
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Warn),
		})
		if err == nil {
			sqlDB, sqlErr := db.DB()
			if sqlErr == nil {
				sqlDB.SetMaxOpenConns(Int("DB_MAX_OPEN_CONNS", 10))
				sqlDB.SetMaxIdleConns(Int("DB_MAX_IDLE_CONNS", 5))
				sqlDB.SetConnMaxLifetime(30 * time.Minute)
				if err = sqlDB.PingContext(ctx); err == nil {
					DB = db
					Log.Info("Connected to database")
					return nil
				}
			} else {
				err = sqlErr
			}
		}

		Log.WithError(err).Warnf("Database connection attempt %d failed", i+1)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(connectBackoff):
		}
	}

	return fmt.Errorf("could not connect to database after %d attempts: %w", connectAttempts, err)
}

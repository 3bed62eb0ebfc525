package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rentbook_backend/internals/configs"
	"rentbook_backend/internals/helpers/dbtime"
)

// ConnectDB membuka PostgreSQL bila DATABASE_URL ada, selain itu SQLite.
func ConnectDB(cfg *configs.Config, log *zap.Logger, clock dbtime.Clock) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.UsesSQLite() {
		log.Warn("DATABASE_URL kosong, memakai SQLite", zap.String("path", cfg.SQLitePath))
		dialector = sqlite.Open(cfg.SQLitePath)
	} else {
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.DatabaseURL,
			PreferSimpleProtocol: true, // aman untuk PgBouncer (transaction pooling)
		})
	}

	db, err := Open(dialector, log, clock, cfg.DBSlowThreshold)
	if err != nil {
		return nil, err
	}

	if cfg.UsesSQLite() {
		// in-memory shared cache: satu koneksi supaya semua query melihat DB yang sama
		err = TunePool(db, 1, 1, 0)
	} else {
		err = TunePool(db, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLife)
	}
	if err != nil {
		return nil, err
	}
	log.Info("DB connected", zap.Bool("sqlite", cfg.UsesSQLite()))
	return db, nil
}

// Open dipakai juga oleh test (sqlmock / sqlite).
func Open(dialector gorm.Dialector, log *zap.Logger, clock dbtime.Clock, slow time.Duration) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		Logger: configs.NewGormLogger(log, slow),
	}
	if clock != nil {
		gcfg.NowFunc = clock.Now
	}
	db, err := gorm.Open(dialector, gcfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

func TunePool(db *gorm.DB, maxOpen, maxIdle int, maxLife time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("pool tune: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	// maxLife 0: koneksi tidak pernah di-recycle (SQLite memory hilang saat koneksi terakhir tutup)
	if maxLife > 0 {
		sqlDB.SetConnMaxIdleTime(60 * time.Second)
		sqlDB.SetConnMaxLifetime(maxLife)
	}
	return nil
}

// Ping dipakai /health.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

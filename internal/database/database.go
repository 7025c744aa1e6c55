package database

import (
	"fmt"
	"strings"
	"time"

	"carebase-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	AutoMigrate     bool
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	if !opts.AutoMigrate {
		opts.AutoMigrate = true
	}

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Ensure required extensions: pgcrypto for gen_random_uuid(), btree_gist
	// for the carer/time-range exclusion constraint
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error

	if opts.AutoMigrate {
		all := []interface{}{
			&models.Carer{},
			&models.Client{},
			&models.Shift{},
			&models.EVVRecord{},
			&models.Authorization{},
			&models.AuthorizationAlert{},
			&models.AuditLog{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}

		// AutoMigrate cannot express a range-exclusion constraint, so it is
		// installed directly. Two non-terminal shifts for the same carer may
		// never occupy overlapping [start, end) intervals; the conflict check
		// inside the create transaction is thereby backed by the store even
		// under concurrent inserts.
		if err := db.Exec(`
			ALTER TABLE shifts ADD CONSTRAINT shifts_carer_no_overlap
			EXCLUDE USING gist (
				carer_id WITH =,
				tstzrange(scheduled_start, scheduled_end) WITH &&
			) WHERE (status IN ('SCHEDULED', 'IN_PROGRESS'))
		`).Error; err != nil && !isDuplicateConstraint(err) {
			return nil, fmt.Errorf("install shift exclusion constraint: %w", err)
		}

		// The ledger's alert dedup is a read-then-insert; only the deduction
		// path serializes it through the authorization row lock. This index
		// makes "at most one non-dismissed alert per (authorization, type)"
		// hold for every writer, including the expiry review.
		if err := db.Exec(`
			CREATE UNIQUE INDEX IF NOT EXISTS auth_alerts_one_open_per_type
			ON authorization_alerts (authorization_id, alert_type)
			WHERE NOT is_dismissed
		`).Error; err != nil {
			return nil, fmt.Errorf("install alert dedup index: %w", err)
		}
	}

	return db, nil
}

func isDuplicateConstraint(err error) bool {
	return err != nil && strings.Contains(err.Error(), "already exists")
}

package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Database wraps the GORM DB handle and exposes repository helpers.
type Database struct {
	gorm *gorm.DB
	mu   sync.Mutex
}

// Open initializes the SQLite-backed database at the provided path.
func Open(path string, silent bool) (*Database, error) {
	cfg := &gorm.Config{}
	if silent {
		cfg.Logger = logger.Default.LogMode(logger.Silent)
	}
	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&TierTally{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	if err := db.Exec("PRAGMA journal_mode=WAL").Error; err != nil {
		logrus.WithError(err).Warn("enable WAL mode")
	}
	if err := db.Exec("PRAGMA synchronous=NORMAL").Error; err != nil {
		logrus.WithError(err).Warn("set synchronous pragma")
	}
	return &Database{gorm: db}, nil
}

// Close closes the underlying database connection.
func (d *Database) Close() error {
	if d == nil {
		return nil
	}
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// RecordClassification bumps the tally for the given type/tier pair.
func (d *Database) RecordClassification(institutionType, tier string) error {
	if d == nil {
		return errors.New("database is nil")
	}
	institutionType = strings.ToLower(strings.TrimSpace(institutionType))
	tier = strings.ToLower(strings.TrimSpace(tier))
	if institutionType == "" || tier == "" {
		return errors.New("institution type and tier are required")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gorm.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "institution_type"}, {Name: "tier"}},
		DoUpdates: clause.Assignments(map[string]any{
			"count":      gorm.Expr("count + 1"),
			"updated_at": time.Now(),
		}),
	}).Create(&TierTally{InstitutionType: institutionType, Tier: tier, Count: 1}).Error
}

// ListTallies returns all tally rows ordered by type then tier.
func (d *Database) ListTallies() ([]TierTally, error) {
	if d == nil {
		return nil, errors.New("database is nil")
	}
	var rows []TierTally
	if err := d.gorm.Order("institution_type, tier").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// TotalClassifications sums the recorded tallies.
func (d *Database) TotalClassifications() (int64, error) {
	if d == nil {
		return 0, errors.New("database is nil")
	}
	var total int64
	row := d.gorm.Model(&TierTally{}).Select("COALESCE(SUM(count), 0)").Row()
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

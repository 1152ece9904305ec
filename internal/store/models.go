package store

import "time"

// TierTally aggregates classification outcomes per institution type.
// Only the type enum, the tier label, and a counter are stored; the
// submitted text never reaches the database.
type TierTally struct {
	ID              uint   `gorm:"primaryKey"`
	InstitutionType string `gorm:"size:64;uniqueIndex:idx_tally_key"`
	Tier            string `gorm:"size:32;uniqueIndex:idx_tally_key"`
	Count           int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

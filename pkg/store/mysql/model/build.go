package model

import "time"

// Build MySQL model for saved_builds table
type Build struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	BuildID string `gorm:"column:build_id;type:varchar(64);not null;uniqueIndex:idx_build_id_unique" json:"build_id"`
	Name    string `gorm:"column:name;type:varchar(255);not null" json:"name"`

	// Full configuration snapshot (JSON)
	Config JSONConfiguration `gorm:"column:config;type:json" json:"config"`

	// Last evaluation outcome, refreshed by the re-evaluation queue when the
	// catalog changes
	LastScore      int        `gorm:"column:last_score;not null;default:0" json:"last_score"`
	IsCompatible   bool       `gorm:"column:is_compatible;not null;default:0" json:"is_compatible"`
	CatalogVersion string     `gorm:"column:catalog_version;type:varchar(32)" json:"catalog_version"`
	EvaluatedAt    *time.Time `gorm:"column:evaluated_at;type:datetime(3)" json:"evaluated_at"`

	Status    string    `gorm:"column:status;type:varchar(32);not null;default:active;index:idx_status" json:"status"` // active, deleted
	CreatedAt time.Time `gorm:"column:created_at;type:datetime(3);not null;default:CURRENT_TIMESTAMP(3)" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:datetime(3);not null;default:CURRENT_TIMESTAMP(3)" json:"updated_at"`
}

// TableName specifies the table name for Build
func (Build) TableName() string {
	return "saved_builds"
}

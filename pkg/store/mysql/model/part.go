package model

import "time"

// Part MySQL model for catalog_parts table
type Part struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PartID       string    `gorm:"column:part_id;type:varchar(64);not null;uniqueIndex:idx_part_id_unique" json:"part_id"`
	Name         string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Manufacturer string    `gorm:"column:manufacturer;type:varchar(100)" json:"manufacturer"`
	Price        float64   `gorm:"column:price;type:decimal(10,2);not null;default:0" json:"price"`
	Category     string    `gorm:"column:category;type:varchar(32);not null;index:idx_category" json:"category"`

	// Typed specification variant (JSON)
	Specs JSONSpecs `gorm:"column:specs;type:json" json:"specs"`

	// Metadata
	Status    string    `gorm:"column:status;type:varchar(32);not null;default:active;index:idx_status" json:"status"` // active, deleted
	CreatedAt time.Time `gorm:"column:created_at;type:datetime(3);not null;default:CURRENT_TIMESTAMP(3)" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:datetime(3);not null;default:CURRENT_TIMESTAMP(3)" json:"updated_at"`
}

// TableName specifies the table name for Part
func (Part) TableName() string {
	return "catalog_parts"
}

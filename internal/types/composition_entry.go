package types

import (
	"time"
)

// CompositionEntry records one ingredient consumed to produce a lot.
// ResultingName is a snapshot of the ingredient display name at write time;
// it is never re-derived from the catalog afterwards.
type CompositionEntry struct {
	ID            uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	LotID         uint        `gorm:"not null;index" json:"lot_id"`
	Lot           *Lot        `gorm:"constraint:OnDelete:CASCADE;foreignKey:LotID;references:ID" json:"lot,omitempty"`
	IngredientID  uint        `gorm:"not null;index" json:"ingredient_id"`
	Ingredient    *Ingredient `gorm:"foreignKey:IngredientID;references:ID" json:"ingredient,omitempty"`
	ResultingName string      `gorm:"size:150;not null" json:"resulting_name"`
	Weight        float64     `gorm:"not null" json:"weight"`
	OriginPct     float64     `gorm:"not null;default:0" json:"origin_pct"`
	SourceLot     string      `gorm:"size:50" json:"source_lot"`
	ExpiryDate    string      `gorm:"size:20" json:"expiry_date"`
	CreatedAt     time.Time   `gorm:"not null;index" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"not null" json:"updated_at"`
}

func (CompositionEntry) TableName() string { return "composition_entry" }

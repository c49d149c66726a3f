package types

import (
	"time"

	"gorm.io/gorm"
)

// Lot is one production batch of an elaboration. Derived is true only when
// ParentLotID points at an existing lot.
type Lot struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ElaborationID  uint           `gorm:"not null;index" json:"elaboration_id"`
	Elaboration    *Elaboration   `gorm:"foreignKey:ElaborationID;references:ID" json:"elaboration,omitempty"`
	Code           string         `gorm:"size:20;not null;index" json:"code"`
	ProductionDate time.Time      `gorm:"not null" json:"production_date"`
	ExpiryDate     time.Time      `gorm:"not null" json:"expiry_date"`
	TotalWeight    float64        `gorm:"not null" json:"total_weight"`
	WeightUnit     string         `gorm:"size:10;not null;default:'kg'" json:"weight_unit"`
	StartTemp      *float64       `json:"start_temp,omitempty"`
	EndTemp        *float64       `json:"end_temp,omitempty"`
	ParentLotID    *uint          `gorm:"index" json:"parent_lot_id,omitempty"`
	ParentLot      *Lot           `gorm:"foreignKey:ParentLotID;references:ID" json:"parent_lot,omitempty"`
	Derived        bool           `gorm:"not null;default:false" json:"derived"`
	CreatedAt      time.Time      `gorm:"not null;index" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Lot) TableName() string { return "lot" }

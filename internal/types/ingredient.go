package types

import (
	"time"

	"gorm.io/gorm"
)

// Ingredient is a raw-material catalog entry referenced by composition entries.
type Ingredient struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string         `gorm:"size:120;not null" json:"name"`
	Allergens string         `gorm:"size:255" json:"allergens"`
	Supplier  string         `gorm:"size:120" json:"supplier"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Ingredient) TableName() string { return "ingredient" }

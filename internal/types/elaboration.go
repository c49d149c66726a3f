package types

import (
	"time"

	"gorm.io/gorm"
)

// ElaborationType classifies how a recipe is produced, which in turn decides
// the footer variant printed on its labels.
type ElaborationType int

const (
	TypeElaboration ElaborationType = 1
	TypeEscandallo  ElaborationType = 2
	TypePackaging   ElaborationType = 3
	TypeFreezing    ElaborationType = 4
)

// Normalize maps unknown type values onto TypeElaboration, which carries the
// default label rendering rules.
func (t ElaborationType) Normalize() ElaborationType {
	switch t {
	case TypeElaboration, TypeEscandallo, TypePackaging, TypeFreezing:
		return t
	default:
		return TypeElaboration
	}
}

// Elaboration is a recipe/process definition. Its name is frozen once a lot
// has been issued against it, because issued traceability codes embed the
// elaboration identity.
type Elaboration struct {
	ID           uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string          `gorm:"size:150;not null" json:"name"`
	Type         ElaborationType `gorm:"not null;default:1" json:"type"`
	Ingredients  string          `gorm:"type:text" json:"ingredients"`
	Allergens    string          `gorm:"size:255" json:"allergens"`
	Conservation string          `gorm:"size:255" json:"conservation"`
	DaysValid    int             `gorm:"not null;default:0" json:"days_valid"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`
}

func (Elaboration) TableName() string { return "elaboration" }

package db

import (
	"gorm.io/gorm"

	"github.com/obradorlabs/obrador-backend/internal/types"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Catalog
		&types.Ingredient{},
		&types.Elaboration{},

		// Traceability
		&types.Lot{},
		&types.CompositionEntry{},
	)
}

package repos

import (
	"gorm.io/gorm"

	"github.com/obradorlabs/obrador-backend/internal/data/repos/catalog"
	"github.com/obradorlabs/obrador-backend/internal/data/repos/traceability"
	"github.com/obradorlabs/obrador-backend/internal/platform/logger"
)

type IngredientRepo = catalog.IngredientRepo
type ElaborationRepo = catalog.ElaborationRepo

type LotRepo = traceability.LotRepo
type CompositionRepo = traceability.CompositionRepo

func NewIngredientRepo(db *gorm.DB, baseLog *logger.Logger) IngredientRepo {
	return catalog.NewIngredientRepo(db, baseLog)
}

func NewElaborationRepo(db *gorm.DB, baseLog *logger.Logger) ElaborationRepo {
	return catalog.NewElaborationRepo(db, baseLog)
}

func NewLotRepo(db *gorm.DB, baseLog *logger.Logger) LotRepo {
	return traceability.NewLotRepo(db, baseLog)
}

func NewCompositionRepo(db *gorm.DB, baseLog *logger.Logger) CompositionRepo {
	return traceability.NewCompositionRepo(db, baseLog)
}

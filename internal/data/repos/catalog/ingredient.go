package catalog

import (
	"errors"

	"gorm.io/gorm"

	"github.com/obradorlabs/obrador-backend/internal/pkg/dbctx"
	pkgerrors "github.com/obradorlabs/obrador-backend/internal/pkg/errors"
	"github.com/obradorlabs/obrador-backend/internal/platform/logger"
	"github.com/obradorlabs/obrador-backend/internal/types"
)

type IngredientRepo interface {
	Create(dbc dbctx.Context, ingredients []*types.Ingredient) ([]*types.Ingredient, error)
	GetByID(dbc dbctx.Context, id uint) (*types.Ingredient, error)
	GetByIDs(dbc dbctx.Context, ids []uint) ([]*types.Ingredient, error)
	List(dbc dbctx.Context) ([]*types.Ingredient, error)
	Exists(dbc dbctx.Context, id uint) (bool, error)
}

type ingredientRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIngredientRepo(db *gorm.DB, baseLog *logger.Logger) IngredientRepo {
	return &ingredientRepo{db: db, log: baseLog.With("repo", "IngredientRepo")}
}

func (r *ingredientRepo) handle(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *ingredientRepo) Create(dbc dbctx.Context, ingredients []*types.Ingredient) ([]*types.Ingredient, error) {
	if len(ingredients) == 0 {
		return []*types.Ingredient{}, nil
	}
	if err := r.handle(dbc).WithContext(dbc.Ctx).Create(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepo) GetByID(dbc dbctx.Context, id uint) (*types.Ingredient, error) {
	var result types.Ingredient
	err := r.handle(dbc).WithContext(dbc.Ctx).First(&result, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *ingredientRepo) GetByIDs(dbc dbctx.Context, ids []uint) ([]*types.Ingredient, error) {
	var results []*types.Ingredient
	if len(ids) == 0 {
		return results, nil
	}
	if err := r.handle(dbc).WithContext(dbc.Ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ingredientRepo) List(dbc dbctx.Context) ([]*types.Ingredient, error) {
	var results []*types.Ingredient
	if err := r.handle(dbc).WithContext(dbc.Ctx).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ingredientRepo) Exists(dbc dbctx.Context, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}
	var count int64
	if err := r.handle(dbc).WithContext(dbc.Ctx).
		Model(&types.Ingredient{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

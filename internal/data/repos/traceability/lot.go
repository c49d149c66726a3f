package traceability

import (
	"errors"

	"gorm.io/gorm"

	"github.com/obradorlabs/obrador-backend/internal/pkg/dbctx"
	pkgerrors "github.com/obradorlabs/obrador-backend/internal/pkg/errors"
	"github.com/obradorlabs/obrador-backend/internal/platform/logger"
	"github.com/obradorlabs/obrador-backend/internal/types"
)

type LotRepo interface {
	Create(dbc dbctx.Context, lot *types.Lot) (*types.Lot, error)
	GetByID(dbc dbctx.Context, id uint) (*types.Lot, error)
	Exists(dbc dbctx.Context, id uint) (bool, error)
	ListAll(dbc dbctx.Context) ([]*types.Lot, error)
	ListByElaboration(dbc dbctx.Context, elaborationID uint) ([]*types.Lot, error)
	// MostRecentCodeByElaboration returns the code of the newest lot for an
	// elaboration, empty when none exists. Ties on creation time break
	// towards the higher id.
	MostRecentCodeByElaboration(dbc dbctx.Context, elaborationID uint) (string, error)
}

type lotRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLotRepo(db *gorm.DB, baseLog *logger.Logger) LotRepo {
	return &lotRepo{db: db, log: baseLog.With("repo", "LotRepo")}
}

func (r *lotRepo) handle(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *lotRepo) Create(dbc dbctx.Context, lot *types.Lot) (*types.Lot, error) {
	if err := r.handle(dbc).WithContext(dbc.Ctx).Create(lot).Error; err != nil {
		return nil, err
	}
	return lot, nil
}

func (r *lotRepo) GetByID(dbc dbctx.Context, id uint) (*types.Lot, error) {
	var result types.Lot
	err := r.handle(dbc).WithContext(dbc.Ctx).First(&result, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *lotRepo) Exists(dbc dbctx.Context, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}
	var count int64
	if err := r.handle(dbc).WithContext(dbc.Ctx).
		Model(&types.Lot{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *lotRepo) ListAll(dbc dbctx.Context) ([]*types.Lot, error) {
	var results []*types.Lot
	if err := r.handle(dbc).WithContext(dbc.Ctx).
		Order("created_at DESC, id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *lotRepo) ListByElaboration(dbc dbctx.Context, elaborationID uint) ([]*types.Lot, error) {
	var results []*types.Lot
	if err := r.handle(dbc).WithContext(dbc.Ctx).
		Where("elaboration_id = ?", elaborationID).
		Order("created_at DESC, id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *lotRepo) MostRecentCodeByElaboration(dbc dbctx.Context, elaborationID uint) (string, error) {
	var result types.Lot
	err := r.handle(dbc).WithContext(dbc.Ctx).
		Where("elaboration_id = ?", elaborationID).
		Order("created_at DESC, id DESC").
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return result.Code, nil
}

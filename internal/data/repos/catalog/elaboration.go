package catalog

import (
	"errors"

	"gorm.io/gorm"

	"github.com/obradorlabs/obrador-backend/internal/pkg/dbctx"
	pkgerrors "github.com/obradorlabs/obrador-backend/internal/pkg/errors"
	"github.com/obradorlabs/obrador-backend/internal/platform/logger"
	"github.com/obradorlabs/obrador-backend/internal/types"
)

type ElaborationRepo interface {
	Create(dbc dbctx.Context, elaborations []*types.Elaboration) ([]*types.Elaboration, error)
	GetByID(dbc dbctx.Context, id uint) (*types.Elaboration, error)
	List(dbc dbctx.Context) ([]*types.Elaboration, error)
	Exists(dbc dbctx.Context, id uint) (bool, error)
	// UpdateName renames an elaboration. It fails with ErrElaborationRenamed
	// when any lot already references the elaboration, because issued
	// traceability codes embed its identity.
	UpdateName(dbc dbctx.Context, id uint, name string) error
}

type elaborationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewElaborationRepo(db *gorm.DB, baseLog *logger.Logger) ElaborationRepo {
	return &elaborationRepo{db: db, log: baseLog.With("repo", "ElaborationRepo")}
}

func (r *elaborationRepo) handle(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *elaborationRepo) Create(dbc dbctx.Context, elaborations []*types.Elaboration) ([]*types.Elaboration, error) {
	if len(elaborations) == 0 {
		return []*types.Elaboration{}, nil
	}
	if err := r.handle(dbc).WithContext(dbc.Ctx).Create(&elaborations).Error; err != nil {
		return nil, err
	}
	return elaborations, nil
}

func (r *elaborationRepo) GetByID(dbc dbctx.Context, id uint) (*types.Elaboration, error) {
	var result types.Elaboration
	err := r.handle(dbc).WithContext(dbc.Ctx).First(&result, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *elaborationRepo) List(dbc dbctx.Context) ([]*types.Elaboration, error) {
	var results []*types.Elaboration
	if err := r.handle(dbc).WithContext(dbc.Ctx).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *elaborationRepo) Exists(dbc dbctx.Context, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}
	var count int64
	if err := r.handle(dbc).WithContext(dbc.Ctx).
		Model(&types.Elaboration{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *elaborationRepo) UpdateName(dbc dbctx.Context, id uint, name string) error {
	tx := r.handle(dbc).WithContext(dbc.Ctx)

	current, err := r.GetByID(dbc, id)
	if err != nil {
		return err
	}
	if current.Name == name {
		return nil
	}

	var lots int64
	if err := tx.Model(&types.Lot{}).
		Where("elaboration_id = ?", id).
		Count(&lots).Error; err != nil {
		return err
	}
	if lots > 0 {
		return pkgerrors.ErrElaborationRenamed
	}

	return tx.Model(&types.Elaboration{}).
		Where("id = ?", id).
		Update("name", name).Error
}

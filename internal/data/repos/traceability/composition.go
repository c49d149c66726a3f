package traceability

import (
	"gorm.io/gorm"

	"github.com/obradorlabs/obrador-backend/internal/pkg/dbctx"
	"github.com/obradorlabs/obrador-backend/internal/platform/logger"
	"github.com/obradorlabs/obrador-backend/internal/types"
)

type CompositionRepo interface {
	Create(dbc dbctx.Context, entries []*types.CompositionEntry) ([]*types.CompositionEntry, error)
	GetByLotID(dbc dbctx.Context, lotID uint) ([]*types.CompositionEntry, error)
	ListAll(dbc dbctx.Context) ([]*types.CompositionEntry, error)
}

type compositionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCompositionRepo(db *gorm.DB, baseLog *logger.Logger) CompositionRepo {
	return &compositionRepo{db: db, log: baseLog.With("repo", "CompositionRepo")}
}

func (r *compositionRepo) handle(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *compositionRepo) Create(dbc dbctx.Context, entries []*types.CompositionEntry) ([]*types.CompositionEntry, error) {
	if len(entries) == 0 {
		return []*types.CompositionEntry{}, nil
	}
	if err := r.handle(dbc).WithContext(dbc.Ctx).Create(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *compositionRepo) GetByLotID(dbc dbctx.Context, lotID uint) ([]*types.CompositionEntry, error) {
	var results []*types.CompositionEntry
	if err := r.handle(dbc).WithContext(dbc.Ctx).
		Where("lot_id = ?", lotID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *compositionRepo) ListAll(dbc dbctx.Context) ([]*types.CompositionEntry, error) {
	var results []*types.CompositionEntry
	if err := r.handle(dbc).WithContext(dbc.Ctx).
		Order("created_at DESC, id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

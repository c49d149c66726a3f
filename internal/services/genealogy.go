package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/obradorlabs/obrador-backend/internal/data/repos"
	"github.com/obradorlabs/obrador-backend/internal/lotcode"
	"github.com/obradorlabs/obrador-backend/internal/pkg/dbctx"
	pkgerrors "github.com/obradorlabs/obrador-backend/internal/pkg/errors"
	"github.com/obradorlabs/obrador-backend/internal/platform/logger"
	"github.com/obradorlabs/obrador-backend/internal/types"
)

// CompositionInput is one ingredient consumed by the lot being created.
type CompositionInput struct {
	IngredientID  uint    `json:"ingredient_id"`
	ResultingName string  `json:"resulting_name"`
	Weight        float64 `json:"weight"`
	OriginPct     float64 `json:"origin_pct"`
	SourceLot     string  `json:"source_lot"`
	ExpiryDate    string  `json:"expiry_date"`
}

// CreateLotInput carries everything needed to register a production batch.
type CreateLotInput struct {
	ElaborationID  uint               `json:"elaboration_id"`
	ProductionDate time.Time          `json:"production_date"`
	ExpiryDate     time.Time          `json:"expiry_date"`
	TotalWeight    float64            `json:"total_weight"`
	WeightUnit     string             `json:"weight_unit"`
	StartTemp      *float64           `json:"start_temp,omitempty"`
	EndTemp        *float64           `json:"end_temp,omitempty"`
	ParentLotID    *uint              `json:"parent_lot_id,omitempty"`
	Entries        []CompositionInput `json:"entries"`
}

// GenealogyService owns lots and their composition entries: code generation,
// parent linkage and the atomic create of a lot with its entries.
type GenealogyService interface {
	MostRecentCode(ctx context.Context, elaborationID uint) (string, error)
	CreateLot(ctx context.Context, input CreateLotInput) (*types.Lot, error)
	GetLot(ctx context.Context, id uint) (*types.Lot, error)
	ListLots(ctx context.Context) ([]*types.Lot, error)
	ListLotsByElaboration(ctx context.Context, elaborationID uint) ([]*types.Lot, error)
	GetLotComposition(ctx context.Context, lotID uint) ([]*types.CompositionEntry, error)
	ListComposition(ctx context.Context) ([]*types.CompositionEntry, error)
}

type genealogyService struct {
	db           *gorm.DB
	lots         repos.LotRepo
	composition  repos.CompositionRepo
	ingredients  repos.IngredientRepo
	elaborations repos.ElaborationRepo
	log          *logger.Logger
	now          func() time.Time
}

func NewGenealogyService(
	db *gorm.DB,
	lots repos.LotRepo,
	composition repos.CompositionRepo,
	ingredients repos.IngredientRepo,
	elaborations repos.ElaborationRepo,
	baseLog *logger.Logger,
) GenealogyService {
	return &genealogyService{
		db:           db,
		lots:         lots,
		composition:  composition,
		ingredients:  ingredients,
		elaborations: elaborations,
		log:          baseLog.With("service", "GenealogyService"),
		now:          time.Now,
	}
}

func (s *genealogyService) MostRecentCode(ctx context.Context, elaborationID uint) (string, error) {
	return s.lots.MostRecentCodeByElaboration(dbctx.Context{Ctx: ctx}, elaborationID)
}

func (s *genealogyService) validate(input CreateLotInput) error {
	if input.ElaborationID == 0 {
		return fmt.Errorf("%w: elaboration_id is required", pkgerrors.ErrInvalidArgument)
	}
	if input.ProductionDate.IsZero() {
		return fmt.Errorf("%w: production_date is required", pkgerrors.ErrInvalidArgument)
	}
	if input.ExpiryDate.IsZero() {
		return fmt.Errorf("%w: expiry_date is required", pkgerrors.ErrInvalidArgument)
	}
	if input.TotalWeight <= 0 {
		return fmt.Errorf("%w: total_weight must be positive", pkgerrors.ErrInvalidArgument)
	}
	return nil
}

// CreateLot registers a lot and all of its composition entries in one
// transaction. The traceability code is derived from the most recent code of
// the same elaboration inside that transaction. An unknown ingredient in any
// entry aborts the whole create, lot included. An unknown parent lot does
// not: the reference is dropped and the lot is created underived.
func (s *genealogyService) CreateLot(ctx context.Context, input CreateLotInput) (*types.Lot, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	var created *types.Lot
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}

		ok, err := s.elaborations.Exists(dbc, input.ElaborationID)
		if err != nil {
			return fmt.Errorf("check elaboration: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: unknown elaboration %d", pkgerrors.ErrInvalidArgument, input.ElaborationID)
		}

		parentID := input.ParentLotID
		derived := false
		if parentID != nil {
			exists, err := s.lots.Exists(dbc, *parentID)
			if err != nil {
				return fmt.Errorf("check parent lot: %w", err)
			}
			if exists {
				derived = true
			} else {
				// Observed behavior of the production floor: a bad
				// parent reference never blocks lot creation.
				s.log.Warn("unknown parent lot reference dropped",
					"elaboration_id", input.ElaborationID,
					"parent_lot_id", *parentID,
				)
				parentID = nil
			}
		}

		prev, err := s.lots.MostRecentCodeByElaboration(dbc, input.ElaborationID)
		if err != nil {
			return fmt.Errorf("read most recent code: %w", err)
		}

		unit := input.WeightUnit
		if unit == "" {
			unit = "kg"
		}

		lot := &types.Lot{
			ElaborationID:  input.ElaborationID,
			Code:           lotcode.Next(prev, input.ElaborationID, s.now()),
			ProductionDate: input.ProductionDate,
			ExpiryDate:     input.ExpiryDate,
			TotalWeight:    input.TotalWeight,
			WeightUnit:     unit,
			StartTemp:      input.StartTemp,
			EndTemp:        input.EndTemp,
			ParentLotID:    parentID,
			Derived:        derived,
		}
		if _, err := s.lots.Create(dbc, lot); err != nil {
			return fmt.Errorf("create lot: %w", err)
		}

		entries, err := s.buildEntries(dbc, lot.ID, input.Entries)
		if err != nil {
			return err
		}
		if _, err := s.composition.Create(dbc, entries); err != nil {
			return fmt.Errorf("create composition entries: %w", err)
		}

		created = lot
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("lot created",
		"lot_id", created.ID,
		"elaboration_id", created.ElaborationID,
		"code", created.Code,
		"entries", len(input.Entries),
		"derived", created.Derived,
	)
	return created, nil
}

// buildEntries resolves every ingredient reference and snapshots its display
// name. The ingredient must exist; a missing reference fails the whole lot
// creation with the offending index.
func (s *genealogyService) buildEntries(dbc dbctx.Context, lotID uint, inputs []CompositionInput) ([]*types.CompositionEntry, error) {
	entries := make([]*types.CompositionEntry, 0, len(inputs))
	for i, in := range inputs {
		if in.IngredientID == 0 {
			return nil, &pkgerrors.CompositionError{Index: i}
		}
		ing, err := s.ingredients.GetByID(dbc, in.IngredientID)
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, &pkgerrors.CompositionError{Index: i, IngredientID: in.IngredientID}
		}
		if err != nil {
			return nil, fmt.Errorf("resolve ingredient %d: %w", in.IngredientID, err)
		}

		name := in.ResultingName
		if name == "" {
			name = ing.Name
		}
		entries = append(entries, &types.CompositionEntry{
			LotID:         lotID,
			IngredientID:  in.IngredientID,
			ResultingName: name,
			Weight:        in.Weight,
			OriginPct:     in.OriginPct,
			SourceLot:     in.SourceLot,
			ExpiryDate:    in.ExpiryDate,
		})
	}
	return entries, nil
}

func (s *genealogyService) GetLot(ctx context.Context, id uint) (*types.Lot, error) {
	return s.lots.GetByID(dbctx.Context{Ctx: ctx}, id)
}

func (s *genealogyService) ListLots(ctx context.Context) ([]*types.Lot, error) {
	return s.lots.ListAll(dbctx.Context{Ctx: ctx})
}

func (s *genealogyService) ListLotsByElaboration(ctx context.Context, elaborationID uint) ([]*types.Lot, error) {
	return s.lots.ListByElaboration(dbctx.Context{Ctx: ctx}, elaborationID)
}

func (s *genealogyService) GetLotComposition(ctx context.Context, lotID uint) ([]*types.CompositionEntry, error) {
	return s.composition.GetByLotID(dbctx.Context{Ctx: ctx}, lotID)
}

func (s *genealogyService) ListComposition(ctx context.Context) ([]*types.CompositionEntry, error) {
	return s.composition.ListAll(dbctx.Context{Ctx: ctx})
}

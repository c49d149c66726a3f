package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/obradorlabs/obrador-backend/internal/types"
)

func SeedIngredient(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Ingredient {
	tb.Helper()
	ing := &types.Ingredient{Name: name}
	if err := tx.WithContext(ctx).Create(ing).Error; err != nil {
		tb.Fatalf("seed ingredient: %v", err)
	}
	return ing
}

func SeedElaboration(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, typ types.ElaborationType) *types.Elaboration {
	tb.Helper()
	e := &types.Elaboration{Name: name, Type: typ, DaysValid: 2}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed elaboration: %v", err)
	}
	return e
}

func SeedLot(tb testing.TB, ctx context.Context, tx *gorm.DB, elaborationID uint, code string, createdAt time.Time) *types.Lot {
	tb.Helper()
	lot := &types.Lot{
		ElaborationID:  elaborationID,
		Code:           code,
		ProductionDate: createdAt,
		ExpiryDate:     createdAt.AddDate(0, 0, 2),
		TotalWeight:    1,
		WeightUnit:     "kg",
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}
	if err := tx.WithContext(ctx).Create(lot).Error; err != nil {
		tb.Fatalf("seed lot: %v", err)
	}
	return lot
}

func PtrUint(v uint) *uint { return &v }

func PtrFloat(v float64) *float64 { return &v }

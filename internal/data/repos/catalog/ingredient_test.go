package catalog

import (
	"context"
	"testing"

	"github.com/obradorlabs/obrador-backend/internal/data/repos/testutil"
	"github.com/obradorlabs/obrador-backend/internal/pkg/dbctx"
	"github.com/obradorlabs/obrador-backend/internal/types"
)

func TestIngredientRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewIngredientRepo(db, testutil.Logger(t))

	ing := &types.Ingredient{Name: "Leche de cabra", Allergens: "lactea"}
	if _, err := repo.Create(dbc, []*types.Ingredient{ing}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ing.ID == 0 {
		t.Fatalf("Create did not assign an id")
	}

	got, err := repo.GetByID(dbc, ing.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Leche de cabra" {
		t.Fatalf("GetByID name = %q", got.Name)
	}

	if rows, err := repo.GetByIDs(dbc, []uint{ing.ID}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}
	if rows, err := repo.List(dbc); err != nil || len(rows) != 1 {
		t.Fatalf("List: err=%v len=%d", err, len(rows))
	}

	if ok, err := repo.Exists(dbc, ing.ID); err != nil || !ok {
		t.Fatalf("Exists(existing): ok=%v err=%v", ok, err)
	}
	if ok, err := repo.Exists(dbc, 99999); err != nil || ok {
		t.Fatalf("Exists(missing): ok=%v err=%v", ok, err)
	}
	if ok, err := repo.Exists(dbc, 0); err != nil || ok {
		t.Fatalf("Exists(zero): ok=%v err=%v", ok, err)
	}
}

func TestIngredientRepoGetByIDMissing(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := NewIngredientRepo(db, testutil.Logger(t))

	if _, err := repo.GetByID(dbc, 42); err == nil {
		t.Fatalf("GetByID on missing id should fail")
	}
}

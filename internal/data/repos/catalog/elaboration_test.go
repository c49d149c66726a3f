package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/obradorlabs/obrador-backend/internal/data/repos/testutil"
	"github.com/obradorlabs/obrador-backend/internal/pkg/dbctx"
	pkgerrors "github.com/obradorlabs/obrador-backend/internal/pkg/errors"
	"github.com/obradorlabs/obrador-backend/internal/types"
)

func TestElaborationRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewElaborationRepo(db, testutil.Logger(t))

	e := &types.Elaboration{Name: "Queso fresco", Type: types.TypeElaboration, DaysValid: 5}
	if _, err := repo.Create(dbc, []*types.Elaboration{e}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(dbc, e.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.DaysValid != 5 {
		t.Fatalf("GetByID days_valid = %d", got.DaysValid)
	}

	if ok, err := repo.Exists(dbc, e.ID); err != nil || !ok {
		t.Fatalf("Exists: ok=%v err=%v", ok, err)
	}
	if rows, err := repo.List(dbc); err != nil || len(rows) != 1 {
		t.Fatalf("List: err=%v len=%d", err, len(rows))
	}
}

func TestElaborationRepoRename(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewElaborationRepo(db, testutil.Logger(t))

	e := testutil.SeedElaboration(t, ctx, tx, "Queso curado", types.TypeElaboration)

	// Rename is allowed while no lot references the elaboration.
	if err := repo.UpdateName(dbc, e.ID, "Queso semicurado"); err != nil {
		t.Fatalf("UpdateName before lots: %v", err)
	}
	got, err := repo.GetByID(dbc, e.ID)
	if err != nil || got.Name != "Queso semicurado" {
		t.Fatalf("after rename: name=%q err=%v", got.Name, err)
	}

	testutil.SeedLot(t, ctx, tx, e.ID, "251001001", time.Now().UTC())

	if err := repo.UpdateName(dbc, e.ID, "Otro nombre"); !errors.Is(err, pkgerrors.ErrElaborationRenamed) {
		t.Fatalf("UpdateName after lots: err=%v, want ErrElaborationRenamed", err)
	}

	// Writing back the unchanged name is a no-op, not a failure.
	if err := repo.UpdateName(dbc, e.ID, "Queso semicurado"); err != nil {
		t.Fatalf("UpdateName same name: %v", err)
	}
}

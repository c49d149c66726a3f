package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/obradorlabs/obrador-backend/internal/data/repos"
	"github.com/obradorlabs/obrador-backend/internal/data/repos/testutil"
	"github.com/obradorlabs/obrador-backend/internal/label"
	"github.com/obradorlabs/obrador-backend/internal/types"
)

type captureSink struct {
	doc    []byte
	device string
	err    error
}

func (c *captureSink) Print(ctx context.Context, doc []byte, device string) error {
	c.doc = doc
	c.device = device
	return c.err
}

func newLabel(t *testing.T) (LabelService, *captureSink, func() uint) {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	sink := &captureSink{}
	svc := NewLabelService(
		repos.NewLotRepo(db, log),
		repos.NewElaborationRepo(db, log),
		sink,
		label.Defaults{DaysValid: 2, RegistryNumber: "10.12345/GI"},
		log,
	)
	svc.(*labelService).now = func() time.Time {
		return time.Date(2025, 10, 3, 9, 0, 0, 0, time.UTC)
	}

	ctx := context.Background()
	seed := func() uint {
		elab := &types.Elaboration{
			Name:         "Queso de cabra curado",
			Type:         types.TypeElaboration,
			Ingredients:  "leche de cabra, sal, cuajo",
			Allergens:    "lactea",
			Conservation: "mantener entre 0 y 5 grados",
			DaysValid:    30,
		}
		if err := db.WithContext(ctx).Create(elab).Error; err != nil {
			t.Fatalf("seed elaboration: %v", err)
		}
		lot := testutil.SeedLot(t, ctx, db, elab.ID, "251001003", time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC))
		return lot.ID
	}
	return svc, sink, seed
}

func TestRenderUsesDefaults(t *testing.T) {
	svc, _, _ := newLabel(t)
	doc := string(svc.Render(label.Request{ProductName: "queso"}))

	if !strings.Contains(doc, `"QUESO"`) {
		t.Fatalf("doc missing uppercased product name:\n%s", doc)
	}
	if !strings.Contains(doc, "R.S. 10.12345/GI") {
		t.Fatalf("doc missing default registry number:\n%s", doc)
	}
	// Default days-valid horizon: 03/10/2025 + 2.
	if !strings.Contains(doc, "05/10/2025") {
		t.Fatalf("doc missing computed expiry:\n%s", doc)
	}
}

func TestRenderForLotFillsFromStore(t *testing.T) {
	svc, _, seed := newLabel(t)
	lotID := seed()

	doc, err := svc.RenderForLot(context.Background(), lotID, label.Request{})
	if err != nil {
		t.Fatalf("RenderForLot: %v", err)
	}
	text := string(doc)

	// The 21-character name exceeds the one-line title budget, so it is
	// printed as two balanced lines.
	for _, want := range []string{
		"QUESO DE",
		"CABRA CURADO",
		"leche de cabra, sal, cuajo",
		"ALERGENOS: LACTEA",
		"251001003",
		"03/10/2025", // lot expiry date from the store
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("doc missing %q:\n%s", want, text)
		}
	}
}

func TestRenderForLotOverridesWin(t *testing.T) {
	svc, _, seed := newLabel(t)
	lotID := seed()

	doc, err := svc.RenderForLot(context.Background(), lotID, label.Request{ProductName: "edicion especial"})
	if err != nil {
		t.Fatalf("RenderForLot: %v", err)
	}
	if !strings.Contains(string(doc), "EDICION ESPECIAL") {
		t.Fatalf("override product name not applied:\n%s", doc)
	}
}

func TestRenderForLotUnknownLot(t *testing.T) {
	svc, _, _ := newLabel(t)
	if _, err := svc.RenderForLot(context.Background(), 999, label.Request{}); err == nil {
		t.Fatalf("RenderForLot on missing lot should fail")
	}
}

func TestPrintSurfacesSinkFailure(t *testing.T) {
	svc, sink, _ := newLabel(t)

	doc := svc.Render(label.Request{ProductName: "queso"})
	if err := svc.Print(context.Background(), doc, "10.0.0.5:9100"); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if sink.device != "10.0.0.5:9100" || len(sink.doc) == 0 {
		t.Fatalf("sink not invoked: device=%q bytes=%d", sink.device, len(sink.doc))
	}

	sink.err = errors.New("spooler offline")
	if err := svc.Print(context.Background(), doc, ""); err == nil {
		t.Fatalf("Print should surface sink failure")
	}
}

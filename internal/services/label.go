package services

import (
	"context"
	"fmt"
	"time"

	"github.com/obradorlabs/obrador-backend/internal/data/repos"
	"github.com/obradorlabs/obrador-backend/internal/label"
	"github.com/obradorlabs/obrador-backend/internal/pkg/dbctx"
	"github.com/obradorlabs/obrador-backend/internal/platform/logger"
	"github.com/obradorlabs/obrador-backend/internal/platform/printer"
)

// LabelService renders label documents and hands them to the printer sink.
// Rendering itself never touches the store or the printer; RenderForLot only
// reads, Print only sends.
type LabelService interface {
	// Render encodes an ad-hoc label request.
	Render(req label.Request) []byte
	// RenderForLot fills a request from a stored lot and its elaboration,
	// then encodes it. Fields already set on req win over stored data.
	RenderForLot(ctx context.Context, lotID uint, req label.Request) ([]byte, error)
	// Print sends an encoded document to a printer device.
	Print(ctx context.Context, doc []byte, device string) error
}

type labelService struct {
	lots         repos.LotRepo
	elaborations repos.ElaborationRepo
	sink         printer.Service
	encoder      *label.Encoder
	defaults     label.Defaults
	log          *logger.Logger
	now          func() time.Time
}

func NewLabelService(
	lots repos.LotRepo,
	elaborations repos.ElaborationRepo,
	sink printer.Service,
	defaults label.Defaults,
	baseLog *logger.Logger,
) LabelService {
	return &labelService{
		lots:         lots,
		elaborations: elaborations,
		sink:         sink,
		encoder:      label.NewEncoder(nil),
		defaults:     defaults,
		log:          baseLog.With("service", "LabelService"),
		now:          time.Now,
	}
}

func (s *labelService) Render(req label.Request) []byte {
	content := label.NewContent(req, s.defaults, s.now())
	return s.encoder.Encode(content)
}

func (s *labelService) RenderForLot(ctx context.Context, lotID uint, req label.Request) ([]byte, error) {
	dbc := dbctx.Context{Ctx: ctx}

	lot, err := s.lots.GetByID(dbc, lotID)
	if err != nil {
		return nil, fmt.Errorf("load lot %d: %w", lotID, err)
	}
	elab, err := s.elaborations.GetByID(dbc, lot.ElaborationID)
	if err != nil {
		return nil, fmt.Errorf("load elaboration %d: %w", lot.ElaborationID, err)
	}

	if req.ProductName == "" {
		req.ProductName = elab.Name
	}
	if req.Ingredients == "" {
		req.Ingredients = elab.Ingredients
	}
	if req.Allergens == "" {
		req.Allergens = elab.Allergens
	}
	if req.Conservation == "" {
		req.Conservation = elab.Conservation
	}
	if req.ElaborationType == 0 {
		req.ElaborationType = int(elab.Type)
	}
	if req.LotCode == "" {
		req.LotCode = lot.Code
	}
	if req.ElaborationDate == "" {
		req.ElaborationDate = lot.ProductionDate.Format(label.DateLayout)
	}
	if req.ExpiryDate == "" {
		req.ExpiryDate = lot.ExpiryDate.Format(label.DateLayout)
	}

	return s.Render(req), nil
}

func (s *labelService) Print(ctx context.Context, doc []byte, device string) error {
	if err := s.sink.Print(ctx, doc, device); err != nil {
		s.log.Error("print failed", "device", device, "error", err)
		return err
	}
	return nil
}

// Package label turns production data for a lot into the positioned-text
// document understood by the thermal label printer. It is split into three
// stages: content normalization (this file), text layout (layout.go) and
// protocol encoding (encoder.go). None of the stages perform I/O and the
// whole pipeline is deterministic for a fixed clock.
package label

import (
	"strings"
	"time"

	"github.com/obradorlabs/obrador-backend/internal/types"
)

// DateLayout is the date format printed on labels.
const DateLayout = "02/01/2006"

// DefaultConservation is printed when the request carries no conservation
// instructions.
const DefaultConservation = "CONSERVAR EN LUGAR FRESCO Y SECO"

// Request is the loosely-typed ingress payload for a label. Product name and
// lot code may be blank; blank sections render as nothing.
type Request struct {
	ProductName     string `json:"product_name"`
	Ingredients     string `json:"ingredients"`
	Allergens       string `json:"allergens"`
	LotCode         string `json:"lot_code"`
	Conservation    string `json:"conservation"`
	ElaborationType int    `json:"elaboration_type"`
	DaysValid       *int   `json:"days_valid,omitempty"`
	ElaborationDate string `json:"elaboration_date"`
	ExpiryDate      string `json:"expiry_date"`
	Copies          int    `json:"copies"`
	RegistryNumber  string `json:"registry_number"`
}

// Defaults are the configured fallbacks applied when a request leaves the
// corresponding field empty.
type Defaults struct {
	DaysValid      int
	RegistryNumber string
}

// Content is the strict, normalized input consumed by the layout engine.
type Content struct {
	ProductName     string
	Ingredients     string
	Allergens       string
	LotCode         string
	Conservation    string
	Type            types.ElaborationType
	ElaborationDate string
	ExpiryDate      string
	Copies          int
	RegistryNumber  string
}

// NewContent normalizes a raw request. It never fails: missing optional
// fields fall back to defaults and unknown elaboration types fall back to
// the plain elaboration rendering rules.
func NewContent(req Request, def Defaults, now time.Time) Content {
	expiry := strings.TrimSpace(req.ExpiryDate)
	if expiry == "" {
		days := def.DaysValid
		if req.DaysValid != nil {
			days = *req.DaysValid
		}
		expiry = now.AddDate(0, 0, days).Format(DateLayout)
	}

	conservation := strings.TrimSpace(req.Conservation)
	if conservation == "" {
		conservation = DefaultConservation
	}

	registry := strings.TrimSpace(req.RegistryNumber)
	if registry == "" {
		registry = def.RegistryNumber
	}

	copies := req.Copies
	if copies < 1 {
		copies = 1
	}

	return Content{
		ProductName:     strings.ToUpper(strings.TrimSpace(req.ProductName)),
		Ingredients:     strings.TrimSpace(req.Ingredients),
		Allergens:       strings.ToUpper(strings.TrimSpace(req.Allergens)),
		LotCode:         strings.TrimSpace(req.LotCode),
		Conservation:    conservation,
		Type:            types.ElaborationType(req.ElaborationType).Normalize(),
		ElaborationDate: strings.TrimSpace(req.ElaborationDate),
		ExpiryDate:      expiry,
		Copies:          copies,
		RegistryNumber:  registry,
	}
}

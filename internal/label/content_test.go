package label

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/obradorlabs/obrador-backend/internal/types"
)

var contentNow = time.Date(2025, 10, 3, 9, 30, 0, 0, time.UTC)

func TestNewContentNormalizesText(t *testing.T) {
	c := NewContent(Request{
		ProductName: "  queso fresco ",
		Ingredients: "  leche, sal ",
		Allergens:   " lactea ",
		LotCode:     " 251001001 ",
	}, Defaults{DaysValid: 2}, contentNow)

	assert.Equal(t, "QUESO FRESCO", c.ProductName)
	assert.Equal(t, "leche, sal", c.Ingredients)
	assert.Equal(t, "LACTEA", c.Allergens)
	assert.Equal(t, "251001001", c.LotCode)
}

func TestNewContentExpiryFromDefaultDays(t *testing.T) {
	c := NewContent(Request{}, Defaults{DaysValid: 2}, contentNow)
	assert.Equal(t, "05/10/2025", c.ExpiryDate)
}

func TestNewContentExpiryFromOverride(t *testing.T) {
	days := 10
	c := NewContent(Request{DaysValid: &days}, Defaults{DaysValid: 2}, contentNow)
	assert.Equal(t, "13/10/2025", c.ExpiryDate)
}

func TestNewContentExplicitExpiryWins(t *testing.T) {
	days := 10
	c := NewContent(Request{ExpiryDate: "31/12/2025", DaysValid: &days}, Defaults{DaysValid: 2}, contentNow)
	assert.Equal(t, "31/12/2025", c.ExpiryDate)
}

func TestNewContentConservationDefault(t *testing.T) {
	c := NewContent(Request{}, Defaults{}, contentNow)
	assert.Equal(t, DefaultConservation, c.Conservation)

	c = NewContent(Request{Conservation: " entre 0 y 5 grados "}, Defaults{}, contentNow)
	assert.Equal(t, "entre 0 y 5 grados", c.Conservation)
}

func TestNewContentTypeFallback(t *testing.T) {
	for _, raw := range []int{0, 5, -1, 99} {
		c := NewContent(Request{ElaborationType: raw}, Defaults{}, contentNow)
		assert.Equal(t, types.TypeElaboration, c.Type, "raw type %d", raw)
	}
	c := NewContent(Request{ElaborationType: 3}, Defaults{}, contentNow)
	assert.Equal(t, types.TypePackaging, c.Type)
}

func TestNewContentRegistryAndCopies(t *testing.T) {
	c := NewContent(Request{}, Defaults{RegistryNumber: "10.12345/GI"}, contentNow)
	assert.Equal(t, "10.12345/GI", c.RegistryNumber)
	assert.Equal(t, 1, c.Copies)

	c = NewContent(Request{RegistryNumber: "99.00001/XX", Copies: 3}, Defaults{RegistryNumber: "10.12345/GI"}, contentNow)
	assert.Equal(t, "99.00001/XX", c.RegistryNumber)
	assert.Equal(t, 3, c.Copies)
}

func TestNewContentBlankSectionsAllowed(t *testing.T) {
	c := NewContent(Request{}, Defaults{}, contentNow)
	assert.Empty(t, c.ProductName)
	assert.Empty(t, c.LotCode)
}

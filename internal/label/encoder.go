package label

import (
	"fmt"
	"strings"

	"github.com/obradorlabs/obrador-backend/internal/types"
)

// Captions and control instructions of the printer's text protocol. Every
// instruction is one CRLF-terminated line; the printer rejects the whole
// document on a malformed line, so all user text goes through Escape.
const (
	captionIngredients  = "INGREDIENTES:"
	captionAllergens    = "ALERGENOS: "
	captionLot          = "LOTE:"
	captionRegistry     = "R.S. "
	captionBestBefore   = "CONSUMIR PREFERENTEMENTE ANTES DEL: "
	captionPackagedOn   = "FECHA DE ENVASADO: "
	captionExpiresOn    = "FECHA DE CADUCIDAD: "
	captionFrozenOn     = "FECHA DE CONGELACION: "
	captionConsumeBy    = "CONSUMIR PREFERENTEMENTE ANTES DE: "

	cmdSize       = "SIZE 105,104"
	cmdGap        = "GAP 3,0"
	cmdCut        = "SET CUT 1"
	cmdDirection  = "DIRECTION 1"
	cmdDensity    = "DENSITY 8"
	cmdDateFormat = `DATEFORMAT "DD/MM/YY"`
	cmdTimeFormat = `TIMEFORMAT "HH:MM"`
	cmdLogo       = `LOGO 16,24,"LOGO1"`
	cmdEnd        = "END"

	crlf = "\r\n"
)

// fontFor maps a layout style onto the protocol's font id and multipliers.
func fontFor(s Style) (font, xMul, yMul int) {
	switch s {
	case StyleTitle, StyleLot:
		return 3, 2, 2
	case StyleCaption:
		return 2, 1, 1
	case StyleSmall:
		return 0, 1, 1
	default:
		return 1, 1, 1
	}
}

// Escape makes arbitrary text safe for embedding in a quoted protocol
// argument. Backslash and double quote are backslash-escaped; control bytes
// are emitted as \xHH so no input can break a command line.
func Escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '"':
			b.WriteString(`\"`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02X`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Encoder serializes a normalized label into the printer's command
// language. Identical content yields byte-identical output.
type Encoder struct {
	eng *Engine
}

func NewEncoder(eng *Engine) *Encoder {
	if eng == nil {
		eng = NewEngine()
	}
	return &Encoder{eng: eng}
}

func (enc *Encoder) text(c Cell) string {
	font, xMul, yMul := fontFor(c.Style)
	return fmt.Sprintf(`TEXT %d,%d,%d,%d,%d,"%s"`, c.X, c.Y, font, xMul, yMul, Escape(c.Text))
}

// footerCells renders the type-conditional date block.
func (enc *Encoder) footerCells(c Content) []Cell {
	m := enc.eng.M
	switch c.Type {
	case types.TypePackaging:
		return []Cell{
			{X: m.LeftMargin, Y: m.FooterY, Style: StyleCaption, Text: captionPackagedOn + c.ElaborationDate},
			{X: m.LeftMargin, Y: m.FooterY + m.FooterGap, Style: StyleCaption, Text: captionExpiresOn + c.ExpiryDate},
		}
	case types.TypeFreezing:
		return []Cell{
			{X: m.LeftMargin, Y: m.FooterY, Style: StyleCaption, Text: captionFrozenOn + c.ElaborationDate},
			{X: m.LeftMargin, Y: m.FooterY + m.FooterGap, Style: StyleCaption, Text: captionConsumeBy + c.ExpiryDate},
		}
	default:
		return []Cell{
			{X: m.LeftMargin, Y: m.FooterY, Style: StyleCaption, Text: captionBestBefore + c.ExpiryDate},
		}
	}
}

// Encode assembles the full document in the protocol's fixed order.
func (enc *Encoder) Encode(c Content) []byte {
	m := enc.eng.M

	lines := []string{
		cmdSize,
		cmdGap,
		cmdCut,
		cmdDirection,
		cmdDensity,
		fmt.Sprintf("COPIES %d", c.Copies),
		cmdDateFormat,
		cmdTimeFormat,
		cmdLogo,
	}

	for _, cell := range enc.eng.TitleCells(c.ProductName) {
		lines = append(lines, enc.text(cell))
	}
	for _, cell := range enc.eng.IngredientCells(c.Ingredients, c.Allergens) {
		lines = append(lines, enc.text(cell))
	}
	for _, cell := range enc.eng.ConservationCells(c.Conservation) {
		lines = append(lines, enc.text(cell))
	}
	for _, cell := range enc.footerCells(c) {
		lines = append(lines, enc.text(cell))
	}
	if c.LotCode != "" {
		lines = append(lines, enc.text(Cell{X: m.LeftMargin, Y: m.LotCaptionY, Style: StyleCaption, Text: captionLot}))
		lines = append(lines, enc.text(Cell{X: enc.eng.LotCodeX(c.LotCode), Y: m.LotCodeY, Style: StyleLot, Text: c.LotCode}))
	}
	lines = append(lines, enc.text(Cell{X: m.LeftMargin, Y: m.RegistryY, Style: StyleSmall, Text: captionRegistry + c.RegistryNumber}))
	lines = append(lines, cmdEnd)

	return []byte(strings.Join(lines, crlf) + crlf)
}

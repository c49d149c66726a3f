package label

import (
	"math"
	"strings"
)

// Style selects the printer font a cell is drawn with.
type Style int

const (
	StyleBody Style = iota
	StyleTitle
	StyleCaption
	StyleLot
	StyleSmall
)

// Cell is one positioned text draw instruction.
type Cell struct {
	X, Y  int
	Style Style
	Text  string
}

// Metrics are the fixed-width heuristics and label positions used by the
// layout engine. They approximate the printer's fonts well enough for a
// fixed label size; no real glyph measurement is done.
type Metrics struct {
	// Title block.
	TitleCharWidth  float64 // estimated px per title character
	TitleMaxWidth   float64 // widest single-line title
	TitleCenterX    float64 // horizontal center of the title area
	TitleHalfWidth  float64 // centering weight per character
	TitleSingleY    int     // y of a one-line title
	TitleFirstY     int     // y of the first of two title lines
	TitleLineGap    int
	// Ingredient block.
	IngredientWrap  int // wrap width in characters
	LeftMargin      int
	RowHeight       int
	HeaderY         int // default y of the INGREDIENTES caption
	HeaderRaisedY   int // y used when the block would overflow
	HeaderGap       int // gap between caption and first line
	AllergenGap     int // gap between last line and the allergen row
	PrintableBottom int // allergen row must stay at or above this
	// Conservation block.
	ConservationWrap int
	ConservationY    int
	// Footer, lot and registry rows.
	FooterY      int
	FooterGap    int
	LotCaptionY  int
	LotCodeY     int
	LotCharWidth float64
	LotCenterX   float64
	LotMinX      int
	LotMaxX      int
	RegistryY    int
}

// DefaultMetrics matches the shop's 105x104mm label stock at 8 dots/mm.
var DefaultMetrics = Metrics{
	TitleCharWidth: 11.5,
	TitleMaxWidth:  220,
	TitleCenterX:   224,
	TitleHalfWidth: 22.5,
	TitleSingleY:   64,
	TitleFirstY:    40,
	TitleLineGap:   35,

	IngredientWrap:  56,
	LeftMargin:      40,
	RowHeight:       25,
	HeaderY:         250,
	HeaderRaisedY:   200,
	HeaderGap:       30,
	AllergenGap:     10,
	PrintableBottom: 560,

	ConservationWrap: 48,
	ConservationY:    620,

	FooterY:      700,
	FooterGap:    30,
	LotCaptionY:  745,
	LotCodeY:     775,
	LotCharWidth: 12.0,
	LotCenterX:   361,
	LotMinX:      40,
	LotMaxX:      350,
	RegistryY:    815,
}

// Engine computes line breaks, centering offsets and vertical cursor
// positions for every block of a label. It never fails: empty input renders
// as an empty block.
type Engine struct {
	M Metrics
}

func NewEngine() *Engine { return &Engine{M: DefaultMetrics} }

func round(v float64) int { return int(math.Round(v)) }

// TitleLines splits a product name into at most two lines. Names whose
// estimated width fits TitleMaxWidth stay on one line; longer names break at
// the space nearest the midpoint, favoring the left space on a tie, and
// mid-word at the exact midpoint when the name has no usable space.
func (e *Engine) TitleLines(name string) []string {
	runes := []rune(name)
	if len(runes) == 0 {
		return nil
	}
	if float64(len(runes))*e.M.TitleCharWidth <= e.M.TitleMaxWidth {
		return []string{name}
	}

	mid := len(runes) / 2
	before, after := -1, -1
	for i := mid - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			before = i
			break
		}
	}
	for i := mid; i < len(runes); i++ {
		if runes[i] == ' ' {
			after = i
			break
		}
	}

	switch {
	case before < 0 && after < 0:
		return []string{string(runes[:mid]), string(runes[mid:])}
	case before < 0:
		return []string{string(runes[:after]), string(runes[after+1:])}
	case after < 0:
		return []string{string(runes[:before]), string(runes[before+1:])}
	}
	// Both sides have a space: pick the one closer to the midpoint, the
	// left one when equidistant.
	if mid-before <= after-mid {
		return []string{string(runes[:before]), string(runes[before+1:])}
	}
	return []string{string(runes[:after]), string(runes[after+1:])}
}

// TitleX centers a title line of length n characters.
func (e *Engine) TitleX(n int) int {
	return round(e.M.TitleCenterX - float64(n)/2*e.M.TitleHalfWidth)
}

// TitleCells lays out the title block.
func (e *Engine) TitleCells(name string) []Cell {
	lines := e.TitleLines(name)
	switch len(lines) {
	case 0:
		return nil
	case 1:
		return []Cell{{X: e.TitleX(len([]rune(lines[0]))), Y: e.M.TitleSingleY, Style: StyleTitle, Text: lines[0]}}
	default:
		return []Cell{
			{X: e.TitleX(len([]rune(lines[0]))), Y: e.M.TitleFirstY, Style: StyleTitle, Text: lines[0]},
			{X: e.TitleX(len([]rune(lines[1]))), Y: e.M.TitleFirstY + e.M.TitleLineGap, Style: StyleTitle, Text: lines[1]},
		}
	}
}

// WrapIngredients normalizes and wraps the ingredient free text. Blank lines
// in the input separate paragraphs; every paragraph is followed by one blank
// spacer line in the output, except at the very end. Spacer entries are
// empty strings: they advance the vertical cursor but draw nothing.
func (e *Engine) WrapIngredients(text string) []string {
	paragraphs := splitParagraphs(text)
	var out []string
	for _, p := range paragraphs {
		out = append(out, wrapGreedy(p, e.M.IngredientWrap)...)
		out = append(out, "")
	}
	if n := len(out); n > 0 && out[n-1] == "" {
		out = out[:n-1]
	}
	return out
}

// WrapConservation wraps the conservation instructions. No paragraph
// handling: the whole text is collapsed and wrapped greedily.
func (e *Engine) WrapConservation(text string) []string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if collapsed == "" {
		return nil
	}
	return wrapGreedy(collapsed, e.M.ConservationWrap)
}

// HeaderY returns the vertical position of the INGREDIENTES caption given
// the number of wrapped ingredient lines (spacers included). When the
// predicted allergen row would fall below the printable boundary, the whole
// block is raised once; there is no iterative re-layout.
func (e *Engine) HeaderY(lineCount int) int {
	y := e.M.HeaderY
	if e.allergenY(y, lineCount) > e.M.PrintableBottom {
		y = e.M.HeaderRaisedY
	}
	return y
}

func (e *Engine) allergenY(headerY, lineCount int) int {
	return headerY + e.M.HeaderGap + e.M.RowHeight*lineCount + e.M.AllergenGap
}

// IngredientCells lays out the caption, the wrapped ingredient lines and
// the allergen row. Spacer lines advance the cursor without producing a
// cell.
func (e *Engine) IngredientCells(ingredients, allergens string) []Cell {
	lines := e.WrapIngredients(ingredients)
	headerY := e.HeaderY(len(lines))

	cells := []Cell{{X: e.M.LeftMargin, Y: headerY, Style: StyleCaption, Text: captionIngredients}}
	y := headerY + e.M.HeaderGap
	for _, line := range lines {
		if line != "" {
			cells = append(cells, Cell{X: e.M.LeftMargin, Y: y, Style: StyleBody, Text: line})
		}
		y += e.M.RowHeight
	}
	if allergens != "" {
		cells = append(cells, Cell{
			X:     e.M.LeftMargin,
			Y:     e.allergenY(headerY, len(lines)),
			Style: StyleCaption,
			Text:  captionAllergens + allergens,
		})
	}
	return cells
}

// ConservationCells lays out the conservation instructions, one row per
// wrapped line.
func (e *Engine) ConservationCells(text string) []Cell {
	var cells []Cell
	y := e.M.ConservationY
	for _, line := range e.WrapConservation(text) {
		cells = append(cells, Cell{X: e.M.LeftMargin, Y: y, Style: StyleBody, Text: line})
		y += e.M.RowHeight
	}
	return cells
}

// LotCodeX centers a lot code, clamped to the printable band.
func (e *Engine) LotCodeX(code string) int {
	width := float64(len([]rune(code))) * e.M.LotCharWidth
	x := round(e.M.LotCenterX - width/2)
	if x < e.M.LotMinX {
		x = e.M.LotMinX
	}
	if x > e.M.LotMaxX {
		x = e.M.LotMaxX
	}
	return x
}

// splitParagraphs normalizes line breaks and whitespace runs, returning the
// collapsed text of each blank-line-separated paragraph.
func splitParagraphs(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var paragraphs []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
	}
	for _, raw := range strings.Split(normalized, "\n") {
		collapsed := strings.Join(strings.Fields(raw), " ")
		if collapsed == "" {
			flush()
			continue
		}
		current = append(current, collapsed)
	}
	flush()
	return paragraphs
}

// wrapGreedy packs words onto lines of at most width characters. A word
// longer than the width is hard-split into chunks of exactly the width.
func wrapGreedy(text string, width int) []string {
	var lines []string
	var line []rune
	flush := func() {
		if len(line) > 0 {
			lines = append(lines, string(line))
			line = nil
		}
	}
	for _, word := range strings.Fields(text) {
		w := []rune(word)
		if len(w) > width {
			flush()
			for len(w) > width {
				lines = append(lines, string(w[:width]))
				w = w[width:]
			}
			line = append(line, w...)
			continue
		}
		switch {
		case len(line) == 0:
			line = append(line, w...)
		case len(line)+1+len(w) > width:
			flush()
			line = append(line, w...)
		default:
			line = append(line, ' ')
			line = append(line, w...)
		}
	}
	flush()
	return lines
}

package label

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleSingleLineUnderThreshold(t *testing.T) {
	e := NewEngine()
	// 19 characters x 11.5 = 218.5, still inside the 220 budget.
	name := strings.Repeat("A", 19)
	lines := e.TitleLines(name)
	require.Len(t, lines, 1)
	assert.Equal(t, name, lines[0])
}

func TestTitleTwoLinesOverThreshold(t *testing.T) {
	e := NewEngine()
	name := "QUESO DE CABRA ARTESANAL CURADO EN ACEITE"
	lines := e.TitleLines(name)
	require.Len(t, lines, 2)
	assert.Equal(t, "QUESO DE CABRA ARTESANAL", lines[0])
	assert.Equal(t, "CURADO EN ACEITE", lines[1])
	// Undoing the split whitespace reproduces the original.
	assert.Equal(t, name, lines[0]+" "+lines[1])
}

func TestTitleSplitTieFavorsLeftSpace(t *testing.T) {
	e := NewEngine()
	// Midpoint at index 10; spaces at 9 and 11 are equidistant.
	name := "AAAABBBBB X CCCCCDDDD"
	require.Len(t, []rune(name), 21)
	lines := e.TitleLines(name)
	require.Len(t, lines, 2)
	assert.Equal(t, "AAAABBBBB", lines[0])
	assert.Equal(t, "X CCCCCDDDD", lines[1])
}

func TestTitleSplitNoSpaceBreaksMidWord(t *testing.T) {
	e := NewEngine()
	name := strings.Repeat("X", 30)
	lines := e.TitleLines(name)
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Repeat("X", 15), lines[0])
	assert.Equal(t, strings.Repeat("X", 15), lines[1])
}

func TestTitleSplitSpaceOnOneSideOnly(t *testing.T) {
	e := NewEngine()
	name := strings.Repeat("A", 20) + " BBB"
	lines := e.TitleLines(name)
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Repeat("A", 20), lines[0])
	assert.Equal(t, "BBB", lines[1])
}

func TestTitleCentering(t *testing.T) {
	e := NewEngine()
	// 224 - 5/2*22.5 = 167.75, rounded half away from zero.
	assert.Equal(t, 168, e.TitleX(5))
	assert.Equal(t, 10, e.TitleX(19))
}

func TestTitleCellsVerticalPositions(t *testing.T) {
	e := NewEngine()
	one := e.TitleCells("QUESO")
	require.Len(t, one, 1)
	assert.Equal(t, e.M.TitleSingleY, one[0].Y)

	two := e.TitleCells("QUESO DE CABRA ARTESANAL CURADO EN ACEITE")
	require.Len(t, two, 2)
	assert.Equal(t, e.M.TitleFirstY, two[0].Y)
	assert.Equal(t, e.M.TitleFirstY+e.M.TitleLineGap, two[1].Y)
}

func TestWrapIngredientsLineWidth(t *testing.T) {
	e := NewEngine()
	text := strings.Repeat("leche pasteurizada de cabra, sal marina, cuajo natural ", 4)
	for _, line := range e.WrapIngredients(text) {
		assert.LessOrEqual(t, len([]rune(line)), e.M.IngredientWrap, "line %q", line)
	}
}

func TestWrapIngredientsRoundTrip(t *testing.T) {
	e := NewEngine()
	text := "leche de cabra,   sal\nmarina, cuajo\n\nfermentos lacticos  y conservador"
	lines := e.WrapIngredients(text)

	var words []string
	for _, line := range lines {
		if line != "" {
			words = append(words, line)
		}
	}
	normalized := strings.Join(strings.Fields(text), " ")
	assert.Equal(t, normalized, strings.Join(words, " "))
}

func TestWrapIngredientsParagraphSpacers(t *testing.T) {
	e := NewEngine()
	lines := e.WrapIngredients("primero\n\nsegundo\n\ntercero")
	assert.Equal(t, []string{"primero", "", "segundo", "", "tercero"}, lines)
}

func TestWrapIngredientsDropsTrailingSpacer(t *testing.T) {
	e := NewEngine()
	lines := e.WrapIngredients("solo un parrafo")
	require.NotEmpty(t, lines)
	assert.NotEqual(t, "", lines[len(lines)-1])
}

func TestWrapIngredientsHardSplitsLongWords(t *testing.T) {
	e := NewEngine()
	word := strings.Repeat("x", 130)
	lines := e.WrapIngredients(word)
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("x", 56), lines[0])
	assert.Equal(t, strings.Repeat("x", 56), lines[1])
	assert.Equal(t, strings.Repeat("x", 18), lines[2])
}

func TestWrapIngredientsEmpty(t *testing.T) {
	e := NewEngine()
	assert.Empty(t, e.WrapIngredients(""))
	assert.Empty(t, e.WrapIngredients("  \n\n  "))
}

func TestWrapConservationWidthAndFlow(t *testing.T) {
	e := NewEngine()
	text := strings.Repeat("mantener refrigerado entre cero y cinco grados ", 3)
	cells := e.ConservationCells(text)
	require.Greater(t, len(cells), 1)
	for i, c := range cells {
		assert.LessOrEqual(t, len([]rune(c.Text)), e.M.ConservationWrap)
		// Every wrapped line gets its own row.
		assert.Equal(t, e.M.ConservationY+i*e.M.RowHeight, c.Y)
	}
}

func TestHeaderYOverflowAdjustment(t *testing.T) {
	e := NewEngine()
	assert.Equal(t, e.M.HeaderY, e.HeaderY(10))
	// Eleven rows push the predicted allergen line past the printable
	// boundary; the header moves up once, no re-layout.
	assert.Equal(t, e.M.HeaderRaisedY, e.HeaderY(11))
}

func TestIngredientCellsSpacersAdvanceCursor(t *testing.T) {
	e := NewEngine()
	cells := e.IngredientCells("uno\n\ndos", "")
	require.Len(t, cells, 3) // caption + two paragraph lines
	first := cells[1]
	second := cells[2]
	assert.Equal(t, e.M.HeaderY+e.M.HeaderGap, first.Y)
	// The spacer row between paragraphs advances the cursor by one row.
	assert.Equal(t, first.Y+2*e.M.RowHeight, second.Y)
}

func TestIngredientCellsAllergenRow(t *testing.T) {
	e := NewEngine()
	cells := e.IngredientCells("leche, sal", "LACTEA")
	require.Len(t, cells, 3)
	allergen := cells[len(cells)-1]
	assert.Equal(t, captionAllergens+"LACTEA", allergen.Text)
	assert.Equal(t, e.M.HeaderY+e.M.HeaderGap+e.M.RowHeight+e.M.AllergenGap, allergen.Y)
}

func TestLotCodeXClamped(t *testing.T) {
	e := NewEngine()
	assert.Equal(t, 307, e.LotCodeX("251001003"))
	for _, code := range []string{"1", "25", strings.Repeat("9", 60)} {
		x := e.LotCodeX(code)
		assert.GreaterOrEqual(t, x, e.M.LotMinX, "code %q", code)
		assert.LessOrEqual(t, x, e.M.LotMaxX, "code %q", code)
	}
}

package stickpath

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diagram joins rows the way the input reader does: one "\n" after each row.
func diagram(rows ...string) string {
	return strings.Join(rows, "\n") + "\n"
}

var threeLanes = []string{
	"A  B  C",
	"|  |  |",
	"|--|  |",
	"|  |--|",
	"|  |--|",
	"|  |  |",
	"1  2  3",
}

// replaceRow returns a copy of rows with rows[i] set to row.
func replaceRow(rows []string, i int, row string) []string {
	out := append([]string(nil), rows...)
	out[i] = row
	return out
}

// TestParseGrid_Valid verifies dimensions and accessors of a valid grid.
func TestParseGrid_Valid(t *testing.T) {
	g, err := ParseGrid(diagram(threeLanes...))
	require.NoError(t, err)

	assert.Equal(t, 7, g.Width())
	assert.Equal(t, 7, g.Height())
	assert.Equal(t, 3, g.Lanes())
	assert.Equal(t, []rune("ABC"), g.TopLabels())
	assert.Equal(t, []rune("123"), g.BottomLabels())
	assert.Equal(t, "|--|  |", g.Row(2))

	r, ok := g.At(2, 1)
	assert.True(t, ok)
	assert.Equal(t, '-', r)

	r, ok = g.At(2, -1)
	assert.False(t, ok)
	assert.Equal(t, ' ', r)

	_, ok = g.At(7, 0)
	assert.False(t, ok)
}

// TestParseGrid_NoTrailingNewline verifies the final terminator is optional.
func TestParseGrid_NoTrailingNewline(t *testing.T) {
	g, err := ParseGrid(strings.Join(threeLanes, "\n"))
	require.NoError(t, err)
	assert.Equal(t, 7, g.Height())
}

// TestParseGrid_CRLF verifies CRLF input parses to the same grid as LF input.
func TestParseGrid_CRLF(t *testing.T) {
	lf, err := ParseGrid(diagram(threeLanes...))
	require.NoError(t, err)

	crlf, err := ParseGrid(strings.Join(threeLanes, "\r\n") + "\r\n")
	require.NoError(t, err)

	if diff := cmp.Diff(lf, crlf, cmp.AllowUnexported(Grid{})); diff != "" {
		t.Errorf("CRLF grid mismatch (-lf +crlf):\n%s", diff)
	}
}

// TestParseGrid_Idempotent verifies that re-parsing the canonical form yields an equal grid.
func TestParseGrid_Idempotent(t *testing.T) {
	g, err := ParseGrid(diagram(threeLanes...))
	require.NoError(t, err)
	assert.Equal(t, diagram(threeLanes...), g.String())

	again, err := ParseGrid(g.String())
	require.NoError(t, err)

	if diff := cmp.Diff(g, again, cmp.AllowUnexported(Grid{})); diff != "" {
		t.Errorf("re-parsed grid mismatch (-want +got):\n%s", diff)
	}
}

// TestParseGrid_LabelsAnyGlyph verifies labels are unconstrained glyphs.
func TestParseGrid_LabelsAnyGlyph(t *testing.T) {
	rows := replaceRow(threeLanes, 0, `7  "  %`)
	rows = replaceRow(rows, 6, "|  |  |")
	_, err := ParseGrid(diagram(rows...))
	require.NoError(t, err)

	rows = replaceRow(threeLanes, 6, "x  x  é")
	g, err := ParseGrid(diagram(rows...))
	require.NoError(t, err)
	assert.Equal(t, []rune("xxé"), g.BottomLabels())
}

// TestParseGrid_SingleLane verifies a one-lane diagram parses.
func TestParseGrid_SingleLane(t *testing.T) {
	g, err := ParseGrid(diagram("A", "|", "|", "Z"))
	require.NoError(t, err)
	assert.Equal(t, 1, g.Lanes())
}

// TestParseGrid_Rejections triggers every parser failure kind with a minimal input.
func TestParseGrid_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		kind     Kind
		sentinel error
		row, col int
	}{
		{
			name:     "empty input",
			text:     "",
			kind:     KindTooFewRows,
			sentinel: ErrTooFewRows,
			row:      -1, col: -1,
		},
		{
			name:     "labels only",
			text:     diagram("A  B", "1  2"),
			kind:     KindTooFewRows,
			sentinel: ErrTooFewRows,
			row:      -1, col: -1,
		},
		{
			name:     "top row width not 1 mod 3",
			text:     diagram(replaceRow(threeLanes, 0, "A B  C")...),
			kind:     KindInvalidWidth,
			sentinel: ErrInvalidWidth,
			row:      0, col: -1,
		},
		{
			name:     "connector row wider than top row",
			text:     diagram(replaceRow(threeLanes, 3, "|  |--|  |")...),
			kind:     KindInconsistentWidth,
			sentinel: ErrInconsistentWidth,
			row:      3, col: -1,
		},
		{
			name:     "bottom row narrower than top row",
			text:     diagram(replaceRow(threeLanes, 6, "1 2  3")...),
			kind:     KindInconsistentWidth,
			sentinel: ErrInconsistentWidth,
			row:      6, col: -1,
		},
		{
			name:     "lane bar replaced",
			text:     diagram(replaceRow(threeLanes, 2, "|--*  |")...),
			kind:     KindMissingLaneBar,
			sentinel: ErrMissingLaneBar,
			row:      2, col: 3,
		},
		{
			name:     "half rung",
			text:     diagram(replaceRow(threeLanes, 3, "|  |- |")...),
			kind:     KindInvalidRungSlot,
			sentinel: ErrInvalidRungSlot,
			row:      3, col: 4,
		},
		{
			name:     "foreign rung glyph",
			text:     diagram(replaceRow(threeLanes, 1, "|==|  |")...),
			kind:     KindInvalidRungSlot,
			sentinel: ErrInvalidRungSlot,
			row:      1, col: 1,
		},
		{
			name:     "glyph in bottom label gap",
			text:     diagram(replaceRow(threeLanes, 6, "1| 2  3")...),
			kind:     KindInvalidLabelRow,
			sentinel: ErrInvalidLabelRow,
			row:      6, col: 1,
		},
		{
			name:     "glyph in top label gap",
			text:     diagram(replaceRow(threeLanes, 0, "A B  C ")...),
			kind:     KindInvalidLabelRow,
			sentinel: ErrInvalidLabelRow,
			row:      0, col: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseGrid(tt.text)
			require.Error(t, err)
			assert.Nil(t, g)

			assert.True(t, errors.Is(err, tt.sentinel), "want %v, got %v", tt.sentinel, err)
			assert.Equal(t, tt.kind, KindOf(err))

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.row, verr.Row)
			assert.Equal(t, tt.col, verr.Col)
		})
	}
}

// TestParseGrid_MissingBarReportedBeforeRungSlot verifies the lane check runs over the whole row first.
func TestParseGrid_MissingBarReportedBeforeRungSlot(t *testing.T) {
	_, err := ParseGrid(diagram(replaceRow(threeLanes, 2, "|- |  *")...))
	assert.Equal(t, KindMissingLaneBar, KindOf(err))
}

// TestCheckDimensions verifies the declared-size comparison.
func TestCheckDimensions(t *testing.T) {
	g, err := ParseGrid(diagram(threeLanes...))
	require.NoError(t, err)

	assert.NoError(t, g.CheckDimensions(7, 7))

	err = g.CheckDimensions(7, 6)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "got 7x7, want 7x6")

	assert.ErrorIs(t, g.CheckDimensions(10, 7), ErrDimensionMismatch)
}

// TestAccept verifies the declared-range gate runs before the dimension check.
func TestAccept(t *testing.T) {
	g, err := ParseGrid(diagram(threeLanes...))
	require.NoError(t, err)

	assert.NoError(t, g.Accept(7, 7, DefaultLimits))
	assert.ErrorIs(t, g.Accept(2, 7, DefaultLimits), ErrDeclaredOutOfRange)
	assert.ErrorIs(t, g.Accept(7, 101, DefaultLimits), ErrDeclaredOutOfRange)
	assert.ErrorIs(t, g.Accept(7, 8, DefaultLimits), ErrDimensionMismatch)

	tight := Limits{MinWidth: 3, MaxHeight: 6}
	assert.Equal(t, KindDeclaredOutOfRange, KindOf(g.Accept(7, 7, tight)))
}

// TestValidationError_Message verifies messages name the kind and the location.
func TestValidationError_Message(t *testing.T) {
	_, err := ParseGrid(diagram(replaceRow(threeLanes, 3, "|  |- |")...))
	require.Error(t, err)
	assert.Equal(t, `invalid rung slot at row 3, col 4: got "- ", want "  " or "--"`, err.Error())

	_, err = ParseGrid(diagram("A  B"))
	require.Error(t, err)
	assert.Equal(t, "too few rows: got 1, want at least 3", err.Error())

	assert.Equal(t, "InvalidLabelRow", KindInvalidLabelRow.String())
	assert.Equal(t, KindUnknown, KindOf(errors.New("other")))
}

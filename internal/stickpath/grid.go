package stickpath

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	laneBar = '|'
	rung    = '-'
	blank   = ' '

	// period is the column distance between two adjacent lanes.
	period = 3
	// minRows is a top label row, one connector row and a bottom label row.
	minRows = 3
)

// Grid is a validated stick-path diagram stored row-major.
// A Grid is never modified after ParseGrid returns it.
type Grid struct {
	width  int
	height int
	cells  []rune
}

// ParseGrid builds a Grid from a diagram text block, rejecting it with a
// *ValidationError on the first violated constraint.
func ParseGrid(text string) (*Grid, error) {
	lines := splitLines(text)
	if len(lines) < minRows {
		return nil, newError(KindTooFewRows, -1, -1, strconv.Itoa(len(lines)), fmt.Sprintf("at least %d", minRows))
	}

	var width int
	var cells []rune
	for i, line := range lines {
		row := []rune(line)

		if i == 0 {
			width = len(row)
			if width%period != 1 {
				return nil, newError(KindInvalidWidth, 0, -1, strconv.Itoa(width), "width % 3 == 1")
			}
			cells = make([]rune, 0, width*len(lines))
		} else if len(row) != width {
			return nil, newError(KindInconsistentWidth, i, -1, strconv.Itoa(len(row)), strconv.Itoa(width))
		}

		var err error
		if i > 0 && i < len(lines)-1 {
			err = checkConnectorRow(i, row)
		} else {
			err = checkLabelRow(i, row)
		}
		if err != nil {
			return nil, err
		}

		cells = append(cells, row...)
	}

	return &Grid{width: width, height: len(lines), cells: cells}, nil
}

// splitLines splits on "\n", dropping one trailing terminator and any "\r"
// left by CRLF input.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// checkConnectorRow requires a bar at every lane column, then a blank or
// full-dash pair in every rung slot.
func checkConnectorRow(i int, row []rune) error {
	for c := 0; c < len(row); c += period {
		if row[c] != laneBar {
			return newError(KindMissingLaneBar, i, c, string(row[c]), `"|"`)
		}
	}

	for c := 1; c+1 < len(row); c += period {
		pair := row[c : c+2]
		if (pair[0] == blank && pair[1] == blank) || (pair[0] == rung && pair[1] == rung) {
			continue
		}
		return newError(KindInvalidRungSlot, i, c, string(pair), `"  " or "--"`)
	}

	return nil
}

// checkLabelRow requires every rung-slot column to be blank. Any glyph is a
// valid label, including duplicates.
func checkLabelRow(i int, row []rune) error {
	for c, r := range row {
		if c%period != 0 && r != blank {
			return newError(KindInvalidLabelRow, i, c, string(r), `" "`)
		}
	}
	return nil
}

// Width is the number of columns.
func (g *Grid) Width() int { return g.width }

// Height is the number of rows, label rows included.
func (g *Grid) Height() int { return g.height }

// Lanes is the number of vertical lanes.
func (g *Grid) Lanes() int { return (g.width + period - 1) / period }

// At returns the cell at (row, col) and whether it lies on the grid.
func (g *Grid) At(row, col int) (rune, bool) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return blank, false
	}
	return g.cells[row*g.width+col], true
}

// cell is At with off-grid positions read as blank.
func (g *Grid) cell(row, col int) rune {
	r, _ := g.At(row, col)
	return r
}

// Row returns row i as a string.
func (g *Grid) Row(i int) string {
	return string(g.cells[i*g.width : (i+1)*g.width])
}

// TopLabels returns the label glyph of every lane, left to right.
func (g *Grid) TopLabels() []rune { return g.labels(0) }

// BottomLabels returns the bottom label glyph of every lane, left to right.
func (g *Grid) BottomLabels() []rune { return g.labels(g.height - 1) }

func (g *Grid) labels(row int) []rune {
	out := make([]rune, 0, g.Lanes())
	for c := 0; c < g.width; c += period {
		out = append(out, g.cell(row, c))
	}
	return out
}

// String renders the canonical text form: every row terminated by "\n".
// ParseGrid(g.String()) yields a Grid equal to g.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for i := 0; i < g.height; i++ {
		b.WriteString(g.Row(i))
		b.WriteByte('\n')
	}
	return b.String()
}

// CheckDimensions rejects the grid when its size disagrees with the
// declared width w and height h.
func (g *Grid) CheckDimensions(w, h int) error {
	if g.width == w && g.height == h {
		return nil
	}
	return newError(KindDimensionMismatch, -1, -1,
		fmt.Sprintf("%dx%d", g.width, g.height), fmt.Sprintf("%dx%d", w, h))
}

// Limits bounds the declared dimensions a caller accepts.
type Limits struct {
	MinWidth  int
	MaxHeight int
}

// DefaultLimits are the bounds of the classic puzzle statement.
var DefaultLimits = Limits{MinWidth: 3, MaxHeight: 100}

// Accept is the final gate before tracing: declared dimensions must be in
// range and must match the grid.
func (g *Grid) Accept(w, h int, lim Limits) error {
	if w < lim.MinWidth || h > lim.MaxHeight {
		return newError(KindDeclaredOutOfRange, -1, -1,
			fmt.Sprintf("%dx%d", w, h), fmt.Sprintf("width >= %d, height <= %d", lim.MinWidth, lim.MaxHeight))
	}
	return g.CheckDimensions(w, h)
}

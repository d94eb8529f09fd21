package stickpath

// Path is the outcome of descending the ladder from one top lane.
type Path struct {
	Lane   int  // starting lane index
	Top    rune // label above the starting lane
	Bottom rune // label reached at the bottom row
	Exit   int  // lane index of the bottom label
}

// String renders the path as "<top><bottom>".
func (p Path) String() string {
	return string([]rune{p.Top, p.Bottom})
}

// Trace descends from the lane at column col, following every rung met on
// the way, and returns the bottom label reached.
func (g *Grid) Trace(col int) Path {
	row, c := 1, col

descend:
	for row < g.height-1 {
		left, down, right := g.cell(row, c-1), g.cell(row+1, c), g.cell(row, c+1)

		switch {
		case left == blank && down == laneBar && right == blank:
			row++
		case left == rung:
			row, c = row+1, c-period
		case right == rung:
			row, c = row+1, c+period
		default:
			// Nothing recognisable around this cell; stay on the lane and stop.
			row++
			break descend
		}
	}

	return Path{
		Lane:   col / period,
		Top:    g.cell(0, col),
		Bottom: g.cell(row, c),
		Exit:   c / period,
	}
}

// SolveAll traces every lane, left to right.
func (g *Grid) SolveAll() []Path {
	paths := make([]Path, 0, g.Lanes())
	for col := 0; col < g.width; col += period {
		paths = append(paths, g.Trace(col))
	}
	return paths
}

// Mapping returns, for each top lane index, the bottom lane index it reaches.
func (g *Grid) Mapping() []int {
	paths := g.SolveAll()
	out := make([]int, len(paths))
	for i, p := range paths {
		out[i] = p.Exit
	}
	return out
}

// Results renders paths in order, one "<top><bottom>" string each.
func Results(paths []Path) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.String()
	}
	return out
}

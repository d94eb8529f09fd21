package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/jeandeducla/stickpath/internal/stickpath"
)

// Puzzle is one diagram as it arrives on the input stream: the declared size from the header line and the diagram text
type Puzzle struct {
	Width  int
	Height int

	// Text holds exactly Height lines, each stripped of trailing whitespace and terminated by "\n"
	Text string
}

// readPuzzle reads a "w h" header line followed by h diagram lines
func readPuzzle(r io.Reader) (*Puzzle, error) {
	reader := bufio.NewReader(r)

	header, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && header != "") {
		return nil, fmt.Errorf("read header: %w", err)
	}
	w, h, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	var text strings.Builder
	for i := 0; i < h; i++ {
		line, err := reader.ReadString('\n')
		if errors.Is(err, io.EOF) && line == "" {
			return nil, fmt.Errorf("read diagram: got %d of %d lines: %w", i, h, io.ErrUnexpectedEOF)
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read diagram line %d: %w", i, err)
		}
		text.WriteString(strings.TrimRightFunc(line, unicode.IsSpace))
		text.WriteByte('\n')
	}

	return &Puzzle{Width: w, Height: h, Text: text.String()}, nil
}

// parseHeader splits the first line into the declared width and height
func parseHeader(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("header %q: want \"<width> <height>\"", strings.TrimSpace(line))
	}

	w, err := strconv.Atoi(fields[0])
	if err != nil || w < 0 {
		return 0, 0, fmt.Errorf("header %q: invalid width %q", strings.TrimSpace(line), fields[0])
	}
	h, err := strconv.Atoi(fields[1])
	if err != nil || h < 0 {
		return 0, 0, fmt.Errorf("header %q: invalid height %q", strings.TrimSpace(line), fields[1])
	}
	return w, h, nil
}

// Grid validates the diagram and checks it against the declared size and limits.
// Any failure rejects the whole puzzle
func (p *Puzzle) Grid(lim stickpath.Limits) (*stickpath.Grid, error) {
	g, err := stickpath.ParseGrid(p.Text)
	if err != nil {
		return nil, fmt.Errorf("parse diagram: %w", err)
	}
	if err := g.Accept(p.Width, p.Height, lim); err != nil {
		return nil, fmt.Errorf("accept diagram: %w", err)
	}
	return g, nil
}

// Solve returns one "<top><bottom>" line per lane, left to right, or nothing at all on rejection
func (p *Puzzle) Solve(lim stickpath.Limits) ([]string, error) {
	g, err := p.Grid(lim)
	if err != nil {
		return nil, err
	}
	return stickpath.Results(g.SolveAll()), nil
}

package stickpath

import (
	"errors"
	"fmt"
)

// Kind identifies which grid constraint a diagram violated.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindTooFewRows
	KindInvalidWidth
	KindInconsistentWidth
	KindMissingLaneBar
	KindInvalidRungSlot
	KindInvalidLabelRow
	KindDimensionMismatch
	KindDeclaredOutOfRange
)

// Sentinel errors, one per Kind. A *ValidationError matches its sentinel with errors.Is.
var (
	ErrTooFewRows         = errors.New("too few rows")
	ErrInvalidWidth       = errors.New("invalid width")
	ErrInconsistentWidth  = errors.New("inconsistent width")
	ErrMissingLaneBar     = errors.New("missing lane bar")
	ErrInvalidRungSlot    = errors.New("invalid rung slot")
	ErrInvalidLabelRow    = errors.New("invalid label row")
	ErrDimensionMismatch  = errors.New("dimension mismatch")
	ErrDeclaredOutOfRange = errors.New("declared dimensions out of range")
)

var kindSentinels = map[Kind]error{
	KindTooFewRows:         ErrTooFewRows,
	KindInvalidWidth:       ErrInvalidWidth,
	KindInconsistentWidth:  ErrInconsistentWidth,
	KindMissingLaneBar:     ErrMissingLaneBar,
	KindInvalidRungSlot:    ErrInvalidRungSlot,
	KindInvalidLabelRow:    ErrInvalidLabelRow,
	KindDimensionMismatch:  ErrDimensionMismatch,
	KindDeclaredOutOfRange: ErrDeclaredOutOfRange,
}

func (k Kind) String() string {
	switch k {
	case KindTooFewRows:
		return "TooFewRows"
	case KindInvalidWidth:
		return "InvalidWidth"
	case KindInconsistentWidth:
		return "InconsistentWidth"
	case KindMissingLaneBar:
		return "MissingLaneBar"
	case KindInvalidRungSlot:
		return "InvalidRungSlot"
	case KindInvalidLabelRow:
		return "InvalidLabelRow"
	case KindDimensionMismatch:
		return "DimensionMismatch"
	case KindDeclaredOutOfRange:
		return "DeclaredOutOfRange"
	}
	return "Unknown"
}

// ValidationError describes the first constraint a diagram failed.
// Row and Col are -1 when the failure is not tied to a cell.
type ValidationError struct {
	Kind Kind
	Row  int
	Col  int
	// Got and Want carry the offending and expected values, when meaningful.
	Got  string
	Want string
}

func (e *ValidationError) Error() string {
	msg := kindSentinels[e.Kind]
	if msg == nil {
		msg = errors.New("unknown validation failure")
	}

	switch {
	case e.Row >= 0 && e.Col >= 0:
		return fmt.Sprintf("%v at row %d, col %d: got %q, want %s", msg, e.Row, e.Col, e.Got, e.Want)
	case e.Row >= 0:
		return fmt.Sprintf("%v at row %d: got %s, want %s", msg, e.Row, e.Got, e.Want)
	case e.Got != "":
		return fmt.Sprintf("%v: got %s, want %s", msg, e.Got, e.Want)
	}
	return msg.Error()
}

// Unwrap returns the sentinel for the error's kind.
func (e *ValidationError) Unwrap() error {
	return kindSentinels[e.Kind]
}

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Kind
	}
	return KindUnknown
}

func newError(kind Kind, row, col int, got, want string) *ValidationError {
	return &ValidationError{Kind: kind, Row: row, Col: col, Got: got, Want: want}
}

package flow

import (
	"github.com/reidswan/servo/engine/frame"
)

// FlowFlags are static properties of a flow, derived from style at
// construction time.
type FlowFlags uint16

// Flow flags.
const (
	IsAbsolutelyPositioned FlowFlags = 1 << iota
	FloatsLeft
	FloatsRight
	ClearsLeft
	ClearsRight
	IsPositioned
	IsListItem
)

// Contains is true if all flags in f are set.
func (flags FlowFlags) Contains(f FlowFlags) bool {
	return flags&f == f
}

// Insert sets flags.
func (flags *FlowFlags) Insert(f FlowFlags) {
	*flags |= f
}

// IsFloat is true for left and right floats.
func (flags FlowFlags) IsFloat() bool {
	return flags&(FloatsLeft|FloatsRight) != 0
}

// FloatKind returns the side a flow floats to.
func (flags FlowFlags) FloatKind() frame.FloatSide {
	switch {
	case flags.Contains(FloatsLeft):
		return frame.FloatLeft
	case flags.Contains(FloatsRight):
		return frame.FloatRight
	}
	return frame.FloatNone
}

// FlagsFromStyle derives flow flags from a computed style.
func FlagsFromStyle(style *frame.Style) FlowFlags {
	var flags FlowFlags
	if style == nil {
		return flags
	}
	if style.IsAbsolutelyPositioned() {
		flags.Insert(IsAbsolutelyPositioned)
	}
	if style.IsPositioned() {
		flags.Insert(IsPositioned)
	}
	if style.IsFloated() {
		switch style.Float {
		case frame.FloatLeft:
			flags.Insert(FloatsLeft)
		case frame.FloatRight:
			flags.Insert(FloatsRight)
		}
	}
	switch style.Clear {
	case frame.ClearLeft:
		flags.Insert(ClearsLeft)
	case frame.ClearRight:
		flags.Insert(ClearsRight)
	case frame.ClearBoth:
		flags.Insert(ClearsLeft | ClearsRight)
	}
	if style.Display.Contains(frame.ListItemMode) {
		flags.Insert(IsListItem)
	}
	return flags
}

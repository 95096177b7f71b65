package flow

import (
	"fmt"

	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/engine/frame/display"
)

// IntrinsicISizes are the content-based inline sizes of a flow, including
// its margins, borders and padding.
type IntrinsicISizes struct {
	MinimumInlineSize   dimen.Dimen // min-content
	PreferredInlineSize dimen.Dimen // max-content
}

// Union widens s to contain o.
func (s *IntrinsicISizes) Union(o IntrinsicISizes) {
	s.MinimumInlineSize = dimen.Max(s.MinimumInlineSize, o.MinimumInlineSize)
	s.PreferredInlineSize = dimen.Max(s.PreferredInlineSize, o.PreferredInlineSize)
}

// Overflow holds the areas of a flow and its descendants, relative to the
// flow's border box.
type Overflow struct {
	Scroll dimen.Rect // reachable by scrolling
	Paint  dimen.Rect // possibly painted
}

// BaseFlow is the state every flow carries.
type BaseFlow struct {
	RestyleDamage RestyleDamage
	Flags         FlowFlags
	// Position relative to the parent's border box. TopL.X is the start of
	// the margin box in inline direction, TopL.Y the start of the border box
	// in block direction. Size is the margin box inline size and the border
	// box block size.
	Position dimen.Rect
	// Position of the flow's origin relative to the stacking context it
	// paints into, including relative positioning offsets.
	StackingRelativePosition dimen.Point
	IntrinsicISizes          IntrinsicISizes
	// Inline size of the containing block, set by the parent.
	BlockContainerInlineSize dimen.Dimen
	// Speculated float placement of the previous sibling chain, before and
	// after this flow.
	SpeculatedFloatPlacementIn  SpeculatedFloatPlacement
	SpeculatedFloatPlacementOut SpeculatedFloatPlacement
	// Float intrusion this flow has been laid out with.
	UsedFloatIntrusion SpeculatedFloatPlacement
	Overflow           Overflow
	StackingContextID  display.StackingContextID
	//
	parent   Flow
	children []Flow
}

func newBaseFlow(flags FlowFlags) BaseFlow {
	return BaseFlow{
		RestyleDamage: RebuildAndReflow,
		Flags:         flags,
	}
}

// Children returns the child flows in document order.
func (base *BaseFlow) Children() []Flow {
	return base.children
}

// ChildCount returns the number of child flows.
func (base *BaseFlow) ChildCount() int {
	return len(base.children)
}

// Parent returns the parent flow or nil for the root.
func (base *BaseFlow) Parent() Flow {
	return base.parent
}

// IsRoot is true for a flow without parent.
func (base *BaseFlow) IsRoot() bool {
	return base.parent == nil
}

func (base *BaseFlow) String() string {
	return fmt.Sprintf("pos=%v srp=%v damage=%v", base.Position, base.StackingRelativePosition,
		base.RestyleDamage)
}

package flow

import (
	"errors"

	"github.com/reidswan/servo/core"
	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/engine/frame"
	"github.com/reidswan/servo/engine/frame/display"
	"golang.org/x/net/html"
)

// FlowClass identifies the kind of a flow.
type FlowClass uint8

// Kinds of flows.
const (
	BlockClass FlowClass = iota
	InlineClass
)

func (c FlowClass) String() string {
	if c == InlineClass {
		return "inline"
	}
	return "block"
}

// BorderBoxVisitor is called for fragments during border box iteration.
type BorderBoxVisitor interface {
	ShouldProcess(f *frame.Fragment) bool
	// Process receives a fragment, its depth in the flow tree and its border box
	// relative to the page.
	Process(f *frame.Fragment, level int, borderBox dimen.Rect)
}

// Flow is a node of the flow tree.
type Flow interface {
	Base() *BaseFlow
	Class() FlowClass
	// AsBlock returns the block flow or nil for other kinds of flows.
	AsBlock() *BlockFlow
	// Node returns the originating document node, if any.
	Node() *html.Node
	// EstablishesStackingContext is true if the flow's descendants are positioned
	// relative to the flow's border box.
	EstablishesStackingContext() bool
	// RelativeOffset returns the offset from relative positioning.
	RelativeOffset() dimen.Point

	BubbleInlineSizes()
	AssignInlineSizes(ctx *LayoutContext)
	AssignBlockSize(ctx *LayoutContext)
	ComputeOverflow() Overflow
	CollectStackingContexts(state *display.CollectionState)
	BuildDisplayList(state *display.BuildState)
	IterateThroughFragmentBorderBoxes(visitor BorderBoxVisitor, level int, offset dimen.Point)
	// Fragments returns the fragments to paint, in order.
	Fragments() []*frame.Fragment
}

// ErrHasParent is returned when appending a flow which is already part of a tree.
var ErrHasParent = errors.New("flow already has a parent")

// ErrCycle is returned when appending a flow to one of its descendants.
var ErrCycle = errors.New("flow cannot become its own descendant")

// AppendChild appends child as the last child of parent.
// Flows have exactly one parent and the tree must stay acyclic; violations
// are reported as errors with code core.ESTRUCTURE. Inline flows cannot
// have children (core.EINVALID).
func AppendChild(parent, child Flow) error {
	if parent == nil || child == nil {
		return core.Error(core.EMISSING, "cannot append nil flow")
	}
	if parent.Class() == InlineClass {
		return core.Error(core.EINVALID, "inline flows cannot have child flows")
	}
	if child.Base().parent != nil {
		return core.WrapError(ErrHasParent, core.ESTRUCTURE, "cannot append child flow")
	}
	for p := parent; p != nil; p = p.Base().parent {
		if p == child {
			return core.WrapError(ErrCycle, core.ESTRUCTURE, "cannot append child flow")
		}
	}
	pb := parent.Base()
	pb.children = append(pb.children, child)
	child.Base().parent = parent
	return nil
}

// MustAppend appends children to parent and panics on error. It is meant
// for trees known to be well-formed, e.g. in tests.
func MustAppend(parent Flow, children ...Flow) Flow {
	for _, ch := range children {
		if err := AppendChild(parent, ch); err != nil {
			panic(err)
		}
	}
	return parent
}

// EstablishesFormattingContext is true for block flows starting a new block
// formatting context. Non-block flows never do.
func EstablishesFormattingContext(f Flow) bool {
	if b := f.AsBlock(); b != nil {
		return b.EstablishesFormattingContext()
	}
	return false
}

package display

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/engine/frame"
	"golang.org/x/net/html"
)

// StackingContextID identifies a stacking context within a display list.
type StackingContextID uint32

// RootStackingContextID is the id of the root stacking context of a page.
const RootStackingContextID StackingContextID = 0

// StackingContextType discriminates real stacking contexts from pseudo
// contexts. Pseudo contexts group the items of positioned elements with
// z-index auto and of floats; they are ordered like stacking contexts but do
// not establish a coordinate system of their own.
type StackingContextType uint8

// Types of stacking contexts.
const (
	Real StackingContextType = iota
	PseudoPositioned
	PseudoFloat
)

func (t StackingContextType) String() string {
	switch t {
	case PseudoPositioned:
		return "pseudo-positioned"
	case PseudoFloat:
		return "pseudo-float"
	}
	return "real"
}

// StackingContext is a group of display items painted atomically.
type StackingContext struct {
	ID       StackingContextID
	ParentID StackingContextID
	Type     StackingContextType
	ZIndex   int32
	// Border box of the establishing element, in the coordinate system of the
	// parent real context.
	Bounds dimen.Rect
	// Paint overflow, relative to the bounds.
	Overflow     dimen.Rect
	Transform    frame.Matrix // relative to the bounds' origin
	HasTransform bool
	Opacity      float32
	Node         *html.Node
	children     []*StackingContext
}

// NewStackingContext creates a stacking context. Its id is assigned when
// it is added to a collection state.
func NewStackingContext(typ StackingContextType, node *html.Node, bounds, overflow dimen.Rect,
	z int32) *StackingContext {
	//
	return &StackingContext{
		Type:      typ,
		ZIndex:    z,
		Bounds:    bounds,
		Overflow:  overflow,
		Transform: frame.Identity(),
		Opacity:   1,
		Node:      node,
	}
}

// Children returns the child contexts in the order they were added.
func (sc *StackingContext) Children() []*StackingContext {
	return sc.children
}

// IsRoot is true for the root context of a page.
func (sc *StackingContext) IsRoot() bool {
	return sc.ID == RootStackingContextID
}

func (sc *StackingContext) String() string {
	return fmt.Sprintf("sc#%d(%v z=%d parent=%d)", sc.ID, sc.Type, sc.ZIndex, sc.ParentID)
}

// --- Collection ------------------------------------------------------------

type scFrame struct {
	current, currentReal StackingContextID
}

// CollectionState is used while walking the flow tree to collect stacking
// contexts. It tracks the context new items and pseudo contexts go into
// (current) and the context real stacking contexts are parented to
// (current real).
type CollectionState struct {
	PipelineID  uint32
	contexts    map[StackingContextID]*StackingContext
	current     StackingContextID
	currentReal StackingContextID
	nextID      StackingContextID
	saved       *arraystack.Stack // of scFrame
}

// NewCollectionState creates a collection state holding the root stacking
// context of a page.
func NewCollectionState(pipelineID uint32, pageSize dimen.Size) *CollectionState {
	root := NewStackingContext(Real, nil, dimen.RectAt(dimen.Origin, pageSize),
		dimen.RectAt(dimen.Origin, pageSize), 0)
	root.ID = RootStackingContextID
	return &CollectionState{
		PipelineID: pipelineID,
		contexts:   map[StackingContextID]*StackingContext{RootStackingContextID: root},
		nextID:     RootStackingContextID + 1,
		saved:      arraystack.New(),
	}
}

// CurrentStackingContextID returns the context items are currently collected for.
func (cs *CollectionState) CurrentStackingContextID() StackingContextID {
	return cs.current
}

// CurrentRealStackingContextID returns the innermost real context.
func (cs *CollectionState) CurrentRealStackingContextID() StackingContextID {
	return cs.currentReal
}

// AddStackingContext assigns an id to sc and links it to its parent: real
// contexts become children of the current real context, pseudo contexts
// children of the current context.
func (cs *CollectionState) AddStackingContext(sc *StackingContext) StackingContextID {
	sc.ID = cs.nextID
	cs.nextID++
	sc.ParentID = cs.current
	if sc.Type == Real {
		sc.ParentID = cs.currentReal
	}
	parent := cs.contexts[sc.ParentID]
	parent.children = append(parent.children, sc)
	cs.contexts[sc.ID] = sc
	tracer().Debugf("collected %v", sc)
	return sc.ID
}

// PushStackingContext makes a context current. Children of the flow which
// established it will be collected into it.
func (cs *CollectionState) PushStackingContext(id StackingContextID) {
	cs.saved.Push(scFrame{current: cs.current, currentReal: cs.currentReal})
	cs.current = id
	if cs.contexts[id].Type == Real {
		cs.currentReal = id
	}
}

// PopStackingContext restores the context which was current before the
// matching push.
func (cs *CollectionState) PopStackingContext() {
	v, ok := cs.saved.Pop()
	if !ok {
		tracer().Errorf("unbalanced stacking context pop")
		return
	}
	f := v.(scFrame)
	cs.current, cs.currentReal = f.current, f.currentReal
}

// StackingContext returns a collected context by id.
func (cs *CollectionState) StackingContext(id StackingContextID) (*StackingContext, bool) {
	sc, ok := cs.contexts[id]
	return sc, ok
}

// Root returns the root stacking context.
func (cs *CollectionState) Root() *StackingContext {
	return cs.contexts[RootStackingContextID]
}

// Len returns the number of collected contexts, including the root.
func (cs *CollectionState) Len() int {
	return len(cs.contexts)
}

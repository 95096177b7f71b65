package layout

import (
	"github.com/reidswan/servo/core/config"
	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/engine/frame"
	"github.com/reidswan/servo/engine/frame/flow"
	"github.com/reidswan/servo/engine/text"
)

// NewContext creates a layout context which lays out subtrees again with
// the sequential reflow driver.
func NewContext(id uint32, m text.Measurer, viewport dimen.Size, conf config.LayoutConfig) *flow.LayoutContext {
	return flow.NewLayoutContext(id, m, viewport, conf, relayout)
}

func relayout(ctx *flow.LayoutContext, f flow.Flow, mode flow.RelayoutMode) {
	tracer().Debugf("relayout of %v flow, mode %v", f.Class(), mode)
	reflow(ctx, f, mode)
}

// Reflow lays out a flow tree. In mode flow.Incremental, only flows with
// reflow damage are laid out; flow.Force lays out every flow.
//
// If the layout configuration asks for it, intrinsic inline sizes are
// bubbled up in a separate pass first. Otherwise the tree builder is
// expected to have done this during construction, and callers bubble
// flows which have been damaged later (see Page.Layout).
func Reflow(root flow.Flow, ctx *flow.LayoutContext, mode flow.RelayoutMode) {
	if ctx.Config.BubbleInlineSizesSeparately {
		BubbleISizes(root)
	}
	reflow(ctx, root, mode)
}

func reflow(ctx *flow.LayoutContext, f flow.Flow, mode flow.RelayoutMode) {
	base := f.Base()
	if mode == flow.Force {
		base.RestyleDamage.Insert(flow.ReflowAll)
	}
	if needsReflow(f) {
		f.AssignInlineSizes(ctx)
	}
	for _, kid := range base.Children() {
		reflow(ctx, kid, mode)
	}
	if needsReflow(f) {
		f.AssignBlockSize(ctx)
	}
}

func needsReflow(f flow.Flow) bool {
	return f.Base().RestyleDamage.Intersects(flow.ReflowAll)
}

// BubbleISizes computes intrinsic inline sizes bottom-up, for flows with
// damage BubbleISizes.
func BubbleISizes(f flow.Flow) {
	base := f.Base()
	for _, kid := range base.Children() {
		BubbleISizes(kid)
	}
	if base.RestyleDamage.Contains(flow.BubbleISizes) {
		f.BubbleInlineSizes()
		base.RestyleDamage.Remove(flow.BubbleISizes)
	}
}

// GuessFloatPlacement speculates about the inline space floats will take
// away from each flow, in document order. Absolutely positioned flows
// neither see nor influence the speculation of their siblings.
func GuessFloatPlacement(f flow.Flow) {
	base := f.Base()
	if !base.RestyleDamage.Contains(flow.Reflow) {
		return
	}
	floatsIn := flow.ComputeFloatsInForFirstChild(f)
	for _, kid := range base.Children() {
		kb := kid.Base()
		if kb.Flags.Contains(flow.IsAbsolutelyPositioned) {
			GuessFloatPlacement(kid)
			continue
		}
		floatsIn.ComputeFloatsIn(kid)
		kb.SpeculatedFloatPlacementIn = floatsIn
		GuessFloatPlacement(kid)
		floatsIn = kb.SpeculatedFloatPlacementOut
	}
	floatsIn.ComputeFloatsOut(f)
	base.SpeculatedFloatPlacementOut = floatsIn
}

// StoreOverflow computes the overflow areas of flows with damage
// StoreOverflow, bottom-up. A flow without the damage bit is skipped
// together with its subtree.
func StoreOverflow(ctx *flow.LayoutContext, f flow.Flow) {
	base := f.Base()
	if !base.RestyleDamage.Contains(flow.StoreOverflow) {
		return
	}
	for _, kid := range base.Children() {
		StoreOverflow(ctx, kid)
	}
	base.Overflow = f.ComputeOverflow()
	base.RestyleDamage.Remove(flow.StoreOverflow)
}

// ComputeStackingRelativePositions sets the positions of flows relative
// to the stacking context they paint into. If the root of the walk has
// damage Reposition, its whole subtree is repositioned.
func ComputeStackingRelativePositions(root flow.Flow) {
	base := root.Base()
	if !base.RestyleDamage.Contains(flow.Reposition) {
		return
	}
	if base.IsRoot() {
		base.StackingRelativePosition = base.Position.TopL.Add(root.RelativeOffset())
	}
	repositionSubtree(root)
}

func repositionSubtree(f flow.Flow) {
	base := f.Base()
	origin := base.StackingRelativePosition
	if b := f.AsBlock(); b != nil {
		origin.X += b.Fragment.Box.Margins[frame.Left]
	}
	if f.EstablishesStackingContext() {
		origin = dimen.Origin
	}
	for _, kid := range base.Children() {
		kb := kid.Base()
		kb.StackingRelativePosition = origin.Add(kb.Position.TopL).Add(kid.RelativeOffset())
		repositionSubtree(kid)
	}
	base.RestyleDamage.Remove(flow.Reposition)
}

// IterateThroughFlowTreeFragmentBorderBoxes calls visitor for the
// fragments of a flow tree, depth-first, with the border boxes of the
// fragments relative to the root.
//
// Offsets of stacking contexts accumulate. Transforms contribute the
// position they move the origin of a stacking context's border box to;
// rotation and scaling of the boxes themselves is not reflected.
func IterateThroughFlowTreeFragmentBorderBoxes(root flow.Flow, visitor flow.BorderBoxVisitor) {
	iterateBorderBoxes(root, visitor, 0, dimen.Origin)
}

func iterateBorderBoxes(f flow.Flow, visitor flow.BorderBoxVisitor, level int, offset dimen.Point) {
	f.IterateThroughFragmentBorderBoxes(visitor, level, offset)
	for _, kid := range f.Base().Children() {
		kidOffset := offset
		if b := kid.AsBlock(); b != nil && kid.EstablishesStackingContext() {
			margin := dimen.Point{X: b.Fragment.Box.Margins[frame.Left]}
			kidOffset = margin.Add(kid.Base().StackingRelativePosition).Add(offset)
			bbox := dimen.RectAt(dimen.Origin, b.Fragment.BorderBox.Size())
			if m, ok := b.Fragment.TransformMatrix(bbox); ok {
				kidOffset = kidOffset.Add(m.ApplyPoint(dimen.Origin))
			}
		}
		iterateBorderBoxes(kid, visitor, level+1, kidOffset)
	}
}

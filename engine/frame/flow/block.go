package flow

import (
	"fmt"

	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/engine/frame"
	"github.com/reidswan/servo/engine/frame/display"
	"golang.org/x/net/html"
)

// BlockFlow is a flow for block-level boxes: blocks, list items, floats,
// absolutely positioned boxes and the root.
type BlockFlow struct {
	base     BaseFlow
	Fragment *frame.Fragment // principal box
}

// NewBlockFlow creates a block flow for an element with a computed style.
// The flow starts with full damage.
func NewBlockFlow(node *html.Node, style *frame.Style) *BlockFlow {
	return &BlockFlow{
		base:     newBaseFlow(FlagsFromStyle(style)),
		Fragment: frame.NewBoxFragment(node, style),
	}
}

// Base is part of interface Flow.
func (b *BlockFlow) Base() *BaseFlow { return &b.base }

// Class is part of interface Flow.
func (b *BlockFlow) Class() FlowClass { return BlockClass }

// AsBlock is part of interface Flow.
func (b *BlockFlow) AsBlock() *BlockFlow { return b }

// Node is part of interface Flow.
func (b *BlockFlow) Node() *html.Node { return b.Fragment.Node }

// Fragments is part of interface Flow.
func (b *BlockFlow) Fragments() []*frame.Fragment {
	return []*frame.Fragment{b.Fragment}
}

// EstablishesStackingContext is part of interface Flow. The root flow always
// paints into the root stacking context.
func (b *BlockFlow) EstablishesStackingContext() bool {
	return !b.base.IsRoot() && b.Fragment.EstablishesStackingContext()
}

// EstablishesFormattingContext is true for the root and for blocks starting a
// new block formatting context.
func (b *BlockFlow) EstablishesFormattingContext() bool {
	return b.base.IsRoot() || b.Fragment.Style.EstablishesFormattingContext()
}

// RelativeOffset is part of interface Flow.
func (b *BlockFlow) RelativeOffset() dimen.Point {
	return b.Fragment.RelativeOffset(dimen.Size{W: b.base.BlockContainerInlineSize})
}

// GuessInlineContentEdgeOffsets returns the inline start and end offsets of
// the content box from the margin box, as far as they can be known before
// layout. Percentages count as zero.
func (b *BlockFlow) GuessInlineContentEdgeOffsets() (start, end dimen.Dimen) {
	style := b.Fragment.Style
	abs := func(l frame.Length) dimen.Dimen {
		if l.IsAbsolute() {
			return l.Resolve(0)
		}
		return 0
	}
	start = abs(style.Margins[frame.Left]) + style.BorderWidth[frame.Left] + abs(style.Padding[frame.Left])
	end = abs(style.Margins[frame.Right]) + style.BorderWidth[frame.Right] + abs(style.Padding[frame.Right])
	return
}

func (b *BlockFlow) shrinksToFit() bool {
	return b.base.Flags.IsFloat() || b.base.Flags.Contains(IsAbsolutelyPositioned)
}

// --- Intrinsic sizes -------------------------------------------------------

// BubbleInlineSizes is part of interface Flow. It computes the intrinsic
// inline sizes of the block from the ones of its children.
func (b *BlockFlow) BubbleInlineSizes() {
	style := b.Fragment.Style
	var isz IntrinsicISizes
	var floatsLeft, floatsRight dimen.Dimen
	for _, kid := range b.base.children {
		kb := kid.Base()
		if kb.Flags.Contains(IsAbsolutelyPositioned) {
			continue
		}
		if kb.Flags.Contains(ClearsLeft) || kb.Flags.Contains(ClearsRight) {
			isz.PreferredInlineSize = dimen.Max(isz.PreferredInlineSize, floatsLeft+floatsRight)
			if kb.Flags.Contains(ClearsLeft) {
				floatsLeft = 0
			}
			if kb.Flags.Contains(ClearsRight) {
				floatsRight = 0
			}
		}
		kisz := kb.IntrinsicISizes
		isz.MinimumInlineSize = dimen.Max(isz.MinimumInlineSize, kisz.MinimumInlineSize)
		switch kb.Flags.FloatKind() {
		case frame.FloatLeft:
			floatsLeft += kisz.PreferredInlineSize
		case frame.FloatRight:
			floatsRight += kisz.PreferredInlineSize
		default:
			isz.PreferredInlineSize = dimen.Max(isz.PreferredInlineSize, kisz.PreferredInlineSize)
		}
	}
	isz.PreferredInlineSize = dimen.Max(isz.PreferredInlineSize, floatsLeft+floatsRight)
	if style.Width.IsAbsolute() {
		w := style.Width.Resolve(0)
		isz = IntrinsicISizes{MinimumInlineSize: w, PreferredInlineSize: w}
	}
	isz.PreferredInlineSize = dimen.Max(isz.PreferredInlineSize, isz.MinimumInlineSize)
	start, end := b.GuessInlineContentEdgeOffsets()
	isz.MinimumInlineSize += start + end
	isz.PreferredInlineSize += start + end
	b.base.IntrinsicISizes = isz
}

// --- Inline sizes ----------------------------------------------------------

// AssignInlineSizes is part of interface Flow. It resolves the inline size
// of the block from the inline size of its containing block and hands the
// resulting content inline size down to the children.
func (b *BlockFlow) AssignInlineSizes(ctx *LayoutContext) {
	style := b.Fragment.Style
	if b.base.IsRoot() {
		b.base.BlockContainerInlineSize = ctx.Viewport.W
	}
	cb := b.base.BlockContainerInlineSize
	box := &b.Fragment.Box
	box.ResolveDecorations(style, cb)
	deco := box.InlineDecorations()
	var content dimen.Dimen
	switch {
	case style.Width.IsDefinite():
		content = style.Width.Resolve(cb)
	case b.shrinksToFit():
		surrounding := deco + box.InlineMargins()
		available := cb - surrounding
		minContent := b.base.IntrinsicISizes.MinimumInlineSize - surrounding
		prefContent := b.base.IntrinsicISizes.PreferredInlineSize - surrounding
		content = dimen.Min(dimen.Max(minContent, available), prefContent)
	default:
		content = cb - deco - box.InlineMargins()
	}
	content = dimen.Max(content, 0)
	if style.Width.IsDefinite() && !b.shrinksToFit() &&
		style.Margins[frame.Left].IsAuto() && style.Margins[frame.Right].IsAuto() {
		if free := cb - content - deco; free > 0 {
			box.Margins[frame.Left] = free / 2
			box.Margins[frame.Right] = free - free/2
		}
	}
	box.Content.W = content
	bb := box.BorderBoxSize()
	b.Fragment.BorderBox = dimen.RectAt(dimen.Point{X: box.Margins[frame.Left]},
		dimen.Size{W: bb.W, H: b.Fragment.BorderBox.Height()})
	b.base.setSize(dimen.Size{W: bb.W + box.InlineMargins(), H: b.base.Position.Height()})
	tracer().Debugf("block %s: inline size %v of container %v", b, bb.W, cb)
	b.propagateInlineSizesToChildren()
}

func (b *BlockFlow) propagateInlineSizesToChildren() {
	box := &b.Fragment.Box
	content := box.Content.W
	co := box.ContentOffset()
	for _, kid := range b.base.children {
		kb := kid.Base()
		switch {
		case kb.Flags.Contains(IsAbsolutelyPositioned):
			pb := box.PaddingBox()
			kb.BlockContainerInlineSize = pb.Width()
			x := co.X
			if kblock := kid.AsBlock(); kblock != nil {
				if left := kblock.Fragment.Style.Offsets[frame.Left]; left.IsDefinite() {
					x = pb.TopL.X + left.Resolve(pb.Width())
				}
			}
			kb.setOrigin(dimen.Point{X: x, Y: kb.Position.TopL.Y})
		case kb.Flags.IsFloat():
			kb.BlockContainerInlineSize = content
			kb.setOrigin(dimen.Point{X: co.X, Y: kb.Position.TopL.Y})
		case EstablishesFormattingContext(kid):
			in := kb.SpeculatedFloatPlacementIn
			kb.UsedFloatIntrusion = in
			kb.BlockContainerInlineSize = dimen.Max(0, content-in.Left-in.Right)
			kb.setOrigin(dimen.Point{X: co.X + in.Left, Y: kb.Position.TopL.Y})
		default:
			kb.UsedFloatIntrusion = SpeculatedFloatPlacement{}
			kb.BlockContainerInlineSize = content
			kb.setOrigin(dimen.Point{X: co.X, Y: kb.Position.TopL.Y})
		}
	}
}

// --- Block sizes -----------------------------------------------------------

// AssignBlockSize is part of interface Flow. It stacks the children of the
// block, places floats, positions absolutely positioned children and
// determines the block size of the block. Children with a new block
// formatting context which have been laid out with a wrong float
// speculation are laid out again, forcefully.
func (b *BlockFlow) AssignBlockSize(ctx *LayoutContext) {
	style := b.Fragment.Style
	box := &b.Fragment.Box
	co := box.ContentOffset()
	content := box.Content.W
	floats := NewFloatList(content)
	var cur, pendingMargin dimen.Dimen // cur is relative to the content box
	staticY := make(map[Flow]dimen.Dimen)
	first := true
	for _, kid := range b.base.children {
		kb := kid.Base()
		if kb.Flags.Contains(IsAbsolutelyPositioned) {
			staticY[kid] = cur + pendingMargin
			continue
		}
		mtop, mbottom := blockMargins(kid)
		if kb.Flags.IsFloat() {
			sz := dimen.Size{W: kb.Position.Width(), H: kb.Position.Height() + mtop + mbottom}
			ceiling := cur
			if !first {
				ceiling += pendingMargin
			}
			pos := floats.Place(kb.Flags.FloatKind(), sz, ceiling)
			kb.setOrigin(dimen.Point{X: co.X + pos.X, Y: co.Y + pos.Y + mtop})
			continue
		}
		top := cur + mtop
		if !first {
			top = cur + collapseMargins(pendingMargin, mtop)
		}
		if kb.Flags.Contains(ClearsLeft) || kb.Flags.Contains(ClearsRight) {
			top = dimen.Max(top, floats.Clearance(kb.Flags))
		}
		if EstablishesFormattingContext(kid) {
			b.correctFloatSpeculation(ctx, kid, floats, top)
		} else if inline, ok := kid.(*InlineFlow); ok && floats.Len() > 0 {
			inline.LayoutAroundFloats(floats, top)
		}
		kb.setOrigin(dimen.Point{X: kb.Position.TopL.X, Y: co.Y + top})
		cur = top + kb.Position.Height()
		pendingMargin = mbottom
		first = false
	}
	contentH := cur + pendingMargin
	if b.EstablishesFormattingContext() {
		contentH = dimen.Max(contentH, floats.Bottom())
	}
	if style.Height.IsAbsolute() {
		contentH = style.Height.Resolve(0)
	} else if style.Height.IsPercent() && b.base.IsRoot() {
		contentH = style.Height.Resolve(ctx.Viewport.H) - box.BlockDecorations()
	}
	box.Content.H = dimen.Max(contentH, 0)
	bb := box.BorderBoxSize()
	b.Fragment.BorderBox = dimen.RectAt(dimen.Point{X: box.Margins[frame.Left]}, bb)
	b.base.setSize(dimen.Size{W: b.base.Position.Width(), H: bb.H})
	b.positionAbsoluteChildren(staticY)
	b.base.RestyleDamage.Remove(ReflowAll)
	b.base.RestyleDamage.Insert(StoreOverflow | Reposition | Repaint)
	tracer().Debugf("block %s: block size %v", b, bb.H)
}

// correctFloatSpeculation compares the float intrusion a child with a new
// formatting context has been laid out with to the actual one at block
// position top. On mismatch, the child is laid out again.
func (b *BlockFlow) correctFloatSpeculation(ctx *LayoutContext, kid Flow, floats *FloatList,
	top dimen.Dimen) {
	//
	kb := kid.Base()
	left, right := floats.Intrusion(top, kb.Position.Height())
	actual := SpeculatedFloatPlacement{Left: left, Right: right}
	if actual == kb.UsedFloatIntrusion {
		return
	}
	tracer().Debugf("block %s: float speculation %v for child was wrong, actual %v",
		b, kb.UsedFloatIntrusion, actual)
	co := b.Fragment.Box.ContentOffset()
	kb.UsedFloatIntrusion = actual
	kb.BlockContainerInlineSize = dimen.Max(0, b.Fragment.Box.Content.W-left-right)
	kb.setOrigin(dimen.Point{X: co.X + left, Y: kb.Position.TopL.Y})
	ctx.Relayout(kid, Force)
}

func (b *BlockFlow) positionAbsoluteChildren(staticY map[Flow]dimen.Dimen) {
	box := &b.Fragment.Box
	pb := box.PaddingBox()
	co := box.ContentOffset()
	for _, kid := range b.base.children {
		kb := kid.Base()
		if !kb.Flags.Contains(IsAbsolutelyPositioned) {
			continue
		}
		y := co.Y + staticY[kid]
		if kblock := kid.AsBlock(); kblock != nil {
			off := kblock.Fragment.Style.Offsets
			if off[frame.Top].IsDefinite() {
				y = pb.TopL.Y + off[frame.Top].Resolve(pb.Width())
			} else if off[frame.Bottom].IsDefinite() {
				y = pb.BotR.Y - off[frame.Bottom].Resolve(pb.Width()) - kb.Position.Height()
			}
		}
		kb.setOrigin(dimen.Point{X: kb.Position.TopL.X, Y: y})
	}
}

func blockMargins(f Flow) (top, bottom dimen.Dimen) {
	if b := f.AsBlock(); b != nil {
		return b.Fragment.Box.Margins[frame.Top], b.Fragment.Box.Margins[frame.Bottom]
	}
	return 0, 0
}

func collapseMargins(a, b dimen.Dimen) dimen.Dimen {
	switch {
	case a >= 0 && b >= 0:
		return dimen.Max(a, b)
	case a < 0 && b < 0:
		return dimen.Min(a, b)
	}
	return a + b
}

// --- Overflow --------------------------------------------------------------

// ComputeOverflow is part of interface Flow.
func (b *BlockFlow) ComputeOverflow() Overflow {
	own := dimen.RectAt(dimen.Origin, b.Fragment.BorderBox.Size())
	ov := Overflow{Scroll: own, Paint: own}
	clips := b.Fragment.Style.Overflow != frame.OverflowVisible
	for _, kid := range b.base.children {
		kov := kid.Base().Overflow
		if kblock := kid.AsBlock(); kblock != nil {
			kbox := dimen.RectAt(dimen.Origin, kblock.Fragment.BorderBox.Size())
			if m, ok := kblock.Fragment.TransformMatrix(kbox); ok {
				kov.Scroll = m.ApplyRect(kov.Scroll)
				kov.Paint = m.ApplyRect(kov.Paint)
			}
		}
		offset := BorderBoxOffset(kid)
		ov.Scroll = ov.Scroll.Union(kov.Scroll.Translate(offset))
		if !clips {
			ov.Paint = ov.Paint.Union(kov.Paint.Translate(offset))
		}
	}
	if w := b.Fragment.Style.OutlineWidth; w > 0 {
		ov.Paint = ov.Paint.Union(dimen.Rect{
			TopL: dimen.Point{X: -w, Y: -w},
			BotR: dimen.Point{X: own.BotR.X + w, Y: own.BotR.Y + w},
		})
	}
	return ov
}

// BorderBoxOffset returns the offset of a flow's border box from the border
// box of its parent, including relative positioning.
func BorderBoxOffset(f Flow) dimen.Point {
	p := f.Base().Position.TopL.Add(f.RelativeOffset())
	if b := f.AsBlock(); b != nil {
		p.X += b.Fragment.Box.Margins[frame.Left]
	}
	return p
}

func (b *BlockFlow) String() string {
	return fmt.Sprintf("block(%s)", frame.NodeName(b.Fragment.Node))
}

// --- Stacking contexts and display items -----------------------------------

// StackingContextType tells which kind of stacking context the block
// creates, if any.
func (b *BlockFlow) StackingContextType() (display.StackingContextType, bool) {
	switch {
	case b.base.IsRoot():
		return display.Real, false
	case b.Fragment.EstablishesStackingContext():
		return display.Real, true
	case b.base.Flags.Contains(IsPositioned):
		return display.PseudoPositioned, true
	case b.base.Flags.IsFloat():
		return display.PseudoFloat, true
	}
	return display.Real, false
}

// StackingRelativeBorderBox returns the border box of the block in the
// coordinate system of the stacking context it paints into. A block
// establishing a stacking context sits at the origin of its own one.
func (b *BlockFlow) StackingRelativeBorderBox(own bool) dimen.Rect {
	if own && b.EstablishesStackingContext() {
		return dimen.RectAt(dimen.Origin, b.Fragment.BorderBox.Size())
	}
	return b.Fragment.BorderBox.Translate(b.base.StackingRelativePosition)
}

// CollectStackingContexts is part of interface Flow.
func (b *BlockFlow) CollectStackingContexts(state *display.CollectionState) {
	typ, creates := b.StackingContextType()
	if !creates {
		b.base.StackingContextID = state.CurrentStackingContextID()
		for _, kid := range b.base.children {
			kid.CollectStackingContexts(state)
		}
		return
	}
	style := b.Fragment.Style
	bounds := b.StackingRelativeBorderBox(false)
	sc := display.NewStackingContext(typ, b.Fragment.Node, bounds, b.base.Overflow.Paint,
		style.ZIndex.Value)
	if typ == display.Real {
		sc.Opacity = style.Opacity
		sc.Transform, sc.HasTransform = b.Fragment.TransformMatrix(b.StackingRelativeBorderBox(true))
	}
	id := state.AddStackingContext(sc)
	b.base.StackingContextID = id
	state.PushStackingContext(id)
	for _, kid := range b.base.children {
		kid.CollectStackingContexts(state)
	}
	state.PopStackingContext()
}

// BuildDisplayList is part of interface Flow.
func (b *BlockFlow) BuildDisplayList(state *display.BuildState) {
	state.CurrentStackingContextID = b.base.StackingContextID
	style := b.Fragment.Style
	bounds := b.StackingRelativeBorderBox(true)
	section := display.BlockBackgroundsAndBorders
	if b.base.IsRoot() || b.base.Flags.IsFloat() || b.EstablishesStackingContext() {
		section = display.BackgroundAndBorders
	}
	base := display.BaseItem{
		Bounds:            bounds,
		Node:              b.Fragment.Node,
		Section:           section,
		StackingContextID: b.base.StackingContextID,
	}
	if !style.Background.IsTransparent() {
		state.AddDisplayItem(&display.RectangleItem{
			BaseItem: base,
			Color:    display.StaticColor(style.Background),
		})
	}
	if hasBorder(style) {
		state.AddDisplayItem(&display.BorderItem{
			BaseItem: base,
			Widths:   style.BorderWidth,
			Colors:   style.BorderColor,
		})
	}
	if w := style.OutlineWidth; w > 0 && !style.OutlineColor.IsTransparent() {
		outline := base
		outline.Section = display.Outlines
		outline.Bounds = dimen.Rect{
			TopL: bounds.TopL.Sub(dimen.Point{X: w, Y: w}),
			BotR: bounds.BotR.Add(dimen.Point{X: w, Y: w}),
		}
		state.AddDisplayItem(&display.BorderItem{
			BaseItem: outline,
			Widths:   [4]dimen.Dimen{w, w, w, w},
			Colors:   [4]frame.Color{style.OutlineColor, style.OutlineColor, style.OutlineColor, style.OutlineColor},
		})
	}
}

func hasBorder(style *frame.Style) bool {
	for i := 0; i < 4; i++ {
		if style.BorderWidth[i] > 0 && !style.BorderColor[i].IsTransparent() {
			return true
		}
	}
	return false
}

// IterateThroughFragmentBorderBoxes is part of interface Flow.
func (b *BlockFlow) IterateThroughFragmentBorderBoxes(visitor BorderBoxVisitor, level int,
	offset dimen.Point) {
	//
	if !visitor.ShouldProcess(b.Fragment) {
		return
	}
	visitor.Process(b.Fragment, level, b.StackingRelativeBorderBox(true).Translate(offset))
}

// --- Geometry helpers ------------------------------------------------------

func (base *BaseFlow) setOrigin(p dimen.Point) {
	base.Position = dimen.RectAt(p, base.Position.Size())
}

func (base *BaseFlow) setSize(sz dimen.Size) {
	base.Position = dimen.RectAt(base.Position.TopL, sz)
}

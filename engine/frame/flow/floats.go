package flow

import (
	"fmt"

	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/engine/frame"
)

// SpeculatedFloatPlacement is a guess at the inline size floats take away
// on either side, computed before layout in order to give inline sizes to
// formatting-context roots next to floats.
type SpeculatedFloatPlacement struct {
	Left, Right dimen.Dimen
}

func (p SpeculatedFloatPlacement) String() string {
	return fmt.Sprintf("floats{L=%v R=%v}", p.Left, p.Right)
}

// ComputeFloatsIn adjusts the placement for flow, which is the next
// sibling in line. Clearing resets a side.
func (p *SpeculatedFloatPlacement) ComputeFloatsIn(f Flow) {
	flags := f.Base().Flags
	if flags.Contains(ClearsLeft) {
		p.Left = 0
	}
	if flags.Contains(ClearsRight) {
		p.Right = 0
	}
}

// ComputeFloatsOut computes the placement after f, given that p is the
// placement coming in.
func (p *SpeculatedFloatPlacement) ComputeFloatsOut(f Flow) {
	if b := f.AsBlock(); b != nil {
		if b.EstablishesFormattingContext() {
			*p = b.base.SpeculatedFloatPlacementIn
		} else {
			out := b.base.SpeculatedFloatPlacementOut
			if p.Left < out.Left {
				p.Left = out.Left
			}
			if p.Right < out.Right {
				p.Right = out.Right
			}
		}
	}
	base := f.Base()
	if !base.Flags.IsFloat() {
		return
	}
	floatInlineSize := base.IntrinsicISizes.PreferredInlineSize
	if floatInlineSize == 0 {
		if b := f.AsBlock(); b != nil && b.Fragment.Style.Width.Percent() > 0 {
			// no size known before layout; any non-zero value will make
			// later siblings flow around this float
			floatInlineSize = dimen.PX
		}
	}
	switch base.Flags.FloatKind() {
	case frame.FloatLeft:
		p.Left += floatInlineSize
	case frame.FloatRight:
		p.Right += floatInlineSize
	}
}

// ComputeFloatsInForFirstChild returns the placement the first child of
// parent starts with.
func ComputeFloatsInForFirstChild(parent Flow) SpeculatedFloatPlacement {
	b := parent.AsBlock()
	if b == nil {
		return parent.Base().SpeculatedFloatPlacementIn
	}
	if b.EstablishesFormattingContext() {
		return SpeculatedFloatPlacement{}
	}
	placement := b.base.SpeculatedFloatPlacementIn
	start, end := b.GuessInlineContentEdgeOffsets()
	if start > 0 {
		placement.Left = dimen.Max(0, placement.Left-start)
	}
	if end > 0 {
		placement.Right = dimen.Max(0, placement.Right-end)
	}
	return placement
}

// --- Placed floats ---------------------------------------------------------

type placedFloat struct {
	side frame.FloatSide
	rect dimen.Rect // margin box, relative to the content box of the parent
}

// FloatList holds the floats placed in the content box of a block.
type FloatList struct {
	width  dimen.Dimen // inline size of the content box
	floats []placedFloat
}

// NewFloatList creates an empty float list for a content box of a given
// inline size.
func NewFloatList(width dimen.Dimen) *FloatList {
	return &FloatList{width: width}
}

// Len returns the number of placed floats.
func (l *FloatList) Len() int {
	return len(l.floats)
}

// Intrusion returns how far floats reach into the band [top, top+height)
// from the left and from the right.
func (l *FloatList) Intrusion(top, height dimen.Dimen) (left, right dimen.Dimen) {
	if height <= 0 {
		height = dimen.SP
	}
	for _, f := range l.floats {
		if f.rect.TopL.Y >= top+height || f.rect.BotR.Y <= top {
			continue
		}
		switch f.side {
		case frame.FloatLeft:
			left = dimen.Max(left, f.rect.BotR.X)
		case frame.FloatRight:
			right = dimen.Max(right, l.width-f.rect.TopL.X)
		}
	}
	return
}

// Place places a float with a margin box of size sz, not higher than
// ceiling. The float moves down past other floats until it fits or
// until no floats are left beside it. Place returns the top left corner of
// the float's margin box.
func (l *FloatList) Place(side frame.FloatSide, sz dimen.Size, ceiling dimen.Dimen) dimen.Point {
	y := ceiling
	for _, f := range l.floats { // not higher than earlier floats
		y = dimen.Max(y, f.rect.TopL.Y)
	}
	for {
		left, right := l.Intrusion(y, sz.H)
		if (left == 0 && right == 0) || left+right+sz.W <= l.width {
			x := left
			if side == frame.FloatRight {
				x = l.width - right - sz.W
			}
			pos := dimen.Point{X: x, Y: y}
			l.floats = append(l.floats, placedFloat{side: side, rect: dimen.RectAt(pos, sz)})
			return pos
		}
		next := dimen.Dimen(dimen.Infinity)
		for _, f := range l.floats {
			if f.rect.BotR.Y > y && f.rect.BotR.Y < next {
				next = f.rect.BotR.Y
			}
		}
		if next == dimen.Infinity {
			next = y + dimen.PX
		}
		y = next
	}
}

// Clearance returns the block position below all floats on the sides
// given by flags.
func (l *FloatList) Clearance(flags FlowFlags) dimen.Dimen {
	var y dimen.Dimen
	for _, f := range l.floats {
		if (f.side == frame.FloatLeft && flags.Contains(ClearsLeft)) ||
			(f.side == frame.FloatRight && flags.Contains(ClearsRight)) {
			y = dimen.Max(y, f.rect.BotR.Y)
		}
	}
	return y
}

// Bottom returns the lowest margin edge of all floats.
func (l *FloatList) Bottom() dimen.Dimen {
	var y dimen.Dimen
	for _, f := range l.floats {
		y = dimen.Max(y, f.rect.BotR.Y)
	}
	return y
}

package flow

import (
	"fmt"

	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/engine/frame"
	"github.com/reidswan/servo/engine/frame/display"
	"golang.org/x/net/html"
)

// InlineFlow is an anonymous flow holding a run of inline content: text,
// replaced images and generated content. Inline flows are leaves of the
// flow tree.
type InlineFlow struct {
	base      BaseFlow
	style     *frame.Style // style of the containing block
	fragments []*frame.Fragment
	Lines     []Line
}

// Line is a line box of an inline flow.
type Line struct {
	Bounds   dimen.Rect // relative to the flow's origin
	Baseline dimen.Dimen
	Pieces   []*frame.Fragment
}

// NewInlineFlow creates an empty inline flow. style is the style of the
// block containing the inline content.
func NewInlineFlow(style *frame.Style) *InlineFlow {
	return &InlineFlow{
		base:  newBaseFlow(0),
		style: style,
	}
}

// AppendFragment adds a fragment of inline content.
func (in *InlineFlow) AppendFragment(f *frame.Fragment) {
	in.fragments = append(in.fragments, f)
	in.base.RestyleDamage.Insert(Reflow | BubbleISizes)
}

// Items returns the source fragments in document order.
func (in *InlineFlow) Items() []*frame.Fragment {
	return in.fragments
}

// Style returns the style of the containing block.
func (in *InlineFlow) Style() *frame.Style {
	return in.style
}

// Base is part of interface Flow.
func (in *InlineFlow) Base() *BaseFlow { return &in.base }

// Class is part of interface Flow.
func (in *InlineFlow) Class() FlowClass { return InlineClass }

// AsBlock is part of interface Flow.
func (in *InlineFlow) AsBlock() *BlockFlow { return nil }

// Node is part of interface Flow. Inline flows are anonymous.
func (in *InlineFlow) Node() *html.Node { return nil }

// EstablishesStackingContext is part of interface Flow.
func (in *InlineFlow) EstablishesStackingContext() bool { return false }

// RelativeOffset is part of interface Flow.
func (in *InlineFlow) RelativeOffset() dimen.Point { return dimen.Origin }

// Fragments is part of interface Flow. It returns the pieces of all lines.
func (in *InlineFlow) Fragments() []*frame.Fragment {
	var frags []*frame.Fragment
	for _, l := range in.Lines {
		frags = append(frags, l.Pieces...)
	}
	return frags
}

func (in *InlineFlow) String() string {
	return fmt.Sprintf("inline(%d items, %d lines)", len(in.fragments), len(in.Lines))
}

// --- Atoms -----------------------------------------------------------------

// atom is an unbreakable unit of inline content.
type atom struct {
	frag       *frame.Fragment
	word       int // index into the fragment's words, -1 for images
	width      dimen.Dimen
	height     dimen.Dimen // for images
	spaceAfter dimen.Dimen // 0 if no white space follows
	breakAfter bool
}

func (in *InlineFlow) atoms() []atom {
	var atoms []atom
	for _, f := range in.fragments {
		switch {
		case f.Kind == frame.ImageFragment:
			sz := f.ReplacedSize()
			atoms = append(atoms, atom{frag: f, word: -1, width: sz.W, height: sz.H})
		case f.Text != nil:
			if f.Text.LeadingSpace && len(atoms) > 0 && atoms[len(atoms)-1].spaceAfter == 0 {
				atoms[len(atoms)-1].spaceAfter = f.Text.Space
			}
			for i, w := range f.Text.Words {
				a := atom{frag: f, word: i, width: w.Advance, breakAfter: w.BreakAfter}
				if w.SpaceAfter {
					a.spaceAfter = f.Text.Space
				}
				atoms = append(atoms, a)
			}
		}
	}
	return atoms
}

func wraps(f *frame.Fragment) bool {
	return f.Style == nil || f.Style.WhiteSpace == frame.WSNormal
}

// --- Intrinsic sizes -------------------------------------------------------

// BubbleInlineSizes is part of interface Flow. The minimum inline size is
// the widest unbreakable run, the preferred one the widest forced line.
func (in *InlineFlow) BubbleInlineSizes() {
	var isz IntrinsicISizes
	var run, line dimen.Dimen
	for _, a := range in.atoms() {
		run += a.width
		line += a.width
		if (a.spaceAfter > 0 && wraps(a.frag)) || a.breakAfter {
			isz.MinimumInlineSize = dimen.Max(isz.MinimumInlineSize, run)
			run = 0
		} else if a.spaceAfter > 0 {
			run += a.spaceAfter
		}
		if a.breakAfter {
			isz.PreferredInlineSize = dimen.Max(isz.PreferredInlineSize, line)
			line = 0
		} else {
			line += a.spaceAfter
		}
	}
	isz.MinimumInlineSize = dimen.Max(isz.MinimumInlineSize, run)
	isz.PreferredInlineSize = dimen.Max(isz.PreferredInlineSize, line)
	in.base.IntrinsicISizes = isz
}

// --- Layout ----------------------------------------------------------------

// AssignInlineSizes is part of interface Flow. Inline flows fill their
// containing block.
func (in *InlineFlow) AssignInlineSizes(ctx *LayoutContext) {
	in.base.setSize(dimen.Size{W: in.base.BlockContainerInlineSize, H: in.base.Position.Height()})
}

// AssignBlockSize is part of interface Flow. It breaks the content into
// lines, ignoring floats. A parent with floats will call
// LayoutAroundFloats afterwards.
func (in *InlineFlow) AssignBlockSize(ctx *LayoutContext) {
	in.breakLines(func(top, height dimen.Dimen) (dimen.Dimen, dimen.Dimen) {
		return 0, 0
	})
	in.base.RestyleDamage.Remove(ReflowAll)
	in.base.RestyleDamage.Insert(StoreOverflow | Reposition | Repaint)
}

// LayoutAroundFloats breaks the content into lines again, shortening lines
// beside floats. top is the block position of the flow in the coordinate
// system of the floats.
func (in *InlineFlow) LayoutAroundFloats(floats *FloatList, top dimen.Dimen) {
	in.breakLines(func(y, height dimen.Dimen) (dimen.Dimen, dimen.Dimen) {
		return floats.Intrusion(top+y, height)
	})
}

// bandFunc returns the float intrusion for a line band relative to the flow.
type bandFunc func(top, height dimen.Dimen) (left, right dimen.Dimen)

func (in *InlineFlow) breakLines(band bandFunc) {
	width := in.base.Position.Width()
	strut := in.style.UsedLineHeight()
	if strut <= 0 {
		strut = dimen.PX
	}
	atoms := in.atoms()
	in.Lines = nil
	var y dimen.Dimen
	for start := 0; start < len(atoms); {
		left, right := band(y, strut)
		avail := width - left - right
		end, used := fitLine(atoms[start:], avail)
		if used > avail && (left > 0 || right > 0) {
			// does not fit beside floats, try further down
			y += strut
			continue
		}
		line := in.makeLine(atoms[start:start+end], left, y, strut)
		in.Lines = append(in.Lines, line)
		y = line.Bounds.BotR.Y
		start += end
	}
	in.base.setSize(dimen.Size{W: width, H: y})
	tracer().Debugf("%s: height %v", in, y)
}

// fitLine returns how many atoms fit on a line of width avail, and their
// width. At least one unbreakable run is always taken.
func fitLine(atoms []atom, avail dimen.Dimen) (n int, used dimen.Dimen) {
	for n < len(atoms) {
		var space dimen.Dimen
		if n > 0 {
			space = atoms[n-1].spaceAfter
		}
		end, w := nextRun(atoms, n)
		if n > 0 && used+space+w > avail {
			break
		}
		used += space + w
		n = end
		if atoms[n-1].breakAfter {
			break
		}
	}
	return n, used
}

// nextRun returns the end of the unbreakable run starting at atoms[i], and
// its width.
func nextRun(atoms []atom, i int) (end int, width dimen.Dimen) {
	for j := i; j < len(atoms); j++ {
		a := atoms[j]
		width += a.width
		if a.breakAfter || (a.spaceAfter > 0 && wraps(a.frag)) {
			return j + 1, width
		}
		width += a.spaceAfter
	}
	return len(atoms), width
}

func (in *InlineFlow) makeLine(atoms []atom, x, top, strut dimen.Dimen) Line {
	height := strut
	for _, a := range atoms {
		if a.word < 0 {
			height = dimen.Max(height, a.height)
		}
	}
	ascent, descent := in.metrics()
	halfLeading := (strut - ascent - descent) / 2
	baseline := top + height - halfLeading - descent
	line := Line{Baseline: baseline}
	var pos, right dimen.Dimen
	for i := 0; i < len(atoms); {
		a := atoms[i]
		var piece *frame.Fragment
		if a.word < 0 {
			piece = a.frag.Piece(nil)
			piece.Box.Content = dimen.Size{W: a.width, H: a.height}
			piece.BorderBox = dimen.RectAt(dimen.Point{X: x + pos, Y: dimen.Max(top, baseline-a.height)},
				piece.Box.Content)
			pos += a.width + a.spaceAfter
			i++
		} else {
			j := i
			for j < len(atoms) && atoms[j].frag == a.frag {
				j++
			}
			piece = a.frag.Piece(a.frag.Text.Words[a.word : atoms[j-1].word+1])
			piece.BorderBox = dimen.RectAt(dimen.Point{X: x + pos, Y: baseline - piece.Text.Ascent},
				piece.Box.Content)
			pos += piece.Box.Content.W + atoms[j-1].spaceAfter
			i = j
		}
		right = piece.BorderBox.BotR.X
		line.Pieces = append(line.Pieces, piece)
	}
	line.Bounds = dimen.RectAt(dimen.Point{X: x, Y: top}, dimen.Size{W: right - x, H: height})
	return line
}

func (in *InlineFlow) metrics() (ascent, descent dimen.Dimen) {
	for _, f := range in.fragments {
		if f.Text != nil {
			return f.Text.Ascent, f.Text.Descent
		}
	}
	return 0, 0
}

// ComputeOverflow is part of interface Flow.
func (in *InlineFlow) ComputeOverflow() Overflow {
	own := dimen.RectAt(dimen.Origin, in.base.Position.Size())
	ov := Overflow{Scroll: own, Paint: own}
	for _, l := range in.Lines {
		for _, p := range l.Pieces {
			ov.Scroll = ov.Scroll.Union(p.BorderBox)
			ov.Paint = ov.Paint.Union(p.BorderBox)
		}
	}
	return ov
}

// --- Display ---------------------------------------------------------------

// CollectStackingContexts is part of interface Flow.
func (in *InlineFlow) CollectStackingContexts(state *display.CollectionState) {
	in.base.StackingContextID = state.CurrentStackingContextID()
}

// BuildDisplayList is part of interface Flow.
func (in *InlineFlow) BuildDisplayList(state *display.BuildState) {
	state.CurrentStackingContextID = in.base.StackingContextID
	srp := in.base.StackingRelativePosition
	for _, l := range in.Lines {
		for _, p := range l.Pieces {
			base := display.BaseItem{
				Bounds:            p.BorderBox.Translate(srp),
				Node:              p.Node,
				Section:           display.Content,
				StackingContextID: in.base.StackingContextID,
			}
			if p.Style != in.style && !p.Style.Background.IsTransparent() {
				state.AddDisplayItem(&display.RectangleItem{
					BaseItem: base,
					Color:    display.StaticColor(p.Style.Background),
				})
			}
			switch {
			case p.Image != nil:
				state.AddDisplayItem(&display.ImageItem{BaseItem: base, Source: p.Image.Source})
			case p.Text != nil:
				state.AddDisplayItem(&display.TextItem{
					BaseItem: base,
					Text:     p.Text.Text,
					Color:    p.Style.Color,
					FontSize: p.Style.FontSize,
					Baseline: l.Baseline + srp.Y,
				})
			}
		}
	}
}

// IterateThroughFragmentBorderBoxes is part of interface Flow.
func (in *InlineFlow) IterateThroughFragmentBorderBoxes(visitor BorderBoxVisitor, level int,
	offset dimen.Point) {
	//
	srp := in.base.StackingRelativePosition
	for _, l := range in.Lines {
		for _, p := range l.Pieces {
			if visitor.ShouldProcess(p) {
				visitor.Process(p, level, p.BorderBox.Translate(srp).Translate(offset))
			}
		}
	}
}

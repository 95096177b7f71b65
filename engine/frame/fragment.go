package frame

import (
	"fmt"
	"strings"

	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/engine/text"
	"golang.org/x/net/html"
)

// FragmentKind discriminates the content of a fragment.
type FragmentKind uint8

// Kinds of fragments.
const (
	BoxFragment       FragmentKind = iota // principal box of a block
	TextFragment                          // a run of text
	ImageFragment                         // a replaced element
	GeneratedFragment                     // generated content, resolved into text
)

// PseudoElement tells which pseudo element a generated fragment belongs to.
type PseudoElement uint8

// Pseudo elements producing generated content.
const (
	NoPseudo PseudoElement = iota
	PseudoBefore
	PseudoAfter
	PseudoMarker
)

// Fragment is the paintable part of a flow. Each fragment refers back to
// the node of the document it originates from (may be nil for anonymous
// fragments) and carries its computed style.
type Fragment struct {
	Kind      FragmentKind
	Node      *html.Node // originating node, opaque to layout
	Style     *Style
	Box       Box        // used values of the box model
	BorderBox dimen.Rect // relative to the owning flow's origin
	Text      *TextRun   // for text and resolved generated content
	Image     *ImageInfo // for replaced elements
	Generated []ContentItem
	Pseudo    PseudoElement
}

// Word is an unbreakable piece of a text run.
type Word struct {
	Text       string
	Advance    dimen.Dimen
	SpaceAfter bool // white space follows this word
	BreakAfter bool // forced line break after this word (preformatted text)
}

// TextRun is measured text.
type TextRun struct {
	Text            string
	Words           []Word
	LeadingSpace    bool
	Space           dimen.Dimen // advance of a single space
	Ascent, Descent dimen.Dimen
}

// ImageInfo describes a replaced image.
type ImageInfo struct {
	Source string
	Size   dimen.Size // intrinsic size
}

// NewBoxFragment creates the principal box fragment of a block.
func NewBoxFragment(node *html.Node, style *Style) *Fragment {
	return &Fragment{Kind: BoxFragment, Node: node, Style: style}
}

// NewTextFragment creates a fragment for a run of text and measures it.
func NewTextFragment(node *html.Node, style *Style, s string, m text.Measurer) *Fragment {
	f := &Fragment{Kind: TextFragment, Node: node, Style: style}
	f.SetText(s, m)
	return f
}

// NewImageFragment creates a fragment for a replaced image.
func NewImageFragment(node *html.Node, style *Style, src string, intrinsic dimen.Size) *Fragment {
	return &Fragment{
		Kind:  ImageFragment,
		Node:  node,
		Style: style,
		Image: &ImageInfo{Source: src, Size: intrinsic},
	}
}

// NewGeneratedFragment creates an unresolved fragment of generated content.
func NewGeneratedFragment(node *html.Node, style *Style, pseudo PseudoElement,
	items []ContentItem) *Fragment {
	//
	return &Fragment{
		Kind:      GeneratedFragment,
		Node:      node,
		Style:     style,
		Generated: items,
		Pseudo:    pseudo,
	}
}

// SetText replaces the text of a fragment and re-measures it. It returns
// true if the text changed.
func (f *Fragment) SetText(s string, m text.Measurer) bool {
	if f.Text != nil && f.Text.Text == s {
		return false
	}
	f.Text = measure(s, f.Style, m)
	return true
}

func measure(s string, style *Style, m text.Measurer) *TextRun {
	fs := style.FontSize
	if fs == 0 {
		fs = DefaultFontSize
	}
	run := &TextRun{Text: s}
	run.Ascent, run.Descent = m.Metrics(fs)
	run.Space = m.Advance(" ", fs)
	if style.WhiteSpace == WSPre {
		lines := strings.Split(s, "\n")
		for i, l := range lines {
			run.Words = append(run.Words, Word{
				Text:       l,
				Advance:    m.Advance(l, fs),
				BreakAfter: i < len(lines)-1,
			})
		}
		return run
	}
	run.LeadingSpace = len(s) > 0 && isSpace(s[0])
	words := strings.Fields(s)
	trailing := len(s) > 0 && isSpace(s[len(s)-1])
	for i, w := range words {
		run.Words = append(run.Words, Word{
			Text:       w,
			Advance:    m.Advance(w, fs),
			SpaceAfter: i < len(words)-1 || trailing,
		})
	}
	return run
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}

// Piece creates a fragment for a part of the text of f, placed on a line.
// Pieces share node and style with f.
func (f *Fragment) Piece(words []Word) *Fragment {
	p := &Fragment{Kind: f.Kind, Node: f.Node, Style: f.Style, Pseudo: f.Pseudo}
	if f.Text == nil {
		p.Image = f.Image
		p.Box = f.Box
		return p
	}
	run := *f.Text
	run.Words = words
	var sb strings.Builder
	var w dimen.Dimen
	for i, word := range words {
		if i > 0 {
			sb.WriteByte(' ')
			w += run.Space
		}
		sb.WriteString(word.Text)
		w += word.Advance
	}
	run.Text = sb.String()
	p.Text = &run
	p.Box.Content = dimen.Size{W: w, H: run.Ascent + run.Descent}
	return p
}

// ReplacedSize returns the used size of a replaced element.
func (f *Fragment) ReplacedSize() dimen.Size {
	if f.Image == nil {
		return dimen.Size{}
	}
	sz := f.Image.Size
	if f.Style.Width.IsAbsolute() {
		sz.W = f.Style.Width.Resolve(0)
	}
	if f.Style.Height.IsAbsolute() {
		sz.H = f.Style.Height.Resolve(0)
	}
	return sz
}

// EstablishesStackingContext is true if the fragment creates a real
// stacking context.
func (f *Fragment) EstablishesStackingContext() bool {
	return f.Style != nil && f.Style.EstablishesStackingContext()
}

// TransformMatrix returns the transformation matrix of the fragment for a
// border box, see Style.TransformMatrix.
func (f *Fragment) TransformMatrix(borderBox dimen.Rect) (Matrix, bool) {
	if f.Style == nil {
		return Identity(), false
	}
	return f.Style.TransformMatrix(borderBox)
}

// RelativeOffset returns the offset of a relatively positioned fragment.
// `left` wins over `right` and `top` wins over `bottom`.
func (f *Fragment) RelativeOffset(container dimen.Size) dimen.Point {
	if f.Style == nil || f.Style.Position != PositionRelative {
		return dimen.Origin
	}
	off := f.Style.Offsets
	var p dimen.Point
	if off[Left].IsDefinite() {
		p.X = off[Left].Resolve(container.W)
	} else if off[Right].IsDefinite() {
		p.X = -off[Right].Resolve(container.W)
	}
	if off[Top].IsDefinite() {
		p.Y = off[Top].Resolve(container.H)
	} else if off[Bottom].IsDefinite() {
		p.Y = -off[Bottom].Resolve(container.H)
	}
	return p
}

func (f *Fragment) String() string {
	switch f.Kind {
	case TextFragment, GeneratedFragment:
		if f.Text != nil {
			return fmt.Sprintf("text(%q)%v", f.Text.Text, f.BorderBox)
		}
		return "generated(unresolved)"
	case ImageFragment:
		return fmt.Sprintf("img(%s)%v", f.Image.Source, f.BorderBox)
	}
	return fmt.Sprintf("box(%s)%v", NodeName(f.Node), f.BorderBox)
}

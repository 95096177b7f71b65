package boxtree

import (
	"errors"
	"strconv"
	"strings"

	"github.com/reidswan/servo/core"
	"github.com/reidswan/servo/core/config"
	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/engine/frame"
	"github.com/reidswan/servo/engine/frame/flow"
	"github.com/reidswan/servo/engine/text"
	"golang.org/x/net/html"
)

// ErrNoFlowTree is returned if the root element of a document does not
// generate a box.
var ErrNoFlowTree = errors.New("no flow tree created")

// BuildFlowTree creates a flow tree for an HTML document. doc may be a
// document node or an element; for documents the root element is used.
// A nil styler applies user agent defaults only.
//
// Unless conf asks for a separate pass, intrinsic inline sizes are
// bubbled bottom-up while the tree is constructed.
func BuildFlowTree(doc *html.Node, styler Styler, m text.Measurer, conf config.LayoutConfig) (flow.Flow, error) {
	if doc == nil {
		return nil, core.Error(core.EMISSING, "cannot build flow tree without document")
	}
	if m == nil {
		return nil, core.Error(core.EMISSING, "cannot build flow tree without text measurer")
	}
	if styler == nil {
		styler = &SheetStyler{}
	}
	rootElem := rootElement(doc)
	if rootElem == nil {
		return nil, core.WrapError(ErrNoFlowTree, core.EINVALID, "document has no root element")
	}
	style := styler.StyleFor(rootElem, nil)
	if style.Display == frame.DisplayNone || style.Display == frame.NoMode {
		return nil, core.WrapError(ErrNoFlowTree, core.EINVALID, "root element <%s> generates no box", rootElem.Data)
	}
	style.Display = frame.BlockMode | frame.FlowRoot
	root := flow.NewBlockFlow(rootElem, style)
	b := &builder{
		styler:  styler,
		m:       m,
		root:    root,
		bubbles: !conf.BubbleInlineSizesSeparately,
	}
	b.positioned = []flow.Flow{root}
	if err := b.buildBlock(root, rootElem); err != nil {
		return nil, err
	}
	tracer().Infof("flow tree for <%s> created", rootElem.Data)
	return root, nil
}

func rootElement(doc *html.Node) *html.Node {
	if doc.Type == html.ElementNode {
		return doc
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

type builder struct {
	styler     Styler
	m          text.Measurer
	root       *flow.BlockFlow
	positioned []flow.Flow // containing blocks for absolutely positioned flows, innermost last
	bubbles    bool        // bubble intrinsic inline sizes during construction
}

// run collects the inline content of a block. Consecutive inline content
// goes into one anonymous inline flow; a block-level child ends the run.
type run struct {
	parent flow.Flow
	style  *frame.Style // style of the block
	in     *flow.InlineFlow
}

func (r *run) inline() (*flow.InlineFlow, error) {
	if r.in != nil {
		return r.in, nil
	}
	in := flow.NewInlineFlow(frame.InheritedStyle(r.style, frame.InlineMode))
	if err := flow.AppendChild(r.parent, in); err != nil {
		return nil, err
	}
	r.in = in
	return in, nil
}

func (r *run) append(f *frame.Fragment) error {
	in, err := r.inline()
	if err != nil {
		return err
	}
	in.AppendFragment(f)
	return nil
}

// buildBlock creates the children of block flow f from the children of n.
func (b *builder) buildBlock(f *flow.BlockFlow, n *html.Node) error {
	style := f.Fragment.Style
	r := &run{parent: f, style: style}
	if f.Base().Flags.Contains(flow.IsListItem) && style.ListStyleType != frame.CounterNone {
		marker := frame.NewGeneratedFragment(n, frame.InheritedStyle(style, frame.InlineMode),
			frame.PseudoMarker, markerContent(style.ListStyleType))
		if err := r.append(marker); err != nil {
			return err
		}
	}
	if err := b.buildContent(r, n, style, frame.InheritedStyle(style, frame.InlineMode)); err != nil {
		return err
	}
	b.finish(f)
	return nil
}

func markerContent(cs frame.CounterStyle) []frame.ContentItem {
	marker := frame.CounterRef(frame.ListItemCounter, cs)
	switch cs {
	case frame.CounterDisc, frame.CounterCircle, frame.CounterSquare:
		return []frame.ContentItem{marker, frame.Literal(" ")}
	}
	return []frame.ContentItem{marker, frame.Literal(". ")}
}

// buildContent adds the content of element n, including its ::before and
// ::after content, to run r. Text of n is styled with textStyle.
func (b *builder) buildContent(r *run, n *html.Node, elemStyle, textStyle *frame.Style) error {
	if err := b.generate(r, n, frame.PseudoBefore, elemStyle); err != nil {
		return err
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		var err error
		switch c.Type {
		case html.TextNode:
			err = b.buildText(r, c, textStyle)
		case html.ElementNode:
			err = b.buildElement(r, c, elemStyle)
		}
		if err != nil {
			return err
		}
	}
	return b.generate(r, n, frame.PseudoAfter, elemStyle)
}

func (b *builder) generate(r *run, n *html.Node, pseudo frame.PseudoElement, elemStyle *frame.Style) error {
	style := b.styler.PseudoStyle(n, pseudo, elemStyle)
	if style == nil {
		return nil
	}
	return r.append(frame.NewGeneratedFragment(n, style, pseudo, style.Content))
}

func (b *builder) buildText(r *run, n *html.Node, style *frame.Style) error {
	if r.in == nil && style.WhiteSpace != frame.WSPre && strings.TrimSpace(n.Data) == "" {
		return nil
	}
	return r.append(frame.NewTextFragment(n, style, n.Data, b.m))
}

func (b *builder) buildElement(r *run, n *html.Node, parentStyle *frame.Style) error {
	style := b.styler.StyleFor(n, parentStyle)
	if style.Display == frame.DisplayNone || style.Display == frame.NoMode {
		tracer().Debugf("no box for <%s>", n.Data)
		return nil
	}
	switch n.Data {
	case "img":
		return r.append(frame.NewImageFragment(n, style, imageSource(n), imageSize(n)))
	case "br":
		brStyle := frame.InheritedStyle(style, frame.InlineMode)
		brStyle.WhiteSpace = frame.WSPre
		return r.append(frame.NewTextFragment(n, brStyle, "\n", b.m))
	}
	if !isBlockLevel(style) {
		return b.buildContent(r, n, style, style) // inline elements are flattened
	}
	r.in = nil
	kid := flow.NewBlockFlow(n, style)
	parent := r.parent
	if style.IsAbsolutelyPositioned() {
		parent = b.containingBlock(style)
	}
	if err := flow.AppendChild(parent, kid); err != nil {
		return err
	}
	if style.IsPositioned() {
		b.positioned = append(b.positioned, kid)
		defer func() { b.positioned = b.positioned[:len(b.positioned)-1] }()
	}
	return b.buildBlock(kid, n)
}

// isBlockLevel is true for elements which get a block flow of their own.
// Inline blocks are laid out as blocks.
func isBlockLevel(style *frame.Style) bool {
	return style.Display.IsBlockLevel() || style.Display.Contains(frame.FlowRoot) ||
		style.IsFloated() || style.IsAbsolutelyPositioned()
}

// containingBlock returns the flow an absolutely positioned flow is
// attached to: the nearest positioned ancestor, or the root for fixed
// positioning.
func (b *builder) containingBlock(style *frame.Style) flow.Flow {
	if style.Position == frame.PositionFixed {
		return b.root
	}
	return b.positioned[len(b.positioned)-1]
}

// finish bubbles the intrinsic inline sizes of a completed block and of
// its inline children. Block children have been finished before.
func (b *builder) finish(f *flow.BlockFlow) {
	if !b.bubbles {
		return
	}
	for _, kid := range f.Base().Children() {
		if kid.Class() == flow.InlineClass {
			bubble(kid)
		}
	}
	bubble(f)
}

func bubble(f flow.Flow) {
	f.BubbleInlineSizes()
	f.Base().RestyleDamage.Remove(flow.BubbleISizes)
}

func imageSource(n *html.Node) string {
	src, _ := attribute(n, "src")
	return src
}

// imageSize reads the intrinsic size of an image from its width and
// height attributes, in CSS pixels.
func imageSize(n *html.Node) dimen.Size {
	var sz dimen.Size
	if w, ok := attribute(n, "width"); ok {
		if px, err := strconv.Atoi(strings.TrimSuffix(w, "px")); err == nil {
			sz.W = dimen.Dimen(px) * dimen.PX
		}
	}
	if h, ok := attribute(n, "height"); ok {
		if px, err := strconv.Atoi(strings.TrimSuffix(h, "px")); err == nil {
			sz.H = dimen.Dimen(px) * dimen.PX
		}
	}
	return sz
}

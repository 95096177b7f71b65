package boxtree

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/reidswan/servo/core"
	"github.com/reidswan/servo/engine/frame"
	"golang.org/x/net/html"
)

// Styler computes styles for the elements of a document.
type Styler interface {
	// StyleFor returns the computed style of an element. parent is the style
	// of the parent element, nil for the root element.
	StyleFor(n *html.Node, parent *frame.Style) *frame.Style
	// PseudoStyle returns the computed style of a pseudo element, or nil if
	// the element does not have the pseudo element.
	PseudoStyle(n *html.Node, pseudo frame.PseudoElement, elem *frame.Style) *frame.Style
}

// SheetStyler styles elements from user agent defaults, a style sheet and
// `style` attributes. Rules apply in source order; later declarations win.
type SheetStyler struct {
	rules []rule
}

type rule struct {
	selector     cascadia.Selector
	pseudo       frame.PseudoElement
	declarations []*css.Declaration
}

var _ Styler = &SheetStyler{}

// NewStyler creates a styler for a style sheet, which may be empty.
func NewStyler(stylesheet string) (*SheetStyler, error) {
	styler := &SheetStyler{}
	if strings.TrimSpace(stylesheet) == "" {
		return styler, nil
	}
	sheet, err := parser.Parse(stylesheet)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse style sheet")
	}
	for _, r := range sheet.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Debugf("ignoring at-rule %s", r.Name)
			continue
		}
		for _, sel := range r.Selectors {
			sel, pseudo := splitPseudoElement(sel)
			if sel == "" {
				sel = "*"
			}
			compiled, err := cascadia.Compile(sel)
			if err != nil {
				return nil, core.WrapError(err, core.EINVALID, "invalid selector %q", sel)
			}
			styler.rules = append(styler.rules, rule{
				selector:     compiled,
				pseudo:       pseudo,
				declarations: r.Declarations,
			})
		}
	}
	tracer().Debugf("style sheet has %d rules", len(styler.rules))
	return styler, nil
}

func splitPseudoElement(sel string) (string, frame.PseudoElement) {
	sel = strings.TrimSpace(sel)
	for _, p := range []struct {
		suffix string
		pseudo frame.PseudoElement
	}{
		{"::before", frame.PseudoBefore}, {":before", frame.PseudoBefore},
		{"::after", frame.PseudoAfter}, {":after", frame.PseudoAfter},
	} {
		if strings.HasSuffix(sel, p.suffix) {
			return strings.TrimSuffix(sel, p.suffix), p.pseudo
		}
	}
	return sel, frame.NoPseudo
}

// StyleFor is part of interface Styler.
func (s *SheetStyler) StyleFor(n *html.Node, parent *frame.Style) *frame.Style {
	style := userAgentStyle(n, parent)
	for _, r := range s.rules {
		if r.pseudo == frame.NoPseudo && r.selector.Match(n) {
			applyDeclarations(style, r.declarations)
		}
	}
	if attr, ok := attribute(n, "style"); ok {
		decls, err := parser.ParseDeclarations(attr)
		if err != nil {
			tracer().Errorf("invalid style attribute of <%s>: %v", n.Data, err)
		} else {
			applyDeclarations(style, decls)
		}
	}
	return style
}

// PseudoStyle is part of interface Styler. Pseudo elements without
// content are not generated.
func (s *SheetStyler) PseudoStyle(n *html.Node, pseudo frame.PseudoElement, elem *frame.Style) *frame.Style {
	var style *frame.Style
	for _, r := range s.rules {
		if r.pseudo == pseudo && r.selector.Match(n) {
			if style == nil {
				style = frame.InheritedStyle(elem, frame.InlineMode)
			}
			applyDeclarations(style, r.declarations)
		}
	}
	if style == nil || len(style.Content) == 0 {
		return nil
	}
	return style
}

// userAgentStyle returns the default style of an element.
func userAgentStyle(n *html.Node, parent *frame.Style) *frame.Style {
	style := frame.InheritedStyle(parent, frame.DefaultDisplayModeForHTMLNode(n))
	if n.Type != html.ElementNode {
		return style
	}
	em := style.FontSize
	switch n.Data {
	case "body":
		for i := range style.Margins {
			style.Margins[i] = frame.Px(8)
		}
	case "p":
		style.Margins[frame.Top] = frame.Fixed(em)
		style.Margins[frame.Bottom] = frame.Fixed(em)
	case "h1":
		style.FontSize = 2 * em
	case "h2":
		style.FontSize = em * 3 / 2
	case "pre":
		style.WhiteSpace = frame.WSPre
	case "ul":
		style.ListStyleType = frame.CounterDisc
		style.Padding[frame.Left] = frame.Px(40)
		style.CounterReset = []frame.CounterOp{{Name: frame.ListItemCounter}}
	case "ol":
		style.ListStyleType = frame.CounterDecimal
		style.Padding[frame.Left] = frame.Px(40)
		style.CounterReset = []frame.CounterOp{{Name: frame.ListItemCounter}}
	}
	return style
}

func attribute(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

package layout

import (
	"strings"

	"github.com/reidswan/servo/engine/frame"
	"github.com/reidswan/servo/engine/frame/flow"
)

// Damage for a flow and its ancestors when resolved generated content of
// the flow has changed.
const generatedContentDamage = flow.ReflowAll | flow.BubbleISizes | flow.StoreOverflow |
	flow.Repaint | flow.Reposition

// ResolveGeneratedContent renders the generated content of a flow tree
// into text: counters, quotes and literal strings of ::before, ::after
// and list-item markers. Text is measured with the measurer of ctx.
//
// Counters are scoped: a counter reset by an element is visible to the
// element, its descendants and its following siblings with their
// descendants. Incrementing a counter without scope creates one at the
// root.
func ResolveGeneratedContent(root flow.Flow, ctx *flow.LayoutContext) {
	r := &contentResolver{
		ctx:      ctx,
		counters: make(map[string][]counterScope),
	}
	r.visit(root, 0)
}

type counterScope struct {
	level int
	value int
}

type contentResolver struct {
	ctx        *flow.LayoutContext
	counters   map[string][]counterScope // innermost last
	quoteDepth int
	path       []flow.Flow // ancestors of the visited flow, including itself
}

func (r *contentResolver) visit(f flow.Flow, level int) {
	r.path = append(r.path, f)
	base := f.Base()
	if b := f.AsBlock(); b != nil {
		r.applyCounterOps(b.Fragment.Style, level, base.Flags.Contains(flow.IsListItem))
	}
	if in, ok := f.(*flow.InlineFlow); ok {
		r.resolveInline(in, level)
	}
	for _, kid := range base.Children() {
		r.visit(kid, level+1)
	}
	r.closeScopes(level)
	base.RestyleDamage.Remove(flow.ResolveGeneratedContent)
	r.path = r.path[:len(r.path)-1]
}

func (r *contentResolver) resolveInline(in *flow.InlineFlow, level int) {
	changed := false
	for _, frag := range in.Items() {
		if frag.Kind != frame.GeneratedFragment {
			continue
		}
		r.applyCounterOps(frag.Style, level, false)
		s := r.render(frag)
		if frag.SetText(s, r.ctx.Measurer) {
			tracer().Debugf("generated content %q", s)
			changed = true
		}
	}
	if changed {
		for _, f := range r.path {
			f.Base().RestyleDamage.Insert(generatedContentDamage)
		}
	}
}

// --- Counters --------------------------------------------------------------

func (r *contentResolver) applyCounterOps(style *frame.Style, level int, isListItem bool) {
	if style == nil {
		return
	}
	for _, op := range style.CounterReset {
		r.reset(op.Name, op.Value, level)
	}
	incrementsListItem := false
	for _, op := range style.CounterIncrement {
		r.increment(op.Name, op.Value)
		incrementsListItem = incrementsListItem || op.Name == frame.ListItemCounter
	}
	if isListItem && !incrementsListItem {
		r.increment(frame.ListItemCounter, 1)
	}
}

// reset creates a counter scope. A reset by a sibling replaces the scope of
// an earlier sibling.
func (r *contentResolver) reset(name string, value, level int) {
	scopes := r.counters[name]
	if n := len(scopes); n > 0 && scopes[n-1].level == level {
		scopes[n-1].value = value
		return
	}
	r.counters[name] = append(scopes, counterScope{level: level, value: value})
}

func (r *contentResolver) increment(name string, by int) {
	scopes := r.counters[name]
	if len(scopes) == 0 {
		r.counters[name] = []counterScope{{level: 0, value: by}}
		return
	}
	scopes[len(scopes)-1].value += by
}

// closeScopes drops the counter scopes opened by the children of a flow
// at level.
func (r *contentResolver) closeScopes(level int) {
	for name, scopes := range r.counters {
		n := len(scopes)
		for n > 0 && scopes[n-1].level > level {
			n--
		}
		r.counters[name] = scopes[:n]
	}
}

func (r *contentResolver) counterValue(name string) int {
	scopes := r.counters[name]
	if len(scopes) == 0 {
		return 0
	}
	return scopes[len(scopes)-1].value
}

// --- Rendering -------------------------------------------------------------

func (r *contentResolver) render(frag *frame.Fragment) string {
	var sb strings.Builder
	quotes := frame.NewStyle(frame.InlineMode).Quotes
	if frag.Style != nil && len(frag.Style.Quotes) > 0 {
		quotes = frag.Style.Quotes
	}
	for _, item := range frag.Generated {
		switch item.Kind {
		case frame.ContentString:
			sb.WriteString(item.Text)
		case frame.ContentCounter:
			sb.WriteString(FormatCounter(r.counterValue(item.Counter), item.Style))
		case frame.ContentCounters:
			scopes := r.counters[item.Counter]
			if len(scopes) == 0 {
				sb.WriteString(FormatCounter(0, item.Style))
			}
			for i, sc := range scopes {
				if i > 0 {
					sb.WriteString(item.Separator)
				}
				sb.WriteString(FormatCounter(sc.value, item.Style))
			}
		case frame.ContentOpenQuote:
			sb.WriteString(quotes[min(r.quoteDepth, len(quotes)-1)].Open)
			r.quoteDepth++
		case frame.ContentCloseQuote:
			if r.quoteDepth > 0 {
				r.quoteDepth--
				sb.WriteString(quotes[min(r.quoteDepth, len(quotes)-1)].Close)
			}
		case frame.ContentNoOpenQuote:
			r.quoteDepth++
		case frame.ContentNoCloseQuote:
			if r.quoteDepth > 0 {
				r.quoteDepth--
			}
		}
	}
	return sb.String()
}

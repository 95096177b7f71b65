package layout

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/reidswan/servo/core/config"
	"github.com/reidswan/servo/engine/frame"
	"github.com/reidswan/servo/engine/frame/flow"
	"github.com/stretchr/testify/assert"
)

func listItem() *flow.BlockFlow {
	return newBlock(func(s *frame.Style) { s.Display = frame.BlockMode | frame.ListItemMode })
}

func withGenerated(parent *flow.BlockFlow, items ...[]frame.ContentItem) []*frame.Fragment {
	in := flow.NewInlineFlow(parent.Fragment.Style)
	style := frame.InheritedStyle(parent.Fragment.Style, frame.InlineMode)
	var frags []*frame.Fragment
	for _, content := range items {
		f := frame.NewGeneratedFragment(nil, style, frame.PseudoBefore, content)
		in.AppendFragment(f)
		frags = append(frags, f)
	}
	flow.MustAppend(parent, in)
	return frags
}

func marker() []frame.ContentItem {
	return []frame.ContentItem{
		frame.CounterRef(frame.ListItemCounter, frame.CounterDecimal),
		frame.Literal(". "),
	}
}

func clearDamage(f flow.Flow) {
	f.Base().RestyleDamage = 0
	for _, kid := range f.Base().Children() {
		clearDamage(kid)
	}
}

func TestListItemCounters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.layout")
	defer teardown()
	//
	root := newBlock(func(s *frame.Style) {
		s.CounterReset = []frame.CounterOp{{Name: frame.ListItemCounter}}
	})
	li1, li2, li3 := listItem(), listItem(), listItem()
	flow.MustAppend(root, li1, li2, li3)
	m1 := withGenerated(li1, marker())
	m2 := withGenerated(li2, marker())
	nested := newBlock(func(s *frame.Style) {
		s.CounterReset = []frame.CounterOp{{Name: frame.ListItemCounter}}
	})
	flow.MustAppend(li2, nested)
	lia := listItem()
	flow.MustAppend(nested, lia)
	ma := withGenerated(lia, marker(), []frame.ContentItem{{
		Kind: frame.ContentCounters, Counter: frame.ListItemCounter, Separator: ".",
		Style: frame.CounterLowerRoman,
	}})
	m3 := withGenerated(li3, marker())
	clearDamage(root)
	//
	ResolveGeneratedContent(root, newContext(200, 100, config.LayoutConfig{}))
	assert.Equal(t, "1. ", m1[0].Text.Text)
	assert.Equal(t, "2. ", m2[0].Text.Text)
	assert.Equal(t, "1. ", ma[0].Text.Text)
	assert.Equal(t, "ii.i", ma[1].Text.Text)
	assert.Equal(t, "3. ", m3[0].Text.Text)
	assert.True(t, root.Base().RestyleDamage.Contains(flow.Reflow|flow.BubbleISizes|flow.Repaint))
	assert.True(t, m1[0].Text.Words[0].Advance > 0, "generated text is measured")
	//
	clearDamage(root)
	ResolveGeneratedContent(root, newContext(200, 100, config.LayoutConfig{}))
	assert.True(t, root.Base().RestyleDamage.IsEmpty(), "unchanged content does not damage")
}

func TestQuotes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.layout")
	defer teardown()
	//
	root := newBlock(nil)
	open := frame.ContentItem{Kind: frame.ContentOpenQuote}
	cls := frame.ContentItem{Kind: frame.ContentCloseQuote}
	q := withGenerated(root,
		[]frame.ContentItem{open, frame.Literal("a")},
		[]frame.ContentItem{open},
		[]frame.ContentItem{cls},
		[]frame.ContentItem{cls, cls},
		[]frame.ContentItem{{Kind: frame.ContentNoOpenQuote}, cls},
	)
	ResolveGeneratedContent(root, newContext(200, 100, config.LayoutConfig{}))
	assert.Equal(t, "“a", q[0].Text.Text)
	assert.Equal(t, "‘", q[1].Text.Text)
	assert.Equal(t, "’", q[2].Text.Text)
	assert.Equal(t, "”", q[3].Text.Text, "unbalanced close quotes are dropped")
	assert.Equal(t, "”", q[4].Text.Text)
}

func TestFormatCounter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.layout")
	defer teardown()
	//
	for _, c := range []struct {
		n     int
		style frame.CounterStyle
		out   string
	}{
		{4, frame.CounterLowerRoman, "iv"},
		{1994, frame.CounterUpperRoman, "MCMXCIV"},
		{28, frame.CounterLowerAlpha, "ab"},
		{27, frame.CounterUpperAlpha, "AA"},
		{0, frame.CounterLowerAlpha, "0"},
		{7, frame.CounterDecimalLeadingZero, "07"},
		{-3, frame.CounterDecimal, "-3"},
		{5, frame.CounterDisc, "•"},
		{5, frame.CounterNone, ""},
	} {
		assert.Equal(t, c.out, FormatCounter(c.n, c.style), "counter %d", c.n)
	}
	assert.True(t, IsBullet(frame.CounterSquare))
}

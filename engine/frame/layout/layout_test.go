package layout

import (
	"math"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/reidswan/servo/core/config"
	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/engine/frame"
	"github.com/reidswan/servo/engine/frame/display"
	"github.com/reidswan/servo/engine/frame/flow"
	"github.com/reidswan/servo/engine/text/monospace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func px(n int) dimen.Dimen {
	return dimen.Dimen(n) * dimen.PX
}

func newBlock(setup func(s *frame.Style)) *flow.BlockFlow {
	style := frame.NewStyle(frame.BlockMode)
	style.FontSize = 10 * dimen.PX
	if setup != nil {
		setup(style)
	}
	return flow.NewBlockFlow(nil, style)
}

func newContext(w, h int, conf config.LayoutConfig) *flow.LayoutContext {
	return NewContext(1, monospace.Measurer(nil), dimen.Size{W: px(w), H: px(h)}, conf)
}

// --- Ordering --------------------------------------------------------------

type recorder struct {
	sync.Mutex
	events []string
}

func (r *recorder) log(s string) {
	r.Lock()
	defer r.Unlock()
	r.events = append(r.events, s)
}

func (r *recorder) index(s string) int {
	for i, e := range r.events {
		if e == s {
			return i
		}
	}
	return -1
}

type recordingFlow struct {
	*flow.BlockFlow
	name string
	rec  *recorder
}

func (f *recordingFlow) AssignInlineSizes(ctx *flow.LayoutContext) {
	f.rec.log("inline " + f.name)
	f.BlockFlow.AssignInlineSizes(ctx)
}

func (f *recordingFlow) AssignBlockSize(ctx *flow.LayoutContext) {
	f.rec.log("block " + f.name)
	f.BlockFlow.AssignBlockSize(ctx)
}

func recordingTree(rec *recorder) (flow.Flow, map[string]string) {
	mk := func(name string) *recordingFlow {
		return &recordingFlow{
			BlockFlow: newBlock(func(s *frame.Style) { s.Height = frame.Px(10) }),
			name:      name,
			rec:       rec,
		}
	}
	root, a, b := mk("root"), mk("a"), mk("b")
	a1, a2, b1 := mk("a1"), mk("a2"), mk("b1")
	flow.MustAppend(root, a, b)
	flow.MustAppend(a, a1, a2)
	flow.MustAppend(b, b1)
	parents := map[string]string{"a": "root", "b": "root", "a1": "a", "a2": "a", "b1": "b"}
	return root, parents
}

func checkOrdering(t *testing.T, rec *recorder, parents map[string]string) {
	require.Len(t, rec.events, 12)
	for kid, parent := range parents {
		assert.Less(t, rec.index("inline "+parent), rec.index("inline "+kid),
			"inline size of %s assigned before the one of its parent", kid)
		assert.Less(t, rec.index("block "+kid), rec.index("block "+parent),
			"block size of %s assigned after the one of its parent", kid)
	}
}

func TestReflowOrdering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.layout")
	defer teardown()
	//
	rec := &recorder{}
	root, parents := recordingTree(rec)
	Reflow(root, newContext(200, 100, config.LayoutConfig{BubbleInlineSizesSeparately: true}), flow.Incremental)
	checkOrdering(t, rec, parents)
	//
	rec.events = nil
	Reflow(root, newContext(200, 100, config.LayoutConfig{}), flow.Incremental)
	assert.Empty(t, rec.events, "flows without damage are not laid out again")
	Reflow(root, newContext(200, 100, config.LayoutConfig{}), flow.Force)
	checkOrdering(t, rec, parents)
}

func TestParallelReflowOrdering(t *testing.T) {
	defer goleak.VerifyNone(t)
	teardown := gotestingadapter.QuickConfig(t, "servo.layout")
	defer teardown()
	//
	rec := &recorder{}
	root, parents := recordingTree(rec)
	conf := config.LayoutConfig{BubbleInlineSizesSeparately: true, ParallelReflow: true, ParallelDepth: 2}
	ReflowParallel(newContext(200, 100, conf), root, flow.Incremental)
	checkOrdering(t, rec, parents)
	//
	seq := &recorder{}
	seqRoot, _ := recordingTree(seq)
	Reflow(seqRoot, newContext(200, 100, conf), flow.Incremental)
	for i, kid := range root.Base().Children() {
		assert.Equal(t, seqRoot.Base().Children()[i].Base().Position, kid.Base().Position)
	}
}

// --- Floats ----------------------------------------------------------------

func floatsAndBFC() (root, bfc *flow.BlockFlow) {
	root = newBlock(nil)
	left := newBlock(func(s *frame.Style) {
		s.Float = frame.FloatLeft
		s.Width, s.Height = frame.Px(40), frame.Px(30)
	})
	right := newBlock(func(s *frame.Style) {
		s.Float = frame.FloatRight
		s.Width, s.Height = frame.Px(30), frame.Px(30)
	})
	bfc = newBlock(func(s *frame.Style) {
		s.Overflow = frame.OverflowHidden
		s.Height = frame.Px(20)
	})
	flow.MustAppend(root, left, right, bfc)
	return
}

func TestSpeculationEqualsForcedRelayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.layout")
	defer teardown()
	//
	root, speculated := floatsAndBFC()
	BubbleISizes(root)
	GuessFloatPlacement(root)
	assert.Equal(t, flow.SpeculatedFloatPlacement{Left: px(40), Right: px(30)},
		speculated.Base().SpeculatedFloatPlacementIn)
	Reflow(root, newContext(200, 100, config.LayoutConfig{}), flow.Incremental)
	//
	other, corrected := floatsAndBFC()
	BubbleISizes(other)
	Reflow(other, newContext(200, 100, config.LayoutConfig{}), flow.Incremental)
	//
	assert.Equal(t, speculated.Base().Position, corrected.Base().Position)
	assert.Equal(t, speculated.Base().UsedFloatIntrusion, corrected.Base().UsedFloatIntrusion)
	assert.Equal(t, px(40), corrected.Base().Position.TopL.X)
	assert.Equal(t, px(130), corrected.Base().Position.Width())
	assert.Equal(t, root.Base().Position, other.Base().Position)
}

func TestAbsoluteSiblingsDoNotChangeFloatsOut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.layout")
	defer teardown()
	//
	chain := func(withAbs bool) flow.Flow {
		root, container := newBlock(nil), newBlock(nil)
		fl := newBlock(func(s *frame.Style) {
			s.Float = frame.FloatLeft
			s.Width = frame.Px(50)
		})
		flow.MustAppend(root, container)
		flow.MustAppend(container, fl)
		if withAbs {
			abs := newBlock(func(s *frame.Style) {
				s.Position = frame.PositionAbsolute
				s.Float = frame.FloatRight
				s.Width = frame.Px(80)
			})
			flow.MustAppend(container, abs)
		}
		BubbleISizes(root)
		GuessFloatPlacement(root)
		return container
	}
	plain, abs := chain(false), chain(true)
	assert.Equal(t, px(50), plain.Base().SpeculatedFloatPlacementOut.Left)
	assert.Equal(t, plain.Base().SpeculatedFloatPlacementOut, abs.Base().SpeculatedFloatPlacementOut)
}

// --- Overflow and positions ------------------------------------------------

func TestStoreOverflowIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.layout")
	defer teardown()
	//
	root := newBlock(nil)
	kid := newBlock(func(s *frame.Style) {
		s.Width, s.Height = frame.Px(300), frame.Px(40)
	})
	flow.MustAppend(root, kid)
	ctx := newContext(200, 100, config.LayoutConfig{BubbleInlineSizesSeparately: true})
	Reflow(root, ctx, flow.Incremental)
	StoreOverflow(ctx, root)
	ov := root.Base().Overflow
	assert.Equal(t, px(300), ov.Scroll.Width())
	assert.False(t, root.Base().RestyleDamage.Contains(flow.StoreOverflow))
	//
	root.Base().Overflow = flow.Overflow{}
	StoreOverflow(ctx, root)
	assert.Equal(t, flow.Overflow{}, root.Base().Overflow, "second run must not touch the flow")
}

func TestStackingRelativePositions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.layout")
	defer teardown()
	//
	root := newBlock(func(s *frame.Style) { s.Padding[frame.Left] = frame.Px(5) })
	sc := newBlock(func(s *frame.Style) {
		s.Opacity = 0.5
		s.Height = frame.Px(20)
		s.Margins[frame.Top] = frame.Px(10)
	})
	inner := newBlock(func(s *frame.Style) {
		s.Position = frame.PositionRelative
		s.Offsets[frame.Left] = frame.Px(3)
		s.Height = frame.Px(10)
	})
	flow.MustAppend(root, sc)
	flow.MustAppend(sc, inner)
	ctx := newContext(200, 100, config.LayoutConfig{BubbleInlineSizesSeparately: true})
	Reflow(root, ctx, flow.Incremental)
	ComputeStackingRelativePositions(root)
	assert.Equal(t, dimen.Point{X: px(5), Y: px(10)}, sc.Base().StackingRelativePosition)
	assert.Equal(t, dimen.Point{X: px(3)}, inner.Base().StackingRelativePosition,
		"children of a stacking context are positioned relative to it")
	assert.False(t, inner.Base().RestyleDamage.Contains(flow.Reposition))
}

// --- Display lists ---------------------------------------------------------

func layoutPage(t *testing.T, root flow.Flow, bg string) display.DisplayList {
	conf := config.NewDefaultConfig()
	conf.Viewport.Width, conf.Viewport.Height = "300px", "200px"
	conf.Viewport.Background = bg
	conf.Layout.BubbleInlineSizesSeparately = true
	page, err := NewPage(conf, monospace.Measurer(nil))
	require.NoError(t, err)
	return page.Layout(root, flow.Incremental)
}

func TestPageBackgroundIsFirstItem(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.layout")
	defer teardown()
	//
	root := newBlock(func(s *frame.Style) { s.Background = frame.White })
	list := layoutPage(t, root, "#112233")
	require.GreaterOrEqual(t, list.Len(), 2)
	bg, ok := list.Items[0].(*display.RectangleItem)
	require.True(t, ok, "first item is a rectangle")
	assert.Equal(t, dimen.RectAt(dimen.Origin, dimen.Size{W: px(300), H: px(200)}), bg.Bounds)
	assert.Equal(t, frame.Color{R: 0x11, G: 0x22, B: 0x33, A: 0xff}, bg.Color.Value)
	assert.False(t, root.Base().RestyleDamage.Contains(flow.Repaint))
}

func rectIndex(list display.DisplayList, c frame.Color) int {
	for i, item := range list.Items {
		if r, ok := item.(*display.RectangleItem); ok && r.Color.Value == c {
			return i
		}
	}
	return -1
}

func TestZIndexPaintOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.layout")
	defer teardown()
	//
	red, blue := frame.Color{R: 0xff, A: 0xff}, frame.Color{B: 0xff, A: 0xff}
	root := newBlock(nil)
	first := newBlock(func(s *frame.Style) {
		s.Position, s.ZIndex = frame.PositionRelative, frame.ZIndexOf(2)
		s.Height, s.Background = frame.Px(10), red
	})
	second := newBlock(func(s *frame.Style) {
		s.Position, s.ZIndex = frame.PositionRelative, frame.ZIndexOf(1)
		s.Height, s.Background = frame.Px(10), blue
	})
	flow.MustAppend(root, first, second)
	list := layoutPage(t, root, "#ffffff")
	assert.Greater(t, rectIndex(list, red), rectIndex(list, blue))
	assert.Greater(t, rectIndex(list, blue), 0)
	pushes, pops := 0, 0
	for _, item := range list.Items {
		switch item.(type) {
		case *display.PushStackingContextItem:
			pushes++
		case *display.PopStackingContextItem:
			pops++
		}
	}
	assert.Equal(t, 2, pushes)
	assert.Equal(t, 2, pops)
	//
	green := frame.Color{G: 0xff, A: 0xff}
	root = newBlock(func(s *frame.Style) { s.Background = green })
	below := newBlock(func(s *frame.Style) {
		s.Position, s.ZIndex = frame.PositionRelative, frame.ZIndexOf(-1)
		s.Height, s.Background = frame.Px(10), blue
	})
	flow.MustAppend(root, below)
	list = layoutPage(t, root, "#ffffff")
	require.Greater(t, rectIndex(list, green), 0)
	assert.Greater(t, rectIndex(list, blue), rectIndex(list, green))
}

// --- Border boxes ----------------------------------------------------------

type boxCollector struct {
	boxes map[*frame.Fragment]dimen.Rect
}

func (c *boxCollector) ShouldProcess(f *frame.Fragment) bool { return true }

func (c *boxCollector) Process(f *frame.Fragment, level int, borderBox dimen.Rect) {
	c.boxes[f] = borderBox
}

func transformedTree(tf frame.TransformFunc) (root, sc, inner *flow.BlockFlow) {
	root = newBlock(nil)
	sc = newBlock(func(s *frame.Style) {
		s.Transform = []frame.TransformFunc{tf}
		s.Width, s.Height = frame.Px(100), frame.Px(50)
		s.Margins[frame.Top] = frame.Px(10)
	})
	inner = newBlock(func(s *frame.Style) { s.Height = frame.Px(10) })
	flow.MustAppend(root, sc)
	flow.MustAppend(sc, inner)
	ctx := newContext(200, 100, config.LayoutConfig{BubbleInlineSizesSeparately: true})
	Reflow(root, ctx, flow.Incremental)
	ComputeStackingRelativePositions(root)
	return
}

func TestTranslationFolding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.layout")
	defer teardown()
	//
	root, sc, inner := transformedTree(frame.Translate(frame.Px(7), frame.Px(3)))
	c := &boxCollector{boxes: make(map[*frame.Fragment]dimen.Rect)}
	IterateThroughFlowTreeFragmentBorderBoxes(root, c)
	require.Len(t, c.boxes, 3)
	offset := dimen.Point{X: px(7), Y: px(10 + 3)}
	assert.Equal(t, offset, c.boxes[sc.Fragment].TopL)
	assert.Equal(t, offset, c.boxes[inner.Fragment].TopL)
	assert.Equal(t, dimen.Origin, c.boxes[root.Fragment].TopL)
}

func TestRotationFolding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.layout")
	defer teardown()
	//
	root, sc, inner := transformedTree(frame.Rotate(math.Pi / 2))
	c := &boxCollector{boxes: make(map[*frame.Fragment]dimen.Rect)}
	IterateThroughFlowTreeFragmentBorderBoxes(root, c)
	// rotating (0,0) by 90 degrees about the center (50,25) yields (75,-25),
	// then the box is shifted down by its top margin
	assert.Equal(t, dimen.Point{X: px(75), Y: px(-15)}, c.boxes[inner.Fragment].TopL)
	assert.Equal(t, px(100), c.boxes[sc.Fragment].Width(), "boxes themselves are not rotated")
}

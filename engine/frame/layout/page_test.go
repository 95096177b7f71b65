package layout

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/reidswan/servo/core"
	"github.com/reidswan/servo/core/config"
	"github.com/reidswan/servo/engine/frame"
	"github.com/reidswan/servo/engine/frame/flow"
	"github.com/reidswan/servo/engine/text/monospace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.layout")
	defer teardown()
	//
	_, err := NewPage(nil, nil)
	assert.Equal(t, core.EMISSING, core.Code(err))
	conf := config.NewDefaultConfig()
	conf.Viewport.Background = "red"
	_, err = NewPage(conf, monospace.Measurer(nil))
	assert.Equal(t, core.EINVALID, core.Code(err))
	page, err := NewPage(nil, monospace.Measurer(nil))
	require.NoError(t, err)
	assert.Equal(t, px(800), page.Width())
	assert.Equal(t, frame.White, page.Background)
}

func TestPageUpdateEvents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.layout")
	defer teardown()
	//
	conf := config.NewDefaultConfig()
	conf.Layout.BubbleInlineSizesSeparately = true
	page, err := NewPage(conf, monospace.Measurer(nil))
	require.NoError(t, err)
	root := newBlock(nil)
	kid := newBlock(func(s *frame.Style) { s.Height = frame.Px(10) })
	flow.MustAppend(root, kid)
	page.Layout(root, flow.Incremental)
	assert.Equal(t, px(10), root.Base().Position.Height())
	//
	_, done := page.Update(root)
	assert.False(t, done, "nothing to do without events")
	kid.Fragment.Style.Height = frame.Px(30)
	page.Post(NewReflowEvent(1, kid))
	list, done := page.Update(root)
	assert.True(t, done)
	assert.Equal(t, px(30), root.Base().Position.Height())
	assert.Greater(t, list.Len(), 0)
	//
	page.Post(NewReflowEvent(1, kid))
	page.Post(NewEvent(9, AbortEvent))
	_, done = page.Update(root)
	assert.False(t, done, "abort discards pending reflows")
}

func TestPageLayoutSpeculatesBubbledFloats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.layout")
	defer teardown()
	//
	for _, separately := range []bool{false, true} {
		conf := config.NewDefaultConfig()
		conf.Layout.BubbleInlineSizesSeparately = separately
		page, err := NewPage(conf, monospace.Measurer(nil))
		require.NoError(t, err)
		root, bfc := floatsAndBFC()
		page.Layout(root, flow.Incremental)
		assert.Equal(t, flow.SpeculatedFloatPlacement{Left: px(40), Right: px(30)},
			bfc.Base().SpeculatedFloatPlacementIn, "separate bubbling = %v", separately)
		assert.Equal(t, px(40), bfc.Base().Position.TopL.X)
	}
}

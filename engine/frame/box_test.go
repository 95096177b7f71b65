package frame

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/core/percent"
	"github.com/stretchr/testify/assert"
)

func TestBoxNullbox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.frame")
	defer teardown()
	//
	box := &Box{}
	assert.Equal(t, dimen.Size{}, box.BorderBoxSize())
	assert.Equal(t, dimen.Size{}, box.MarginBoxSize())
	assert.Equal(t, dimen.Origin, box.ContentOffset())
}

func TestBoxDecorations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.frame")
	defer teardown()
	//
	style := NewStyle(BlockMode)
	style.Padding[Left] = Percentage(percent.Percent(10))
	style.Padding[Right] = Px(5)
	style.BorderWidth = [4]dimen.Dimen{dimen.PX, dimen.PX, dimen.PX, dimen.PX}
	style.Margins[Top] = Px(8)
	style.Margins[Left] = Auto
	box := &Box{}
	box.ResolveDecorations(style, 200*dimen.PX)
	box.Content = dimen.Size{W: 100 * dimen.PX, H: 50 * dimen.PX}
	t.Logf(box.DebugString())
	assert.Equal(t, 20*dimen.PX, box.Padding[Left])
	assert.Equal(t, dimen.Zero, box.Margins[Left], "auto margin resolves to zero")
	assert.Equal(t, 27*dimen.PX, box.InlineDecorations())
	assert.Equal(t, dimen.Size{W: 127 * dimen.PX, H: 52 * dimen.PX}, box.BorderBoxSize())
	assert.Equal(t, dimen.Size{W: 127 * dimen.PX, H: 60 * dimen.PX}, box.MarginBoxSize())
	assert.Equal(t, dimen.Point{X: 21 * dimen.PX, Y: dimen.PX}, box.ContentOffset())
	pb := box.PaddingBox()
	assert.Equal(t, 125*dimen.PX, pb.Width())
}

func TestParseDisplay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.frame")
	defer teardown()
	//
	d, err := ParseDisplay("inline-block")
	assert.NoError(t, err)
	assert.True(t, d.Contains(InlineMode))
	assert.True(t, d.EstablishesFormattingContext())
	assert.False(t, d.IsBlockLevel())
	d, _ = ParseDisplay("list-item")
	assert.True(t, d.IsBlockLevel())
	assert.Equal(t, "block list-item", d.String())
	_, err = ParseDisplay("ruby")
	assert.Error(t, err)
}

func TestLengthResolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.frame")
	defer teardown()
	//
	l, err := ParseLength("50%")
	assert.NoError(t, err)
	assert.Equal(t, 40*dimen.PX, l.Resolve(80*dimen.PX))
	l, _ = ParseLength("auto")
	assert.True(t, l.IsAuto())
	assert.Equal(t, dimen.Zero, l.Resolve(80*dimen.PX))
	l, _ = ParseLength("12px")
	assert.Equal(t, "12px", l.String())
	assert.True(t, Length{}.IsNone())
}

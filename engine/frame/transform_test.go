package frame

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/reidswan/servo/core/dimen"
	"github.com/stretchr/testify/assert"
)

func TestMatrixMultiply(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.frame")
	defer teardown()
	//
	m := Translation(10, 0).Multiply(Scaling(2, 2))
	x, y := m.Apply(1, 1)
	assert.InDelta(t, 12.0, x, 1e-9)
	assert.InDelta(t, 2.0, y, 1e-9)
	assert.True(t, Identity().Multiply(Identity()).IsIdentity())
}

func TestTransformTranslationOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.frame")
	defer teardown()
	//
	style := NewStyle(BlockMode)
	style.Transform = []TransformFunc{Translate(Px(10), Px(20))}
	bb := dimen.RectAt(dimen.Point{X: 5 * dimen.PX}, dimen.Size{W: 100 * dimen.PX, H: 40 * dimen.PX})
	m, ok := style.TransformMatrix(bb)
	assert.True(t, ok)
	assert.Equal(t, dimen.Point{X: 10 * dimen.PX, Y: 20 * dimen.PX}, m.ApplyPoint(dimen.Origin))
	_, ok = NewStyle(BlockMode).TransformMatrix(bb)
	assert.False(t, ok)
}

func TestTransformRotationAroundCenter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.frame")
	defer teardown()
	//
	style := NewStyle(BlockMode)
	style.Transform = []TransformFunc{Rotate(math.Pi)}
	bb := dimen.RectAt(dimen.Origin, dimen.Size{W: 100 * dimen.PX, H: 40 * dimen.PX})
	m, _ := style.TransformMatrix(bb)
	// rotating by 180° around the center (50,20) maps the origin to (100,40)
	assert.Equal(t, dimen.Point{X: 100 * dimen.PX, Y: 40 * dimen.PX}, m.ApplyPoint(dimen.Origin))
	r := m.ApplyRect(bb)
	assert.Equal(t, bb, r)
}

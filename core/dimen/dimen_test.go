package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.core")
	defer teardown()
	//
	d, _, err := ParseDimen("12px")
	if err != nil {
		t.Errorf("(1) %s", err.Error())
	} else if d != 12*PX {
		t.Errorf("(1) expected d to be 12px (%d), is %d", 12*PX, d)
	}
	//
	d, _, err = ParseDimen("0")
	if err != nil {
		t.Errorf("(2) %s", err.Error())
	} else if d != 0 {
		t.Errorf("(2) expected d to be 0, is %d", d)
	}
	//
	d, ispcnt, err := ParseDimen("20%")
	if err != nil {
		t.Errorf("(3) %s", err.Error())
	} else if ispcnt != true || d != 20 {
		t.Errorf("(3) expected percentage 20, is %v/%d", ispcnt, d)
	}
	//
	_, _, err = ParseDimen("12 px")
	assert.Error(t, err)
}

func TestRectUnion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.core")
	defer teardown()
	//
	r := RectAt(Point{10 * PX, 10 * PX}, Size{20 * PX, 5 * PX})
	s := RectAt(Point{0, 12 * PX}, Size{5 * PX, 30 * PX})
	u := r.Union(s)
	assert.Equal(t, Point{0, 10 * PX}, u.TopL)
	assert.Equal(t, Point{30 * PX, 42 * PX}, u.BotR)
	//
	assert.Equal(t, r, r.Union(Rect{}), "empty rect must not contribute")
	assert.True(t, r.Intersects(r.Translate(Point{5 * PX, 0})))
	assert.False(t, r.Intersects(r.Translate(Point{20 * PX, 0})))
	assert.Equal(t, "3px", (3 * PX).String())
}

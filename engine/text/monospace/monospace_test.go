package monospace

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/reidswan/servo/core/dimen"
	"github.com/stretchr/testify/assert"
)

func TestMonospaceAdvance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "servo.text")
	defer teardown()
	//
	m := Measurer(nil)
	assert.Equal(t, 5*8*dimen.PX, m.Advance("Hello", 16*dimen.PX))
	assert.Equal(t, dimen.Zero, m.Advance("", 16*dimen.PX))
	// wide characters occupy two cells
	assert.Equal(t, 4*5*dimen.PX, m.Advance("世界", 10*dimen.PX))
	a, d := m.Metrics(10 * dimen.PX)
	assert.Equal(t, 8*dimen.PX, a)
	assert.Equal(t, 2*dimen.PX, d)
}

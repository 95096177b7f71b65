package monospace

import (
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/engine/text"
)

type msmeasurer struct {
	context *uax11.Context
}

var setupOnce sync.Once

// Measurer creates a text measurer for monospace typesetting.
// If context is nil, a Latin context is used to resolve ambiguous widths.
func Measurer(context *uax11.Context) text.Measurer {
	m := &msmeasurer{context: context}
	if context == nil {
		m.context = uax11.LatinContext
	}
	setupOnce.Do(grapheme.SetupGraphemeClasses)
	return m
}

// Cells returns the number of cells occupied by a string.
func (ms msmeasurer) Cells(s string) int {
	gstr := grapheme.StringFromString(s)
	cells := 0
	for i := 0; i < gstr.Len(); i++ {
		cells += uax11.Width([]byte(gstr.Nth(i)), ms.context)
	}
	return cells
}

// Advance is part of interface text.Measurer.
func (ms msmeasurer) Advance(s string, fontSize dimen.Dimen) dimen.Dimen {
	if s == "" {
		return 0
	}
	cells := ms.Cells(s)
	tracer().Debugf("monospace: %q occupies %d cells", s, cells)
	return dimen.Dimen(cells) * (fontSize / 2)
}

// Metrics is part of interface text.Measurer.
func (ms msmeasurer) Metrics(fontSize dimen.Dimen) (dimen.Dimen, dimen.Dimen) {
	return fontSize * 4 / 5, fontSize / 5
}

var _ text.Measurer = msmeasurer{}

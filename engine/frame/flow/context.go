package flow

import (
	"github.com/reidswan/servo/core/config"
	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/engine/text"
)

// RelayoutFunc lays out a subtree again, see LayoutContext.Relayout.
type RelayoutFunc func(ctx *LayoutContext, f Flow, mode RelayoutMode)

// LayoutContext is the shared, read-only environment of a layout run.
type LayoutContext struct {
	ID       uint32 // pipeline id, used for stacking-context collection
	Measurer text.Measurer
	Viewport dimen.Size
	Config   config.LayoutConfig
	relayout RelayoutFunc
}

// NewLayoutContext creates a layout context. relayout is the driver
// flows call to lay out a subtree again, usually the sequential reflow.
func NewLayoutContext(id uint32, m text.Measurer, viewport dimen.Size,
	conf config.LayoutConfig, relayout RelayoutFunc) *LayoutContext {
	//
	return &LayoutContext{
		ID:       id,
		Measurer: m,
		Viewport: viewport,
		Config:   conf,
		relayout: relayout,
	}
}

// Relayout lays out a subtree again. Block flows use this to correct a
// wrong float speculation for a child.
func (ctx *LayoutContext) Relayout(f Flow, mode RelayoutMode) {
	if ctx.relayout == nil {
		tracer().Errorf("layout context has no relayout driver; %v not laid out", f.Class())
		return
	}
	ctx.relayout(ctx, f, mode)
}

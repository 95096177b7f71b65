package layout

import (
	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/engine/frame"
	"github.com/reidswan/servo/engine/frame/display"
	"github.com/reidswan/servo/engine/frame/flow"
)

// BuildDisplayListForSubtree collects the stacking contexts of a flow tree
// and builds its display list. The first item of the list paints the page
// background of size clientSize in color bg.
//
// Flows must have been laid out, and stacking-relative positions and
// overflow must be current.
func BuildDisplayListForSubtree(root flow.Flow, ctx *flow.LayoutContext, bg frame.Color,
	clientSize dimen.Size) display.DisplayList {
	//
	cs := display.NewCollectionState(ctx.ID, clientSize)
	root.CollectStackingContexts(cs)
	tracer().Debugf("collected %d stacking contexts", cs.Len())
	state := display.NewBuildState(cs)
	state.AddDisplayItem(&display.RectangleItem{
		BaseItem: display.BaseItem{
			Bounds:            dimen.RectAt(dimen.Origin, clientSize),
			Node:              root.Node(),
			Section:           display.BackgroundAndBorders,
			StackingContextID: display.RootStackingContextID,
		},
		Color: display.StaticColor(bg),
	})
	buildDisplayList(root, state)
	return state.ToDisplayList()
}

func buildDisplayList(f flow.Flow, state *display.BuildState) {
	f.BuildDisplayList(state)
	base := f.Base()
	base.RestyleDamage.Remove(flow.Repaint)
	for _, kid := range base.Children() {
		buildDisplayList(kid, state)
	}
}

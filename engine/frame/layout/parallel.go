package layout

import (
	"github.com/reidswan/servo/engine/frame/flow"
	"golang.org/x/sync/errgroup"
)

// ReflowParallel lays out a flow tree like Reflow, but lays out the
// children of a flow concurrently. The inline size of a flow is assigned
// before any of its children start, and its block size is assigned after
// all of them are done.
//
// Concurrency is limited to the top ctx.Config.ParallelDepth levels of
// the tree. Subtrees below run sequentially, as do relayouts caused by
// wrong float speculation.
func ReflowParallel(ctx *flow.LayoutContext, root flow.Flow, mode flow.RelayoutMode) {
	if ctx.Config.BubbleInlineSizesSeparately {
		BubbleISizes(root)
	}
	reflowParallel(ctx, root, mode, ctx.Config.ParallelDepth)
}

func reflowParallel(ctx *flow.LayoutContext, f flow.Flow, mode flow.RelayoutMode, depth int) {
	base := f.Base()
	if depth <= 0 {
		reflow(ctx, f, mode)
		return
	}
	if mode == flow.Force {
		base.RestyleDamage.Insert(flow.ReflowAll)
	}
	if needsReflow(f) {
		f.AssignInlineSizes(ctx)
	}
	var g errgroup.Group
	for _, kid := range base.Children() {
		kid := kid
		g.Go(func() error {
			reflowParallel(ctx, kid, mode, depth-1)
			return nil
		})
	}
	_ = g.Wait() // workers do not fail
	if needsReflow(f) {
		f.AssignBlockSize(ctx)
	}
}

/*
Package layout drives layout of a flow tree and produces display lists.

Overview

Layout of a flow tree happens in passes, each of which is a traversal of
the tree. Package flow implements the per-flow operations; this package
arranges them:

	ResolveGeneratedContent    top-down, always
	GuessFloatPlacement        top-down, damage Reflow
	BubbleISizes               bottom-up, damage BubbleISizes (if configured)
	Reflow                     inline sizes top-down, block sizes bottom-up
	StoreOverflow              bottom-up, damage StoreOverflow
	ComputeStackingRelativePositions  top-down, damage Reposition
	BuildDisplayListForSubtree stacking contexts, then display items

Assigning inline sizes and block sizes is fused into a single recursion:
a flow gets its inline size before any of its children are visited,
and its block size after all of them have been laid out.

Float placement is guessed before layout. A block which finds a guess to
be wrong lays out the affected child again, see flow.LayoutContext.Relayout.

Page bundles the passes and owns the layout context for a viewport.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'servo.layout'.
func tracer() tracing.Trace {
	return tracing.Select("servo.layout")
}

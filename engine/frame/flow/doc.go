/*
Package flow implements the flow tree: the tree of layout boxes which
the layout traversals operate on.

Every flow owns a base record (BaseFlow) holding the state common to
all kinds of flows: restyle damage, flags, geometry, intrinsic sizes,
speculated float placement, overflow and the id of the stacking context
the flow paints into. Kind-specific state lives in the concrete flow
types, BlockFlow and InlineFlow, which implement interface Flow.

Flows do not drive layout themselves. Package layout walks the tree and
calls the per-flow operations in the order CSS requires: intrinsic
inline sizes bottom-up, inline sizes top-down, block sizes bottom-up.
Each operation mutates the visited flow only, plus the positions and
container sizes of its direct children, which are part of the parent's
step.

Restyle damage

Damage bits are latches. They are set by the styler or the tree builder
(or by layout itself, e.g. when a block has changed geometry) and are
cleared by the pass which consumes them:

	BubbleISizes      → bubble pass
	Reflow            → AssignBlockSize of the flow
	ReflowOutOfFlow   → AssignBlockSize of the flow
	StoreOverflow     → overflow pass
	Reposition        → stacking-relative position pass
	Repaint           → display list construction

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package flow

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'servo.flow'.
func tracer() tracing.Trace {
	return tracing.Select("servo.flow")
}

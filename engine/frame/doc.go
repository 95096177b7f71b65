/*
Package frame holds the geometric vocabulary of layout: fragments,
the CSS box model, the subset of computed style the layout engine
consumes, colors and 2D transforms.

Layout may be understood as the process of placing boxes within
larger boxes. Flows (see sub-package flow) own fragments; a fragment is
the piece of a flow which eventually gets painted: the principal box
of a block, a run of text, a replaced image or a chunk of generated
content.

Fragments follow the CSS box model. Border boxes of fragments are kept
relative to the origin of the owning flow, which is the start of the
flow's margin box in inline direction and the start of its border box
in block direction.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'servo.frame'.
func tracer() tracing.Trace {
	return tracing.Select("servo.frame")
}

/*
Package display holds display items, stacking contexts and the state
used while collecting stacking contexts and building a display list.

A display list is the ordered sequence of paint commands a rasterizer
consumes. Items are grouped by the stacking context they paint into;
BuildState.ToDisplayList flattens the groups in the painting order of
CSS 2.1 Appendix E. Items are placed in the coordinate system of their
stacking context, which has its origin at the top left corner of the
border box of the element establishing it (the page for the root
context).

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package display

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'servo.display'.
func tracer() tracing.Trace {
	return tracing.Select("servo.display")
}

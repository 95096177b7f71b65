/*
Package boxtree builds a flow tree from an HTML document tree.

Every element of the document is styled by a Styler. Block-level elements,
floats and absolutely positioned elements become block flows. Runs of
inline content (text, inline elements, images, generated content) are
collected into anonymous inline flows. Absolutely positioned elements are
re-attached to their nearest positioned ancestor, or to the root for
`position: fixed`.

Styling itself is not part of layout. Package boxtree nevertheless
provides a SheetStyler, which applies the rules of a style sheet in
source order on top of user agent defaults, without specificity. It is
good enough for tests and debugging.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boxtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'servo.boxtree'.
func tracer() tracing.Trace {
	return tracing.Select("servo.boxtree")
}

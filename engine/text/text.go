/*
Package text declares the collaborator interface the layout engine uses to
measure runs of text.

Text shaping is out of scope for the layout engine. Layout needs advance
widths for words and vertical metrics for line boxes only, which is what a
Measurer provides. Package monospace has a simple implementation.
*/
package text

import "github.com/reidswan/servo/core/dimen"

// A Measurer measures text set in a font of a given size.
//
// Implementations must be safe for concurrent use, as parallel reflow
// may measure text from more than one goroutine.
type Measurer interface {
	// Advance returns the advance width of a string.
	Advance(s string, fontSize dimen.Dimen) dimen.Dimen
	// Metrics returns ascent and descent of the font at size fontSize.
	Metrics(fontSize dimen.Dimen) (ascent, descent dimen.Dimen)
}

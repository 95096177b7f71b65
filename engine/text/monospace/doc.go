/*
Package monospace implements a text measurer for monospaced type.

Every grapheme cluster occupies one or two cells, depending on its East
Asian width property (UAX #11). A cell is half an em wide.
*/
package monospace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'servo.text'.
func tracer() tracing.Trace {
	return tracing.Select("servo.text")
}

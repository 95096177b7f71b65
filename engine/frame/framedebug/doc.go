/*
Package framedebug helps debugging flow trees. It writes flow trees in
Graphviz DOT format and dumps the border boxes of laid out fragments.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package framedebug

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'servo.framedebug'.
func tracer() tracing.Trace {
	return tracing.Select("servo.framedebug")
}

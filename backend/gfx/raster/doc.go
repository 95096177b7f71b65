/*
Package raster paints display lists into images. It is a reference sink
for the layout engine's display lists, good enough for tests and for
eyeballing layouts, but not a compositor.

One CSS pixel maps to one image pixel. Stacking contexts nest their
transforms and opacity; rectangles and borders are filled as transformed
polygons. Images are painted as grey placeholders and text is drawn with
a fixed-size bitmap face at its transformed baseline origin.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package raster

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'servo.raster'.
func tracer() tracing.Trace {
	return tracing.Select("servo.raster")
}

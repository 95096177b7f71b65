// Package dimen implements dimensions, points and rectangles for layout.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Dimen is a dimension type.
// Values are in scaled pixels: one CSS pixel is 65536 sp.
type Dimen int32

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	SP   Dimen = 1       // scaled point = PX / 65536
	BP   Dimen = 65536   // big point, equal to a CSS pixel
	PX   Dimen = 65536   // CSS pixels
	PT   Dimen = 65291   // printers point 1/72.27 inch
	MM   Dimen = 185771  // millimeters
	CM   Dimen = 1857710 // centimeters
	IN   Dimen = 4718592 // inch
)

// Infinity is the largest possible dimension
const Infinity = math.MaxInt32

// Stringer implementation.
func (d Dimen) String() string {
	if d%PX == 0 {
		return fmt.Sprintf("%dpx", int32(d/PX))
	}
	return fmt.Sprintf("%dsp", int32(d))
}

// Points returns a dimension in (fractional) pixels.
func (d Dimen) Points() float64 {
	return float64(d) / float64(PX)
}

// FromPoints converts fractional pixels into a dimension, rounding to the
// nearest scaled point.
func FromPoints(f float64) Dimen {
	return Dimen(math.Round(f * float64(PX)))
}

// Point is a point on a page or a two-dimensional vector.
type Point struct {
	X, Y Dimen
}

// Origin is origin
var Origin = Point{0, 0}

// Add returns the sum of two vectors.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Size is the extent of a rectangle.
type Size struct {
	W, H Dimen
}

// Rect is a rectangle (on a page).
type Rect struct {
	TopL, BotR Point
}

// RectAt creates a rectangle from an origin and a size.
func RectAt(origin Point, sz Size) Rect {
	return Rect{
		TopL: origin,
		BotR: Point{origin.X + sz.W, origin.Y + sz.H},
	}
}

// Width returns the width of a rectangle, i.e. the difference between x-coordinates
// of bottom-right and top-left corner.
func (r Rect) Width() Dimen {
	return r.BotR.X - r.TopL.X
}

// Height returns the height of a rectangle, i.e. the difference between y-coordinates
// of bottom-right and top-left corner.
func (r Rect) Height() Dimen {
	return r.BotR.Y - r.TopL.Y
}

// Size returns width and height of r.
func (r Rect) Size() Size {
	return Size{W: r.Width(), H: r.Height()}
}

// IsEmpty is true if r has no area.
func (r Rect) IsEmpty() bool {
	return r.BotR.X <= r.TopL.X || r.BotR.Y <= r.TopL.Y
}

// Translate moves r along a vector.
func (r Rect) Translate(v Point) Rect {
	return Rect{TopL: r.TopL.Add(v), BotR: r.BotR.Add(v)}
}

// Union returns the smallest rectangle containing both r and s.
// Empty rectangles do not contribute.
func (r Rect) Union(s Rect) Rect {
	if s.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return s
	}
	return Rect{
		TopL: Point{Min(r.TopL.X, s.TopL.X), Min(r.TopL.Y, s.TopL.Y)},
		BotR: Point{Max(r.BotR.X, s.BotR.X), Max(r.BotR.Y, s.BotR.Y)},
	}
}

// Intersects is true if r and s share a non-empty area.
func (r Rect) Intersects(s Rect) bool {
	return r.TopL.X < s.BotR.X && s.TopL.X < r.BotR.X &&
		r.TopL.Y < s.BotR.Y && s.TopL.Y < r.BotR.Y
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v %v %vx%v]", r.TopL.X, r.TopL.Y, r.Width(), r.Height())
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]+)(%|[cminpxtc]{2})?$`)

// ParseDimen parses a string to return a dimension. Syntax is CSS Unit.
// If a percentage value is given (`80%`), the second return value will be true
// and the dimension holds the plain number.
func ParseDimen(s string) (Dimen, bool, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return 0, false, errors.New("format error parsing dimension")
	}
	scale := SP
	ispcnt := false
	if len(d) > 2 {
		switch d[2] {
		case "pt", "PT":
			scale = PT
		case "mm", "MM":
			scale = MM
		case "bp", "px", "BP", "PX":
			scale = BP
		case "cm", "CM":
			scale = CM
		case "in", "IN":
			scale = IN
		case "sp", "SP", "":
			scale = SP
		case "%":
			scale, ispcnt = 1, true
		default:
			return 0, false, errors.New("format error parsing dimension")
		}
	}
	n, err := strconv.Atoi(d[1])
	if err != nil {
		return 0, false, errors.New("format error parsing dimension")
	}
	return Dimen(n) * scale, ispcnt, nil
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b Dimen) Dimen {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}

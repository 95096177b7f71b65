package frame

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/core/percent"
)

// Position is the CSS `position` property.
type Position uint8

// Supported values for Position.
const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
)

// FloatSide is the CSS `float` property.
type FloatSide uint8

// Supported values for FloatSide.
const (
	FloatNone FloatSide = iota
	FloatLeft
	FloatRight
)

// ClearSide is the CSS `clear` property.
type ClearSide uint8

// Supported values for ClearSide.
const (
	ClearNone ClearSide = iota
	ClearLeft
	ClearRight
	ClearBoth
)

// Overflow is the CSS `overflow` property (both axes).
type Overflow uint8

// Supported values for Overflow.
const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowClip
	OverflowScroll
	OverflowAuto
)

// WhiteSpace is the CSS `white-space` property.
/*
                  New lines    Spaces and tabs     Text wrapping     End-of-line spaces
				  ---------------------------------------------------------------------
    normal        Collapse     Collapse            Wrap              Remove
    nowrap        Collapse     Collapse            No wrap           Remove
    pre           Preserve     Preserve            No wrap           Preserve
*/
type WhiteSpace uint8

// Supported values for WhiteSpace.
const (
	WSNormal WhiteSpace = iota
	WSNoWrap
	WSPre
)

// ZIndex is the CSS `z-index` property. The zero value is `auto`.
type ZIndex struct {
	Value int32
	Set   bool
}

// ZIndexOf returns a numeric z-index.
func ZIndexOf(n int32) ZIndex {
	return ZIndex{Value: n, Set: true}
}

// Style is the subset of computed CSS properties the layout engine uses.
// Style resolution itself happens elsewhere; the layout engine treats a
// style as read-only.
//
// A zero Style is not a valid computed style, use NewStyle.
type Style struct {
	Display    DisplayMode
	Position   Position
	Float      FloatSide
	Clear      ClearSide
	Overflow   Overflow
	WhiteSpace WhiteSpace
	//
	Width, Height Length
	Margins       [4]Length // auto and percentages allowed
	Padding       [4]Length // percentages allowed
	BorderWidth   [4]dimen.Dimen
	BorderColor   [4]Color
	Offsets       [4]Length // top, right, bottom, left of positioned boxes
	//
	ZIndex          ZIndex
	Opacity         float32
	Transform       []TransformFunc
	TransformOrigin [2]Length // unset means 50% 50%
	//
	Color        Color
	Background   Color
	OutlineWidth dimen.Dimen
	OutlineColor Color
	FontSize     dimen.Dimen
	LineHeight   Length // unset means 1.2 * font size
	//
	Content          []ContentItem // for ::before and ::after
	CounterReset     []CounterOp
	CounterIncrement []CounterOp
	Quotes           []QuotePair
	ListStyleType    CounterStyle
}

// DefaultFontSize is used for styles without font size.
const DefaultFontSize = 16 * dimen.PX

// NewStyle returns a style for an element with initial values for all properties
// and the given display mode.
func NewStyle(display DisplayMode) *Style {
	return &Style{
		Display:       display,
		Width:         Auto,
		Height:        Auto,
		Opacity:       1,
		Color:         Black,
		FontSize:      DefaultFontSize,
		ListStyleType: CounterDisc,
		Quotes:        []QuotePair{{"\u201c", "\u201d"}, {"\u2018", "\u2019"}},
	}
}

// InheritedStyle creates a style for an anonymous box or a text run inside
// an element with style parent. Only inherited properties are copied.
func InheritedStyle(parent *Style, display DisplayMode) *Style {
	s := NewStyle(display)
	if parent == nil {
		return s
	}
	s.Color = parent.Color
	s.FontSize = parent.FontSize
	s.LineHeight = parent.LineHeight
	s.WhiteSpace = parent.WhiteSpace
	s.Quotes = parent.Quotes
	s.ListStyleType = parent.ListStyleType
	return s
}

// IsPositioned is true for all non-static positioning schemes.
func (s *Style) IsPositioned() bool {
	return s.Position != PositionStatic
}

// IsAbsolutelyPositioned is true for absolute and fixed positioning.
func (s *Style) IsAbsolutelyPositioned() bool {
	return s.Position == PositionAbsolute || s.Position == PositionFixed
}

// IsFloated is true for left and right floats. Absolutely positioned boxes
// do not float.
func (s *Style) IsFloated() bool {
	return s.Float != FloatNone && !s.IsAbsolutelyPositioned()
}

// HasTransform is true if a transform is in effect.
func (s *Style) HasTransform() bool {
	return len(s.Transform) > 0
}

// EstablishesStackingContext is true if an element with this style
// creates a real stacking context, i.e. its descendants are painted
// atomically in a coordinate space of their own.
func (s *Style) EstablishesStackingContext() bool {
	switch {
	case s.Opacity < 1:
		return true
	case s.HasTransform():
		return true
	case s.Position == PositionFixed:
		return true
	case s.IsPositioned() && s.ZIndex.Set:
		return true
	}
	return false
}

// EstablishesFormattingContext is true if an element with this style starts
// a new block formatting context. Floats outside of it will not intrude
// into its content and it will grow to contain its own floats.
func (s *Style) EstablishesFormattingContext() bool {
	return s.IsFloated() || s.IsAbsolutelyPositioned() ||
		s.Display.EstablishesFormattingContext() ||
		s.Display.Contains(InlineMode) ||
		(s.Overflow != OverflowVisible)
}

// UsedLineHeight returns the line height for text in this style.
func (s *Style) UsedLineHeight() dimen.Dimen {
	fs := s.FontSize
	if fs == 0 {
		fs = DefaultFontSize
	}
	if s.LineHeight.IsDefinite() {
		return s.LineHeight.Resolve(fs)
	}
	return fs * 6 / 5
}

// transformOrigin returns the transform origin for both axes, with
// unset components defaulting to 50%.
func (s *Style) transformOrigin() [2]Length {
	o := s.TransformOrigin
	for i := range o {
		if o[i].IsNone() || o[i].IsAuto() {
			o[i] = Percentage(percent.Percent(50))
		}
	}
	return o
}

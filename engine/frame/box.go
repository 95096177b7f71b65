package frame

/*
BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"fmt"

	"github.com/reidswan/servo/core/dimen"
)

// Box type, following the CSS box model. All dimensions are used values;
// percentages and `auto` have been resolved by layout.
type Box struct {
	Content     dimen.Size     // size of the content box
	Padding     [4]dimen.Dimen // inside of border
	BorderWidth [4]dimen.Dimen // thickness of border
	Margins     [4]dimen.Dimen // outside of border
}

// For padding, margins, etc. 4-way values always start at the top and travel
// clockwise.
const (
	Top int = iota
	Right
	Bottom
	Left
)

// --- Handling of box dimensions --------------------------------------------

// DebugString returns a textual representation of a box's dimensions.
// Intended for debugging.
func (box *Box) DebugString() string {
	s := fmt.Sprintf("box{\n   w=%v, h=%v\n", box.Content.W, box.Content.H)
	s += fmt.Sprintf("   p.top=%v, p.right=%v, p.bottom=%v, p.left=%v\n",
		box.Padding[Top], box.Padding[Right],
		box.Padding[Bottom], box.Padding[Left])
	s += fmt.Sprintf("   b.top=%v, b.right=%v, b.bottom=%v, b.left=%v\n",
		box.BorderWidth[Top], box.BorderWidth[Right],
		box.BorderWidth[Bottom], box.BorderWidth[Left])
	s += fmt.Sprintf("   m.top=%v, m.right=%v, m.bottom=%v, m.left=%v\n",
		box.Margins[Top], box.Margins[Right],
		box.Margins[Bottom], box.Margins[Left])
	s += "}"
	return s
}

// InlineDecorations returns the sum of left and right padding and border.
func (box *Box) InlineDecorations() dimen.Dimen {
	return box.Padding[Left] + box.Padding[Right] +
		box.BorderWidth[Left] + box.BorderWidth[Right]
}

// BlockDecorations returns the sum of top and bottom padding and border.
func (box *Box) BlockDecorations() dimen.Dimen {
	return box.Padding[Top] + box.Padding[Bottom] +
		box.BorderWidth[Top] + box.BorderWidth[Bottom]
}

// InlineMargins returns the sum of left and right margins.
func (box *Box) InlineMargins() dimen.Dimen {
	return box.Margins[Left] + box.Margins[Right]
}

// BorderBoxSize returns the size of the border box.
func (box *Box) BorderBoxSize() dimen.Size {
	return dimen.Size{
		W: box.Content.W + box.InlineDecorations(),
		H: box.Content.H + box.BlockDecorations(),
	}
}

// MarginBoxSize returns the size of the margin box.
func (box *Box) MarginBoxSize() dimen.Size {
	bb := box.BorderBoxSize()
	return dimen.Size{
		W: bb.W + box.InlineMargins(),
		H: bb.H + box.Margins[Top] + box.Margins[Bottom],
	}
}

// ContentOffset returns the offset of the content box's top left corner,
// relative to the border box.
func (box *Box) ContentOffset() dimen.Point {
	return dimen.Point{
		X: box.BorderWidth[Left] + box.Padding[Left],
		Y: box.BorderWidth[Top] + box.Padding[Top],
	}
}

// PaddingBox returns the padding box relative to the border box.
func (box *Box) PaddingBox() dimen.Rect {
	bb := box.BorderBoxSize()
	return dimen.Rect{
		TopL: dimen.Point{X: box.BorderWidth[Left], Y: box.BorderWidth[Top]},
		BotR: dimen.Point{X: bb.W - box.BorderWidth[Right], Y: bb.H - box.BorderWidth[Bottom]},
	}
}

// ResolveDecorations sets padding, border widths and margins from a style.
// Percentages refer to the inline size of the containing block, also for
// top and bottom values. Auto margins resolve to zero.
func (box *Box) ResolveDecorations(style *Style, containerInlineSize dimen.Dimen) {
	for i := 0; i < 4; i++ {
		box.Padding[i] = style.Padding[i].Resolve(containerInlineSize)
		box.BorderWidth[i] = style.BorderWidth[i]
		box.Margins[i] = style.Margins[i].Resolve(containerInlineSize)
	}
}

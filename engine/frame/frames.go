package frame

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

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

// DefaultDisplayModeForHTMLNode returns the default display mode for a HTML node type,
// as described by the CSS specification (user agent defaults).
func DefaultDisplayModeForHTMLNode(h *html.Node) DisplayMode {
	if h == nil {
		return NoMode
	}
	switch h.Type {
	case html.DocumentNode:
		return BlockMode | FlowRoot
	case html.TextNode:
		return InlineMode
	case html.ElementNode:
		switch h.Data {
		case "head", "script", "style", "title", "meta", "link", "template":
			return DisplayNone
		case "html":
			return BlockMode | FlowRoot
		case "table":
			return BlockMode | TableMode
		case "li":
			return ListItemMode | BlockMode
		case "span", "i", "b", "strong", "em", "a", "code", "small", "img", "br":
			return InlineMode
		default:
			return BlockMode
		}
	default:
		tracer().Debugf("no display mode for node of type %d (%s)", h.Type, h.Data)
		return NoMode
	}
}

// ParseDisplay returns mode flags from a display property string (outer and inner).
func ParseDisplay(display string) (DisplayMode, error) {
	switch strings.TrimSpace(display) {
	case "":
		return NoMode, nil
	case "none":
		return DisplayNone, nil
	case "block":
		return BlockMode, nil
	case "inline":
		return InlineMode, nil
	case "list-item":
		return ListItemMode | BlockMode, nil
	case "flow-root":
		return BlockMode | FlowRoot, nil
	case "inline-block":
		return InlineMode | FlowRoot, nil
	case "table":
		return BlockMode | TableMode, nil
	case "inline-table":
		return InlineMode | TableMode, nil
	case "flex":
		return BlockMode | FlexMode, nil
	case "grid":
		return BlockMode | GridMode, nil
	case "contents":
		return ContentsMode, nil
	}
	return BlockMode, fmt.Errorf("unknown display mode: %s", display)
}

// ---------------------------------------------------------------------------

// NodeName returns a short, printable name for an HTML node, intended for
// debugging and tracing.
func NodeName(h *html.Node) string {
	if h == nil {
		return "<anon>"
	}
	switch h.Type {
	case html.DocumentNode:
		return "#document"
	case html.TextNode:
		return shortText(h)
	}
	return h.Data
}

func shortText(h *html.Node) string {
	s := "\""
	if len(h.Data) > 10 {
		s += h.Data[:10] + "…\""
	} else {
		s += h.Data + "\""
	}
	s = strings.Replace(s, "\n", `\n`, -1)
	s = strings.Replace(s, "\t", `\t`, -1)
	s = strings.Replace(s, " ", "\u2423", -1)
	return s
}

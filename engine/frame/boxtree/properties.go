package boxtree

import (
	"math"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/core/percent"
	"github.com/reidswan/servo/engine/frame"
)

func applyDeclarations(style *frame.Style, decls []*css.Declaration) {
	for _, d := range decls {
		prop := strings.ToLower(strings.TrimSpace(d.Property))
		value := strings.TrimSpace(d.Value)
		if !applyProperty(style, prop, value) {
			tracer().Debugf("ignoring %s: %s", prop, value)
		}
	}
}

var sides = map[string]int{
	"top": frame.Top, "right": frame.Right, "bottom": frame.Bottom, "left": frame.Left,
}

// applyProperty sets a property from a declaration. It returns false for
// unsupported properties and invalid values.
func applyProperty(style *frame.Style, prop, value string) bool {
	em := style.FontSize
	switch prop {
	case "display":
		mode, err := frame.ParseDisplay(value)
		if err != nil {
			return false
		}
		style.Display = mode
	case "position":
		return setKeyword(value, map[string]frame.Position{
			"static": frame.PositionStatic, "relative": frame.PositionRelative,
			"absolute": frame.PositionAbsolute, "fixed": frame.PositionFixed,
		}, &style.Position)
	case "float":
		return setKeyword(value, map[string]frame.FloatSide{
			"none": frame.FloatNone, "left": frame.FloatLeft, "right": frame.FloatRight,
		}, &style.Float)
	case "clear":
		return setKeyword(value, map[string]frame.ClearSide{
			"none": frame.ClearNone, "left": frame.ClearLeft, "right": frame.ClearRight,
			"both": frame.ClearBoth,
		}, &style.Clear)
	case "overflow":
		return setKeyword(value, map[string]frame.Overflow{
			"visible": frame.OverflowVisible, "hidden": frame.OverflowHidden,
			"clip": frame.OverflowClip, "scroll": frame.OverflowScroll, "auto": frame.OverflowAuto,
		}, &style.Overflow)
	case "white-space":
		return setKeyword(value, map[string]frame.WhiteSpace{
			"normal": frame.WSNormal, "nowrap": frame.WSNoWrap, "pre": frame.WSPre,
		}, &style.WhiteSpace)
	case "width":
		return setLength(value, em, &style.Width)
	case "height":
		return setLength(value, em, &style.Height)
	case "margin":
		return setBoxLengths(value, em, &style.Margins)
	case "padding":
		return setBoxLengths(value, em, &style.Padding)
	case "top", "right", "bottom", "left":
		return setLength(value, em, &style.Offsets[sides[prop]])
	case "border-width":
		return setBorderWidths(value, em, style.BorderWidth[:], 0, 1, 2, 3)
	case "border-color":
		return setColors(value, style.BorderColor[:], 0, 1, 2, 3)
	case "border":
		return setBorder(value, em, style, 0, 1, 2, 3)
	case "z-index":
		if value == "auto" {
			style.ZIndex = frame.ZIndex{}
			return true
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		style.ZIndex = frame.ZIndexOf(int32(n))
	case "opacity":
		f, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return false
		}
		style.Opacity = float32(math.Max(0, math.Min(1, f)))
	case "transform":
		return setTransform(value, em, style)
	case "transform-origin":
		parts := strings.Fields(value)
		if len(parts) == 0 || len(parts) > 2 {
			return false
		}
		for i, p := range parts {
			if !setLength(originKeyword(p), em, &style.TransformOrigin[i]) {
				return false
			}
		}
	case "color":
		return setColor(value, &style.Color)
	case "background-color", "background":
		return setColor(value, &style.Background)
	case "outline-width":
		return setDimen(value, em, &style.OutlineWidth)
	case "outline-color":
		return setColor(value, &style.OutlineColor)
	case "outline":
		ok := false
		for _, part := range strings.Fields(value) {
			ok = setDimen(part, em, &style.OutlineWidth) || setColor(part, &style.OutlineColor) || ok
		}
		return ok
	case "font-size":
		fs, ok := parseLength(value, em)
		if !ok || !fs.IsDefinite() {
			return false
		}
		style.FontSize = fs.Resolve(em)
	case "line-height":
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			style.LineHeight = frame.Fixed(dimen.FromPoints(f * em.Points()))
			return true
		}
		return setLength(value, em, &style.LineHeight)
	case "content":
		items, ok := parseContent(value)
		if !ok {
			return false
		}
		style.Content = items
	case "counter-reset":
		ops, ok := parseCounterOps(value, 0)
		if !ok {
			return false
		}
		style.CounterReset = ops
	case "counter-increment":
		ops, ok := parseCounterOps(value, 1)
		if !ok {
			return false
		}
		style.CounterIncrement = ops
	case "quotes":
		quotes, ok := parseQuotes(value)
		if !ok {
			return false
		}
		style.Quotes = quotes
	case "list-style-type", "list-style":
		cs, ok := counterStyles[value]
		if !ok {
			return false
		}
		style.ListStyleType = cs
	default:
		return applySideProperty(style, prop, value)
	}
	return true
}

// applySideProperty handles properties of a single side, like
// `margin-left` or `border-top-color`.
func applySideProperty(style *frame.Style, prop, value string) bool {
	em := style.FontSize
	parts := strings.Split(prop, "-")
	if len(parts) < 2 {
		return false
	}
	side, ok := sides[parts[1]]
	if !ok {
		return false
	}
	switch {
	case len(parts) == 2 && parts[0] == "margin":
		return setLength(value, em, &style.Margins[side])
	case len(parts) == 2 && parts[0] == "padding":
		return setLength(value, em, &style.Padding[side])
	case len(parts) == 2 && parts[0] == "border":
		return setBorder(value, em, style, side)
	case len(parts) == 3 && parts[0] == "border" && parts[2] == "width":
		return setBorderWidths(value, em, style.BorderWidth[:], side)
	case len(parts) == 3 && parts[0] == "border" && parts[2] == "color":
		return setColors(value, style.BorderColor[:], side)
	}
	return false
}

func setKeyword[T any](value string, keywords map[string]T, dest *T) bool {
	v, ok := keywords[strings.ToLower(value)]
	if ok {
		*dest = v
	}
	return ok
}

// parseLength parses a CSS length. Besides the units of frame.ParseLength
// it understands fractional values and `em`, relative to font size em.
func parseLength(value string, em dimen.Dimen) (frame.Length, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	switch {
	case value == "auto":
		return frame.Auto, true
	case value == "0":
		return frame.Fixed(0), true
	case strings.HasSuffix(value, "em"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(value, "em"), 64)
		if err != nil {
			return frame.Length{}, false
		}
		return frame.Fixed(dimen.Dimen(f * float64(em))), true
	case strings.HasSuffix(value, "px"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(value, "px"), 64)
		if err != nil {
			return frame.Length{}, false
		}
		return frame.Fixed(dimen.FromPoints(f)), true
	case strings.HasSuffix(value, "%"):
		p, err := percent.FromString(value)
		if err != nil {
			return frame.Length{}, false
		}
		return frame.Percentage(p), true
	}
	l, err := frame.ParseLength(value)
	return l, err == nil
}

func setLength(value string, em dimen.Dimen, dest *frame.Length) bool {
	l, ok := parseLength(value, em)
	if ok {
		*dest = l
	}
	return ok
}

func setDimen(value string, em dimen.Dimen, dest *dimen.Dimen) bool {
	l, ok := parseLength(value, em)
	if !ok || !l.IsAbsolute() {
		if w, ok := borderWidthKeywords[value]; ok {
			*dest = w
			return true
		}
		return false
	}
	*dest = l.Resolve(0)
	return true
}

var borderWidthKeywords = map[string]dimen.Dimen{
	"thin": dimen.PX, "medium": 3 * dimen.PX, "thick": 5 * dimen.PX,
}

// setBoxLengths sets four lengths from a shorthand with 1 to 4 values.
func setBoxLengths(value string, em dimen.Dimen, dest *[4]frame.Length) bool {
	parts := strings.Fields(value)
	idx, ok := shorthandIndexes[len(parts)]
	if !ok {
		return false
	}
	var ls [4]frame.Length
	for i := range ls {
		if ls[i], ok = parseLength(parts[idx[i]], em); !ok {
			return false
		}
	}
	*dest = ls
	return true
}

// shorthandIndexes maps top, right, bottom, left to values of a shorthand.
var shorthandIndexes = map[int][4]int{
	1: {0, 0, 0, 0},
	2: {0, 1, 0, 1},
	3: {0, 1, 2, 1},
	4: {0, 1, 2, 3},
}

func setBorderWidths(value string, em dimen.Dimen, dest []dimen.Dimen, which ...int) bool {
	var w dimen.Dimen
	if !setDimen(value, em, &w) {
		return false
	}
	for _, side := range which {
		dest[side] = w
	}
	return true
}

func setColors(value string, dest []frame.Color, which ...int) bool {
	var c frame.Color
	if !setColor(value, &c) {
		return false
	}
	for _, side := range which {
		dest[side] = c
	}
	return true
}

// setBorder handles the `border` shorthands: width, style and color in any
// order. Border styles other than `none` paint solid.
func setBorder(value string, em dimen.Dimen, style *frame.Style, which ...int) bool {
	width, color, none := 3*dimen.PX, style.Color, false
	for _, part := range strings.Fields(value) {
		switch {
		case part == "none" || part == "hidden":
			none = true
		case setDimen(part, em, &width), setColor(part, &color):
		case borderStyles[part]:
		default:
			return false
		}
	}
	if none {
		width = 0
	}
	for _, side := range which {
		style.BorderWidth[side] = width
		style.BorderColor[side] = color
	}
	return true
}

var borderStyles = map[string]bool{
	"solid": true, "dotted": true, "dashed": true, "double": true,
	"groove": true, "ridge": true, "inset": true, "outset": true,
}

func originKeyword(s string) string {
	switch s {
	case "left", "top":
		return "0%"
	case "center":
		return "50%"
	case "right", "bottom":
		return "100%"
	}
	return s
}

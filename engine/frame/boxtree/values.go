package boxtree

import (
	"math"
	"strconv"
	"strings"

	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/engine/frame"
)

var namedColors = map[string]frame.Color{
	"transparent": frame.Transparent,
	"black":       frame.Black,
	"white":       frame.White,
	"red":         {R: 0xff, G: 0, B: 0, A: 0xff},
	"green":       {R: 0, G: 0x80, B: 0, A: 0xff},
	"lime":        {R: 0, G: 0xff, B: 0, A: 0xff},
	"blue":        {R: 0, G: 0, B: 0xff, A: 0xff},
	"yellow":      {R: 0xff, G: 0xff, B: 0, A: 0xff},
	"gray":        {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"grey":        {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"silver":      {R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},
	"navy":        {R: 0, G: 0, B: 0x80, A: 0xff},
	"orange":      {R: 0xff, G: 0xa5, B: 0, A: 0xff},
}

// setColor parses named colors and #rgb, #rrggbb and #rrggbbaa notation.
func setColor(value string, dest *frame.Color) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	if c, ok := namedColors[value]; ok {
		*dest = c
		return true
	}
	if !strings.HasPrefix(value, "#") {
		return false
	}
	hex := value[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return false
	}
	*dest = frame.Color{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}
	return true
}

// cssFunctions splits a value like `translate(10px, 5px) rotate(45deg)`
// into function names and argument lists.
func cssFunctions(value string) (names []string, args [][]string, ok bool) {
	rest := strings.TrimSpace(value)
	for rest != "" {
		open, end := strings.IndexByte(rest, '('), strings.IndexByte(rest, ')')
		if open <= 0 || end < open {
			return nil, nil, false
		}
		names = append(names, strings.ToLower(strings.TrimSpace(rest[:open])))
		args = append(args, strings.FieldsFunc(rest[open+1:end], func(r rune) bool {
			return r == ',' || r == ' '
		}))
		rest = strings.TrimSpace(rest[end+1:])
	}
	return names, args, true
}

func setTransform(value string, em dimen.Dimen, style *frame.Style) bool {
	if value == "none" {
		style.Transform = nil
		return true
	}
	names, args, ok := cssFunctions(value)
	if !ok {
		return false
	}
	var tfs []frame.TransformFunc
	for i, name := range names {
		tf, ok := transformFunc(name, args[i], em)
		if !ok {
			return false
		}
		tfs = append(tfs, tf)
	}
	style.Transform = tfs
	return true
}

func transformFunc(name string, args []string, em dimen.Dimen) (frame.TransformFunc, bool) {
	switch name {
	case "translate", "translatex", "translatey":
		if len(args) == 0 || len(args) > 2 || (name != "translate" && len(args) != 1) {
			break
		}
		var ls [2]frame.Length
		ls[1] = frame.Fixed(0)
		for i, a := range args {
			l, ok := parseLength(a, em)
			if !ok || l.IsAuto() {
				return frame.TransformFunc{}, false
			}
			ls[i] = l
		}
		if name == "translatey" {
			ls[0], ls[1] = frame.Fixed(0), ls[0]
		}
		return frame.Translate(ls[0], ls[1]), true
	case "rotate":
		if len(args) != 1 {
			break
		}
		if angle, ok := parseAngle(args[0]); ok {
			return frame.Rotate(angle), true
		}
	case "scale":
		if len(args) == 0 || len(args) > 2 {
			break
		}
		sx, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			break
		}
		sy := sx
		if len(args) == 2 {
			if sy, err = strconv.ParseFloat(args[1], 64); err != nil {
				break
			}
		}
		return frame.Scale(sx, sy), true
	}
	return frame.TransformFunc{}, false
}

// parseAngle returns an angle in radians.
func parseAngle(s string) (float64, bool) {
	units := []struct {
		suffix string
		factor float64
	}{
		{"deg", math.Pi / 180},
		{"grad", math.Pi / 200},
		{"rad", 1},
		{"turn", 2 * math.Pi},
	}
	for _, u := range units {
		if strings.HasSuffix(s, u.suffix) {
			f, err := strconv.ParseFloat(strings.TrimSuffix(s, u.suffix), 64)
			return f * u.factor, err == nil
		}
	}
	if s == "0" {
		return 0, true
	}
	return 0, false
}

var counterStyles = map[string]frame.CounterStyle{
	"decimal":              frame.CounterDecimal,
	"decimal-leading-zero": frame.CounterDecimalLeadingZero,
	"lower-alpha":          frame.CounterLowerAlpha,
	"lower-latin":          frame.CounterLowerAlpha,
	"upper-alpha":          frame.CounterUpperAlpha,
	"upper-latin":          frame.CounterUpperAlpha,
	"lower-roman":          frame.CounterLowerRoman,
	"upper-roman":          frame.CounterUpperRoman,
	"disc":                 frame.CounterDisc,
	"circle":               frame.CounterCircle,
	"square":               frame.CounterSquare,
	"none":                 frame.CounterNone,
}

// contentTokens splits a `content` or `quotes` value into quoted strings,
// keywords and function calls. Quoted strings keep their quotes.
func contentTokens(value string) ([]string, bool) {
	var tokens []string
	rest := strings.TrimSpace(value)
	for rest != "" {
		var n int
		switch rest[0] {
		case '"', '\'':
			end := strings.IndexByte(rest[1:], rest[0])
			if end < 0 {
				return nil, false
			}
			n = end + 2
		default:
			n = strings.IndexAny(rest, " \t\n\"'")
			if open := strings.IndexByte(rest, '('); open >= 0 && (n < 0 || open < n) {
				end := strings.IndexByte(rest, ')')
				if end < 0 {
					return nil, false
				}
				n = end + 1
			}
			if n < 0 {
				n = len(rest)
			}
		}
		tokens = append(tokens, rest[:n])
		rest = strings.TrimSpace(rest[n:])
	}
	return tokens, true
}

func unquote(token string) (string, bool) {
	if len(token) < 2 || (token[0] != '"' && token[0] != '\'') {
		return "", false
	}
	s := token[1 : len(token)-1]
	return strings.ReplaceAll(s, `\A`, "\n"), true
}

func parseContent(value string) ([]frame.ContentItem, bool) {
	if value == "none" || value == "normal" {
		return nil, true
	}
	tokens, ok := contentTokens(value)
	if !ok {
		return nil, false
	}
	var items []frame.ContentItem
	for _, tok := range tokens {
		if s, ok := unquote(tok); ok {
			items = append(items, frame.Literal(s))
			continue
		}
		switch tok {
		case "open-quote":
			items = append(items, frame.ContentItem{Kind: frame.ContentOpenQuote})
			continue
		case "close-quote":
			items = append(items, frame.ContentItem{Kind: frame.ContentCloseQuote})
			continue
		case "no-open-quote":
			items = append(items, frame.ContentItem{Kind: frame.ContentNoOpenQuote})
			continue
		case "no-close-quote":
			items = append(items, frame.ContentItem{Kind: frame.ContentNoCloseQuote})
			continue
		}
		item, ok := counterContent(tok)
		if !ok {
			return nil, false
		}
		items = append(items, item)
	}
	return items, true
}

// counterContent parses `counter(name[, style])` and
// `counters(name, "sep"[, style])`.
func counterContent(tok string) (frame.ContentItem, bool) {
	open := strings.IndexByte(tok, '(')
	if open < 0 || !strings.HasSuffix(tok, ")") {
		return frame.ContentItem{}, false
	}
	var args []string
	for _, a := range strings.Split(tok[open+1:len(tok)-1], ",") {
		args = append(args, strings.TrimSpace(a))
	}
	item := frame.ContentItem{Counter: args[0], Style: frame.CounterDecimal}
	styleArg := 1
	switch tok[:open] {
	case "counter":
		item.Kind = frame.ContentCounter
	case "counters":
		if len(args) < 2 {
			return frame.ContentItem{}, false
		}
		sep, ok := unquote(args[1])
		if !ok {
			return frame.ContentItem{}, false
		}
		item.Kind, item.Separator = frame.ContentCounters, sep
		styleArg = 2
	default:
		return frame.ContentItem{}, false
	}
	if item.Counter == "" || len(args) > styleArg+1 {
		return frame.ContentItem{}, false
	}
	if len(args) == styleArg+1 {
		cs, ok := counterStyles[args[styleArg]]
		if !ok {
			return frame.ContentItem{}, false
		}
		item.Style = cs
	}
	return item, true
}

// parseCounterOps parses `counter-reset` and `counter-increment` values:
// counter names, each optionally followed by an integer.
func parseCounterOps(value string, dflt int) ([]frame.CounterOp, bool) {
	if value == "none" {
		return nil, true
	}
	var ops []frame.CounterOp
	for _, f := range strings.Fields(value) {
		if n, err := strconv.Atoi(f); err == nil {
			if len(ops) == 0 {
				return nil, false
			}
			ops[len(ops)-1].Value = n
			continue
		}
		ops = append(ops, frame.CounterOp{Name: f, Value: dflt})
	}
	return ops, len(ops) > 0
}

func parseQuotes(value string) ([]frame.QuotePair, bool) {
	if value == "none" {
		return []frame.QuotePair{}, true
	}
	tokens, ok := contentTokens(value)
	if !ok || len(tokens) == 0 || len(tokens)%2 != 0 {
		return nil, false
	}
	var pairs []frame.QuotePair
	for i := 0; i < len(tokens); i += 2 {
		o, ok1 := unquote(tokens[i])
		c, ok2 := unquote(tokens[i+1])
		if !ok1 || !ok2 {
			return nil, false
		}
		pairs = append(pairs, frame.QuotePair{Open: o, Close: c})
	}
	return pairs, true
}

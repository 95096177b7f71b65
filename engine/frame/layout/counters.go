package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reidswan/servo/engine/frame"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.Und)

// FormatCounter renders a counter value in a counter style. Values outside
// the range of an alphabetic or roman style fall back to decimal.
func FormatCounter(n int, style frame.CounterStyle) string {
	switch style {
	case frame.CounterDecimalLeadingZero:
		if n < 0 {
			return fmt.Sprintf("-%02d", -n)
		}
		return fmt.Sprintf("%02d", n)
	case frame.CounterLowerAlpha:
		return alphabetic(n)
	case frame.CounterUpperAlpha:
		return upper.String(alphabetic(n))
	case frame.CounterLowerRoman:
		return roman(n)
	case frame.CounterUpperRoman:
		return upper.String(roman(n))
	case frame.CounterDisc:
		return "•"
	case frame.CounterCircle:
		return "◦"
	case frame.CounterSquare:
		return "▪"
	case frame.CounterNone:
		return ""
	}
	return strconv.Itoa(n)
}

// IsBullet is true for counter styles which do not show the counter value.
func IsBullet(style frame.CounterStyle) bool {
	return style == frame.CounterDisc || style == frame.CounterCircle ||
		style == frame.CounterSquare || style == frame.CounterNone
}

func alphabetic(n int) string {
	if n <= 0 {
		return strconv.Itoa(n)
	}
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('a' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}

var romanDigits = []struct {
	value  int
	symbol string
}{
	{1000, "m"}, {900, "cm"}, {500, "d"}, {400, "cd"}, {100, "c"}, {90, "xc"},
	{50, "l"}, {40, "xl"}, {10, "x"}, {9, "ix"}, {5, "v"}, {4, "iv"}, {1, "i"},
}

func roman(n int) string {
	if n <= 0 || n >= 4000 {
		return strconv.Itoa(n)
	}
	var sb strings.Builder
	for _, d := range romanDigits {
		for n >= d.value {
			sb.WriteString(d.symbol)
			n -= d.value
		}
	}
	return sb.String()
}

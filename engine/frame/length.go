package frame

import (
	"fmt"
	"strings"

	"github.com/reidswan/servo/core/dimen"
	"github.com/reidswan/servo/core/percent"
)

const (
	lengthNone     uint8 = 0
	lengthAbsolute uint8 = 1
	lengthAuto     uint8 = 2
	lengthPercent  uint8 = 3
)

// Length is an option type for computed CSS lengths. A length is either
// unset, `auto`, an absolute dimension or a percentage of some reference
// length (usually the inline size of the containing block).
type Length struct {
	d     dimen.Dimen
	flags uint8
}

// Auto is the CSS value `auto`.
var Auto = Length{flags: lengthAuto}

// Fixed creates an absolute length.
func Fixed(d dimen.Dimen) Length {
	return Length{d: d, flags: lengthAbsolute}
}

// Px creates an absolute length of n CSS pixels.
func Px(n int) Length {
	return Fixed(dimen.Dimen(n) * dimen.PX)
}

// Percentage creates a relative length.
func Percentage(p percent.Percent) Length {
	return Length{d: dimen.Dimen(p), flags: lengthPercent}
}

// ParseLength parses CSS lengths like `12px`, `50%` or `auto`.
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	if s == "auto" {
		return Auto, nil
	}
	d, isPercent, err := dimen.ParseDimen(s)
	if err != nil {
		return Length{}, err
	}
	if isPercent {
		return Percentage(percent.FromInt(int(d))), nil
	}
	return Fixed(d), nil
}

// IsNone returns true if l is unset.
func (l Length) IsNone() bool {
	return l.flags == lengthNone
}

// IsAuto returns true if l has been set to `auto`.
func (l Length) IsAuto() bool {
	return l.flags == lengthAuto
}

// IsAbsolute returns true if l is a fixed dimension.
func (l Length) IsAbsolute() bool {
	return l.flags == lengthAbsolute
}

// IsPercent returns true if l is relative to a reference length.
func (l Length) IsPercent() bool {
	return l.flags == lengthPercent
}

// IsDefinite is true for absolute and percentage lengths.
func (l Length) IsDefinite() bool {
	return l.IsAbsolute() || l.IsPercent()
}

// Percent returns the percentage value of a relative length, or 0.
func (l Length) Percent() percent.Percent {
	if !l.IsPercent() {
		return 0
	}
	return percent.Percent(l.d)
}

// Resolve returns the used value of l against a reference length.
// Unset and `auto` lengths resolve to zero.
func (l Length) Resolve(reference dimen.Dimen) dimen.Dimen {
	switch l.flags {
	case lengthAbsolute:
		return l.d
	case lengthPercent:
		return percent.Percent(l.d).Of(reference)
	}
	return 0
}

func (l Length) String() string {
	switch l.flags {
	case lengthAuto:
		return "auto"
	case lengthAbsolute:
		return l.d.String()
	case lengthPercent:
		return fmt.Sprintf("%d%%", l.d)
	}
	return "none"
}

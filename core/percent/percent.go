// Package percent implements a simple type for percentage values, as used
// for widths, margins and transform origins.
package percent

import (
	"math"
	"strconv"
	"strings"

	"github.com/reidswan/servo/core/dimen"
)

// Percent is a percentage value in the range 0…100.
type Percent uint8

// FromInt clamps n to the range 0…100.
func FromInt(n int) Percent {
	switch {
	case n <= 0:
		return Percent(0)
	case n >= 100:
		return Percent(100)
	}
	return Percent(n)
}

// FromFloat clamps and rounds f to the range 0…100.
func FromFloat(f float64) Percent {
	switch {
	case f <= 0 || math.IsNaN(f) || math.IsInf(f, -1):
		return Percent(0)
	case f >= 100 || math.IsInf(f, 1):
		return Percent(100)
	}
	return Percent(math.Round(f))
}

// FromString parses strings like "50%", "12.5%" or "50". Fractions are
// rounded like in FromFloat.
func FromString(s string) (Percent, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return FromFloat(f), nil
}

// Of returns p percent of d.
func (p Percent) Of(d dimen.Dimen) dimen.Dimen {
	return dimen.Dimen(int64(d) * int64(p) / 100)
}

func (p Percent) String() string {
	return strconv.Itoa(int(p)) + "%"
}

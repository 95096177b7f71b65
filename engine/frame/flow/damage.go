package flow

import "strings"

// RestyleDamage is a set of bits telling which layout work a flow needs.
type RestyleDamage uint16

// Restyle damage bits.
const (
	Repaint                 RestyleDamage = 1 << iota // display items are stale
	Reposition                                        // stacking-relative positions are stale
	StoreOverflow                                     // overflow areas are stale
	BubbleISizes                                      // intrinsic inline sizes are stale
	ReflowOutOfFlow                                   // out-of-flow descendants need layout
	Reflow                                            // the flow needs layout
	ResolveGeneratedContent                           // generated content needs resolution
)

// RebuildAndReflow is the damage of a freshly constructed flow.
const RebuildAndReflow = Repaint | Reposition | StoreOverflow | BubbleISizes |
	ReflowOutOfFlow | Reflow | ResolveGeneratedContent

// ReflowAll is the damage inserted for a forced relayout.
const ReflowAll = Reflow | ReflowOutOfFlow

var damageNames = []string{
	"repaint", "reposition", "store-overflow", "bubble-isizes",
	"reflow-out-of-flow", "reflow", "resolve-generated-content",
}

// Insert sets bits.
func (d *RestyleDamage) Insert(bits RestyleDamage) {
	*d |= bits
}

// Remove clears bits.
func (d *RestyleDamage) Remove(bits RestyleDamage) {
	*d &^= bits
}

// Contains is true if all bits are set.
func (d RestyleDamage) Contains(bits RestyleDamage) bool {
	return d&bits == bits
}

// Intersects is true if at least one of bits is set.
func (d RestyleDamage) Intersects(bits RestyleDamage) bool {
	return d&bits != 0
}

// IsEmpty is true if no bit is set.
func (d RestyleDamage) IsEmpty() bool {
	return d == 0
}

func (d RestyleDamage) String() string {
	if d == 0 {
		return "{}"
	}
	var names []string
	for i, n := range damageNames {
		if d&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	return "{" + strings.Join(names, "|") + "}"
}

// RelayoutMode tells the reflow driver whether to respect damage.
type RelayoutMode uint8

// Relayout modes.
const (
	Incremental RelayoutMode = iota // lay out damaged flows only
	Force                           // lay out the whole subtree
)

func (m RelayoutMode) String() string {
	if m == Force {
		return "force"
	}
	return "incremental"
}

package graphol

import "strings"

// Special identifies the reserved top and bottom predicate names.
type Special string

const (
	// SpecialTop is the universal predicate (owl:Thing and friends).
	SpecialTop Special = "TOP"

	// SpecialBottom is the empty predicate (owl:Nothing and friends).
	SpecialBottom Special = "BOTTOM"
)

// String returns the reserved label.
func (s Special) String() string {
	return string(s)
}

// SpecialForLabel returns the special predicate matching the given label.
func SpecialForLabel(label string) (Special, bool) {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case string(SpecialTop):
		return SpecialTop, true
	case string(SpecialBottom):
		return SpecialBottom, true
	default:
		return "", false
	}
}

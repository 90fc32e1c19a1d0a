package graphol

import (
	"regexp"
	"strings"
)

// cardinalityRe matches cardinality restriction labels such as "(2,5)",
// "(-,4)" or "(1,-)" where "-" stands for an unbounded side.
var cardinalityRe = regexp.MustCompile(`^\(\s*(-|\d+)\s*,\s*(-|\d+)\s*\)$`)

// Restriction represents the restriction type carried by domain and range
// restriction nodes.
type Restriction string

const (
	// RestrictionExists is the existential restriction.
	RestrictionExists Restriction = "exists"

	// RestrictionForall is the universal restriction.
	RestrictionForall Restriction = "forall"

	// RestrictionSelf is the local reflexivity restriction.
	RestrictionSelf Restriction = "self"

	// RestrictionCardinality is the (min,max) cardinality restriction.
	RestrictionCardinality Restriction = "cardinality"
)

// String returns the readable restriction name.
func (r Restriction) String() string {
	return string(r)
}

// RestrictionForLabel returns the restriction matching the given label.
// Labels are matched case-insensitively; cardinality restrictions are
// recognized by their "(min,max)" syntax.
func RestrictionForLabel(label string) (Restriction, bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	switch label {
	case "exists":
		return RestrictionExists, true
	case "forall":
		return RestrictionForall, true
	case "self":
		return RestrictionSelf, true
	}
	if cardinalityRe.MatchString(label) {
		return RestrictionCardinality, true
	}
	return "", false
}

package graphol

import (
	"sort"
	"strings"
)

// Identity represents the description-logic category a node currently
// expresses. Neutral means the category is not yet determined and the node
// is compatible with any expression; Unknown is a terminal error state set
// when no coherent identity can be computed from the node's wiring.
type Identity string

const (
	// IdentityNeutral marks a node whose category is not yet determined.
	IdentityNeutral Identity = "neutral"

	// IdentityConcept marks a class expression.
	IdentityConcept Identity = "concept"

	// IdentityRole marks an object property expression.
	IdentityRole Identity = "role"

	// IdentityAttribute marks a data property expression.
	IdentityAttribute Identity = "attribute"

	// IdentityValueDomain marks a datatype expression.
	IdentityValueDomain Identity = "value-domain"

	// IdentityInstance marks a named individual.
	IdentityInstance Identity = "instance"

	// IdentityValue marks a literal value.
	IdentityValue Identity = "value"

	// IdentityRoleInstance marks a pair of individuals asserting an
	// object property.
	IdentityRoleInstance Identity = "role-instance"

	// IdentityAttributeInstance marks an individual/value pair asserting
	// a data property.
	IdentityAttributeInstance Identity = "attribute-instance"

	// IdentityFacet marks a facet/value pair.
	IdentityFacet Identity = "facet"

	// IdentityUnknown marks a node whose wiring admits no coherent
	// identity. It is never a valid edge endpoint.
	IdentityUnknown Identity = "unknown"
)

// String returns the readable identity name.
func (i Identity) String() string {
	return string(i)
}

// IdentitySet is a set of identities.
type IdentitySet map[Identity]bool

// NewIdentitySet builds a set from the given identities.
func NewIdentitySet(ids ...Identity) IdentitySet {
	s := make(IdentitySet, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}

// Contains reports whether the set holds the given identity.
func (s IdentitySet) Contains(id Identity) bool {
	return s[id]
}

// Intersect returns the identities present in both sets.
func (s IdentitySet) Intersect(other IdentitySet) IdentitySet {
	out := make(IdentitySet)
	for id := range s {
		if other[id] {
			out[id] = true
		}
	}
	return out
}

// Without returns a copy of the set with the given identities removed.
func (s IdentitySet) Without(ids ...Identity) IdentitySet {
	out := make(IdentitySet, len(s))
	for id := range s {
		out[id] = true
	}
	for _, id := range ids {
		delete(out, id)
	}
	return out
}

// SubsetOf reports whether every identity in the set is in other.
func (s IdentitySet) SubsetOf(other IdentitySet) bool {
	for id := range s {
		if !other[id] {
			return false
		}
	}
	return true
}

// IsEmpty reports whether the set holds no identities.
func (s IdentitySet) IsEmpty() bool {
	return len(s) == 0
}

// String returns a stable, sorted rendering of the set for messages.
func (s IdentitySet) String() string {
	names := make([]string, 0, len(s))
	for id := range s {
		names = append(names, string(id))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// kindIdentities maps each node kind to the identities it can ever take,
// independent of current wiring. Predicate kinds (except Individual) admit
// exactly their fixed identity; constructor kinds list the identities their
// operand combinations can produce, plus Neutral where the kind starts
// undetermined.
var kindIdentities = map[NodeKind]IdentitySet{
	NodeConcept:             NewIdentitySet(IdentityConcept),
	NodeAttribute:           NewIdentitySet(IdentityAttribute),
	NodeRole:                NewIdentitySet(IdentityRole),
	NodeValueDomain:         NewIdentitySet(IdentityValueDomain),
	NodeIndividual:          NewIdentitySet(IdentityInstance, IdentityValue),
	NodeValueRestriction:    NewIdentitySet(IdentityValueDomain),
	NodeDomainRestriction:   NewIdentitySet(IdentityConcept),
	NodeRangeRestriction:    NewIdentitySet(IdentityConcept, IdentityValueDomain, IdentityNeutral),
	NodeUnion:               NewIdentitySet(IdentityConcept, IdentityValueDomain, IdentityNeutral),
	NodeEnumeration:         NewIdentitySet(IdentityConcept, IdentityValueDomain, IdentityNeutral),
	NodeComplement:          NewIdentitySet(IdentityAttribute, IdentityConcept, IdentityRole, IdentityValueDomain, IdentityNeutral),
	NodeRoleChain:           NewIdentitySet(IdentityRole),
	NodeIntersection:        NewIdentitySet(IdentityConcept, IdentityValueDomain, IdentityNeutral),
	NodeRoleInverse:         NewIdentitySet(IdentityRole),
	NodeDatatypeRestriction: NewIdentitySet(IdentityValueDomain),
	NodeDisjointUnion:       NewIdentitySet(IdentityConcept, IdentityValueDomain, IdentityNeutral),
	NodePropertyAssertion:   NewIdentitySet(IdentityRoleInstance, IdentityAttributeInstance, IdentityNeutral),
	NodeFacet:               NewIdentitySet(IdentityFacet),
}

// Identities returns the admissible identity set for the given node kind.
// The returned set is shared static data and must not be mutated; callers
// that need a modified copy should use Without or Intersect.
func Identities(kind NodeKind) IdentitySet {
	return kindIdentities[kind]
}

// DefaultIdentity returns the identity a freshly created node of the given
// kind carries before any wiring: the fixed identity for single-identity
// kinds, Instance for Individual nodes, and Neutral for constructor kinds
// whose identity is inferred from their operands.
func DefaultIdentity(kind NodeKind) Identity {
	set := kindIdentities[kind]
	switch {
	case set == nil:
		return IdentityUnknown
	case set.Contains(IdentityNeutral):
		return IdentityNeutral
	case kind == NodeIndividual:
		return IdentityInstance
	case len(set) == 1:
		for id := range set {
			return id
		}
	}
	return IdentityNeutral
}

// IdentityForLabel returns the identity matching the given label.
func IdentityForLabel(label string) (Identity, bool) {
	id := Identity(strings.ToLower(strings.TrimSpace(label)))
	switch id {
	case IdentityNeutral, IdentityConcept, IdentityRole, IdentityAttribute,
		IdentityValueDomain, IdentityInstance, IdentityValue,
		IdentityRoleInstance, IdentityAttributeInstance, IdentityFacet,
		IdentityUnknown:
		return id, true
	default:
		return "", false
	}
}

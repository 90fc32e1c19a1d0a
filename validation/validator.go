// Package validation implements the OWL 2 triple validator: the rule engine
// that decides, for every candidate edge, whether connecting a source node
// to a target node through a given edge kind is a legal construction.
//
// Validate is total and deterministic: every outcome, including malformed
// input such as an unrecognized edge kind, is reported as a Result rather
// than an error, because the caller is an interactive editor that must stay
// responsive whatever the graph looks like. The validator performs only
// one-hop adjacency reads and never mutates the graph.
package validation

import (
	"fmt"

	"github.com/ontoworks/graphol/diagram"
	"github.com/ontoworks/graphol/vocabulary/graphol"
)

// violation is the single error kind produced by rules. It never escapes
// the validator: Validate converts it into an invalid Result.
type violation struct {
	msg string
}

func (v violation) Error() string { return v.msg }

func violatef(format string, args ...any) error {
	return violation{msg: fmt.Sprintf(format, args...)}
}

// Validator checks (source, edge kind, target) triples against the OWL 2
// structural rules. It remembers exactly the last Result: pointer-equal
// repeat queries, as produced by the editor while the user drags an edge,
// are answered without re-running the rules.
//
// A Validator is owned by a single diagram and must not be shared across
// goroutines; open diagrams each get their own instance.
type Validator struct {
	result *Result
}

// New creates a validator with an empty memo.
func New() *Validator {
	return &Validator{}
}

// Validate checks the given triple and returns the outcome. The memoized
// result is reused when the requested triple is reference-equal to the last
// one checked.
func (v *Validator) Validate(source diagram.Node, kind graphol.EdgeKind, target diagram.Node) *Result {
	if v.result != nil && v.result.Matches(source, kind, target) {
		return v.result
	}
	v.result = v.run(source, kind, target)
	return v.result
}

// IsValid reports whether the given triple is a legal construction. It
// shares Validate's memo.
func (v *Validator) IsValid(source diagram.Node, kind graphol.EdgeKind, target diagram.Node) bool {
	return v.Validate(source, kind, target).IsValid()
}

// Result returns the last validation result, or nil.
func (v *Validator) Result() *Result {
	return v.result
}

// Clear drops the memoized result. Callers invoke it after structural graph
// changes (undo/redo, deletions) so a stale triple is never reused.
func (v *Validator) Clear() {
	v.result = nil
}

// run evaluates the rule set for the triple. The first failing rule wins;
// a triple failing no rule is valid with an empty message.
func (v *Validator) run(source diagram.Node, kind graphol.EdgeKind, target diagram.Node) *Result {
	err := v.check(source, kind, target)
	if err != nil {
		return newResult(source, kind, target, false, err.Error())
	}
	return newResult(source, kind, target, true, "")
}

func (v *Validator) check(source diagram.Node, kind graphol.EdgeKind, target diagram.Node) error {
	if source == nil || target == nil {
		return violatef("missing endpoint")
	}
	if source == target {
		return violatef("self connection is not valid")
	}
	switch kind {
	case graphol.EdgeInclusion:
		return v.checkInclusion(source, target)
	case graphol.EdgeInput:
		return v.checkInput(source, target)
	case graphol.EdgeMembership:
		return v.checkMembership(source, target)
	default:
		return violatef("unsupported edge kind: %q", kind)
	}
}

// supportedInclusionIdentities holds the identities an inclusion edge may
// relate: proper description-logic expressions only.
var supportedInclusionIdentities = graphol.NewIdentitySet(
	graphol.IdentityConcept,
	graphol.IdentityRole,
	graphol.IdentityAttribute,
	graphol.IdentityValueDomain,
)

func (v *Validator) checkInclusion(source, target diagram.Node) error {
	// The endpoints must admit at least one shared expression identity.
	remaining := source.Identities().
		Intersect(target.Identities()).
		Without(graphol.IdentityNeutral, graphol.IdentityUnknown)
	if !remaining.SubsetOf(supportedInclusionIdentities) {
		return violatef("type mismatch: inclusion must involve two graphol expressions")
	}
	if remaining.IsEmpty() {
		return violatef("type mismatch: %s and %s are not compatible", source.Kind(), target.Kind())
	}

	sourceID, targetID := source.Identity(), target.Identity()
	if sourceID != graphol.IdentityNeutral && targetID != graphol.IdentityNeutral && sourceID != targetID {
		return violatef("type mismatch: inclusion between %s and %s", sourceID, targetID)
	}

	// Inclusion between value-domain expressions is only traced when it
	// expresses a data property range (range restriction source) or when
	// one side is an atomic datatype.
	if (sourceID == graphol.IdentityValueDomain || targetID == graphol.IdentityValueDomain) &&
		source.Kind() != graphol.NodeRangeRestriction {
		if source.Kind() != graphol.NodeValueDomain && target.Kind() != graphol.NodeValueDomain {
			return violatef("type mismatch: inclusion between value-domain expressions")
		}
	}

	// Complement nodes generate disjointness axioms for roles and
	// attributes, so a negative role/attribute expression can only be the
	// target of the inclusion, never its source.
	if source.Kind() == graphol.NodeComplement {
		shared := sourceID
		if shared == graphol.IdentityNeutral {
			shared = targetID
		}
		if shared == graphol.IdentityRole || shared == graphol.IdentityAttribute {
			return violatef("invalid source for %s inclusion: %s", shared, source.Kind())
		}
	}

	if target.Kind() == graphol.NodeRoleChain {
		return violatef("role chain nodes cannot be target of a role inclusion")
	}
	if source.Kind() == graphol.NodeRoleChain &&
		target.Kind() != graphol.NodeRole && target.Kind() != graphol.NodeRoleInverse {
		return violatef("inclusion between %s and %s is forbidden", source.Kind(), target.Kind())
	}

	return nil
}

func (v *Validator) checkInput(source, target diagram.Node) error {
	if !target.Kind().IsConstructor() {
		return violatef("input edges can only target constructor nodes")
	}

	switch target.Kind() {
	case graphol.NodeComplement, graphol.NodeDisjointUnion, graphol.NodeIntersection, graphol.NodeUnion:
		return v.checkInputToComposition(source, target)
	case graphol.NodeEnumeration:
		return v.checkInputToEnumeration(source, target)
	case graphol.NodeRoleInverse:
		return v.checkInputToRoleInverse(source, target)
	case graphol.NodeRoleChain:
		return v.checkInputToRoleChain(source, target)
	case graphol.NodeDatatypeRestriction:
		return v.checkInputToDatatypeRestriction(source, target)
	case graphol.NodePropertyAssertion:
		return v.checkInputToPropertyAssertion(source, target)
	case graphol.NodeDomainRestriction, graphol.NodeRangeRestriction:
		return v.checkInputToRestriction(source, target)
	default:
		// Facet nodes compose nothing: they accept no operands.
		return violatef("invalid target for input edge: %s", target.Kind())
	}
}

func (v *Validator) checkInputToComposition(source, target diagram.Node) error {
	if !target.Identities().Contains(source.Identity()) {
		return violatef("invalid input to %s: %s", target.Kind(), source.Identity())
	}
	if source.Kind() == graphol.NodeValueRestriction {
		return violatef("invalid input to %s: %s", target.Kind(), source.Kind())
	}

	if target.Kind() == graphol.NodeComplement {
		// The complement operator takes at most one operand.
		if len(otherInputs(target, source)) > 0 {
			return violatef("too many inputs to %s", target.Kind())
		}
		if source.Kind() == graphol.NodeRole || source.Kind() == graphol.NodeRoleInverse ||
			source.Kind() == graphol.NodeAttribute {
			// A negative role/attribute expression is only legal as the
			// target of an inclusion; a complement that already feeds
			// another constructor would nest it inside an enumeration,
			// union or disjoint union.
			if len(target.OutgoingNodes(diagram.EdgeKindIs(graphol.EdgeInput), nil)) > 0 {
				return violatef("invalid negative %s expression", source.Identity())
			}
		}
		return nil
	}

	sourceID, targetID := source.Identity(), target.Identity()
	if sourceID != graphol.IdentityNeutral && targetID != graphol.IdentityNeutral && sourceID != targetID {
		return violatef("type mismatch: %s between %s and %s", target.Kind(), sourceID, targetID)
	}
	return nil
}

func (v *Validator) checkInputToEnumeration(source, target diagram.Node) error {
	if source.Kind() != graphol.NodeIndividual {
		return violatef("invalid input to %s: %s", target.Kind(), source.Kind())
	}
	if target.Identity() == graphol.IdentityUnknown {
		return violatef("target node has an invalid identity: %s", target.Identity())
	}
	if target.Identity() != graphol.IdentityNeutral {
		// oneOf composes either a Concept from instances or a
		// ValueDomain from values, never a mixture.
		if source.Identity() == graphol.IdentityInstance && target.Identity() == graphol.IdentityValueDomain {
			return violatef("invalid input to %s: %s", target.Kind(), source.Identity())
		}
		if source.Identity() == graphol.IdentityValue && target.Identity() == graphol.IdentityConcept {
			return violatef("invalid input to %s: %s", target.Kind(), source.Identity())
		}
	}
	return nil
}

func (v *Validator) checkInputToRoleInverse(source, target diagram.Node) error {
	if source.Kind() != graphol.NodeRole {
		return violatef("role inverse accepts only a role node as input")
	}
	if len(otherInputs(target, source)) > 0 {
		return violatef("too many inputs to %s", target.Kind())
	}
	return nil
}

func (v *Validator) checkInputToRoleChain(source, target diagram.Node) error {
	// Chains concatenate basic role expressions only; a chain of chains
	// is not expressible even though the identities match.
	if source.Kind() != graphol.NodeRole && source.Kind() != graphol.NodeRoleInverse {
		return violatef("invalid input to %s: %s", target.Kind(), source.Kind())
	}
	return nil
}

func (v *Validator) checkInputToDatatypeRestriction(source, target diagram.Node) error {
	if source.Kind() != graphol.NodeValueDomain && source.Kind() != graphol.NodeValueRestriction {
		return violatef("invalid input to %s: %s", target.Kind(), source.Kind())
	}
	if source.Kind() == graphol.NodeValueDomain {
		others := target.IncomingNodes(
			diagram.EdgeKindIs(graphol.EdgeInput),
			diagram.AllNodes(diagram.NodeKindIs(graphol.NodeValueDomain), diagram.NotNode(source)),
		)
		if len(others) > 0 {
			return violatef("too many value-domain nodes in input to %s", target.Kind())
		}
	}
	// The restriction's datatype is inferred from its first operand; a
	// second operand carrying a different datatype is inconsistent.
	siblings := target.IncomingNodes(
		diagram.EdgeKindIs(graphol.EdgeInput),
		diagram.AllNodes(
			diagram.NodeKindIs(graphol.NodeValueDomain, graphol.NodeValueRestriction),
			diagram.NotNode(source),
		),
	)
	if len(siblings) > 0 {
		if datatype := siblings[0].Datatype(); datatype != source.Datatype() {
			return violatef("datatype mismatch: restriction between %s and %s", source.Datatype(), datatype)
		}
	}
	return nil
}

func (v *Validator) checkInputToPropertyAssertion(source, target diagram.Node) error {
	if source.Kind() != graphol.NodeIndividual {
		return violatef("invalid input to %s: %s", target.Kind(), source.Kind())
	}
	others := otherInputs(target, source)
	if len(others) >= 2 {
		return violatef("too many inputs to %s", target.Kind())
	}
	if target.Identity() == graphol.IdentityRoleInstance && source.Identity() == graphol.IdentityValue {
		// Role assertions relate two instances; values belong to
		// attribute assertions.
		return violatef("invalid input to role assertion: %s", source.Identity())
	}
	if target.Identity() == graphol.IdentityAttributeInstance {
		if source.Identity() == graphol.IdentityInstance && countIdentity(others, graphol.IdentityInstance) > 0 {
			return violatef("too many instances in input to attribute assertion")
		}
		if source.Identity() == graphol.IdentityValue && countIdentity(others, graphol.IdentityValue) > 0 {
			return violatef("too many values in input to attribute assertion")
		}
	}
	return nil
}

// restrictionInputIdentities holds the identities a domain/range
// restriction node accepts as operands.
var restrictionInputIdentities = graphol.NewIdentitySet(
	graphol.IdentityNeutral,
	graphol.IdentityConcept,
	graphol.IdentityAttribute,
	graphol.IdentityRole,
	graphol.IdentityValueDomain,
)

func (v *Validator) checkInputToRestriction(source, target diagram.Node) error {
	others := otherInputs(target, source)
	if len(others) >= 2 {
		return violatef("too many inputs to %s", target.Kind())
	}
	if !restrictionInputIdentities.Contains(source.Identity()) {
		return violatef("invalid input to %s: %s", target.Kind(), source.Identity())
	}
	switch source.Kind() {
	case graphol.NodeDomainRestriction, graphol.NodeRangeRestriction, graphol.NodeRoleChain:
		// A role chain carries the Role identity but is not an object
		// property expression; restrictions are excluded outright.
		return violatef("invalid input to %s: %s", target.Kind(), source.Kind())
	}

	var sibling diagram.Node
	if len(others) > 0 {
		sibling = others[0]
	}

	// Each operand identity pairs with exactly one qualifying sibling
	// identity; anything else cannot form a qualified restriction.
	switch source.Identity() {
	case graphol.IdentityConcept, graphol.IdentityNeutral:
		if target.Restriction() == graphol.RestrictionSelf {
			return violatef("invalid restriction (self) for qualified restriction")
		}
		if sibling != nil && sibling.Identity() != graphol.IdentityRole {
			return violatef("invalid inputs (%s + %s) for qualified restriction", source.Identity(), sibling.Identity())
		}
	case graphol.IdentityRole:
		if sibling != nil && sibling.Identity() != graphol.IdentityConcept {
			return violatef("invalid inputs (%s + %s) for qualified restriction", source.Identity(), sibling.Identity())
		}
	case graphol.IdentityAttribute:
		if target.Restriction() == graphol.RestrictionSelf {
			return violatef("attributes do not have self")
		}
		if sibling != nil && sibling.Identity() != graphol.IdentityValueDomain {
			return violatef("invalid inputs (%s + %s) for qualified restriction", source.Identity(), sibling.Identity())
		}
	case graphol.IdentityValueDomain:
		if target.Restriction() == graphol.RestrictionSelf {
			return violatef("invalid restriction (self) for qualified restriction")
		}
		if sibling != nil && sibling.Identity() != graphol.IdentityAttribute {
			return violatef("invalid inputs (%s + %s) for qualified restriction", source.Identity(), sibling.Identity())
		}
	}
	return nil
}

func (v *Validator) checkMembership(source, target diagram.Node) error {
	if source.Identity() != graphol.IdentityInstance && source.Kind() != graphol.NodePropertyAssertion {
		return violatef("invalid source for membership edge: %s", source.Identity())
	}
	if target.Identity() != graphol.IdentityConcept &&
		target.Kind() != graphol.NodeRole && target.Kind() != graphol.NodeRoleInverse &&
		target.Kind() != graphol.NodeAttribute {
		return violatef("invalid target for membership edge: %s", target.Kind())
	}
	if source.Identity() == graphol.IdentityInstance && target.Identity() != graphol.IdentityConcept {
		// A class assertion requires a concept expression target.
		return violatef("invalid target for concept assertion: %s", target.Identity())
	}
	if source.Kind() == graphol.NodePropertyAssertion {
		switch source.Identity() {
		case graphol.IdentityRoleInstance:
			if target.Kind() != graphol.NodeRole && target.Kind() != graphol.NodeRoleInverse {
				return violatef("invalid target for role assertion: %s", target.Kind())
			}
		case graphol.IdentityAttributeInstance:
			if target.Kind() != graphol.NodeAttribute {
				return violatef("invalid target for attribute assertion: %s", target.Kind())
			}
		}
	}
	return nil
}

// otherInputs returns the operand nodes already feeding the target through
// input edges, excluding the candidate source. Excluding the source makes
// the count correct both while the candidate edge is still being dragged
// and when an already-committed edge is re-checked.
func otherInputs(target, source diagram.Node) []diagram.Node {
	return target.IncomingNodes(diagram.EdgeKindIs(graphol.EdgeInput), diagram.NotNode(source))
}

func countIdentity(nodes []diagram.Node, id graphol.Identity) int {
	n := 0
	for _, node := range nodes {
		if node.Identity() == id {
			n++
		}
	}
	return n
}

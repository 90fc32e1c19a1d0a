package diagram

import "github.com/ontoworks/graphol/vocabulary/graphol"

// fixedIdentityKinds holds the node kinds whose identity never depends on
// wiring. Everything else starts Neutral and is computed from its operands.
var fixedIdentityKinds = map[graphol.NodeKind]bool{
	graphol.NodeConcept:             true,
	graphol.NodeAttribute:           true,
	graphol.NodeRole:                true,
	graphol.NodeValueDomain:         true,
	graphol.NodeIndividual:          true,
	graphol.NodeValueRestriction:    true,
	graphol.NodeDomainRestriction:   true,
	graphol.NodeRoleChain:           true,
	graphol.NodeRoleInverse:         true,
	graphol.NodeDatatypeRestriction: true,
	graphol.NodeFacet:               true,
}

// Identify recomputes and stores the current identity of the given node
// from its input operands, returning the computed identity. Nodes with a
// fixed identity are left untouched.
func (d *Diagram) Identify(n *DiagramNode) graphol.Identity {
	if fixedIdentityKinds[n.kind] {
		return n.identity
	}
	n.identity = d.computeIdentity(n)
	return n.identity
}

// IdentifyAll recomputes constructor identities across the whole diagram.
// Operand chains propagate identity across constructors, so the pass is
// repeated until a fixed point is reached; the chain length bounds the
// number of passes.
func (d *Diagram) IdentifyAll() {
	for range d.nodeOrder {
		changed := false
		for _, n := range d.nodeOrder {
			if fixedIdentityKinds[n.kind] {
				continue
			}
			before := n.identity
			if d.Identify(n) != before {
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

func (d *Diagram) computeIdentity(n *DiagramNode) graphol.Identity {
	operands := n.IncomingNodes(EdgeKindIs(graphol.EdgeInput), nil)

	switch n.kind {
	case graphol.NodePropertyAssertion:
		return propertyAssertionIdentity(operands)
	case graphol.NodeRangeRestriction:
		return rangeRestrictionIdentity(operands)
	case graphol.NodeEnumeration:
		return foldOperands(n, operands, func(id graphol.Identity) graphol.Identity {
			// oneOf composes a Concept from instances and a
			// ValueDomain from values.
			switch id {
			case graphol.IdentityInstance:
				return graphol.IdentityConcept
			case graphol.IdentityValue:
				return graphol.IdentityValueDomain
			}
			return id
		})
	default:
		return foldOperands(n, operands, func(id graphol.Identity) graphol.Identity { return id })
	}
}

// foldOperands reduces the operand identities to a single one: no decided
// operand means Neutral, one shared identity wins if the node's kind admits
// it, and conflicting identities yield Unknown.
func foldOperands(n *DiagramNode, operands []Node, mapID func(graphol.Identity) graphol.Identity) graphol.Identity {
	computed := graphol.IdentityNeutral
	for _, op := range operands {
		id := mapID(op.Identity())
		switch id {
		case graphol.IdentityNeutral:
			continue
		case graphol.IdentityUnknown:
			return graphol.IdentityUnknown
		}
		if computed == graphol.IdentityNeutral {
			computed = id
			continue
		}
		if computed != id {
			return graphol.IdentityUnknown
		}
	}
	if computed == graphol.IdentityNeutral {
		return graphol.IdentityNeutral
	}
	if !n.Identities().Contains(computed) {
		return graphol.IdentityUnknown
	}
	return computed
}

// rangeRestrictionIdentity derives the identity from the restricted
// property: a Role input makes the node a Concept expression, an Attribute
// input makes it a ValueDomain expression. Qualifying Concept/ValueDomain
// inputs do not decide the identity.
func rangeRestrictionIdentity(operands []Node) graphol.Identity {
	computed := graphol.IdentityNeutral
	for _, op := range operands {
		var id graphol.Identity
		switch op.Identity() {
		case graphol.IdentityRole:
			id = graphol.IdentityConcept
		case graphol.IdentityAttribute:
			id = graphol.IdentityValueDomain
		case graphol.IdentityUnknown:
			return graphol.IdentityUnknown
		default:
			continue
		}
		if computed == graphol.IdentityNeutral {
			computed = id
			continue
		}
		if computed != id {
			return graphol.IdentityUnknown
		}
	}
	return computed
}

// propertyAssertionIdentity distinguishes role assertions (two instances)
// from attribute assertions (an instance and a value).
func propertyAssertionIdentity(operands []Node) graphol.Identity {
	instances, values := 0, 0
	for _, op := range operands {
		switch op.Identity() {
		case graphol.IdentityInstance:
			instances++
		case graphol.IdentityValue:
			values++
		case graphol.IdentityUnknown:
			return graphol.IdentityUnknown
		}
	}
	switch {
	case values > 0:
		return graphol.IdentityAttributeInstance
	case instances >= 2:
		return graphol.IdentityRoleInstance
	default:
		return graphol.IdentityNeutral
	}
}

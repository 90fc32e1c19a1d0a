package graphol

// NodeKind represents the structural type of a diagram node.
type NodeKind string

// Predicate node kinds denote user-named atomic entities.
const (
	// NodeConcept is an atomic class expression.
	NodeConcept NodeKind = "concept"

	// NodeAttribute is an atomic data property expression.
	NodeAttribute NodeKind = "attribute"

	// NodeRole is an atomic object property expression.
	NodeRole NodeKind = "role"

	// NodeValueDomain is an atomic datatype expression.
	NodeValueDomain NodeKind = "value-domain"

	// NodeIndividual is a named individual or a literal value.
	NodeIndividual NodeKind = "individual"

	// NodeValueRestriction is a facet restriction over a datatype.
	NodeValueRestriction NodeKind = "value-restriction"
)

// Constructor node kinds compose operand nodes into new expressions.
const (
	// NodeDomainRestriction restricts the domain of a property.
	NodeDomainRestriction NodeKind = "domain-restriction"

	// NodeRangeRestriction restricts the range of a property.
	NodeRangeRestriction NodeKind = "range-restriction"

	// NodeUnion composes the union of its operands.
	NodeUnion NodeKind = "union"

	// NodeEnumeration composes a class or datatype by enumerating individuals.
	NodeEnumeration NodeKind = "enumeration"

	// NodeComplement negates its single operand.
	NodeComplement NodeKind = "complement"

	// NodeRoleChain concatenates object property expressions.
	NodeRoleChain NodeKind = "role-chain"

	// NodeIntersection composes the intersection of its operands.
	NodeIntersection NodeKind = "intersection"

	// NodeRoleInverse constructs the inverse of an object property.
	NodeRoleInverse NodeKind = "role-inverse"

	// NodeDatatypeRestriction composes a datatype with value restrictions.
	NodeDatatypeRestriction NodeKind = "datatype-restriction"

	// NodeDisjointUnion composes a pairwise disjoint union of its operands.
	NodeDisjointUnion NodeKind = "disjoint-union"

	// NodePropertyAssertion relates individuals through a property.
	NodePropertyAssertion NodeKind = "property-assertion"

	// NodeFacet is a facet/value pair used inside datatype restrictions.
	NodeFacet NodeKind = "facet"
)

// predicateKinds holds the node kinds that denote user-named entities.
var predicateKinds = map[NodeKind]bool{
	NodeConcept:          true,
	NodeAttribute:        true,
	NodeRole:             true,
	NodeValueDomain:      true,
	NodeIndividual:       true,
	NodeValueRestriction: true,
}

// IsPredicate reports whether the kind denotes a user-named atomic entity.
func (k NodeKind) IsPredicate() bool {
	return predicateKinds[k]
}

// IsConstructor reports whether the kind composes operand nodes.
func (k NodeKind) IsConstructor() bool {
	return k.IsValid() && !predicateKinds[k]
}

// IsValid reports whether the kind is part of the closed vocabulary.
func (k NodeKind) IsValid() bool {
	switch k {
	case NodeConcept, NodeAttribute, NodeRole, NodeValueDomain, NodeIndividual,
		NodeValueRestriction, NodeDomainRestriction, NodeRangeRestriction,
		NodeUnion, NodeEnumeration, NodeComplement, NodeRoleChain,
		NodeIntersection, NodeRoleInverse, NodeDatatypeRestriction,
		NodeDisjointUnion, NodePropertyAssertion, NodeFacet:
		return true
	default:
		return false
	}
}

// String returns the readable node kind name, i.e. "domain-restriction".
func (k NodeKind) String() string {
	return string(k)
}

// EdgeKind represents the structural type of a diagram edge.
type EdgeKind string

const (
	// EdgeInclusion asserts subsumption between two expressions.
	EdgeInclusion EdgeKind = "inclusion"

	// EdgeInput feeds an operand expression into a constructor node.
	EdgeInput EdgeKind = "input"

	// EdgeMembership asserts instance-of between an individual (or a
	// property assertion) and an expression.
	EdgeMembership EdgeKind = "membership"
)

// IsValid reports whether the kind is part of the closed vocabulary.
func (k EdgeKind) IsValid() bool {
	switch k {
	case EdgeInclusion, EdgeInput, EdgeMembership:
		return true
	default:
		return false
	}
}

// String returns the readable edge kind name.
func (k EdgeKind) String() string {
	return string(k)
}

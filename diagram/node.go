package diagram

import (
	"github.com/ontoworks/graphol/vocabulary/graphol"
	"github.com/ontoworks/graphol/vocabulary/owl"
)

// Node is the read-only view of a diagram node consumed by the validator.
// Restriction, Facet and Datatype are only meaningful for the node kinds
// that carry them and return the zero value elsewhere.
type Node interface {
	ID() string
	Kind() graphol.NodeKind

	// Identity returns the description-logic category the node currently
	// represents, given its wiring.
	Identity() graphol.Identity

	// Identities returns the set of identities the node's kind can ever
	// take, independent of current wiring.
	Identities() graphol.IdentitySet

	Restriction() graphol.Restriction
	Facet() owl.Facet
	Datatype() owl.Datatype

	// IncomingNodes returns the neighbors reached through edges pointing
	// into this node, filtered by the given predicates. Nil predicates
	// accept everything. Traversal is one hop only.
	IncomingNodes(EdgePredicate, NodePredicate) []Node

	// OutgoingNodes returns the neighbors reached through edges pointing
	// out of this node, filtered like IncomingNodes.
	OutgoingNodes(EdgePredicate, NodePredicate) []Node
}

// Edge is the read-only view of a diagram edge.
type Edge interface {
	ID() string
	Kind() graphol.EdgeKind
	Source() Node
	Target() Node
}

// EdgePredicate filters edges during traversal. A nil predicate accepts
// every edge.
type EdgePredicate func(Edge) bool

// NodePredicate filters neighbor nodes during traversal. A nil predicate
// accepts every node.
type NodePredicate func(Node) bool

// EdgeKindIs returns a predicate accepting edges of the given kind.
func EdgeKindIs(kind graphol.EdgeKind) EdgePredicate {
	return func(e Edge) bool { return e.Kind() == kind }
}

// NodeKindIs returns a predicate accepting nodes of any of the given kinds.
func NodeKindIs(kinds ...graphol.NodeKind) NodePredicate {
	return func(n Node) bool {
		for _, k := range kinds {
			if n.Kind() == k {
				return true
			}
		}
		return false
	}
}

// NodeIdentityIs returns a predicate accepting nodes with the given identity.
func NodeIdentityIs(id graphol.Identity) NodePredicate {
	return func(n Node) bool { return n.Identity() == id }
}

// NotNode returns a predicate rejecting exactly the given node. Comparison
// is by reference, matching the validator's triple-identity semantics.
func NotNode(excluded Node) NodePredicate {
	return func(n Node) bool { return n != excluded }
}

// AllNodes combines node predicates, accepting only nodes every predicate
// accepts. Nil entries are skipped.
func AllNodes(preds ...NodePredicate) NodePredicate {
	return func(n Node) bool {
		for _, p := range preds {
			if p != nil && !p(n) {
				return false
			}
		}
		return true
	}
}

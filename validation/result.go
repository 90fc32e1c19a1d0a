package validation

import (
	"github.com/ontoworks/graphol/diagram"
	"github.com/ontoworks/graphol/vocabulary/graphol"
)

// Result is the immutable outcome of validating one (source, edge, target)
// triple. It holds weak, read-only references to the endpoint nodes and
// never outlives their graph semantically: the validator's memo is cleared
// whenever the graph changes structurally.
type Result struct {
	source  diagram.Node
	edge    graphol.EdgeKind
	target  diagram.Node
	valid   bool
	message string
}

func newResult(source diagram.Node, edge graphol.EdgeKind, target diagram.Node, valid bool, message string) *Result {
	return &Result{
		source:  source,
		edge:    edge,
		target:  target,
		valid:   valid,
		message: message,
	}
}

// Source returns the source node of the validated triple.
func (r *Result) Source() diagram.Node { return r.source }

// EdgeKind returns the edge kind of the validated triple.
func (r *Result) EdgeKind() graphol.EdgeKind { return r.edge }

// Target returns the target node of the validated triple.
func (r *Result) Target() diagram.Node { return r.target }

// IsValid reports whether the triple is a legal construction.
func (r *Result) IsValid() bool { return r.valid }

// Message returns the human-readable violation reason, empty for valid
// triples.
func (r *Result) Message() string { return r.message }

// Matches reports whether the result refers to exactly the given triple.
// Endpoints are compared by reference: two structurally identical nodes are
// still distinct entities.
func (r *Result) Matches(source diagram.Node, edge graphol.EdgeKind, target diagram.Node) bool {
	return r.source == source && r.edge == edge && r.target == target
}

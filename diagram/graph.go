package diagram

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ontoworks/graphol/vocabulary/graphol"
	"github.com/ontoworks/graphol/vocabulary/owl"
)

// NodeSpec describes a node to add to a diagram. ID is generated when empty;
// Identity defaults to the kind's default identity. Label, Restriction,
// Datatype and Facet are only consulted for the kinds that carry them.
type NodeSpec struct {
	ID          string
	Kind        graphol.NodeKind
	Label       string
	Identity    graphol.Identity
	Restriction graphol.Restriction
	Datatype    owl.Datatype
	Facet       owl.Facet
}

// Diagram is an in-memory Graphol diagram: typed nodes wired together with
// typed edges. It is not safe for concurrent mutation.
type Diagram struct {
	name  string
	nodes map[string]*DiagramNode
	edges map[string]*DiagramEdge

	// insertion order, for deterministic iteration
	nodeOrder []*DiagramNode
	edgeOrder []*DiagramEdge
}

// New creates an empty diagram with the given name.
func New(name string) *Diagram {
	return &Diagram{
		name:  name,
		nodes: make(map[string]*DiagramNode),
		edges: make(map[string]*DiagramEdge),
	}
}

// Name returns the diagram name.
func (d *Diagram) Name() string { return d.name }

// Node returns the node with the given id, or nil.
func (d *Diagram) Node(id string) *DiagramNode { return d.nodes[id] }

// Edge returns the edge with the given id, or nil.
func (d *Diagram) Edge(id string) *DiagramEdge { return d.edges[id] }

// Nodes returns the diagram nodes in insertion order.
func (d *Diagram) Nodes() []*DiagramNode {
	out := make([]*DiagramNode, len(d.nodeOrder))
	copy(out, d.nodeOrder)
	return out
}

// Edges returns the diagram edges in insertion order.
func (d *Diagram) Edges() []*DiagramEdge {
	out := make([]*DiagramEdge, len(d.edgeOrder))
	copy(out, d.edgeOrder)
	return out
}

// AddNode adds a node described by the given spec.
func (d *Diagram) AddNode(spec NodeSpec) (*DiagramNode, error) {
	if !spec.Kind.IsValid() {
		return nil, fmt.Errorf("unknown node kind: %q", spec.Kind)
	}
	id := spec.ID
	if id == "" {
		id = uuid.NewString()
	}
	if _, exists := d.nodes[id]; exists {
		return nil, fmt.Errorf("duplicate node id: %q", id)
	}
	identity := spec.Identity
	if identity == "" {
		identity = graphol.DefaultIdentity(spec.Kind)
	}
	n := &DiagramNode{
		id:          id,
		kind:        spec.Kind,
		label:       spec.Label,
		identity:    identity,
		restriction: spec.Restriction,
		datatype:    spec.Datatype,
		facet:       spec.Facet,
	}
	d.nodes[id] = n
	d.nodeOrder = append(d.nodeOrder, n)
	return n, nil
}

// EdgeSpec describes an edge to add. A missing ID is generated.
type EdgeSpec struct {
	ID       string
	Kind     graphol.EdgeKind
	SourceID string
	TargetID string
}

// AddEdge wires an edge described by the given spec. Both endpoints must
// already be part of the diagram.
func (d *Diagram) AddEdge(spec EdgeSpec) (*DiagramEdge, error) {
	if !spec.Kind.IsValid() {
		return nil, fmt.Errorf("unknown edge kind: %q", spec.Kind)
	}
	source := d.nodes[spec.SourceID]
	if source == nil {
		return nil, fmt.Errorf("edge source %q not in diagram", spec.SourceID)
	}
	target := d.nodes[spec.TargetID]
	if target == nil {
		return nil, fmt.Errorf("edge target %q not in diagram", spec.TargetID)
	}
	id := spec.ID
	if id == "" {
		id = uuid.NewString()
	}
	if _, exists := d.edges[id]; exists {
		return nil, fmt.Errorf("duplicate edge id: %q", id)
	}
	e := &DiagramEdge{
		id:     id,
		kind:   spec.Kind,
		source: source,
		target: target,
	}
	d.edges[e.id] = e
	d.edgeOrder = append(d.edgeOrder, e)
	source.outgoing = append(source.outgoing, e)
	target.incoming = append(target.incoming, e)
	return e, nil
}

// DiagramNode is the concrete Node implementation.
type DiagramNode struct {
	id          string
	kind        graphol.NodeKind
	label       string
	identity    graphol.Identity
	restriction graphol.Restriction
	datatype    owl.Datatype
	facet       owl.Facet

	incoming []*DiagramEdge
	outgoing []*DiagramEdge
}

// ID returns the node id.
func (n *DiagramNode) ID() string { return n.id }

// Kind returns the node kind.
func (n *DiagramNode) Kind() graphol.NodeKind { return n.kind }

// Label returns the user-visible predicate label, empty for constructors.
func (n *DiagramNode) Label() string { return n.label }

// Identity returns the node's current identity.
func (n *DiagramNode) Identity() graphol.Identity { return n.identity }

// SetIdentity overrides the node's current identity. Used by the identity
// inference pass and by tests; the validator never calls it.
func (n *DiagramNode) SetIdentity(id graphol.Identity) { n.identity = id }

// Identities returns the admissible identity set for the node's kind.
func (n *DiagramNode) Identities() graphol.IdentitySet {
	return graphol.Identities(n.kind)
}

// Restriction returns the restriction carried by domain/range restriction
// nodes, empty elsewhere.
func (n *DiagramNode) Restriction() graphol.Restriction { return n.restriction }

// Datatype returns the datatype carried by value-domain and value
// restriction nodes, empty elsewhere.
func (n *DiagramNode) Datatype() owl.Datatype { return n.datatype }

// Facet returns the facet carried by facet nodes, empty elsewhere.
func (n *DiagramNode) Facet() owl.Facet { return n.facet }

// IsSpecial reports whether the node's label is one of the reserved
// TOP/BOTTOM predicate names.
func (n *DiagramNode) IsSpecial() bool {
	_, ok := graphol.SpecialForLabel(n.label)
	return ok
}

// IncomingNodes implements Node.
func (n *DiagramNode) IncomingNodes(edgeFilter EdgePredicate, nodeFilter NodePredicate) []Node {
	var out []Node
	for _, e := range n.incoming {
		if edgeFilter != nil && !edgeFilter(e) {
			continue
		}
		if nodeFilter != nil && !nodeFilter(e.source) {
			continue
		}
		out = append(out, e.source)
	}
	return out
}

// OutgoingNodes implements Node.
func (n *DiagramNode) OutgoingNodes(edgeFilter EdgePredicate, nodeFilter NodePredicate) []Node {
	var out []Node
	for _, e := range n.outgoing {
		if edgeFilter != nil && !edgeFilter(e) {
			continue
		}
		if nodeFilter != nil && !nodeFilter(e.target) {
			continue
		}
		out = append(out, e.target)
	}
	return out
}

// DiagramEdge is the concrete Edge implementation.
type DiagramEdge struct {
	id     string
	kind   graphol.EdgeKind
	source *DiagramNode
	target *DiagramNode
}

// ID returns the edge id.
func (e *DiagramEdge) ID() string { return e.id }

// Kind returns the edge kind.
func (e *DiagramEdge) Kind() graphol.EdgeKind { return e.kind }

// Source returns the node the edge points out of.
func (e *DiagramEdge) Source() Node { return e.source }

// Target returns the node the edge points into.
func (e *DiagramEdge) Target() Node { return e.target }

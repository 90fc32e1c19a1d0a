// Package loader reads Graphol project files into diagrams. The on-disk
// format is XML: a graphol root carrying a project, each project holding
// one or more diagrams of typed node and edge elements.
package loader

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/ontoworks/graphol/diagram"
	"github.com/ontoworks/graphol/vocabulary/graphol"
	"github.com/ontoworks/graphol/vocabulary/owl"
)

// SupportedVersion is the project file format version this loader reads.
const SupportedVersion = 2

// Project is a loaded Graphol project.
type Project struct {
	Name     string
	Diagrams []*diagram.Diagram
}

type xmlDocument struct {
	XMLName xml.Name   `xml:"graphol"`
	Version int        `xml:"version,attr"`
	Project xmlProject `xml:"project"`
}

type xmlProject struct {
	Name     string       `xml:"name,attr"`
	Diagrams []xmlDiagram `xml:"diagram"`
}

type xmlDiagram struct {
	Name  string    `xml:"name,attr"`
	Nodes []xmlNode `xml:"node"`
	Edges []xmlEdge `xml:"edge"`
}

type xmlNode struct {
	ID          string `xml:"id,attr"`
	Kind        string `xml:"kind,attr"`
	Identity    string `xml:"identity,attr"`
	Restriction string `xml:"restriction,attr"`
	Datatype    string `xml:"datatype,attr"`
	Facet       string `xml:"facet,attr"`
	Label       string `xml:"label,attr"`
}

type xmlEdge struct {
	ID     string `xml:"id,attr"`
	Kind   string `xml:"kind,attr"`
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}

// LoadFile reads a .graphol project file from disk.
func LoadFile(path string) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open project file: %w", err)
	}
	defer f.Close()

	p, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return p, nil
}

// Load reads a Graphol project from the given reader.
func Load(r io.Reader) (*Project, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}
	if doc.Version != SupportedVersion {
		return nil, fmt.Errorf("unsupported project version %d (want %d)", doc.Version, SupportedVersion)
	}

	p := &Project{Name: doc.Project.Name}
	for _, xd := range doc.Project.Diagrams {
		d, err := buildDiagram(xd)
		if err != nil {
			return nil, fmt.Errorf("diagram %q: %w", xd.Name, err)
		}
		p.Diagrams = append(p.Diagrams, d)
	}
	return p, nil
}

func buildDiagram(xd xmlDiagram) (*diagram.Diagram, error) {
	d := diagram.New(xd.Name)

	for _, xn := range xd.Nodes {
		spec, err := nodeSpec(xn)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", xn.ID, err)
		}
		if _, err := d.AddNode(spec); err != nil {
			return nil, err
		}
	}

	for _, xe := range xd.Edges {
		kind := graphol.EdgeKind(xe.Kind)
		if !kind.IsValid() {
			return nil, fmt.Errorf("edge %q: unknown edge kind %q", xe.ID, xe.Kind)
		}
		spec := diagram.EdgeSpec{
			ID:       xe.ID,
			Kind:     kind,
			SourceID: xe.Source,
			TargetID: xe.Target,
		}
		if _, err := d.AddEdge(spec); err != nil {
			return nil, fmt.Errorf("edge %q: %w", xe.ID, err)
		}
	}

	// Constructor identities depend on the wiring just rebuilt.
	d.IdentifyAll()
	return d, nil
}

func nodeSpec(xn xmlNode) (diagram.NodeSpec, error) {
	kind := graphol.NodeKind(xn.Kind)
	if !kind.IsValid() {
		return diagram.NodeSpec{}, fmt.Errorf("unknown node kind %q", xn.Kind)
	}
	spec := diagram.NodeSpec{
		ID:    xn.ID,
		Kind:  kind,
		Label: xn.Label,
	}

	if xn.Identity != "" {
		id, ok := graphol.IdentityForLabel(xn.Identity)
		if !ok {
			return diagram.NodeSpec{}, fmt.Errorf("unknown identity %q", xn.Identity)
		}
		if !graphol.Identities(kind).Contains(id) {
			return diagram.NodeSpec{}, fmt.Errorf("identity %q not admissible for %s", xn.Identity, kind)
		}
		spec.Identity = id
	}

	if xn.Restriction != "" {
		r, ok := graphol.RestrictionForLabel(xn.Restriction)
		if !ok {
			return diagram.NodeSpec{}, fmt.Errorf("unknown restriction %q", xn.Restriction)
		}
		spec.Restriction = r
	}

	if xn.Datatype != "" {
		dt, ok := owl.DatatypeForIRI(xn.Datatype)
		if !ok {
			return diagram.NodeSpec{}, fmt.Errorf("unknown datatype %q", xn.Datatype)
		}
		spec.Datatype = dt
	}

	if xn.Facet != "" {
		fc, ok := owl.FacetForIRI(xn.Facet)
		if !ok {
			return diagram.NodeSpec{}, fmt.Errorf("unknown facet %q", xn.Facet)
		}
		spec.Facet = fc
	}

	return spec, nil
}

package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ontoworks/graphol/vocabulary/graphol"
	"github.com/ontoworks/graphol/vocabulary/owl"
)

const familyProject = `<?xml version="1.0" encoding="UTF-8"?>
<graphol version="2">
  <project name="family">
    <diagram name="main">
      <node id="n1" kind="concept" label="Person"/>
      <node id="n2" kind="concept" label="TOP"/>
      <node id="n3" kind="role" label="hasParent"/>
      <node id="n4" kind="individual" label="alice"/>
      <node id="n5" kind="individual" identity="value" label="&quot;42&quot;^^xsd:integer"/>
      <node id="n6" kind="value-domain" datatype="xsd:integer"/>
      <node id="n7" kind="domain-restriction" restriction="exists"/>
      <node id="n8" kind="union"/>
      <edge id="e1" kind="inclusion" source="n1" target="n2"/>
      <edge id="e2" kind="input" source="n3" target="n7"/>
      <edge id="e3" kind="input" source="n1" target="n8"/>
      <edge id="e4" kind="membership" source="n4" target="n1"/>
    </diagram>
  </project>
</graphol>`

func TestLoad(t *testing.T) {
	p, err := Load(strings.NewReader(familyProject))
	require.NoError(t, err)
	require.Equal(t, "family", p.Name)
	require.Len(t, p.Diagrams, 1)

	d := p.Diagrams[0]
	assert.Equal(t, "main", d.Name())
	assert.Len(t, d.Nodes(), 8)
	assert.Len(t, d.Edges(), 4)

	person := d.Node("n1")
	require.NotNil(t, person)
	assert.Equal(t, graphol.NodeConcept, person.Kind())
	assert.Equal(t, graphol.IdentityConcept, person.Identity())
	assert.Equal(t, "Person", person.Label())
	assert.False(t, person.IsSpecial())

	assert.True(t, d.Node("n2").IsSpecial())

	value := d.Node("n5")
	require.NotNil(t, value)
	assert.Equal(t, graphol.IdentityValue, value.Identity())

	vd := d.Node("n6")
	require.NotNil(t, vd)
	assert.Equal(t, owl.DatatypeInteger, vd.Datatype())

	dr := d.Node("n7")
	require.NotNil(t, dr)
	assert.Equal(t, graphol.RestrictionExists, dr.Restriction())

	// Constructor identities are recomputed from the wiring.
	assert.Equal(t, graphol.IdentityConcept, d.Node("n8").Identity())

	e := d.Edge("e1")
	require.NotNil(t, e)
	assert.Equal(t, graphol.EdgeInclusion, e.Kind())
	assert.Equal(t, "n1", e.Source().ID())
	assert.Equal(t, "n2", e.Target().ID())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "unsupported version",
			doc:     `<graphol version="1"><project name="p"/></graphol>`,
			wantErr: "unsupported project version 1",
		},
		{
			name: "unknown node kind",
			doc: `<graphol version="2"><project name="p"><diagram name="d">
				<node id="n1" kind="diamond"/>
			</diagram></project></graphol>`,
			wantErr: `unknown node kind "diamond"`,
		},
		{
			name: "unknown edge kind",
			doc: `<graphol version="2"><project name="p"><diagram name="d">
				<node id="n1" kind="concept"/>
				<node id="n2" kind="concept"/>
				<edge id="e1" kind="equivalence" source="n1" target="n2"/>
			</diagram></project></graphol>`,
			wantErr: `unknown edge kind "equivalence"`,
		},
		{
			name: "dangling edge endpoint",
			doc: `<graphol version="2"><project name="p"><diagram name="d">
				<node id="n1" kind="concept"/>
				<edge id="e1" kind="inclusion" source="n1" target="n9"/>
			</diagram></project></graphol>`,
			wantErr: `edge target "n9" not in diagram`,
		},
		{
			name: "unknown datatype",
			doc: `<graphol version="2"><project name="p"><diagram name="d">
				<node id="n1" kind="value-domain" datatype="xsd:color"/>
			</diagram></project></graphol>`,
			wantErr: `unknown datatype "xsd:color"`,
		},
		{
			name: "unknown restriction",
			doc: `<graphol version="2"><project name="p"><diagram name="d">
				<node id="n1" kind="domain-restriction" restriction="most"/>
			</diagram></project></graphol>`,
			wantErr: `unknown restriction "most"`,
		},
		{
			name: "inadmissible identity",
			doc: `<graphol version="2"><project name="p"><diagram name="d">
				<node id="n1" kind="concept" identity="role"/>
			</diagram></project></graphol>`,
			wantErr: `identity "role" not admissible for concept`,
		},
		{
			name: "duplicate node id",
			doc: `<graphol version="2"><project name="p"><diagram name="d">
				<node id="n1" kind="concept"/>
				<node id="n1" kind="concept"/>
			</diagram></project></graphol>`,
			wantErr: `duplicate node id: "n1"`,
		},
		{
			name:    "malformed document",
			doc:     `<graphol version="2"><project`,
			wantErr: "decode project",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadCardinalityRestriction(t *testing.T) {
	doc := `<graphol version="2"><project name="p"><diagram name="d">
		<node id="n1" kind="domain-restriction" restriction="(2,4)"/>
	</diagram></project></graphol>`

	p, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	n := p.Diagrams[0].Node("n1")
	assert.Equal(t, graphol.RestrictionCardinality, n.Restriction())
}

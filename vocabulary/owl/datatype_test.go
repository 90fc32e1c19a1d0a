package owl_test

import (
	"testing"

	"github.com/ontoworks/graphol/vocabulary/owl"
)

func TestDatatypeForIRI(t *testing.T) {
	if d, ok := owl.DatatypeForIRI("xsd:string"); !ok || d != owl.DatatypeString {
		t.Fatalf("DatatypeForIRI(xsd:string) = %q, %v", d, ok)
	}
	if d, ok := owl.DatatypeForIRI(" owl:rational "); !ok || d != owl.DatatypeRational {
		t.Fatalf("DatatypeForIRI(owl:rational) = %q, %v", d, ok)
	}
	if _, ok := owl.DatatypeForIRI("xsd:duration"); ok {
		t.Fatal("xsd:duration is outside the vocabulary")
	}
}

func TestDatatypesForProfile(t *testing.T) {
	full := owl.DatatypesForProfile(owl.ProfileOWL2)
	if len(full) != len(owl.Datatypes) {
		t.Fatalf("OWL 2 supports %d datatypes, want %d", len(full), len(owl.Datatypes))
	}

	ql := owl.DatatypesForProfile(owl.ProfileOWL2QL)
	if len(ql) != 19 {
		t.Fatalf("OWL 2 QL supports %d datatypes, want 19", len(ql))
	}
	contains := func(set []owl.Datatype, d owl.Datatype) bool {
		for _, x := range set {
			if x == d {
				return true
			}
		}
		return false
	}
	if contains(ql, owl.DatatypeBoolean) {
		t.Error("OWL 2 QL does not support xsd:boolean")
	}
	if !contains(ql, owl.DatatypeRational) {
		t.Error("OWL 2 QL supports owl:rational")
	}

	rl := owl.DatatypesForProfile(owl.ProfileOWL2RL)
	if len(rl) != 28 {
		t.Fatalf("OWL 2 RL supports %d datatypes, want 28", len(rl))
	}
	if contains(rl, owl.DatatypeRational) {
		t.Error("OWL 2 RL does not support owl:rational")
	}
	if !contains(rl, owl.DatatypeBoolean) {
		t.Error("OWL 2 RL supports xsd:boolean")
	}
}

func TestProfileForName(t *testing.T) {
	for _, name := range []string{"OWL 2", "OWL 2 QL", "OWL 2 RL"} {
		p, ok := owl.ProfileForName(name)
		if !ok || string(p) != name {
			t.Errorf("ProfileForName(%q) = %q, %v", name, p, ok)
		}
	}
	if _, ok := owl.ProfileForName("OWL 2 EL"); ok {
		t.Error("OWL 2 EL is not a recognised profile")
	}
}

func TestProfileSupports(t *testing.T) {
	if !owl.ProfileOWL2.Supports(owl.DatatypeRational) {
		t.Error("OWL 2 supports owl:rational")
	}
	if owl.ProfileOWL2.Supports(owl.Datatype("xsd:duration")) {
		t.Error("xsd:duration is outside the vocabulary")
	}
	if !owl.ProfileOWL2QL.Supports(owl.DatatypeInteger) {
		t.Error("OWL 2 QL supports xsd:integer")
	}
	if owl.ProfileOWL2QL.Supports(owl.DatatypeBoolean) {
		t.Error("OWL 2 QL does not support xsd:boolean")
	}
	if owl.ProfileOWL2RL.Supports(owl.DatatypeRational) {
		t.Error("OWL 2 RL does not support owl:rational")
	}
}

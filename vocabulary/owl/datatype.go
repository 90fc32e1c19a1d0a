package owl

import "strings"

// Datatype represents an OWL 2 datatype by its prefixed IRI.
type Datatype string

const (
	DatatypeRational           Datatype = "owl:rational"
	DatatypeReal               Datatype = "owl:real"
	DatatypePlainLiteral       Datatype = "rdf:PlainLiteral"
	DatatypeXMLLiteral         Datatype = "rdf:XMLLiteral"
	DatatypeLiteral            Datatype = "rdfs:Literal"
	DatatypeAnyURI             Datatype = "xsd:anyURI"
	DatatypeBase64Binary       Datatype = "xsd:base64Binary"
	DatatypeBoolean            Datatype = "xsd:boolean"
	DatatypeByte               Datatype = "xsd:byte"
	DatatypeDateTime           Datatype = "xsd:dateTime"
	DatatypeDateTimeStamp      Datatype = "xsd:dateTimeStamp"
	DatatypeDecimal            Datatype = "xsd:decimal"
	DatatypeDouble             Datatype = "xsd:double"
	DatatypeFloat              Datatype = "xsd:float"
	DatatypeHexBinary          Datatype = "xsd:hexBinary"
	DatatypeInt                Datatype = "xsd:int"
	DatatypeInteger            Datatype = "xsd:integer"
	DatatypeLanguage           Datatype = "xsd:language"
	DatatypeLong               Datatype = "xsd:long"
	DatatypeName               Datatype = "xsd:Name"
	DatatypeNCName             Datatype = "xsd:NCName"
	DatatypeNegativeInteger    Datatype = "xsd:negativeInteger"
	DatatypeNMTOKEN            Datatype = "xsd:NMTOKEN"
	DatatypeNonNegativeInteger Datatype = "xsd:nonNegativeInteger"
	DatatypeNonPositiveInteger Datatype = "xsd:nonPositiveInteger"
	DatatypeNormalizedString   Datatype = "xsd:normalizedString"
	DatatypePositiveInteger    Datatype = "xsd:positiveInteger"
	DatatypeShort              Datatype = "xsd:short"
	DatatypeString             Datatype = "xsd:string"
	DatatypeToken              Datatype = "xsd:token"
	DatatypeUnsignedByte       Datatype = "xsd:unsignedByte"
	DatatypeUnsignedInt        Datatype = "xsd:unsignedInt"
	DatatypeUnsignedLong       Datatype = "xsd:unsignedLong"
	DatatypeUnsignedShort      Datatype = "xsd:unsignedShort"
)

// Datatypes lists every datatype in the vocabulary.
var Datatypes = []Datatype{
	DatatypeRational, DatatypeReal, DatatypePlainLiteral, DatatypeXMLLiteral,
	DatatypeLiteral, DatatypeAnyURI, DatatypeBase64Binary, DatatypeBoolean,
	DatatypeByte, DatatypeDateTime, DatatypeDateTimeStamp, DatatypeDecimal,
	DatatypeDouble, DatatypeFloat, DatatypeHexBinary, DatatypeInt,
	DatatypeInteger, DatatypeLanguage, DatatypeLong, DatatypeName,
	DatatypeNCName, DatatypeNegativeInteger, DatatypeNMTOKEN,
	DatatypeNonNegativeInteger, DatatypeNonPositiveInteger,
	DatatypeNormalizedString, DatatypePositiveInteger, DatatypeShort,
	DatatypeString, DatatypeToken, DatatypeUnsignedByte, DatatypeUnsignedInt,
	DatatypeUnsignedLong, DatatypeUnsignedShort,
}

// String returns the prefixed IRI of the datatype.
func (d Datatype) String() string {
	return string(d)
}

// IsValid reports whether the datatype is part of the closed vocabulary.
func (d Datatype) IsValid() bool {
	_, ok := datatypeFacets[d]
	return ok
}

// DatatypeForIRI returns the datatype matching the given prefixed IRI.
func DatatypeForIRI(iri string) (Datatype, bool) {
	d := Datatype(strings.TrimSpace(iri))
	if d.IsValid() {
		return d, true
	}
	return "", false
}

// Profile identifies an OWL 2 profile.
type Profile string

const (
	// ProfileOWL2 is the unrestricted OWL 2 profile.
	ProfileOWL2 Profile = "OWL 2"

	// ProfileOWL2QL is the OWL 2 QL profile.
	ProfileOWL2QL Profile = "OWL 2 QL"

	// ProfileOWL2RL is the OWL 2 RL profile.
	ProfileOWL2RL Profile = "OWL 2 RL"
)

// profileDatatypes maps each OWL 2 profile to the datatypes it supports.
var profileDatatypes = map[Profile][]Datatype{
	ProfileOWL2QL: {
		DatatypeRational, DatatypeReal, DatatypePlainLiteral,
		DatatypeXMLLiteral, DatatypeLiteral, DatatypeAnyURI,
		DatatypeBase64Binary, DatatypeDateTime, DatatypeDateTimeStamp,
		DatatypeDecimal, DatatypeHexBinary, DatatypeInteger, DatatypeName,
		DatatypeNCName, DatatypeNMTOKEN, DatatypeNonNegativeInteger,
		DatatypeNormalizedString, DatatypeString, DatatypeToken,
	},
	ProfileOWL2RL: {
		DatatypePlainLiteral, DatatypeXMLLiteral, DatatypeLiteral,
		DatatypeAnyURI, DatatypeBase64Binary, DatatypeBoolean, DatatypeByte,
		DatatypeDateTime, DatatypeDateTimeStamp, DatatypeDecimal,
		DatatypeDouble, DatatypeFloat, DatatypeHexBinary, DatatypeName,
		DatatypeNCName, DatatypeNegativeInteger, DatatypeNMTOKEN,
		DatatypeNonNegativeInteger, DatatypeNonPositiveInteger,
		DatatypeNormalizedString, DatatypePositiveInteger, DatatypeShort,
		DatatypeString, DatatypeToken, DatatypeUnsignedByte,
		DatatypeUnsignedInt, DatatypeUnsignedLong, DatatypeUnsignedShort,
	},
}

// ProfileForName returns the profile matching the given name.
func ProfileForName(name string) (Profile, bool) {
	switch Profile(name) {
	case ProfileOWL2, ProfileOWL2QL, ProfileOWL2RL:
		return Profile(name), true
	}
	return "", false
}

// Supports reports whether the profile admits the given datatype.
func (p Profile) Supports(d Datatype) bool {
	if p == ProfileOWL2 {
		return d.IsValid()
	}
	for _, dt := range profileDatatypes[p] {
		if dt == d {
			return true
		}
	}
	return false
}

// DatatypesForProfile returns the datatypes supported by the given profile.
// The unrestricted OWL 2 profile supports every datatype.
func DatatypesForProfile(p Profile) []Datatype {
	if p == ProfileOWL2 {
		out := make([]Datatype, len(Datatypes))
		copy(out, Datatypes)
		return out
	}
	set := profileDatatypes[p]
	out := make([]Datatype, len(set))
	copy(out, set)
	return out
}

// Package owl provides the OWL 2 datatype and facet vocabularies consumed by
// value-domain and facet nodes: the closed datatype set, the per-profile
// datatype subsets, the facets each datatype admits, and the OWL API facet
// name mapping used on export.
package owl

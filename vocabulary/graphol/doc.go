// Package graphol provides the closed Graphol vocabulary used by the
// validation engine: node and edge kinds, expression identities, restriction
// types, and the reserved special predicate names.
//
// Graphol diagrams are built from typed nodes wired together with typed
// edges. Every node kind is either a predicate (a user-named atomic entity
// such as a Concept or a Role) or a constructor (an operator that composes
// operand nodes into a new expression, such as a Union or a Complement).
// A node's identity is the description-logic category the node currently
// represents; the set of identities a kind can ever take is a static table
// exposed through Identities.
//
// All data in this package is static: lookups are pure table reads with no
// side effects, and failed lookups report ok=false rather than erroring.
package graphol

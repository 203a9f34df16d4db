// Package ir provides the generic tree substrate for query plans and
// expressions: structural identity, traversal, rewriting, reconstruction
// and one-line descriptions.
//
// # Node Structure
//
// A Node is an immutable, self-describing value. Its argument vector
// (Args) lists every constructor argument in order; each slot carries a
// Role saying whether it holds a child node, an optional child, a pair of
// children, a sequence of children, or opaque auxiliary data. Children are
// derived from the argument vector, so one traversal algorithm works for
// every variant without per-variant plumbing.
//
// Nodes are never mutated after construction. A "changed" tree is always a
// new node graph that shares unchanged subtrees with the original, so a
// no-op pass over a large tree allocates nothing and returns the original
// root pointer.
//
// # Variants
//
// A concrete variant embeds Base (which captures the ambient origin at
// construction and caches the structural hash) and implements Name, Args
// and Make. Make is the variant's explicit reconstruction function: given
// a same-arity argument vector it builds a new instance of the same
// variant, reporting a ReconstructError when it cannot.
//
// # Concurrency
//
// All algorithms are synchronous and recursive; recursion depth equals
// tree depth. Constructed nodes may be shared freely across concurrent
// readers. The ambient origin (package origin) and the lazy hash cache
// assume one logical traversal per tree at a time.
package ir

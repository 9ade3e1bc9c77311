// Package ast defines the syntax tree nodes produced by the declaration
// grammars. Nodes are plain immutable values built bottom-up; every node
// carries the span of the token that introduced it and the span is never
// recomputed afterwards.
//
// Tagged alternatives (designators, entity names, declarations, expressions,
// statements) are modeled as small interfaces with a marker method each, the
// usual Go shape for closed node sets.
package ast

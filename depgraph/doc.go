// Package depgraph turns an ast.Program into the flat dependency graph
// the rest of the chopper operates on: a dense-integer-id Index with a
// sorted adjacency list per node, built by walking every member's AST
// subtree per the edge rules of spec.md §4.2.
//
// Build is the sole entry point; Index is its read-only result.
package depgraph

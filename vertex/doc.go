// Package vertex implements the vertex model of spec.md §3/§4.1: the
// closed set of vertex kinds, the definition/use decomposition rule
// every member obeys, and Inverse, the reconstruction contract that
// turns a set of vertices back into an ast.Program.
//
// Dual vertex per member (definition vs. use) is the single most
// important modeling choice in the whole system: a caller only ever
// needs a callee's use vertex (its specification), while the callee's
// own body needs its definition vertex. This is what lets two
// sub-programs share a specification without sharing an
// implementation.
package vertex

// Package chopper partitions a verification-IL program into a bounded
// number of smaller, self-contained sub-programs: every member
// selected for verification ends up in exactly one sub-program,
// together with the transitive set of declarations it needs to verify
// soundly.
//
// Chop is the single entry point. It wires together depgraph (build
// the dependency graph), scc (collapse cycles when the graph is large
// enough to justify it), cut (compute each root's reachable set), and
// merge (greedily shrink the result to the requested bound), then
// reconstructs each surviving vertex set back into an AST via
// vertex.Inverse.
package chopper

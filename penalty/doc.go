// Package penalty scores vertices and merge decisions for package
// merge (spec.md §4.7). Penalty is generic over the type of thing
// being priced so the same scoring logic can run directly over
// vertex.Vertex or, lifted through ContravariantSumLift, over a
// scc.Component standing in for the vertices it condenses.
package penalty

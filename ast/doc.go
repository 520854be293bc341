// Package ast defines the minimal concrete AST that the chopper ingests.
//
// A real verification-language front end produces a far richer tree;
// this package models exactly the shapes the dependency-graph builder
// (package depgraph) and the vertex model (package vertex) need to
// operate over: a Program of Methods, Functions, Predicates, Fields,
// and Domains, each member's body and specification expressed as a
// small Node tree, and Usages, the subtree walk that extracts
// references out of a Node.
//
// Producing this tree (parsing, type-checking) and consuming a chopped
// Program (handing it to a verifier backend) are both out of scope;
// see spec.md §1. This package is the contract boundary between those
// two external collaborators.
package ast

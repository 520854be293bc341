package vertex

import "errors"

// ErrUnsupportedMember is returned when DefVertex/UseVertex encounters
// a member kind outside the closed set spec.md §3 enumerates. Extension/plugin members must be rejected
// this way rather than silently modeled as one of the known kinds,
// per spec.md §4.1 and §7.
var ErrUnsupportedMember = errors.New("vertex: member kind not supported; apply chopper post-plugin transform")

// ErrMissingReference is returned by Inverse when a vertex set names a
// member the supplied ast.Program does not contain (e.g. a MethodSpec
// vertex with no matching Method declaration). Spec.md §7 treats this
// as malformed input, not an internal bug.
var ErrMissingReference = errors.New("vertex: vertex set references a member absent from the program")

package chopper

import "errors"

// ErrInvalidBound indicates a non-positive bound was supplied via
// WithBound. Sentinel errors are the only error values this package
// exposes for branching; always test with errors.Is.
var ErrInvalidBound = errors.New("chopper: bound must be positive")

// ErrInternalConsistency indicates the post-merge safety check failed:
// either a vertex present in a pre-merge sub-program went missing, or
// a selected member ended up in no output sub-program. This is a
// programmer bug in the merger or cut engine, never a consequence of
// the input program, and is never recovered locally.
var ErrInternalConsistency = errors.New("chopper: safety check failed; this is an implementation bug")

// Unsupported-member and missing-reference failures surface as the
// vertex package's own sentinels (vertex.ErrUnsupportedMember,
// vertex.ErrMissingReference); wrap, don't shadow them, so
// errors.Is(err, vertex.ErrUnsupportedMember) still works through
// Chop's return value.

package align

import (
	stderrors "errors"
)

// Aligner produces a gapped alignment of a target/query pair.  The returned
// strings must have equal length and use '-' as the gap marker; stripping
// gaps from them must reproduce target and query exactly.  Implementations
// that cannot align a pair return an error (conventionally wrapping
// ErrNoAlignment); they never return a partial result.
//
// The pairwise package provides a conforming implementation.  Record
// construction treats the aligner as an injected collaborator and does not
// retry on failure.
type Aligner interface {
	Align(target, query string) (targetAln, queryAln string, err error)
}

// ErrNoAlignment reports that an Aligner could not produce any alignment for
// a pair.  Use errors.Cause to test for it.
var ErrNoAlignment = stderrors.New("no alignment found")

package align

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// Gap is the gap marker used in alignment strings.  It is the only wire-level
// convention this package assumes about its string inputs.
const Gap = '-'

// Edit classifies one column of a gapped alignment.
type Edit uint8

const (
	// EditMatch marks a column where target and query carry the same base.
	EditMatch Edit = iota
	// EditMismatch marks a substitution: both sides carry a base, and they
	// differ.
	EditMismatch
	// EditInsertion marks a column where the query carries a base the target
	// does not (target side is gapped).
	EditInsertion
	// EditDeletion marks a column where the target base is absent from the
	// query (query side is gapped).
	EditDeletion
)

// String returns the single-letter code used in text renderings of an edit
// row: ' ' match, 'M' mismatch, 'I' insertion, 'D' deletion.
func (e Edit) String() string {
	switch e {
	case EditMatch:
		return " "
	case EditMismatch:
		return "M"
	case EditInsertion:
		return "I"
	case EditDeletion:
		return "D"
	}
	return "?"
}

// Symbol is the byte form of String.
func (e Edit) Symbol() byte {
	return e.String()[0]
}

// ErrMalformedAlignment reports alignment strings that cannot be classified:
// unequal lengths, a column gapped on both sides, or gapped strings that do
// not reduce to the sequences they claim to align.  Use errors.Cause to test
// for it.
var ErrMalformedAlignment = stderrors.New("malformed alignment")

// classify walks a gapped pair column by column and produces one Edit per
// column.  Inputs must have equal length; a column gapped on both sides is
// rejected rather than guessed at.
func classify(targetAln, queryAln string) ([]Edit, error) {
	if len(targetAln) != len(queryAln) {
		return nil, errors.Wrapf(ErrMalformedAlignment,
			"aligned strings differ in length: %d vs %d", len(targetAln), len(queryAln))
	}
	edits := make([]Edit, len(targetAln))
	for i := 0; i < len(targetAln); i++ {
		t, q := targetAln[i], queryAln[i]
		switch {
		case t == Gap && q == Gap:
			return nil, errors.Wrapf(ErrMalformedAlignment,
				"column %d is gapped in both sequences", i)
		case t == Gap:
			edits[i] = EditInsertion
		case q == Gap:
			edits[i] = EditDeletion
		case t == q:
			edits[i] = EditMatch
		default:
			edits[i] = EditMismatch
		}
	}
	return edits, nil
}

// stripGaps removes gap markers from a gapped alignment string.
func stripGaps(aln string) string {
	// Fast path: no gaps at all.
	i := 0
	for i < len(aln) && aln[i] != Gap {
		i++
	}
	if i == len(aln) {
		return aln
	}
	b := make([]byte, i, len(aln))
	copy(b, aln[:i])
	for ; i < len(aln); i++ {
		if aln[i] != Gap {
			b = append(b, aln[i])
		}
	}
	return string(b)
}

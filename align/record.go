package align

import (
	"strings"

	"github.com/pkg/errors"
)

// Opts controls Record construction.
type Opts struct {
	// MergeAdjacentIndels rewrites adjacent insertion/deletion runs as
	// mismatches: where an insertion run abuts a deletion run (in either
	// order), the overlapping min(lengths) columns collapse into mismatch
	// columns carrying the inserted bases.  The per-column view of a merged
	// record is shorter than its alignment strings.
	MergeAdjacentIndels bool
}

// Record is one annotated pairwise alignment: the ungapped target (reference)
// and query, their gapped alignment strings, and a per-column edit
// classification with aggregate counts.  All derived state is computed at
// construction; a Record is immutable afterwards and safe to read from
// multiple goroutines.
type Record struct {
	// Target is the reference sequence, without gaps.
	Target string
	// Query is the sequence compared against the target, without gaps.
	Query string
	// TargetAln and QueryAln are the gapped alignment strings.  They have
	// equal length, and stripping '-' from them yields Target and Query.
	TargetAln string
	QueryAln  string

	edits []Edit
	// bases holds the display base for each column: the target base on a
	// match, the query base on a mismatch or insertion, ' ' on a deletion.
	bases []byte

	insertionCount int
	deletionCount  int
	mutationCount  int
}

// NewAligned builds a Record from a caller-supplied gapped pair.  The pair is
// validated before classification: equal lengths, no column gapped on both
// sides, and each gapped string must reduce to its ungapped sequence.  Any
// violation fails with ErrMalformedAlignment; nothing is truncated or
// guessed.
func NewAligned(target, query, targetAln, queryAln string, opts Opts) (*Record, error) {
	if got := stripGaps(targetAln); got != target {
		return nil, errors.Wrapf(ErrMalformedAlignment,
			"target alignment %q reduces to %q, not %q", targetAln, got, target)
	}
	if got := stripGaps(queryAln); got != query {
		return nil, errors.Wrapf(ErrMalformedAlignment,
			"query alignment %q reduces to %q, not %q", queryAln, got, query)
	}
	edits, err := classify(targetAln, queryAln)
	if err != nil {
		return nil, err
	}
	r := &Record{
		Target:    target,
		Query:     query,
		TargetAln: targetAln,
		QueryAln:  queryAln,
		edits:     edits,
		bases:     displayBases(targetAln, queryAln, edits),
	}
	if opts.MergeAdjacentIndels {
		r.edits, r.bases = mergeAdjacentIndels(r.edits, r.bases)
	}
	r.recount()
	return r, nil
}

// New builds a Record by obtaining the gapped pair from the given aligner.
// Aligner failure propagates to the caller wrapped with pair context; there
// is no retry.
func New(target, query string, a Aligner, opts Opts) (*Record, error) {
	targetAln, queryAln, err := a.Align(target, query)
	if err != nil {
		return nil, errors.Wrapf(err, "aligning query %q against target %q", query, target)
	}
	return NewAligned(target, query, targetAln, queryAln, opts)
}

// displayBases derives the per-column display base row.
func displayBases(targetAln, queryAln string, edits []Edit) []byte {
	bases := make([]byte, len(edits))
	for i, e := range edits {
		switch e {
		case EditMatch:
			bases[i] = targetAln[i]
		case EditMismatch, EditInsertion:
			bases[i] = queryAln[i]
		case EditDeletion:
			bases[i] = ' '
		}
	}
	return bases
}

func (r *Record) recount() {
	r.insertionCount, r.deletionCount, r.mutationCount = 0, 0, 0
	for _, e := range r.edits {
		switch e {
		case EditInsertion:
			r.insertionCount++
		case EditDeletion:
			r.deletionCount++
		case EditMismatch:
			r.mutationCount++
		}
	}
}

// Edits returns the per-column edit classification.  The slice is shared;
// callers must not modify it.
func (r *Record) Edits() []Edit { return r.edits }

// Bases returns the per-column display base row (see Record doc).  The slice
// is shared; callers must not modify it.
func (r *Record) Bases() []byte { return r.bases }

// InsertionCount returns the number of inserted base columns.  A 3-base
// insertion run contributes 3 here but only one marker to
// InsertionMarkers().
func (r *Record) InsertionCount() int { return r.insertionCount }

// DeletionCount returns the number of deleted base columns.
func (r *Record) DeletionCount() int { return r.deletionCount }

// MutationCount returns the number of mismatch (substitution) columns.
func (r *Record) MutationCount() int { return r.mutationCount }

// TotalEdits returns the total number of non-match columns.  It is the sort
// key for display ordering: fewer edits sorts first.
func (r *Record) TotalEdits() int {
	return r.insertionCount + r.deletionCount + r.mutationCount
}

// Less reports whether r has strictly fewer total edits than other.  Equal
// totals compare as neither less; use a stable sort to preserve input order
// on ties.
func (r *Record) Less(other *Record) bool {
	return r.TotalEdits() < other.TotalEdits()
}

// String renders the record in the three-line text form used for debugging:
// the target, the per-column base row and the per-column edit row.
func (r *Record) String() string {
	var buf strings.Builder
	buf.WriteString("Target: ")
	buf.WriteString(r.Target)
	buf.WriteString("\n Query: ")
	buf.Write(r.bases)
	buf.WriteString("\n Edits: ")
	for _, e := range r.edits {
		buf.WriteByte(e.Symbol())
	}
	return buf.String()
}

package align

// editRun is one maximal block [start, end) of identically classified
// columns.
type editRun struct {
	start, end int
	edit       Edit
}

// editRuns splits an edit row into maximal runs, in order.
func editRuns(edits []Edit) []editRun {
	var runs []editRun
	for i := 0; i < len(edits); {
		run := editRun{start: i, edit: edits[i]}
		for i < len(edits) && edits[i] == run.edit {
			i++
		}
		run.end = i
		runs = append(runs, run)
	}
	return runs
}

// mergeAdjacentIndels rewrites adjacent insertion/deletion runs as
// mismatches.  Where an insertion run of length a abuts a deletion run of
// length b (in either order), min(a, b) columns collapse into mismatch
// columns carrying the inserted bases and the remainder of the longer run
// keeps its classification, so the merged row is min(a, b) columns shorter
// per merge.  An aligner that scores a substitution the same as an
// insertion-deletion pair can emit either form; merging makes the two
// render identically.
func mergeAdjacentIndels(edits []Edit, bases []byte) ([]Edit, []byte) {
	outE := make([]Edit, 0, len(edits))
	outB := make([]byte, 0, len(bases))
	flush := func(run editRun) {
		outE = append(outE, edits[run.start:run.end]...)
		outB = append(outB, bases[run.start:run.end]...)
	}

	var pend editRun
	havePend := false
	for _, run := range editRuns(edits) {
		opposed := havePend &&
			((run.edit == EditInsertion && pend.edit == EditDeletion) ||
				(run.edit == EditDeletion && pend.edit == EditInsertion))
		if !opposed {
			if havePend {
				flush(pend)
			}
			pend, havePend = run, true
			continue
		}
		n := run.end - run.start
		if p := pend.end - pend.start; p < n {
			n = p
		}
		// The head of the pending run beyond the overlap is unaffected.
		flush(editRun{pend.start, pend.end - n, pend.edit})
		// The overlapping columns become mismatches.  The display base is
		// the inserted query base, whichever side of the pair it sits on.
		from := pend.end - n
		if pend.edit == EditDeletion {
			from = run.start
		}
		for j := from; j < from+n; j++ {
			outE = append(outE, EditMismatch)
			outB = append(outB, bases[j])
		}
		// The tail of the current run stays pending; it may merge again.
		pend = editRun{run.start + n, run.end, run.edit}
	}
	if havePend {
		flush(pend)
	}
	return outE, outB
}

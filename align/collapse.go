package align

// InsertionMarker describes one maximal run of consecutive insertion columns.
// Start is the index the run maps to in the truncated row (the row with all
// insertion columns removed), which is where a length-labeled marker is drawn
// inline.
type InsertionMarker struct {
	Start  int
	Length int
}

// InsertionMarkers returns one marker per maximal insertion run, ordered by
// Start.  Markers are non-overlapping and strictly increasing, and their
// lengths sum to InsertionCount().  Runs of length 1 are reported like any
// other.
func (r *Record) InsertionMarkers() []InsertionMarker {
	var markers []InsertionMarker
	kept := 0 // non-insertion columns seen so far
	for i := 0; i < len(r.edits); {
		if r.edits[i] != EditInsertion {
			kept++
			i++
			continue
		}
		run := i
		for i < len(r.edits) && r.edits[i] == EditInsertion {
			i++
		}
		markers = append(markers, InsertionMarker{Start: kept, Length: i - run})
	}
	return markers
}

package track

import (
	"github.com/alignview/alignview/align"
)

// Row is the display form of one alignment: a color and a symbol per
// rendered cell.  Symbols are the single-letter edit codes (' ' match, 'M'
// mismatch, 'I' insertion, 'D' deletion).
type Row struct {
	Colors  []Color
	Symbols []byte
}

// BuildRow derives the display row of a record.  In full mode the row covers
// every alignment column: matches are Gray, deletions White, and mismatch
// and insertion cells take the identity color of the query base.  In
// truncated mode insertion columns are dropped from the row entirely (their
// runs are reported by r.InsertionMarkers instead), so the row is
// r.InsertionCount() cells shorter.  A row of length zero is legal.
func BuildRow(r *align.Record, truncate bool) Row {
	edits, bases := r.Edits(), r.Bases()
	n := len(edits)
	if truncate {
		n -= r.InsertionCount()
	}
	row := Row{
		Colors:  make([]Color, 0, n),
		Symbols: make([]byte, 0, n),
	}
	for i, e := range edits {
		var c Color
		switch e {
		case align.EditMatch:
			c = Gray
		case align.EditDeletion:
			c = White
		case align.EditInsertion:
			if truncate {
				continue
			}
			c = BaseColor(bases[i])
		case align.EditMismatch:
			c = BaseColor(bases[i])
		}
		row.Colors = append(row.Colors, c)
		row.Symbols = append(row.Symbols, e.Symbol())
	}
	return row
}

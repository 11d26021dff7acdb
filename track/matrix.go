package track

import (
	"sort"

	"github.com/alignview/alignview/align"
)

// InsertionLabel places one insertion length label on the matrix: the run of
// Length inserted bases was removed ahead of column Col in row Row.  Labels
// are emitted in truncated mode only; renderers draw them as compact
// Purple-backed markers at the column boundary.
type InsertionLabel struct {
	Row    int
	Col    int
	Length int
}

// Matrix is the assembled track for one set of alignments.  Row 0 is the
// reference: base-identity colors and the reference bases as text.  Each
// following row is one record's color row plus its per-column base text,
// ordered best match first (fewest total edits; ties keep input order).  All
// rows are padded to a common width with White cells and ' ' text.
type Matrix struct {
	Colors [][]Color
	Text   [][]byte
	Labels []InsertionLabel
}

// NumRows returns the number of rows including the reference row.
func (m *Matrix) NumRows() int { return len(m.Colors) }

// Width returns the common row width.
func (m *Matrix) Width() int {
	if len(m.Colors) == 0 {
		return 0
	}
	return len(m.Colors[0])
}

// BuildMatrix assembles the display matrix for a set of records.  The
// reference row is taken from the best record's target.  In truncated mode
// the width is the reference length and insertion runs surface as Labels; in
// full mode the width is the longest row and insertions are inline cells.
// The input slice is not modified.  An empty input yields an empty Matrix.
func BuildMatrix(records []*align.Record, truncate bool) Matrix {
	if len(records) == 0 {
		return Matrix{}
	}
	sorted := make([]*align.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	ref := sorted[0].Target
	width := len(ref)
	if !truncate {
		for _, r := range sorted {
			if n := len(r.Bases()); n > width {
				width = n
			}
		}
	}

	m := Matrix{
		Colors: make([][]Color, 0, len(sorted)+1),
		Text:   make([][]byte, 0, len(sorted)+1),
	}
	refColors := make([]Color, 0, width)
	for i := 0; i < len(ref); i++ {
		refColors = append(refColors, BaseColor(ref[i]))
	}
	m.Colors = append(m.Colors, padColors(refColors, width))
	m.Text = append(m.Text, padText([]byte(ref), width))

	for i, r := range sorted {
		row := BuildRow(r, truncate)
		m.Colors = append(m.Colors, padColors(row.Colors, width))
		m.Text = append(m.Text, padText(baseText(r, truncate), width))
		if truncate {
			for _, marker := range r.InsertionMarkers() {
				m.Labels = append(m.Labels, InsertionLabel{
					Row:    i + 1,
					Col:    marker.Start,
					Length: marker.Length,
				})
			}
		}
	}
	return m
}

// baseText returns a record's per-column base characters, dropping insertion
// columns in truncated mode.
func baseText(r *align.Record, truncate bool) []byte {
	bases := r.Bases()
	if !truncate {
		out := make([]byte, len(bases))
		copy(out, bases)
		return out
	}
	edits := r.Edits()
	out := make([]byte, 0, len(bases)-r.InsertionCount())
	for i, e := range edits {
		if e != align.EditInsertion {
			out = append(out, bases[i])
		}
	}
	return out
}

func padColors(row []Color, width int) []Color {
	for len(row) < width {
		row = append(row, White)
	}
	return row
}

func padText(row []byte, width int) []byte {
	for len(row) < width {
		row = append(row, ' ')
	}
	return row
}

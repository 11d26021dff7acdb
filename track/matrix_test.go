package track_test

import (
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/grailbio/testutil/h"

	"github.com/alignview/alignview/align"
	"github.com/alignview/alignview/track"
)

func TestBuildMatrixEmpty(t *testing.T) {
	m := track.BuildMatrix(nil, true)
	expect.EQ(t, m.NumRows(), 0)
	expect.EQ(t, m.Width(), 0)
}

func TestBuildMatrixTruncated(t *testing.T) {
	ref := "ACGT"
	perfect := mustRecord(t, ref, "ACGT", "ACGT", "ACGT")
	mismatched := mustRecord(t, ref, "AGGT", "ACGT", "AGGT")
	inserted := mustRecord(t, ref, "ACTTGT", "AC--GT", "ACTTGT")

	// Deliberately out of order; BuildMatrix sorts best first.
	records := []*align.Record{inserted, mismatched, perfect}
	m := track.BuildMatrix(records, true)

	assert.EQ(t, m.NumRows(), 4)
	expect.EQ(t, m.Width(), len(ref))

	// Input order is untouched.
	expect.EQ(t, records[0], inserted)

	// Row 0 is the reference in identity colors.
	expect.EQ(t, string(m.Text[0]), ref)
	expect.That(t, m.Colors[0], h.ElementsAre(
		track.Green, track.Blue, track.Gold, track.Red))

	// Best record (no edits) is row 1.
	expect.EQ(t, string(m.Text[1]), "ACGT")
	expect.That(t, m.Colors[1], h.ElementsAre(
		track.Gray, track.Gray, track.Gray, track.Gray))

	// The mismatch row keeps the query base and its color.
	expect.EQ(t, string(m.Text[2]), "AGGT")
	expect.EQ(t, m.Colors[2][1], track.Gold)

	// The insertion row is truncated back to reference width and its run
	// surfaces as a label.
	expect.EQ(t, string(m.Text[3]), "ACGT")
	expect.That(t, m.Labels, h.ElementsAre(
		track.InsertionLabel{Row: 3, Col: 2, Length: 2}))
}

func TestBuildMatrixFull(t *testing.T) {
	ref := "ACGT"
	perfect := mustRecord(t, ref, "ACGT", "ACGT", "ACGT")
	inserted := mustRecord(t, ref, "ACTTGT", "AC--GT", "ACTTGT")

	m := track.BuildMatrix([]*align.Record{perfect, inserted}, false)
	assert.EQ(t, m.NumRows(), 3)
	// Full mode widens to the longest row and pads the rest.
	expect.EQ(t, m.Width(), 6)
	expect.EQ(t, string(m.Text[0]), "ACGT  ")
	expect.EQ(t, m.Colors[0][4], track.White)
	expect.EQ(t, m.Colors[0][5], track.White)

	// Insertions render inline; no labels in full mode.
	expect.EQ(t, string(m.Text[2]), "ACTTGT")
	expect.EQ(t, m.Colors[2][2], track.Red)
	expect.EQ(t, m.Colors[2][3], track.Red)
	expect.EQ(t, len(m.Labels), 0)
}

func TestBuildMatrixStableTies(t *testing.T) {
	ref := "ACGT"
	first := mustRecord(t, ref, "AGGT", "ACGT", "AGGT")
	second := mustRecord(t, ref, "ACGA", "ACGT", "ACGA")

	m := track.BuildMatrix([]*align.Record{first, second}, true)
	// Equal edit totals keep input order.
	expect.EQ(t, string(m.Text[1]), "AGGT")
	expect.EQ(t, string(m.Text[2]), "ACGA")
}

func TestBuildMatrixDeletionRow(t *testing.T) {
	ref := "ACGTT"
	deleted := mustRecord(t, ref, "ACGT", "ACGTT", "ACGT-")
	m := track.BuildMatrix([]*align.Record{deleted}, true)
	// Deletions are not removed by truncation: the row spans the reference.
	expect.EQ(t, m.Width(), 5)
	expect.EQ(t, string(m.Text[1]), "ACGT ")
	expect.EQ(t, m.Colors[1][4], track.White)
}

// Package pairwise provides a unit-cost global pairwise aligner conforming
// to the align.Aligner contract.  Matches cost 0; substitutions, insertions
// and deletions cost 1.  The traceback prefers extending the current gap
// run, so indel runs come out contiguous rather than interleaved with
// matches of equal score.
package pairwise

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/alignview/alignview/align"
)

// matrix is a 2 dimensional edit distance matrix.
type matrix struct {
	nRow, nCol int
	data       []int // row-major nRow*nCol array.
}

func newMatrix(n, m int) matrix {
	return matrix{
		nRow: n,
		nCol: m,
		data: make([]int, n*m),
	}
}

func (m matrix) at(i, j int) int { return m.data[i*m.nCol+j] }

func (m matrix) set(i, j, v int) { m.data[i*m.nCol+j] = v }

// fill computes the full unit-cost edit distance matrix between t and q:
// cell (i, j) holds the distance between t[:i] and q[:j].
func (m matrix) fill(t, q string) {
	for j := 0; j < m.nCol; j++ {
		m.set(0, j, j)
	}
	for i := 1; i < m.nRow; i++ {
		m.set(i, 0, i)
		for j := 1; j < m.nCol; j++ {
			diagonal := m.at(i-1, j-1)
			if t[i-1] != q[j-1] {
				diagonal++
			}
			best := diagonal
			if down := m.at(i-1, j) + 1; down < best {
				best = down
			}
			if right := m.at(i, j-1) + 1; right < best {
				best = right
			}
			m.set(i, j, best)
		}
	}
}

// Aligner computes global alignments.  The zero value is ready to use; it is
// stateless and safe for concurrent use.
type Aligner struct{}

// New returns a new Aligner.
func New() *Aligner { return &Aligner{} }

// gapOp identifies the pending gap direction during traceback.
type gapOp uint8

const (
	noGap     gapOp = iota
	deletion        // gap in the query row
	insertion       // gap in the target row
)

// Align implements align.Aligner.  It always finds an alignment for gap-free
// inputs, including empty ones; a sequence already containing the gap marker
// cannot be aligned and fails with align.ErrNoAlignment.
func (a *Aligner) Align(target, query string) (string, string, error) {
	if strings.IndexByte(target, align.Gap) >= 0 {
		return "", "", errors.Wrapf(align.ErrNoAlignment, "target contains the gap character %q", align.Gap)
	}
	if strings.IndexByte(query, align.Gap) >= 0 {
		return "", "", errors.Wrapf(align.ErrNoAlignment, "query contains the gap character %q", align.Gap)
	}

	m := newMatrix(len(target)+1, len(query)+1)
	m.fill(target, query)

	// Trace back from the bottom-right corner, emitting columns in reverse.
	tAln := make([]byte, 0, len(target)+len(query))
	qAln := make([]byte, 0, len(target)+len(query))
	i, j := len(target), len(query)
	pending := noGap
	for i > 0 || j > 0 {
		var op gapOp
		switch {
		case i == 0:
			op = insertion
		case j == 0:
			op = deletion
		default:
			cost := m.at(i, j)
			diagonal := m.at(i-1, j-1)
			if target[i-1] != query[j-1] {
				diagonal++
			}
			canDiagonal := diagonal == cost
			canDown := m.at(i-1, j)+1 == cost
			canRight := m.at(i, j-1)+1 == cost
			switch {
			// Keep extending an open gap run when the score allows it.
			case pending == deletion && canDown:
				op = deletion
			case pending == insertion && canRight:
				op = insertion
			case canDiagonal:
				op = noGap
			case canDown:
				op = deletion
			default:
				// canRight must hold: the cell was computed from one of the
				// three neighbors.
				op = insertion
			}
		}
		switch op {
		case noGap:
			tAln = append(tAln, target[i-1])
			qAln = append(qAln, query[j-1])
			i--
			j--
		case deletion:
			tAln = append(tAln, target[i-1])
			qAln = append(qAln, align.Gap)
			i--
		case insertion:
			tAln = append(tAln, align.Gap)
			qAln = append(qAln, query[j-1])
			j--
		}
		pending = op
	}
	reverse(tAln)
	reverse(qAln)
	return string(tAln), string(qAln), nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

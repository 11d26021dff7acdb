package align

import (
	"strings"

	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
)

// FromSAM builds a Record from a mapped SAM/BAM record by expanding its CIGAR
// against the reference.  ref holds the reference bases starting at the
// record's alignment position (samr.Pos); it must cover the full reference
// span of the CIGAR.  Soft-clipped read bases are excluded from the query,
// hard clips and pads are ignored, and skipped regions (N) are treated as
// deletions.
func FromSAM(samr *sam.Record, ref string, opts Opts) (*Record, error) {
	if len(samr.Cigar) == 0 {
		return nil, errors.Wrapf(ErrNoAlignment, "record %s is unmapped", samr.Name)
	}
	seq := samr.Seq.Expand()
	var targetAln, queryAln, query strings.Builder
	posInRef, posInRead := 0, 0
	for _, co := range samr.Cigar {
		n := co.Len()
		switch co.Type() {
		case sam.CigarMatch, sam.CigarEqual, sam.CigarMismatch:
			if posInRef+n > len(ref) || posInRead+n > len(seq) {
				return nil, errors.Wrapf(ErrMalformedAlignment,
					"record %s: CIGAR op %v overruns reference or read", samr.Name, co)
			}
			targetAln.WriteString(ref[posInRef : posInRef+n])
			queryAln.Write(seq[posInRead : posInRead+n])
			query.Write(seq[posInRead : posInRead+n])
			posInRef += n
			posInRead += n
		case sam.CigarInsertion:
			if posInRead+n > len(seq) {
				return nil, errors.Wrapf(ErrMalformedAlignment,
					"record %s: CIGAR op %v overruns read", samr.Name, co)
			}
			for i := 0; i < n; i++ {
				targetAln.WriteByte(Gap)
			}
			queryAln.Write(seq[posInRead : posInRead+n])
			query.Write(seq[posInRead : posInRead+n])
			posInRead += n
		case sam.CigarSkipped:
			// Same handling as deletion.
			fallthrough
		case sam.CigarDeletion:
			if posInRef+n > len(ref) {
				return nil, errors.Wrapf(ErrMalformedAlignment,
					"record %s: CIGAR op %v overruns reference", samr.Name, co)
			}
			targetAln.WriteString(ref[posInRef : posInRef+n])
			for i := 0; i < n; i++ {
				queryAln.WriteByte(Gap)
			}
			posInRef += n
		case sam.CigarSoftClipped:
			posInRead += n
		case sam.CigarHardClipped, sam.CigarPadded:
			// No bases on either side.
		default:
			return nil, errors.Wrapf(ErrMalformedAlignment,
				"record %s: unsupported CIGAR op %v", samr.Name, co)
		}
	}
	return NewAligned(ref[:posInRef], query.String(), targetAln.String(), queryAln.String(), opts)
}

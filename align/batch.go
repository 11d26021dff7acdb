package align

import (
	"github.com/grailbio/base/log"
	"github.com/pkg/errors"

	"github.com/alignview/alignview/encoding/fasta"
)

// RecordsFromFasta builds one Record per sequence in f other than the target,
// aligning each against the target sequence named targetName.  A sequence
// that cannot be aligned is logged and skipped so that one bad read does not
// abort the whole batch; the remaining records are returned in file order.
// It fails only if the target itself is missing or every alignment fails.
func RecordsFromFasta(f *fasta.Fasta, targetName string, a Aligner, opts Opts) ([]*Record, error) {
	target, err := f.Get(targetName)
	if err != nil {
		return nil, errors.Wrap(err, "reading target sequence")
	}
	var (
		records []*Record
		skipped int
	)
	for _, name := range f.SeqNames() {
		if name == targetName {
			continue
		}
		query, err := f.Get(name)
		if err != nil {
			return nil, err
		}
		r, err := New(target, query, a, opts)
		if err != nil {
			log.Error.Printf("skipping %s: %v", name, err)
			skipped++
			continue
		}
		records = append(records, r)
	}
	if len(records) == 0 && skipped > 0 {
		return nil, errors.Errorf("all %d query sequences failed to align against %s",
			skipped, targetName)
	}
	return records, nil
}

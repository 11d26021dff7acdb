// Package fasta parses FASTA-formatted sequence data.  FASTA files consist
// of named sequences whose bases may be interrupted by newlines:
//
// >read1
// ACGTAC
// GAGGAC
// >read2 trailing description
// ACGT
//
// A sequence name is the stretch of characters excluding spaces immediately
// after '>'; text after a space is ignored.  The whole file is held in
// memory; there is no index support.
package fasta

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Fasta holds the named sequences of one FASTA file, in order of appearance.
// All methods are safe for concurrent use once New returns.
type Fasta struct {
	seqs     map[string]string
	seqNames []string
}

// New reads all FASTA data from r into memory.  It fails on empty input,
// bases before the first header, or duplicate sequence names.
func New(r io.Reader) (*Fasta, error) {
	f := &Fasta{seqs: make(map[string]string)}
	var (
		seqName string
		seq     strings.Builder
		sawAny  bool
	)
	store := func() error {
		if _, ok := f.seqs[seqName]; ok {
			return errors.Errorf("duplicate sequence name: %s", seqName)
		}
		f.seqs[seqName] = seq.String()
		f.seqNames = append(f.seqNames, seqName)
		seq.Reset()
		return nil
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if sawAny {
				if err := store(); err != nil {
					return nil, err
				}
			}
			seqName = strings.Split(line[1:], " ")[0]
			if seqName == "" {
				return nil, errors.New("malformed FASTA data: empty sequence name")
			}
			sawAny = true
			continue
		}
		if !sawAny {
			return nil, errors.New("malformed FASTA data: bases before first header")
		}
		seq.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "couldn't read FASTA data")
	}
	if !sawAny {
		return nil, errors.New("empty FASTA data")
	}
	if err := store(); err != nil {
		return nil, err
	}
	return f, nil
}

// Get returns the full sequence with the given name.
func (f *Fasta) Get(seqName string) (string, error) {
	s, ok := f.seqs[seqName]
	if !ok {
		return "", errors.Errorf("sequence not found: %s", seqName)
	}
	return s, nil
}

// Len returns the length of the given sequence.
func (f *Fasta) Len(seqName string) (int, error) {
	s, ok := f.seqs[seqName]
	if !ok {
		return 0, errors.Errorf("sequence not found: %s", seqName)
	}
	return len(s), nil
}

// SeqNames returns the names of all sequences, in order of appearance.
func (f *Fasta) SeqNames() []string {
	return f.seqNames
}

package rosalind

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Record is an ordered collection of the sequences in a FASTA file.
type Record struct {
	// entries are in the order they appear in the source file
	entries []Seq
}

// NewRecord makes a Record from a list of sequences.
func NewRecord(entries ...Seq) *Record {
	return &Record{entries: append([]Seq(nil), entries...)}
}

// Len returns the number of sequences in the Record.
func (r *Record) Len() int {
	return len(r.entries)
}

// Entries returns a copy of the Record's sequences, in file order.
func (r *Record) Entries() []Seq {
	return append([]Seq(nil), r.entries...)
}

// ReadFasta reads a FASTA file (by its path on local FS) to a Record.
func ReadFasta(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open FASTA file %s: %w: %w", path, ErrIO, err)
	}
	defer f.Close()

	record, err := ParseFasta(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return record, nil
}

// ParseFasta reads a multi-FASTA stream into a Record.
//
// The stream is split on '>'. Text before the first '>' isn't part of any entry
// and is dropped. For every block, the first line is the id and the remaining
// lines are joined, without separators, as its sequence. This assumes '>' never
// occurs in sequence data, which holds for nucleotides.
func ParseFasta(r io.Reader) (*Record, error) {
	dat, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read FASTA: %w: %w", ErrIO, err)
	}

	if !utf8.Valid(dat) {
		return nil, fmt.Errorf("failed to decode FASTA as text: %w", ErrMalformedRecord)
	}

	blocks := bytes.Split(dat, []byte{'>'})
	record := &Record{}
	for i, block := range blocks[1:] {
		header, body, found := strings.Cut(string(block), "\n")
		if !found {
			return nil, fmt.Errorf("failed to find an id line for entry %d: %w", i+1, ErrMalformedRecord)
		}

		var seq strings.Builder
		for _, line := range strings.Split(body, "\n") {
			seq.WriteString(strings.TrimSuffix(line, "\r"))
		}

		record.entries = append(record.entries, Seq{
			id:  strings.TrimSuffix(header, "\r"),
			seq: seq.String(),
		})
	}

	return record, nil
}

// Write serializes the Record as FASTA, wrapping each sequence
// at width residues per line. A width < 1 writes each sequence on one line.
func (r *Record) Write(w io.Writer, width int) error {
	bw := bufio.NewWriter(w)
	for _, s := range r.entries {
		fmt.Fprintf(bw, ">%s\n", s.id)

		residues := []rune(s.seq)
		lineWidth := width
		if lineWidth < 1 {
			lineWidth = len(residues)
		}
		for start := 0; start < len(residues); start += lineWidth {
			end := start + lineWidth
			if end > len(residues) {
				end = len(residues)
			}
			fmt.Fprintf(bw, "%s\n", string(residues[start:end]))
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write FASTA: %w: %w", ErrIO, err)
	}
	return nil
}

// MaxGC returns the entry with the highest GC content and its GC percentage.
// Only a strictly greater GC content replaces the current best, so the first
// entry wins ties.
func (r *Record) MaxGC() (best Seq, bestGC float64, err error) {
	if len(r.entries) == 0 {
		return Seq{}, 0, ErrEmptyRecord
	}

	for i, s := range r.entries {
		gc, err := s.GCContent()
		if err != nil {
			return Seq{}, 0, err
		}

		if i == 0 || gc > bestGC {
			best, bestGC = s, gc
		}
	}

	return best, bestGC, nil
}

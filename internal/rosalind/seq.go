package rosalind

import (
	"fmt"
	"strings"
)

// Seq is a single nucleotide sequence and its (optional) identifier.
//
// Residues aren't checked against the DNA alphabet when a Seq is made.
// Unexpected characters only surface as errors in the methods that
// need to look them up, like ReverseComplement.
type Seq struct {
	// id is the header of the entry in a FASTA file. Empty for raw input
	id string

	// seq is the sequence of residues. Never modified after creation
	seq string
}

// KmerCount is a map from each k-mer in a Seq to the number of times it occurs.
type KmerCount map[string]uint64

// NewSeq wraps raw text as an anonymous Seq.
func NewSeq(text string) Seq {
	return Seq{seq: text}
}

// NewSeqWithID returns a Seq with an identifier, like an entry in a FASTA file.
func NewSeqWithID(id, text string) Seq {
	return Seq{id: id, seq: text}
}

// ID returns the Seq's identifier.
func (s Seq) ID() string {
	return s.id
}

// String returns the Seq's residues.
func (s Seq) String() string {
	return s.seq
}

// Len returns the number of residues in the Seq.
func (s Seq) Len() int {
	return len([]rune(s.seq))
}

// CountKmers splits the Seq into consecutive, non-overlapping chunks
// of k residues, left to right, and counts each distinct chunk. The last chunk
// is shorter than k if the Seq's length isn't a multiple of k.
func (s Seq) CountKmers(k int) (KmerCount, error) {
	if k < 1 {
		return nil, fmt.Errorf("failed to count k-mers of length %d: %w", k, ErrKmerLength)
	}

	counts := make(KmerCount)
	residues := []rune(s.seq)
	for start := 0; start < len(residues); start += k {
		end := start + k
		if end > len(residues) {
			end = len(residues)
		}
		counts[string(residues[start:end])]++
	}

	return counts, nil
}

// Get returns the count of a k-mer, zero if it never occurred.
func (c KmerCount) Get(kmer string) uint64 {
	return c[kmer]
}

// Complement returns the base paired with a nucleotide: A-T and C-G.
func Complement(base rune) (rune, error) {
	switch base {
	case 'A':
		return 'T', nil
	case 'T':
		return 'A', nil
	case 'C':
		return 'G', nil
	case 'G':
		return 'C', nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownBase, base)
}

// ReverseComplement returns the complement of the Seq read in reverse,
// the sequence of the opposite strand read 5' to 3'.
func (s Seq) ReverseComplement() (string, error) {
	residues := []rune(s.seq)
	rc := make([]rune, len(residues))
	for i, r := range residues {
		c, err := Complement(r)
		if err != nil {
			return "", fmt.Errorf("failed to complement residue %d: %w", i+1, err)
		}
		rc[len(residues)-1-i] = c
	}

	return string(rc), nil
}

// Transcribe returns the RNA transcribed from the Seq: every 'T' becomes 'U'.
func (s Seq) Transcribe() string {
	return strings.ReplaceAll(s.seq, "T", "U")
}

// GCContent returns the percentage of the Seq's residues that are 'C' or 'G'.
// It's undefined for a Seq without residues, so that's an ErrEmptySequence.
func (s Seq) GCContent() (float64, error) {
	total, gc := 0, 0
	for _, r := range s.seq {
		total++
		if r == 'C' || r == 'G' {
			gc++
		}
	}

	if total == 0 {
		return 0, fmt.Errorf("failed to calculate GC content of %q: %w", s.id, ErrEmptySequence)
	}

	return float64(gc) / float64(total) * 100.0, nil
}

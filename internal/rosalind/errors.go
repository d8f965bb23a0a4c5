package rosalind

import "errors"

var (
	// ErrIO is for files or readers that can't be opened or read
	ErrIO = errors.New("io error")

	// ErrMalformedRecord is for FASTA blocks without an identifier line or with undecodable bytes
	ErrMalformedRecord = errors.New("malformed FASTA record")

	// ErrUnknownBase is for residues outside of {A, C, G, T}
	ErrUnknownBase = errors.New("unknown base")

	// ErrEmptySequence is for GC content of a sequence without residues
	ErrEmptySequence = errors.New("empty sequence")

	// ErrEmptyRecord is for a FASTA record without any entries
	ErrEmptyRecord = errors.New("no sequences in record")

	// ErrKmerLength is for k-mer lengths less than one
	ErrKmerLength = errors.New("k-mer length must be at least 1")

	// ErrMalformedInput is for problem input that can't be parsed
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnknownProblem is for problem ids without a solver
	ErrUnknownProblem = errors.New("unknown problem id")
)

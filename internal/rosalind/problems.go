package rosalind

import (
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/avilaHugo/rosalind/config"
)

// nucleotides is the order bases are reported in by CountNucleotides
var nucleotides = []string{"A", "C", "G", "T"}

// Problem is a Rosalind problem and the function that solves it.
type Problem struct {
	// ID is the problem's id on rosalind.info, ex: "REVC"
	ID string

	// Title is the problem's name on rosalind.info
	Title string

	// fasta is true if the problem's input is a FASTA file
	fasta bool

	solve func(input string, conf *config.Config) (string, error)
}

// problems are the solvable problems, in the order they're listed on rosalind.info
var problems = []Problem{
	{
		ID:    "DNA",
		Title: "Counting DNA Nucleotides",
		solve: func(input string, _ *config.Config) (string, error) {
			return CountNucleotides(input), nil
		},
	},
	{
		ID:    "RNA",
		Title: "Transcribing DNA into RNA",
		solve: func(input string, _ *config.Config) (string, error) {
			return TranscribeDNA(input), nil
		},
	},
	{
		ID:    "REVC",
		Title: "Complementing a Strand of DNA",
		solve: func(input string, _ *config.Config) (string, error) {
			return ReverseComplementDNA(input)
		},
	},
	{
		ID:    "FIB",
		Title: "Rabbits and Recurrence Relations",
		solve: func(input string, _ *config.Config) (string, error) {
			return RabbitPairs(input)
		},
	},
	{
		ID:    "GC",
		Title: "Computing GC Content",
		fasta: true,
		solve: func(input string, conf *config.Config) (string, error) {
			return HighestGCContent(input, conf.GCPrecision)
		},
	},
}

// Problems returns all the solvable problems.
func Problems() []Problem {
	return append([]Problem(nil), problems...)
}

// LookupProblem returns the problem with the id. Case doesn't matter: "revc" is "REVC".
func LookupProblem(id string) (Problem, error) {
	for _, p := range problems {
		if strings.EqualFold(p.ID, id) {
			return p, nil
		}
	}

	return Problem{}, fmt.Errorf("%w: %q", ErrUnknownProblem, id)
}

// Solve runs the problem against its input.
func (p Problem) Solve(input []byte, conf *config.Config) (string, error) {
	result, err := p.solve(string(input), conf)
	if err != nil {
		return "", fmt.Errorf("failed to solve %s: %w", p.ID, err)
	}
	return result, nil
}

// SolveFile reads the input file of a problem and solves it.
func SolveFile(id, path string, conf *config.Config) (string, error) {
	p, err := LookupProblem(id)
	if err != nil {
		return "", err
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file %s: %w: %w", path, ErrIO, err)
	}

	return p.Solve(dat, conf)
}

// CountNucleotides counts the A, C, G and T bases in a strand of DNA and
// returns the counts, in that order, separated by spaces. Bases that
// aren't in the strand have a count of zero.
func CountNucleotides(input string) string {
	counts, _ := NewSeq(input).CountKmers(1) // k is always valid

	results := make([]string, len(nucleotides))
	for i, n := range nucleotides {
		results[i] = strconv.FormatUint(counts.Get(n), 10)
	}

	return strings.Join(results, " ")
}

// TranscribeDNA returns the RNA transcribed from a strand of DNA.
func TranscribeDNA(input string) string {
	return NewSeq(input).Transcribe()
}

// ReverseComplementDNA returns the reverse complement of a strand of DNA.
// Whitespace around the strand, like a trailing newline, is ignored.
func ReverseComplementDNA(input string) (string, error) {
	return NewSeq(strings.TrimSpace(input)).ReverseComplement()
}

// RabbitPairs parses "n k", the number of months and the number of pairs
// in each litter, and returns the number of rabbit pairs after n months.
func RabbitPairs(input string) (string, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return "", fmt.Errorf("%w: expected two integers, \"n k\", got %q", ErrMalformedInput, strings.TrimSpace(input))
	}

	n, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil || n < 1 {
		return "", fmt.Errorf("%w: months must be a positive integer, got %q", ErrMalformedInput, fields[0])
	}

	k, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: litter size must be a non-negative integer, got %q", ErrMalformedInput, fields[1])
	}

	return Rabbits(n, k).String(), nil
}

// Rabbits returns the number of rabbit pairs alive after n months, starting
// with one newborn pair. Newborn pairs mature after a month and every mature
// pair produces k newborn pairs each month. Rabbits never die.
func Rabbits(n, k uint64) *big.Int {
	mature, newborn := big.NewInt(0), big.NewInt(1)
	litter := new(big.Int).SetUint64(k)

	for month := uint64(2); month <= n; month++ {
		born := new(big.Int).Mul(mature, litter)
		mature.Add(mature, newborn)
		newborn = born
	}

	return new(big.Int).Add(mature, newborn)
}

// HighestGCContent parses a multi-FASTA and returns the id of the entry with
// the highest GC content and that GC content on the following line. The GC
// content is formatted with precision decimal places, or -1 for the fewest
// digits needed to represent it exactly.
func HighestGCContent(input string, precision int) (string, error) {
	record, err := ParseFasta(strings.NewReader(input))
	if err != nil {
		return "", err
	}

	best, gc, err := record.MaxGC()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s\n%s", best.ID(), strconv.FormatFloat(gc, 'f', precision, 64)), nil
}

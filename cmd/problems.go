package cmd

import (
	"fmt"
	"strings"

	"github.com/avilaHugo/rosalind/internal/rosalind"
	"github.com/spf13/cobra"
)

var (
	inHelp = "input file with the problem's dataset (defaults to rosalind_[id].txt)"

	outHelp = "output file name (defaults to stdout)"
)

// dnaCmd is for counting the nucleotides in a strand of DNA
var dnaCmd = &cobra.Command{
	Use:                        "dna [file]",
	Short:                      "Counting DNA Nucleotides",
	Run:                        rosalind.ProblemCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Count the A, C, G and T bases in a strand of DNA.
Writes the four counts, in that order, separated by spaces.`,
	Example: "  rosalind dna rosalind_dna.txt",
	Args:    cobra.MaximumNArgs(1),
}

// rnaCmd is for transcribing a strand of DNA into RNA
var rnaCmd = &cobra.Command{
	Use:                        "rna [file]",
	Short:                      "Transcribing DNA into RNA",
	Run:                        rosalind.ProblemCmd,
	SuggestionsMinimumDistance: 2,
	Long:                       `Transcribe a strand of DNA into RNA by replacing every T with U.`,
	Example:                    "  rosalind rna rosalind_rna.txt",
	Args:                       cobra.MaximumNArgs(1),
}

// revcCmd is for finding the reverse complement of a strand of DNA
var revcCmd = &cobra.Command{
	Use:                        "revc [file]",
	Short:                      "Complementing a Strand of DNA",
	Run:                        rosalind.ProblemCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Write the reverse complement of a strand of DNA: each base is swapped
with its pair (A-T, C-G) and the result is reversed.`,
	Example: "  rosalind revc rosalind_revc.txt",
	Aliases: []string{"rc"},
	Args:    cobra.MaximumNArgs(1),
}

// fibCmd is for the rabbit recurrence relation
var fibCmd = &cobra.Command{
	Use:                        "fib [file]",
	Short:                      "Rabbits and Recurrence Relations",
	Run:                        rosalind.ProblemCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Count the rabbit pairs alive after n months when every mature pair
produces a litter of k pairs each month. The input is "n k".`,
	Example: "  rosalind fib rosalind_fib.txt",
	Args:    cobra.MaximumNArgs(1),
}

// gcCmd is for finding the sequence with the highest GC content in a FASTA file
var gcCmd = &cobra.Command{
	Use:                        "gc [file]",
	Short:                      "Computing GC Content",
	Run:                        rosalind.ProblemCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Find the sequence with the highest GC content in a multi-FASTA file.
Writes its id and then its GC content, as a percentage, on the next line.`,
	Example: "  rosalind gc sequences.fasta",
	Args:    cobra.MaximumNArgs(1),
}

// set flags
func init() {
	for _, c := range []*cobra.Command{dnaCmd, rnaCmd, revcCmd, fibCmd, gcCmd} {
		c.Flags().StringP("in", "i", "", inHelp)
		c.Flags().StringP("out", "o", "", outHelp)
		RootCmd.AddCommand(c)
	}

	RootCmd.Long += "\n\nProblems:\n" + problemList()
}

// problemList returns a line per problem with its id and title
func problemList() string {
	var lines []string
	for _, p := range rosalind.Problems() {
		lines = append(lines, fmt.Sprintf("  %-5s %s", p.ID, p.Title))
	}
	return strings.Join(lines, "\n")
}

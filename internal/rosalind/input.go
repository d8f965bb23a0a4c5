package rosalind

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// Flags contains parsed cobra Flags like "problem", "in" and "out".
type Flags struct {
	// the problem to solve
	problem Problem

	// the name of the file to read the input from
	in string

	// the name of the file to write the output to. Empty for stdout
	out string
}

// inputParser contains methods for parsing flags from the input &cobra.Command.
type inputParser struct {
	// dir is the directory input files are guessed from
	dir string
}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(problemID, in, out string) (*Flags, error) {
	p, err := LookupProblem(problemID)
	if err != nil {
		return nil, err
	}

	return &Flags{problem: p, in: in, out: out}, nil
}

// parseCmdFlags gathers the problem, in path and out path from a cobra cmd object.
//
// The problem is the --problem flag of the root command or the name of the
// subcommand. The input is the --in flag, then the first argument, then
// a guess at a Rosalind input file in the working directory.
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, error) {
	var err error
	fs := &Flags{}
	p := inputParser{dir: "."}

	problemID, err := cmd.Flags().GetString("problem")
	if err != nil || problemID == "" {
		if !cmd.HasParent() {
			return nil, fmt.Errorf("no problem chosen. set one with --problem, ex: --problem %s", problems[0].ID)
		}
		problemID = cmd.Name()
	}
	if fs.problem, err = LookupProblem(problemID); err != nil {
		return nil, err
	}

	if fs.in, err = cmd.Flags().GetString("in"); fs.in == "" || err != nil {
		if len(args) > 0 {
			fs.in = args[0]
		} else if fs.in, err = p.guessInput(fs.problem); err != nil {
			return nil, err
		}
	}

	fs.out, _ = cmd.Flags().GetString("out")

	return fs, nil
}

// guessInput returns the input file for a problem in the parser's directory.
// Is used if the user hasn't specified an input file. Rosalind names
// downloaded datasets rosalind_[id].txt. For FASTA problems the first
// FASTA file is used if there's no dataset.
func (p *inputParser) guessInput(problem Problem) (in string, err error) {
	dir, _ := filepath.Abs(p.dir)

	dataset := filepath.Join(dir, "rosalind_"+strings.ToLower(problem.ID)+".txt")
	if _, err := os.Stat(dataset); err == nil {
		return dataset, nil
	}

	if problem.fasta {
		files, err := os.ReadDir(dir)
		if err != nil {
			return "", fmt.Errorf("failed to list %s: %w: %w", dir, ErrIO, err)
		}

		for _, file := range files {
			if file.IsDir() {
				continue
			}

			ext := strings.ToLower(filepath.Ext(file.Name()))
			if ext == ".fa" || ext == ".fasta" {
				return filepath.Join(dir, file.Name()), nil
			}
		}
	}

	return "", fmt.Errorf("failed: no input argument set and no input file for %s found in %s", problem.ID, dir)
}

// Package rosalind solves Project Rosalind problems on nucleotide sequences.
package rosalind

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/avilaHugo/rosalind/config"
	"github.com/spf13/cobra"
)

// ProblemCmd takes a cobra command (with its flags) and solves its problem.
func ProblemCmd(cmd *cobra.Command, args []string) {
	conf, err := config.New()
	if err != nil {
		stderr.Fatal(err)
	}
	setLogLevel(conf)

	flags, err := parseCmdFlags(cmd, args)
	if err != nil {
		cmd.Help()
		stderr.Fatal(err)
	}

	if err := Solve(flags, conf, cmd.OutOrStdout()); err != nil {
		stderr.Fatal(err)
	}
}

// Solve reads the input file of a problem, solves it, and writes the result
// to the output file or, if there isn't one, to w.
func Solve(flags *Flags, conf *config.Config, w io.Writer) error {
	start := time.Now()
	stderr.Debug("solving", "problem", flags.problem.ID, "title", flags.problem.Title, "in", flags.in)

	result, err := SolveFile(flags.problem.ID, flags.in, conf)
	if err != nil {
		return err
	}
	stderr.Debug("solved", "problem", flags.problem.ID, "elapsed", time.Since(start))

	return writeResult(w, flags.out, result)
}

// writeResult writes the result followed by a single newline. Line
// terminators carried over from the input file are dropped first.
func writeResult(w io.Writer, out, result string) error {
	result = strings.TrimRight(result, "\r\n") + "\n"

	if out == "" {
		_, err := io.WriteString(w, result)
		return err
	}

	if err := os.WriteFile(out, []byte(result), 0644); err != nil {
		return fmt.Errorf("failed to write the result to %s: %w: %w", out, ErrIO, err)
	}
	stderr.Info("wrote result", "path", out)

	return nil
}

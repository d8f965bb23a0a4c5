// Package cmd is for command line interactions with the rosalind application
package cmd

import (
	"github.com/avilaHugo/rosalind/config"
	"github.com/avilaHugo/rosalind/internal/rosalind"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "rosalind",
	Short: "Solve Project Rosalind problems on nucleotide sequences",
	Long: `Solve Project Rosalind problems on nucleotide sequences.

Pick a problem by its id with --problem, or with its subcommand, and pass
the problem's dataset as the input file. The solution is written to stdout.`,
	Example: `  rosalind --problem DNA --in rosalind_dna.txt
  rosalind gc sequences.fasta`,
	Run:     rosalind.ProblemCmd,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// set flags
func init() {
	RootCmd.Flags().StringP("problem", "p", "", "id of the problem to solve (DNA, RNA, REVC, FIB, GC)")
	RootCmd.Flags().StringP("in", "i", "", "input file with the problem's dataset")
	RootCmd.Flags().StringP("out", "o", "", "output file name (defaults to stdout)")

	// settings is an optional parameter for a settings file
	RootCmd.PersistentFlags().StringP("settings", "s", config.RootSettingsFile, "settings file")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "whether to log debug output to stderr")
	RootCmd.PersistentFlags().String("log-level", "info", "level of logging to stderr: debug, info, warn or error")
	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log-level", RootCmd.PersistentFlags().Lookup("log-level"))
}

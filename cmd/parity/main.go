// Package main provides the CLI interface for the parity classifier.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/paritylab/go-parity-classifier/internal/parity"
	"github.com/spf13/cobra"
)

// sampleNumbers are classified when no arguments are given
var sampleNumbers = []int64{4, 5, 0, -6, -5}

var rootCmd = &cobra.Command{
	Use:   "parity [number...]",
	Short: "Classify integers as Even or Odd",
	Long: `parity labels each integer argument as Even or Odd and prints one
label per line, in argument order. Without arguments it classifies a
built-in sample set.`,
	Args: cobra.ArbitraryArgs,
	// Flag parsing is disabled so negative numbers like -5 are treated
	// as arguments rather than shorthand flags; help is handled manually.
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			if arg == "--help" || arg == "-h" {
				return cmd.Help()
			}
		}
		return run(cmd.OutOrStdout(), args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("parity version 1.0.0")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// run classifies args (or the sample set) and writes one label per line.
// All arguments are parsed before any output, so a bad argument produces
// no partial output.
func run(w io.Writer, args []string) error {
	numbers := sampleNumbers
	if len(args) > 0 {
		numbers = make([]int64, 0, len(args))
		for _, arg := range args {
			n, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("not an integer: %q", arg)
			}
			numbers = append(numbers, n)
		}
	}

	for _, n := range numbers {
		fmt.Fprintln(w, parity.Label(n))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Command prenex converts first-order logic formulas to Prenex Conjunctive
// Normal Form.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "prenex",
		Short: "Convert first-order logic formulas to prenex conjunctive normal form",
		Long: `prenex parses first-order logic formulas written in a fully-parenthesized
notation, with single lowercase letters as atoms, and converts them to
prenex conjunctive normal form: all quantifiers pulled to the front, in
their original relative order, over a quantifier-free CNF matrix.

For example:

  $ prenex convert "(Ay ((p v q) <-> r))"
  (Ay ((((- p) v r) & ((- q) v r)) & ((- r) v (p v q))))`,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newDemoCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

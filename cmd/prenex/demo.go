package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/prenexlab/prenex/fol"
)

// demoExprs exercises each stage of the pipeline: plain quantified formulas,
// quantifier extraction across a connective, implication and biconditional
// elimination, both De Morgan directions, and one malformed input to show
// that a bad formula does not stop the batch.
var demoExprs = []string{
	"(Ay (a v b))",
	"(Ex (p v q))",
	"(Ax (Ey (r & (- s))))",
	"((Az p) v (Ew q))",
	"(Ax (p -> q))",
	"(Ay ((p v q) <-> r))",
	"(Ex (- (a & b)))",
	"(Ay (- (c v d)))",
	"(Ax)",
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Convert a fixed set of example formulas",
		Run: func(cmd *cobra.Command, args []string) {
			runDemo()
		},
	}
}

func runDemo() {
	header := color.New(color.FgCyan, color.Bold)
	errColor := color.New(color.FgRed)
	for _, expr := range demoExprs {
		header.Printf("Original: %s\n", expr)
		if pcnf, err := fol.ConvertString(expr); err != nil {
			errColor.Printf("    error: %v\n\n", err)
		} else {
			fmt.Printf("    PCNF: %s\n\n", pcnf)
		}
	}
}

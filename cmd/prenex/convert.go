package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/prenexlab/prenex/fol"
)

type convertOptions struct {
	file  string
	check bool
}

func (o *convertOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.file, "file", "f", "", "read formulas, one per line, from this file instead of the arguments")
	fs.BoolVar(&o.check, "check", false, "verify the prenex shape and CNF matrix of each result")
}

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert [formula...]",
		Short: "Convert formulas to PCNF",
		Long: `Convert each given formula to prenex conjunctive normal form and print
the result, one per line. With no arguments and no --file, formulas are
read from standard input, one per line. A malformed formula is reported
and does not stop the remaining ones from being converted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return opts.run(args)
		},
	}
	opts.addFlags(cmd.Flags())
	return cmd
}

func (o *convertOptions) run(args []string) error {
	inputs, err := o.gather(args)
	if err != nil {
		return err
	}
	failed := 0
	for _, expr := range inputs {
		if err := o.convert(expr); err != nil {
			log.WithField("formula", expr).Error(err)
			failed++
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d formulas could not be converted", failed, len(inputs))
	}
	return nil
}

func (o *convertOptions) gather(args []string) ([]string, error) {
	if o.file != "" {
		f, err := os.Open(o.file)
		if err != nil {
			return nil, errors.Wrapf(err, "could not open %q", o.file)
		}
		defer f.Close()
		return readLines(f)
	}
	if len(args) > 0 {
		return args, nil
	}
	log.Debug("no arguments given, reading formulas from stdin")
	return readLines(os.Stdin)
}

func readLines(f *os.File) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "could not read %q", f.Name())
	}
	return lines, nil
}

func (o *convertOptions) convert(expr string) error {
	f, err := fol.Parse(expr)
	if err != nil {
		return err
	}
	pcnf, err := fol.PCNF(f)
	if err != nil {
		return err
	}
	if o.check {
		if !fol.IsPrenex(pcnf) {
			log.WithField("formula", expr).Warnf("result %q is not in prenex form", pcnf)
		}
		if _, matrix := fol.ExtractQuantifiers(pcnf); !fol.IsCNF(matrix) {
			log.WithField("formula", expr).Warnf("matrix of %q is not in CNF", pcnf)
		}
	}
	fmt.Println(pcnf)
	return nil
}

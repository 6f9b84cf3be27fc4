package main

import (
	"fmt"
	"io"

	unimode "github.com/jonathanmweiss/go-unimode"
	"github.com/jonathanmweiss/go-unimode/poly"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [flags] coeffs...",
		Short: "report whether each polynomial has exactly one extremum inside [a, b].",
		Long: `Classify each polynomial over the open interval (a, b), by default (0, 1).
Each line of output holds a four character code, a description and the
polynomial itself.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			prms, err := cfg.Params()
			if err != nil {
				return err
			}

			var (
				an          = unimode.NewClassifier(prms)
				showExtrema = GetFlag(cmd, "extrema")
			)

			for _, arg := range args {
				p, err := parsePolynomial(arg, cfg.Variable)
				if err != nil {
					return err
				}

				report(cmd.OutOrStdout(), an, p, cfg.A, cfg.B, showExtrema)
			}

			return nil
		},
	}

	cmd.Flags().Bool("extrema", false, "also list the located interior extrema")

	return cmd
}

// report prints one line per polynomial: code, description and the polynomial.
func report(out io.Writer, an unimode.Analyzer, p *poly.Polynomial, a, b float64, showExtrema bool) {
	m := an.Classify(p, a, b)
	log.Debugf("%s classified as %s", p, unimode.Describe(m))

	fmt.Fprintf(out, "%s\t%s\t%s\n", unimode.Code(m), unimode.Describe(m), p)

	if showExtrema {
		fmt.Fprintf(out, "\textrema: %v\n", an.Extrema(p, a, b))
	}
}

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/jonathanmweiss/go-unimode/poly"
	"github.com/spf13/cobra"
)

var ErrNoPoints = errors.New("no evaluation points given")

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [flags] coeffs [x...]",
		Short: "evaluate a polynomial at one or more points.",
		Long: `Evaluate the polynomial at every given point. The output holds the point, the
float64 value, and the exact sign of the value. With --prec the value is also
computed with the requested number of mantissa bits. With --samples n the
polynomial is also evaluated at n evenly spaced points of [a, b].`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			p, err := parsePolynomial(args[0], cfg.Variable)
			if err != nil {
				return err
			}

			xs := make([]float64, 0, len(args)-1)
			for _, arg := range args[1:] {
				x, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("point %q: %w", arg, err)
				}

				xs = append(xs, x)
			}

			if samples := int(GetUint(cmd, "samples")); samples > 0 {
				s, err := poly.NewSampler(cfg.A, cfg.B)
				if err != nil {
					return fmt.Errorf("sampling [%g, %g]: %w", cfg.A, cfg.B, err)
				}

				xs = append(xs, s.Points(samples)...)
			}

			if len(xs) == 0 {
				return ErrNoPoints
			}

			printValues(cmd.OutOrStdout(), p, cfg.Variable, xs, GetUint(cmd, "prec"))

			return nil
		},
	}

	cmd.Flags().Uint("prec", 0, "also evaluate with this many bits of precision")
	cmd.Flags().Uint("samples", 0, "also evaluate at this many evenly spaced points of [a, b]")

	return cmd
}

func printValues(out io.Writer, p *poly.Polynomial, variable string, xs []float64, prec uint) {
	for _, x := range xs {
		fmt.Fprintf(out, "%s(%g) = %g\tsign %d", variable, x, p.Horner(x), p.Sign(x))

		if prec > 0 {
			fmt.Fprintf(out, "\t%s", p.EvaluatePrec(x, prec).Text('g', -1))
		}

		fmt.Fprintln(out)
	}
}

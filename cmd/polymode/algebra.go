package main

import (
	"fmt"
	"strconv"

	"github.com/jonathanmweiss/go-unimode/poly"
	"github.com/spf13/cobra"
)

// algebraFunc computes a result from the parsed polynomial arguments. wrap
// selects two's complement arithmetic instead of overflow detection.
type algebraFunc func(ps []*poly.Polynomial, extra []string, wrap bool) (*poly.Polynomial, error)

func newAlgebraCmd(use, short string, polys, extra int, f algebraFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(polys + extra),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ps := make([]*poly.Polynomial, polys)
			for i := range ps {
				if ps[i], err = parsePolynomial(args[i], cfg.Variable); err != nil {
					return err
				}
			}

			res, err := f(ps, args[polys:], GetFlag(cmd, "wrap"))
			if err != nil {
				return fmt.Errorf("%s: %w", cmd.Name(), err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.WithVariableName(cfg.Variable))

			return nil
		},
	}

	cmd.Flags().Bool("wrap", false, "let coefficients wrap around on overflow instead of failing")

	return cmd
}

func newDeriveCmd() *cobra.Command {
	return newAlgebraCmd("derive [flags] coeffs", "print the derivative of a polynomial.", 1, 0,
		func(ps []*poly.Polynomial, _ []string, wrap bool) (*poly.Polynomial, error) {
			if wrap {
				return ps[0].Differentiate(), nil
			}

			return ps[0].CheckedDifferentiate()
		})
}

func newComposeCmd() *cobra.Command {
	return newAlgebraCmd("compose [flags] p g", "print the composition p(g(x)).", 2, 0,
		func(ps []*poly.Polynomial, _ []string, wrap bool) (*poly.Polynomial, error) {
			if wrap {
				return ps[0].Apply(ps[1]), nil
			}

			return ps[0].CheckedApply(ps[1])
		})
}

func newPowCmd() *cobra.Command {
	return newAlgebraCmd("pow [flags] coeffs n", "print a polynomial raised to a non-negative power.", 1, 1,
		func(ps []*poly.Polynomial, extra []string, wrap bool) (*poly.Polynomial, error) {
			n, err := strconv.ParseUint(extra[0], 10, 0)
			if err != nil {
				return nil, fmt.Errorf("exponent %q: %w", extra[0], err)
			}

			if wrap {
				return ps[0].Pow(uint(n)), nil
			}

			return ps[0].CheckedPow(uint(n))
		})
}

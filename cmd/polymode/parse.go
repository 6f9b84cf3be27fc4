package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathanmweiss/go-unimode/poly"
)

var ErrNoCoefficients = errors.New("no coefficients given")

// parseCoefficients reads a list such as "1,-2,1", "[1, -2, 1]" or "1 -2 1".
func parseCoefficients(s string) ([]int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	if len(fields) == 0 {
		return nil, ErrNoCoefficients
	}

	coeffs := make([]int64, len(fields))
	for i, f := range fields {
		c, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d (%q): %w", i, f, err)
		}

		coeffs[i] = c
	}

	return coeffs, nil
}

func parsePolynomial(s, variable string) (*poly.Polynomial, error) {
	coeffs, err := parseCoefficients(s)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", s, err)
	}

	return poly.FromCoefficients(coeffs).WithVariableName(variable), nil
}

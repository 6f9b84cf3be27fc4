package poly

import (
	"math"
	"math/big"

	"github.com/tuneinsight/lattigo/v6/utils/bignum"
)

// Evaluate returns sum_i c_i * x^i using math.Pow for each term.
// This is the one place the exact coefficients are turned into floats.
func (p *Polynomial) Evaluate(x float64) float64 {
	out := 0.0
	for i, c := range p.coeffs {
		out += math.Pow(x, float64(i)) * float64(c)
	}

	return out
}

// Horner evaluates p(x) in float64 with Horner's rule.
func (p *Polynomial) Horner(x float64) float64 {
	result := 0.0
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = result*x + float64(p.coeffs[i])
	}

	return result
}

const (
	// unit roundoff of float64.
	roundoff = 0x1p-53
	// below this the error bound is no longer relative (subnormals).
	tinyValue = 0x1p-960
)

// hornerWithBound returns Horner's value together with a bound on its
// absolute rounding error, gamma_k * sum |c_i| |x|^i. k is twice the textbook
// 2n so the coefficient conversions and the rounding of the bound itself fit.
func (p *Polynomial) hornerWithBound(x float64) (val, bound float64) {
	n := len(p.coeffs)
	ax := math.Abs(x)

	abs := 0.0
	for i := n - 1; i >= 0; i-- {
		val = val*x + float64(p.coeffs[i])
		abs = abs*ax + math.Abs(float64(p.coeffs[i]))
	}

	k := float64(4*n + 4)
	gamma := k * roundoff / (1 - k*roundoff)

	return val, gamma * abs
}

// Sign returns the exact sign (-1, 0 or 1) of p(x) for any finite x.
//
// The float value is trusted only when it is further from zero than its
// rounding error bound; otherwise p(x) is recomputed over the rationals, where
// every float64 is exactly representable.
func (p *Polynomial) Sign(x float64) int {
	val, bound := p.hornerWithBound(x)

	if math.IsNaN(x) || math.IsInf(x, 0) {
		return floatSign(val)
	}

	if !math.IsInf(bound, 0) && !math.IsNaN(val) && math.Abs(val) > bound && math.Abs(val) > tinyValue {
		return floatSign(val)
	}

	return p.exactSign(x)
}

func (p *Polynomial) exactSign(x float64) int {
	xr := new(big.Rat).SetFloat64(x)
	result := new(big.Rat)
	c := new(big.Rat)

	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result.Mul(result, xr)
		result.Add(result, c.SetInt64(p.coeffs[i]))
	}

	return result.Sign()
}

func floatSign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// EvaluatePrec evaluates p(x) with prec bits of mantissa using Horner's rule.
func (p *Polynomial) EvaluatePrec(x float64, prec uint) *big.Float {
	xf := bignum.NewFloat(x, prec)
	y := bignum.NewFloat(nil, prec)

	for i := len(p.coeffs) - 1; i >= 0; i-- {
		y.Mul(y, xf)
		y.Add(y, bignum.NewFloat(p.coeffs[i], prec))
	}

	return y
}

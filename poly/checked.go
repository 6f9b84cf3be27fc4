package poly

import (
	"errors"
	"math"

	"lukechampine.com/uint128"
)

// ErrOverflow is returned by the Checked* operations when a coefficient no
// longer fits in an int64. The unchecked operations wrap silently instead.
var ErrOverflow = errors.New("poly: int64 coefficient overflow")

func checkedAdd(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}

	return s, true
}

func checkedSub(a, b int64) (int64, bool) {
	d := a - b
	if (b < 0 && d < a) || (b > 0 && d > a) {
		return 0, false
	}

	return d, true
}

func magnitude(v int64) uint64 {
	if v < 0 {
		// -MinInt64 wraps back to MinInt64, whose uint64 image is 1<<63.
		return uint64(-v)
	}

	return uint64(v)
}

// checkedMul multiplies the magnitudes as a 128-bit product, then range checks
// the signed result.
func checkedMul(a, b int64) (int64, bool) {
	prod := uint128.From64(magnitude(a)).Mul64(magnitude(b))
	if prod.Hi != 0 {
		return 0, false
	}

	if (a < 0) != (b < 0) {
		if prod.Lo > 1<<63 {
			return 0, false
		}

		return -int64(prod.Lo), true
	}

	if prod.Lo > math.MaxInt64 {
		return 0, false
	}

	return int64(prod.Lo), true
}

func (p *Polynomial) CheckedAdd(q *Polynomial) (*Polynomial, error) {
	sum := p.Copy()
	if err := combineInto(&sum.coeffs, q.coeffs, checkedAdd); err != nil {
		return nil, err
	}

	return sum, nil
}

func (p *Polynomial) CheckedSub(q *Polynomial) (*Polynomial, error) {
	diff := p.Copy()
	if err := combineInto(&diff.coeffs, q.coeffs, checkedSub); err != nil {
		return nil, err
	}

	return diff, nil
}

func (p *Polynomial) CheckedMul(q *Polynomial) (*Polynomial, error) {
	return p.mulWith(checkedMul, checkedAdd)(p, q)
}

func (p *Polynomial) CheckedMulScalar(c int64) (*Polynomial, error) {
	q := p.Copy()
	for i := range q.coeffs {
		v, ok := checkedMul(q.coeffs[i], c)
		if !ok {
			return nil, ErrOverflow
		}

		q.coeffs[i] = v
	}

	return q, nil
}

func (p *Polynomial) CheckedPow(exp uint) (*Polynomial, error) {
	return p.pow(exp, p.mulWith(checkedMul, checkedAdd))
}

func (p *Polynomial) CheckedApply(g *Polynomial) (*Polynomial, error) {
	return p.apply(g, checkedAdd, p.mulWith(checkedMul, checkedAdd), (*Polynomial).CheckedMulScalar)
}

func (p *Polynomial) CheckedDifferentiate() (*Polynomial, error) {
	return p.differentiate(checkedMul)
}

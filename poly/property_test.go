package poly

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func coeffsGen(n int) gopter.Gen {
	return gen.SliceOfN(n, gen.Int64Range(-20, 20))
}

func closeEnough(want, got, rel float64) bool {
	return math.Abs(want-got) <= rel*(1+math.Abs(want))
}

// TestAlgebraicLaws checks the ring identities the classifier relies on,
// using random low degree polynomials.
func TestAlgebraicLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("p + q - q == p", prop.ForAll(
		func(pc, qc []int64) bool {
			p, q := FromCoefficients(pc), FromCoefficients(qc)
			return p.Add(q).Sub(q).Equals(p)
		},
		coeffsGen(4), coeffsGen(7),
	))

	properties.Property("in place and pure add agree", prop.ForAll(
		func(pc, qc []int64) bool {
			p, q := FromCoefficients(pc), FromCoefficients(qc)
			want := p.Add(q)
			p.AddInPlace(q)
			return p.Equals(want) && p.Len() == want.Len()
		},
		coeffsGen(3), coeffsGen(6),
	))

	properties.Property("(p*q)(x) == p(x)*q(x)", prop.ForAll(
		func(pc, qc []int64, x float64) bool {
			p, q := FromCoefficients(pc), FromCoefficients(qc)
			return closeEnough(p.Evaluate(x)*q.Evaluate(x), p.Mul(q).Evaluate(x), 1e-9)
		},
		coeffsGen(5), coeffsGen(4), gen.Float64Range(-2, 2),
	))

	properties.Property("p' matches a central difference", prop.ForAll(
		func(pc []int64, x float64) bool {
			p := FromCoefficients(pc)
			const h = 1e-5
			numeric := (p.Evaluate(x+h) - p.Evaluate(x-h)) / (2 * h)
			return closeEnough(numeric, p.Differentiate().Evaluate(x), 1e-4)
		},
		coeffsGen(5), gen.Float64Range(-1.5, 1.5),
	))

	properties.Property("p^0 == 1 and p^1 == p", prop.ForAll(
		func(pc []int64) bool {
			p := FromCoefficients(pc)
			if p.IsZero() {
				return true
			}
			return p.Pow(0).Equals(FromCoefficients([]int64{1})) && p.Pow(1).Equals(p)
		},
		coeffsGen(5),
	))

	properties.Property("p^n equals repeated multiplication", prop.ForAll(
		func(pc []int64, n uint) bool {
			p := FromCoefficients(pc)
			acc := FromCoefficients([]int64{1})
			for i := uint(0); i < n; i++ {
				acc = acc.Mul(p)
			}
			return p.Pow(n).Equals(acc)
		},
		coeffsGen(3), gen.UIntRange(0, 6),
	))

	properties.Property("p(g)(x) == p(g(x))", prop.ForAll(
		func(pc, gc []int64, x float64) bool {
			p, g := FromCoefficients(pc), FromCoefficients(gc)
			return closeEnough(p.Evaluate(g.Evaluate(x)), p.Apply(g).Evaluate(x), 1e-6)
		},
		coeffsGen(4), coeffsGen(3), gen.Float64Range(-1, 1),
	))

	properties.Property("checked ops agree when nothing overflows", prop.ForAll(
		func(pc, qc []int64) bool {
			p, q := FromCoefficients(pc), FromCoefficients(qc)
			prod, err := p.CheckedMul(q)
			if err != nil || !prod.Equals(p.Mul(q)) {
				return false
			}
			d, err := p.CheckedDifferentiate()
			return err == nil && d.Equals(p.Differentiate())
		},
		coeffsGen(5), coeffsGen(5),
	))

	properties.Property("sign matches evaluation away from roots", prop.ForAll(
		func(pc []int64, x float64) bool {
			p := FromCoefficients(pc)
			v := p.Evaluate(x)
			if math.Abs(v) < 1e-6 {
				return true
			}
			return p.Sign(x) == floatSign(v)
		},
		coeffsGen(6), gen.Float64Range(-2, 2),
	))

	properties.TestingRun(t)
}

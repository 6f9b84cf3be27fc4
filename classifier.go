package unimode

import (
	"errors"
	"math"

	"github.com/jonathanmweiss/go-unimode/poly"
	log "github.com/sirupsen/logrus"
)

type Analyzer interface {
	// Classify decides how many interior extrema p has on [a, b].
	Classify(p *poly.Polynomial, a, b float64) Modality

	// Extrema returns, in increasing order, the points of (a, b) where the
	// derivative of p changes sign.
	Extrema(p *poly.Polynomial, a, b float64) []float64
}

var _ Analyzer = (*Classifier)(nil)

const (
	// DefaultTolerance is the width under which bisection of a reported
	// extremum stops; it does not affect how many are found. It leaves
	// ~4 decimal digits of headroom above float64 spacing on the unit interval.
	DefaultTolerance = 1e-12

	// DefaultMaxSteps caps bisection. Halving [0, 1] to DefaultTolerance takes 40 steps.
	DefaultMaxSteps = 200
)

type Params struct {
	tolerance float64
	maxSteps  int
}

func (p Params) Tolerance() float64 {
	return p.tolerance
}

func (p Params) MaxSteps() int {
	return p.maxSteps
}

var (
	ErrNonPositiveTolerance = errors.New("tolerance must be a positive finite number")
	ErrNonPositiveSteps     = errors.New("maximum number of bisection steps must be positive")
)

func NewParams(tolerance float64, maxSteps int) (Params, error) {
	if !(tolerance > 0) || math.IsInf(tolerance, 0) {
		return Params{}, ErrNonPositiveTolerance
	}

	if maxSteps <= 0 {
		return Params{}, ErrNonPositiveSteps
	}

	return Params{
		tolerance: tolerance,
		maxSteps:  maxSteps,
	}, nil
}

func DefaultParams() Params {
	return Params{
		tolerance: DefaultTolerance,
		maxSteps:  DefaultMaxSteps,
	}
}

// Classifier is stateless apart from its Params and safe for concurrent use.
type Classifier struct {
	Params
}

func NewClassifier(prms Params) *Classifier {
	return &Classifier{Params: prms}
}

var defaultClassifier = NewClassifier(DefaultParams())

// Classify uses DefaultParams.
func Classify(p *poly.Polynomial, a, b float64) Modality {
	return defaultClassifier.Classify(p, a, b)
}

// ProbUnimode classifies p over [0, 1] with DefaultParams.
func ProbUnimode(p *poly.Polynomial) Modality {
	return defaultClassifier.ProbUnimode(p)
}

func (c *Classifier) ProbUnimode(p *poly.Polynomial) Modality {
	return c.Classify(p, 0, 1)
}

/*
Classify returns Zero or Constant when p has no variation at all. Otherwise
it counts the interior sign changes of p' on (a, b): none is Nonmodal, one is
Unimodal at that point, more is Multimodal.

Extrema sitting exactly on a or b are not interior and are not counted.
An empty, inverted or non-finite interval has no interior, so it is Nonmodal.
*/
func (c *Classifier) Classify(p *poly.Polynomial, a, b float64) Modality {
	if p.IsZero() {
		return Zero{}
	}

	// same as p' being zero, without risking a wrapped derivative.
	if p.Degree() < 1 {
		return Constant{}
	}

	if !validInterval(a, b) {
		log.Debugf("empty interval [%v, %v], no interior extrema", a, b)
		return Nonmodal{}
	}

	ext := c.signChanges(derive(p), a, b)
	log.Debugf("degree %d polynomial has %d extrema on (%v, %v): %v", p.Degree(), len(ext), a, b, ext)

	switch len(ext) {
	case 0:
		return Nonmodal{}
	case 1:
		return Unimodal{Mode: ext[0]}
	default:
		return Multimodal{}
	}
}

func (c *Classifier) Extrema(p *poly.Polynomial, a, b float64) []float64 {
	if p.Degree() < 1 || !validInterval(a, b) {
		return nil
	}

	return c.signChanges(derive(p), a, b)
}

func validInterval(a, b float64) bool {
	return a < b && !math.IsInf(a, 0) && !math.IsInf(b, 0)
}

// bracket is a float64 interval holding one sign change of a polynomial;
// lo == hi when the polynomial vanishes exactly there.
type bracket struct {
	lo, hi float64
}

func (br bracket) mid() float64 {
	if br.lo == br.hi {
		return br.lo
	}

	return br.lo/2 + br.hi/2
}

// narrowFunc shrinks [lo, hi], on which f goes from loSign to -loSign.
type narrowFunc func(f *poly.Polynomial, lo, hi float64, loSign int) bracket

// maxRefineSteps bounds refine. Halving the widest float64 interval down to
// adjacent floats takes fewer than 2100 steps.
const maxRefineSteps = 2200

// signChanges returns the points of the open interval (l, r) where f changes
// sign, in increasing order, each located to the classifier's tolerance.
func (c *Classifier) signChanges(f *poly.Polynomial, l, r float64) []float64 {
	brs := crossings(f, l, r, c.narrow)

	roots := make([]float64, len(brs))
	for i, br := range brs {
		roots[i] = br.mid()
	}

	return roots
}

/*
crossings returns disjoint brackets, in increasing order, around every point
of (l, r) where f changes sign.

The sign changes of f' are bracketed first, to full float64 resolution, and
both ends of each bracket become breakpoints. f is monotone between
consecutive breakpoints, so each such piece holds at most one sign change,
which narrow then locates. The recursion ends once f is constant, so its
depth is the degree of f.

A run of breakpoints where f is exactly zero counts when the signs on either
side of it are opposite. Two roots closer together than adjacent float64
values cannot be told apart.
*/
func crossings(f *poly.Polynomial, l, r float64, narrow narrowFunc) []bracket {
	if f.Degree() < 1 {
		return nil
	}

	crit := crossings(derive(f), l, r, refine)

	points := make([]float64, 0, 2*len(crit)+2)
	points = append(points, l)

	for _, br := range crit {
		for _, x := range [2]float64{br.lo, br.hi} {
			if x > points[len(points)-1] && x < r {
				points = append(points, x)
			}
		}
	}

	points = append(points, r)

	signs := make([]int, len(points))
	for i, x := range points {
		signs[i] = f.Sign(x)
	}

	var out []bracket

	prev := -1 // last breakpoint where f is nonzero
	for i, s := range signs {
		if s == 0 {
			continue
		}

		if prev >= 0 && signs[prev] != s {
			if i-prev > 1 {
				out = append(out, bracket{lo: points[prev+1], hi: points[i-1]})
			} else {
				out = append(out, narrow(f, points[prev], points[i], signs[prev]))
			}
		}

		prev = i
	}

	return out
}

// narrow bisects to the classifier's tolerance and step cap.
func (c *Classifier) narrow(f *poly.Polynomial, lo, hi float64, loSign int) bracket {
	return bisect(f, lo, hi, loSign, c.tolerance, c.maxSteps)
}

// refine bisects until no float64 lies strictly inside the bracket.
func refine(f *poly.Polynomial, lo, hi float64, loSign int) bracket {
	return bisect(f, lo, hi, loSign, 0, maxRefineSteps)
}

// bisect narrows [lo, hi], where f has sign loSign at lo and the opposite
// sign at hi, until it is no wider than tol, maxSteps halvings were done or
// the float64 midpoint stops moving.
func bisect(f *poly.Polynomial, lo, hi float64, loSign int, tol float64, maxSteps int) bracket {
	for step := 0; step < maxSteps && hi-lo > tol; step++ {
		mid := lo/2 + hi/2
		if mid <= lo || mid >= hi {
			break
		}

		switch f.Sign(mid) {
		case 0:
			return bracket{lo: mid, hi: mid}
		case loSign:
			lo = mid
		default:
			hi = mid
		}
	}

	return bracket{lo: lo, hi: hi}
}

// derive returns a positive multiple of f'. Dividing out the integer content
// keeps the repeated derivatives in range; signs and roots are unchanged.
func derive(f *poly.Polynomial) *poly.Polynomial {
	reduced := primitive(f)

	df, err := reduced.CheckedDifferentiate()
	if err != nil {
		log.Warnf("derivative of degree %d polynomial overflows int64: %v", f.Degree(), err)
		return reduced.Differentiate()
	}

	return primitive(df)
}

// primitive divides every coefficient by their positive gcd.
func primitive(f *poly.Polynomial) *poly.Polynomial {
	coeffs := f.ToSlice()

	var g uint64
	for _, v := range coeffs {
		g = gcd(g, magnitude(v))
	}

	if g <= 1 || g > math.MaxInt64 {
		return f
	}

	for i := range coeffs {
		coeffs[i] /= int64(g)
	}

	return poly.FromCoefficients(coeffs)
}

func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}

	return uint64(v)
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

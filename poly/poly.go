package poly

import (
	"strconv"
	"strings"
)

const defaultVariableName = "p"

/*
Polynomial is a univariate polynomial with int64 coefficients, ordered from
lowest to highest degree. (e.g. [1, 2, 3] is 1 + 2x + 3x^2)

The coefficient slice is never trimmed implicitly: trailing zero coefficients
are legal and every operation tolerates them.
*/
type Polynomial struct {
	coeffs []int64
	name   string
}

// New returns the zero polynomial, represented by an empty coefficient slice.
func New() *Polynomial {
	return &Polynomial{name: defaultVariableName}
}

// FromCoefficients copies coeffs verbatim. No validation or trimming is done.
func FromCoefficients(coeffs []int64) *Polynomial {
	inner := make([]int64, len(coeffs))
	copy(inner, coeffs)

	return &Polynomial{coeffs: inner, name: defaultVariableName}
}

// Monomial returns coef*x^power.
func Monomial(coef int64, power int) *Polynomial {
	if power < 0 {
		power = 0
	}

	inner := make([]int64, power+1)
	inner[power] = coef

	return &Polynomial{coeffs: inner, name: defaultVariableName}
}

func (p *Polynomial) IsZero() bool {
	for _, c := range p.coeffs {
		if c != 0 {
			return false
		}
	}

	return true
}

// Equals compares by value at every exponent. Trailing zero padding and the
// variable name are ignored.
func (p *Polynomial) Equals(q *Polynomial) bool {
	n := max(len(p.coeffs), len(q.coeffs))
	for i := 0; i < n; i++ {
		if p.coeff(i) != q.coeff(i) {
			return false
		}
	}

	return true
}

// coeff returns the coefficient at exponent i, zero when i is past the end.
func (p *Polynomial) coeff(i int) int64 {
	if i < len(p.coeffs) {
		return p.coeffs[i]
	}

	return 0
}

// Degree returns -1 for the zero polynomial.
func (p *Polynomial) Degree() int {
	return p.leadingCoeffPos()
}

func (p *Polynomial) LeadCoeff() int64 {
	if pos := p.leadingCoeffPos(); pos >= 0 {
		return p.coeffs[pos]
	}

	return 0
}

func (p *Polynomial) leadingCoeffPos() int {
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if p.coeffs[i] != 0 {
			return i
		}
	}

	return -1
}

// Len is the raw length of the coefficient slice, padding included.
func (p *Polynomial) Len() int {
	return len(p.coeffs)
}

// Trim returns a copy without trailing zero coefficients.
func (p *Polynomial) Trim() *Polynomial {
	q := p.Copy()
	q.coeffs = q.coeffs[:p.leadingCoeffPos()+1]

	return q
}

func (p *Polynomial) Copy() *Polynomial {
	innercopy := make([]int64, len(p.coeffs))
	copy(innercopy, p.coeffs)

	return &Polynomial{coeffs: innercopy, name: p.name}
}

func (p *Polynomial) ToSlice() []int64 {
	list := make([]int64, len(p.coeffs))
	copy(list, p.coeffs)

	return list
}

func (p *Polynomial) VariableName() string {
	return p.name
}

// WithVariableName returns a copy displayed with a different variable name.
func (p *Polynomial) WithVariableName(name string) *Polynomial {
	q := p.Copy()
	q.name = name

	return q
}

// String renders every stored term, zero ones included, as c<name>^e.
func (p *Polynomial) String() string {
	if len(p.coeffs) == 0 {
		return "0"
	}

	bldr := strings.Builder{}

	for i, c := range p.coeffs {
		if i != 0 {
			bldr.WriteString(" + ")
		}

		bldr.WriteString(strconv.FormatInt(c, 10))
		bldr.WriteString(p.name)
		bldr.WriteString("^")
		bldr.WriteString(strconv.Itoa(i))
	}

	return bldr.String()
}

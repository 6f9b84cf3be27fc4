package poly

// binaryOp combines two coefficients. ok is false when the result does not
// fit in an int64. The wrapping ops below always return ok, so the kernels
// never fail on the unchecked path and their errors are discarded there.
type binaryOp func(a, b int64) (res int64, ok bool)

func wrapAdd(a, b int64) (int64, bool) { return a + b, true }
func wrapSub(a, b int64) (int64, bool) { return a - b, true }
func wrapMul(a, b int64) (int64, bool) { return a * b, true }

// combineInto applies op coefficient-wise, growing dst to the longer length.
// Missing coefficients of either operand count as zero.
func combineInto(dst *[]int64, src []int64, op binaryOp) error {
	if len(*dst) < len(src) {
		tmp := make([]int64, len(src))
		copy(tmp, *dst)
		*dst = tmp
	}

	out := *dst
	for i := range out {
		var s int64
		if i < len(src) {
			s = src[i]
		}

		v, ok := op(out[i], s)
		if !ok {
			return ErrOverflow
		}

		out[i] = v
	}

	return nil
}

// AddInPlace sets p = p + q.
func (p *Polynomial) AddInPlace(q *Polynomial) {
	_ = combineInto(&p.coeffs, q.coeffs, wrapAdd)
}

// SubInPlace sets p = p - q.
func (p *Polynomial) SubInPlace(q *Polynomial) {
	_ = combineInto(&p.coeffs, q.coeffs, wrapSub)
}

// Add returns p + q, leaving both operands untouched.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	sum := p.Copy()
	sum.AddInPlace(q)

	return sum
}

// Sub returns p - q, leaving both operands untouched.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	diff := p.Copy()
	diff.SubInPlace(q)

	return diff
}

// convolve is schoolbook multiplication: out[i+j] += a[i] * b[j]. O(n*m).
func convolve(a, b []int64, mul, add binaryOp) ([]int64, error) {
	if len(a) == 0 || len(b) == 0 {
		return []int64{}, nil
	}

	out := make([]int64, len(a)+len(b)-1)

	for i, ai := range a {
		if ai == 0 {
			continue
		}

		for j, bj := range b {
			prod, ok := mul(ai, bj)
			if !ok {
				return nil, ErrOverflow
			}

			if out[i+j], ok = add(out[i+j], prod); !ok {
				return nil, ErrOverflow
			}
		}
	}

	return out, nil
}

// Mul returns p * q. The result has len(p)+len(q)-1 coefficients, or none if
// either operand is empty.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	out, _ := convolve(p.coeffs, q.coeffs, wrapMul, wrapAdd)

	return &Polynomial{coeffs: out, name: p.name}
}

func (p *Polynomial) MulScalar(c int64) *Polynomial {
	q := p.Copy()
	for i := range q.coeffs {
		q.coeffs[i] *= c
	}

	return q
}

func identity(name string) *Polynomial {
	return &Polynomial{coeffs: []int64{1}, name: name}
}

// Pow returns p^exp. Pow(0) is [1] and Pow(1) is an unchanged copy of p.
// Cost is O(log exp) multiplications, each quadratic in the operand length.
func (p *Polynomial) Pow(exp uint) *Polynomial {
	res, _ := p.pow(exp, p.mulWith(wrapMul, wrapAdd))

	return res
}

type mulFunc func(a, b *Polynomial) (*Polynomial, error)

func (p *Polynomial) mulWith(mul, add binaryOp) mulFunc {
	return func(a, b *Polynomial) (*Polynomial, error) {
		out, err := convolve(a.coeffs, b.coeffs, mul, add)
		if err != nil {
			return nil, err
		}

		return &Polynomial{coeffs: out, name: p.name}, nil
	}
}

// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func (p *Polynomial) pow(exp uint, mul mulFunc) (*Polynomial, error) {
	switch exp {
	case 0:
		return identity(p.name), nil
	case 1:
		return p.Copy(), nil
	}

	var err error

	x := identity(p.name)
	base := p.Copy()

	for exp > 0 {
		if exp%2 == 1 {
			if x, err = mul(x, base); err != nil {
				return nil, err
			}
		}

		exp /= 2
		if exp == 0 {
			break
		}

		if base, err = mul(base, base); err != nil {
			return nil, err
		}
	}

	return x, nil
}

// Apply returns the composition p(g) = sum_i c_i * g^i.
// No attempt is made to be clever: one multiplication per coefficient of p.
func (p *Polynomial) Apply(g *Polynomial) *Polynomial {
	res, _ := p.apply(g, wrapAdd, p.mulWith(wrapMul, wrapAdd), func(a *Polynomial, c int64) (*Polynomial, error) {
		return a.MulScalar(c), nil
	})

	return res
}

func (p *Polynomial) apply(g *Polynomial, add binaryOp, mul mulFunc, scale func(*Polynomial, int64) (*Polynomial, error)) (*Polynomial, error) {
	out := &Polynomial{coeffs: []int64{}, name: p.name}
	gPow := identity(p.name)

	var (
		term *Polynomial
		err  error
	)

	for i, c := range p.coeffs {
		if i > 0 {
			if gPow, err = mul(gPow, g); err != nil {
				return nil, err
			}
		}

		if term, err = scale(gPow, c); err != nil {
			return nil, err
		}

		if err = combineInto(&out.coeffs, term.coeffs, add); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Differentiate drops the constant term and shifts every other coefficient
// down by one exponent: c_i*x^i becomes i*c_i*x^(i-1).
func (p *Polynomial) Differentiate() *Polynomial {
	res, _ := p.differentiate(wrapMul)

	return res
}

func (p *Polynomial) differentiate(mul binaryOp) (*Polynomial, error) {
	if len(p.coeffs) <= 1 {
		return &Polynomial{coeffs: []int64{}, name: p.name}, nil
	}

	out := make([]int64, len(p.coeffs)-1)
	for i := 1; i < len(p.coeffs); i++ {
		v, ok := mul(int64(i), p.coeffs[i])
		if !ok {
			return nil, ErrOverflow
		}

		out[i-1] = v
	}

	return &Polynomial{coeffs: out, name: p.name}, nil
}

// Product multiplies a slice of polynomials. The empty product is [1].
func Product(ps ...*Polynomial) *Polynomial {
	m := identity(defaultVariableName)
	for _, mi := range ps {
		m = m.Mul(mi)
	}

	return m
}

// FromRoots computes \prod (x - r_i), monic of degree len(roots).
func FromRoots(roots ...int64) *Polynomial {
	n := len(roots)
	coeffs := make([]int64, n+1)
	coeffs[0] = 1

	deg := 0
	for _, r := range roots {
		coeffs[deg+1] = 0
		for j := deg; j >= 0; j-- {
			// new[j+1] += old[j] * 1
			coeffs[j+1] += coeffs[j]
			// new[j]   = old[j] * (-r)
			coeffs[j] *= -r
		}
		deg++
	}

	return &Polynomial{coeffs: coeffs, name: defaultVariableName}
}

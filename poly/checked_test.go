package poly

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckedAddSub(t *testing.T) {
	a := assert.New(t)

	t.Run("noOverflow", func(t *testing.T) {
		p := FromCoefficients([]int64{1, 2, 3})
		q := FromCoefficients([]int64{-4, 5})

		sum, err := p.CheckedAdd(q)
		a.NoError(err)
		a.Equal(p.Add(q).ToSlice(), sum.ToSlice())

		diff, err := p.CheckedSub(q)
		a.NoError(err)
		a.Equal(p.Sub(q).ToSlice(), diff.ToSlice())
	})

	t.Run("overflow", func(t *testing.T) {
		top := FromCoefficients([]int64{0, math.MaxInt64})
		bottom := FromCoefficients([]int64{math.MinInt64})

		_, err := top.CheckedAdd(FromCoefficients([]int64{0, 1}))
		a.ErrorIs(err, ErrOverflow)

		_, err = bottom.CheckedSub(FromCoefficients([]int64{1}))
		a.ErrorIs(err, ErrOverflow)

		_, err = top.CheckedSub(FromCoefficients([]int64{0, -1}))
		a.ErrorIs(err, ErrOverflow)

		// receiver untouched on failure
		a.Equal([]int64{0, math.MaxInt64}, top.ToSlice())
	})
}

func TestCheckedMul(t *testing.T) {
	a := assert.New(t)

	_, err := FromCoefficients([]int64{1 << 62}).CheckedMul(FromCoefficients([]int64{4}))
	a.ErrorIs(err, ErrOverflow)

	prod, err := FromCoefficients([]int64{-(1 << 62)}).CheckedMul(FromCoefficients([]int64{2}))
	a.NoError(err)
	a.Equal([]int64{math.MinInt64}, prod.ToSlice())

	_, err = FromCoefficients([]int64{1 << 62}).CheckedMul(FromCoefficients([]int64{2}))
	a.ErrorIs(err, ErrOverflow)

	// products fit, their sum does not.
	_, err = FromCoefficients([]int64{1 << 61, 1 << 61}).CheckedMul(FromCoefficients([]int64{2, 2}))
	a.ErrorIs(err, ErrOverflow)

	_, err = FromCoefficients([]int64{1, 2}).CheckedMulScalar(math.MaxInt64)
	a.ErrorIs(err, ErrOverflow)
}

func TestCheckedPow(t *testing.T) {
	a := assert.New(t)

	twoX := FromCoefficients([]int64{0, 2})

	p, err := twoX.CheckedPow(62)
	a.NoError(err)
	a.Equal(63, p.Len())
	a.Equal(int64(1<<62), p.LeadCoeff())

	_, err = twoX.CheckedPow(63)
	a.ErrorIs(err, ErrOverflow)

	p, err = FromCoefficients([]int64{1, 1}).CheckedPow(10)
	a.NoError(err)
	a.Equal(FromCoefficients([]int64{1, 1}).Pow(10).ToSlice(), p.ToSlice())
}

func TestCheckedApplyAndDifferentiate(t *testing.T) {
	a := assert.New(t)

	p := FromCoefficients([]int64{1, 2, 3})
	g := FromCoefficients([]int64{-1, 1})

	out, err := p.CheckedApply(g)
	a.NoError(err)
	a.Equal(p.Apply(g).ToSlice(), out.ToSlice())

	_, err = FromCoefficients([]int64{0, 0, math.MaxInt64}).CheckedApply(FromCoefficients([]int64{0, 2}))
	a.ErrorIs(err, ErrOverflow)

	d, err := FromCoefficients([]int64{5, 3, 2, 7}).CheckedDifferentiate()
	a.NoError(err)
	a.Equal([]int64{3, 4, 21}, d.ToSlice())

	_, err = FromCoefficients([]int64{0, 0, math.MaxInt64}).CheckedDifferentiate()
	a.ErrorIs(err, ErrOverflow)
}

func FuzzCheckedMul(f *testing.F) {
	testcases := [][2]int64{
		{0, 0},
		{1, -1},
		{math.MaxInt64, 1},
		{math.MinInt64, 1},
		{math.MinInt64, -1},
		{1 << 32, 1 << 31},
		{-(1 << 32), 1 << 31},
		{3037000499, 3037000499},
		{3037000500, 3037000500},
	}
	for _, tc := range testcases {
		f.Add(tc[0], tc[1]) // Use f.Add to provide a seed corpus
	}

	f.Fuzz(func(t *testing.T, x, y int64) {
		want := new(big.Int).Mul(big.NewInt(x), big.NewInt(y))
		fits := want.IsInt64()

		got, ok := checkedMul(x, y)
		if ok != fits {
			t.Fatalf("%d * %d: ok=%v, want %v", x, y, ok, fits)
		}

		if ok && got != want.Int64() {
			t.Fatalf("%d * %d: got %d, want %s", x, y, got, want)
		}
	})
}

func FuzzCheckedAddSub(f *testing.F) {
	testcases := [][2]int64{
		{0, 0},
		{math.MaxInt64, 1},
		{math.MinInt64, -1},
		{math.MinInt64, math.MaxInt64},
		{-5, 7},
	}
	for _, tc := range testcases {
		f.Add(tc[0], tc[1])
	}

	f.Fuzz(func(t *testing.T, x, y int64) {
		sum := new(big.Int).Add(big.NewInt(x), big.NewInt(y))
		if got, ok := checkedAdd(x, y); ok != sum.IsInt64() || (ok && got != sum.Int64()) {
			t.Fatalf("%d + %d: got %d ok=%v, want %s", x, y, got, ok, sum)
		}

		diff := new(big.Int).Sub(big.NewInt(x), big.NewInt(y))
		if got, ok := checkedSub(x, y); ok != diff.IsInt64() || (ok && got != diff.Int64()) {
			t.Fatalf("%d - %d: got %d ok=%v, want %s", x, y, got, ok, diff)
		}
	})
}

func TestUncheckedWraps(t *testing.T) {
	a := assert.New(t)

	wide := FromCoefficients([]int64{1 << 32})

	a.Equal([]int64{math.MinInt64}, FromCoefficients([]int64{math.MaxInt64}).Add(FromCoefficients([]int64{1})).ToSlice())
	a.Equal([]int64{math.MaxInt64}, FromCoefficients([]int64{math.MinInt64}).Sub(FromCoefficients([]int64{1})).ToSlice())
	a.Equal([]int64{0}, wide.Mul(wide).ToSlice())
	a.Equal([]int64{0}, wide.Pow(2).ToSlice())

	top := FromCoefficients([]int64{0, 0, math.MaxInt64})
	a.Equal([]int64{0, 0, -4}, top.Apply(FromCoefficients([]int64{0, 2})).ToSlice())
	a.Equal([]int64{0, -2}, top.Differentiate().ToSlice())
}

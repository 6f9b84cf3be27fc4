package poly

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampler(t *testing.T) {
	a := assert.New(t)

	for _, bounds := range [][2]float64{{1, 0}, {0, 0}, {math.NaN(), 1}, {0, math.Inf(1)}} {
		_, err := NewSampler(bounds[0], bounds[1])
		a.ErrorIs(err, ErrBadInterval)
	}

	s, err := NewSampler(0, 1)
	a.NoError(err)

	a.Nil(s.Points(0))
	a.Equal([]float64{0.5}, s.Points(1))
	a.Equal([]float64{0, 0.25, 0.5, 0.75, 1}, s.Points(5))

	t.Run("cached", func(t *testing.T) {
		first := s.Points(7)
		second := s.Points(7)
		a.Same(&first[0], &second[0])
	})

	t.Run("evaluate", func(t *testing.T) {
		p := FromCoefficients([]int64{0, 1, -1}) // x(1-x)

		a.Equal([]float64{0, 0.1875, 0.25, 0.1875, 0}, s.Evaluate(p, 5))
		a.Equal([]int{0, 1, 1, 1, 0}, s.Signs(p, 5))
		a.Empty(s.Evaluate(p, 0))
	})

	t.Run("concurrent", func(t *testing.T) {
		s, err := NewSampler(-2, 2)
		a.NoError(err)

		var wg sync.WaitGroup
		results := make([][]float64, 8)

		for i := range results {
			wg.Add(1)

			go func(i int) {
				defer wg.Done()
				results[i] = s.Points(33)
			}(i)
		}

		wg.Wait()

		for _, r := range results {
			a.Same(&results[0][0], &r[0])
			a.Equal(-2.0, r[0])
			a.Equal(2.0, r[32])
		}
	})
}

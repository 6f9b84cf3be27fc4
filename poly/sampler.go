package poly

import (
	"errors"
	"math"
	"sync"
)

var ErrBadInterval = errors.New("sampling interval must be finite with a < b")

// Sampler evaluates polynomials on evenly spaced points of a closed interval.
// Point sets are computed once per count and shared, so a Sampler is safe for
// concurrent use.
type Sampler struct {
	a, b  float64
	cache *sampleCache
}

type sampleCache struct {
	sync.Locker
	countToPoints map[int][]float64
}

func newSampleCache() *sampleCache {
	return &sampleCache{
		Locker:        &sync.Mutex{},
		countToPoints: make(map[int][]float64),
	}
}

func (c *sampleCache) loadPoints(n int) []float64 {
	c.Lock()
	defer c.Unlock()

	return c.countToPoints[n]
}

// storePoints keeps the first set stored for n and returns it.
func (c *sampleCache) storePoints(n int, points []float64) []float64 {
	c.Lock()
	defer c.Unlock()

	if stored, ok := c.countToPoints[n]; ok {
		return stored
	}

	c.countToPoints[n] = points

	return points
}

func NewSampler(a, b float64) (*Sampler, error) {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) || a >= b {
		return nil, ErrBadInterval
	}

	return &Sampler{a: a, b: b, cache: newSampleCache()}, nil
}

// Points returns n points from a to b inclusive; a single point is the
// midpoint. The returned slice is shared and must not be modified.
func (s *Sampler) Points(n int) []float64 {
	if n < 1 {
		return nil
	}

	if points := s.cache.loadPoints(n); points != nil {
		return points
	}

	points := make([]float64, n)
	if n == 1 {
		points[0] = s.a/2 + s.b/2
	} else {
		step := (s.b - s.a) / float64(n-1)
		for i := range points {
			points[i] = s.a + float64(i)*step
		}
		points[n-1] = s.b
	}

	return s.cache.storePoints(n, points)
}

// Evaluate returns p at each of Points(n).
func (s *Sampler) Evaluate(p *Polynomial, n int) []float64 {
	points := s.Points(n)
	values := make([]float64, len(points))

	for i, x := range points {
		values[i] = p.Horner(x)
	}

	return values
}

// Signs returns the exact sign of p at each of Points(n).
func (s *Sampler) Signs(p *Polynomial, n int) []int {
	points := s.Points(n)
	signs := make([]int, len(points))

	for i, x := range points {
		signs[i] = p.Sign(x)
	}

	return signs
}

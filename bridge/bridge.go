// Package bridge constructs Brownian paths from low-discrepancy points.
//
// A Sobol sequence concentrates its quality in the leading dimensions: the
// first coordinates of each point are far better distributed than the last.
// A naive path construction spends dimension d on time-step d and therefore
// wastes the best coordinates on individually insignificant increments. The
// Brownian bridge reverses that: it fixes the path's terminal value first,
// then the midpoint conditioned on its fixed neighbors, then recursively
// the midpoints of each half, so the coarsest features of the path consume
// the best dimensions.
//
// A Schedule is computed once per path length and reused for every point:
//
//	sched, _ := bridge.New(252)
//	path := make([]float64, 252)
//	for i := 0; i < n; i++ {
//	    p, _ := seq.Next()
//	    sched.BuildUniform(p, path)
//	    // consume path
//	}
package bridge

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidSteps is returned when a schedule is requested for fewer
	// than one time-step.
	ErrInvalidSteps = errors.New("path must have at least one time-step")
	// ErrInvalidTimes is returned when a time grid is not positive and
	// strictly increasing.
	ErrInvalidTimes = errors.New("time grid must be positive and strictly increasing")
	// ErrVariateCount is returned when the variate or path slice length
	// does not match the schedule's step count.
	ErrVariateCount = errors.New("variate and path length must equal the schedule's step count")
)

// Schedule holds the precomputed construction order and interpolation
// coefficients of a Brownian bridge over n time-steps. Entry d describes
// the step fixed by variate dimension d: its position, its two already
// fixed neighbors, and the conditional mean weights and standard deviation
// of the value between them.
//
// A Schedule is immutable and safe for concurrent use.
type Schedule struct {
	n           int
	bridgeIndex []int
	leftIndex   []int
	rightIndex  []int
	leftWeight  []float64
	rightWeight []float64
	stddev      []float64
}

// New builds the schedule for n time-steps on the uniform unit grid
// t_i = i+1. The construction consumes one variate dimension per step, so
// a driving sequence must have at least n dimensions.
func New(n int) (*Schedule, error) {
	if n < 1 {
		return nil, ErrInvalidSteps
	}
	times := make([]float64, n)
	for i := range times {
		times[i] = float64(i + 1)
	}
	return NewWithTimes(times)
}

// NewWithTimes builds the schedule for the given time grid. times holds the
// observation times t_1..t_n of the path (the origin t_0 = 0 is implicit)
// and must be positive and strictly increasing.
func NewWithTimes(times []float64) (*Schedule, error) {
	n := len(times)
	if n < 1 {
		return nil, ErrInvalidSteps
	}
	prev := 0.0
	for _, t := range times {
		if t <= prev {
			return nil, ErrInvalidTimes
		}
		prev = t
	}

	s := &Schedule{
		n:           n,
		bridgeIndex: make([]int, n),
		leftIndex:   make([]int, n),
		rightIndex:  make([]int, n),
		leftWeight:  make([]float64, n),
		rightWeight: make([]float64, n),
		stddev:      make([]float64, n),
	}

	// Terminal value first: unconditioned, variance t_n.
	fixed := make([]bool, n)
	s.bridgeIndex[0] = n - 1
	s.rightIndex[0] = n - 1
	s.stddev[0] = math.Sqrt(times[n-1])
	fixed[n-1] = true

	// Then repeatedly bisect the leftmost unfixed gap. j scans to the first
	// unfixed step, k to the fixing right neighbor; the midpoint l is
	// conditioned on the fixed values at k and (if any) j-1.
	j := 0
	for d := 1; d < n; d++ {
		for fixed[j] {
			j++
		}
		k := j
		for !fixed[k] {
			k++
		}
		l := j + (k-1-j)/2

		tl := 0.0
		if j > 0 {
			tl = times[j-1]
		}
		tm, tr := times[l], times[k]

		s.bridgeIndex[d] = l
		s.leftIndex[d] = j
		s.rightIndex[d] = k
		s.leftWeight[d] = (tr - tm) / (tr - tl)
		s.rightWeight[d] = (tm - tl) / (tr - tl)
		s.stddev[d] = math.Sqrt((tm - tl) * (tr - tm) / (tr - tl))

		fixed[l] = true
		j = k + 1
		if j >= n {
			j = 0
		}
	}

	return s, nil
}

// Steps returns the number of time-steps (and variate dimensions) of the
// schedule.
func (s *Schedule) Steps() int { return s.n }

// Order returns the construction order: Order()[d] is the 0-based
// time-step fixed by variate dimension d. The returned slice is a copy.
func (s *Schedule) Order() []int {
	return append([]int(nil), s.bridgeIndex...)
}

// StepDimension returns the variate dimension assigned to the 0-based
// time-step i, or -1 if i is out of range.
func (s *Schedule) StepDimension(i int) int {
	for d, l := range s.bridgeIndex {
		if l == i {
			return d
		}
	}
	return -1
}

// Build constructs one path from standard normal variates. z and path must
// both have length Steps; path[i] receives the path value at t_(i+1). The
// path starts implicitly at 0.
func (s *Schedule) Build(z, path []float64) error {
	if len(z) != s.n || len(path) != s.n {
		return fmt.Errorf("%w: steps %d, variates %d, path %d", ErrVariateCount, s.n, len(z), len(path))
	}

	path[s.n-1] = s.stddev[0] * z[0]
	for d := 1; d < s.n; d++ {
		l := s.bridgeIndex[d]
		x := s.rightWeight[d]*path[s.rightIndex[d]] + s.stddev[d]*z[d]
		if j := s.leftIndex[d]; j > 0 {
			x += s.leftWeight[d] * path[j-1]
		}
		path[l] = x
	}

	return nil
}

// BuildUniform constructs one path from uniform variates in (0,1), such as
// a Sobol point, by passing each coordinate through the standard normal
// quantile function. A coordinate of exactly 0 maps to -Inf, so consumers
// of a Sobol stream should skip or offset the all-zero point at index 0.
func (s *Schedule) BuildUniform(u, path []float64) error {
	if len(u) != s.n || len(path) != s.n {
		return fmt.Errorf("%w: steps %d, variates %d, path %d", ErrVariateCount, s.n, len(u), len(path))
	}

	z := make([]float64, s.n)
	for i, x := range u {
		z[i] = math.Sqrt2 * math.Erfinv(2*x-1)
	}

	return s.Build(z, path)
}

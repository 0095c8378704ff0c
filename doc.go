// Package sobolgo provides multi-dimensional Sobol low-discrepancy sequences for Go.
//
// Sobolgo generates deterministic quasi-Monte-Carlo point sets in the unit
// hypercube [0,1)^D. Compared to pseudo-random sampling, consecutive
// prefixes of a Sobol sequence cover every sub-region of the cube far more
// evenly, which cuts Monte-Carlo integration error from O(1/sqrt(n)) toward
// O(log(n)^D/n).
//
// # Quick Start
//
// Two-dimensional points from the built-in direction-number table:
//
//	seq, _ := sobolgo.New(sobolgo.Default(), 2)
//	for i := 0; i < 1024; i++ {
//	    p, _ := seq.Next()
//	    fmt.Println(p[0], p[1])
//	}
//
// Higher dimensions come from a Joe-Kuo direction-number file:
//
//	f, _ := os.Open("new-joe-kuo-6.21201.gz")
//	table, _ := joekuo.Load(f, joekuo.WithMaxDimensions(64))
//	seq, _ := sobolgo.New(table, 64)
//
// # Random Access and Leap-Frogging
//
// Every point is a pure function of its index, so a generator can jump
// without replaying history:
//
//	seq.SkipTo(1 << 20)
//	p, _ := seq.Next() // the point at index 2^20
//
// Sample splits a batch across workers by index residue class:
//
//	points, _ := sobolgo.Sample(ctx, table, 8, 1_000_000, runtime.NumCPU())
//
// # Brownian Bridge
//
// The bridge subpackage turns one D-dimensional point into one simulated
// path of D time-steps, spending the best sequence dimensions on the
// coarsest path features:
//
//	sched, _ := bridge.New(252)
//	path := make([]float64, 252)
//	sched.BuildUniform(point, path)
//
// # Determinism
//
// Generation involves no randomness and no I/O. Two generators built from
// the same table and dimension count emit identical streams. A Sequence is
// not safe for concurrent use; give each goroutine its own instance or use
// Sample.
package sobolgo

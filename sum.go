package bytesimd

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ctxCheckInterval is how many vectors a SumConcurrent worker folds between
// cancellation checks.
const ctxCheckInterval = 4096

// Sum returns the lane-wise mod-256 sum of all vecs. The sum of no vectors
// is the zero vector.
func Sum(vecs ...Vector) Vector {
	var acc Vector
	for i := range vecs {
		acc.AddAssign(&vecs[i])
	}
	return acc
}

// SumConcurrent sums vecs across GOMAXPROCS workers. Lane-wise mod-256
// addition is associative and commutative, so chunked partial sums combine
// to the same result as Sum.
//
// Returns the context error if ctx is cancelled before the sum completes.
// Small inputs are summed inline without spawning workers.
func SumConcurrent(ctx context.Context, vecs []Vector) (Vector, error) {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(vecs)/2 {
		workers = len(vecs) / 2
	}
	if workers < 2 {
		if err := ctx.Err(); err != nil {
			return Vector{}, err
		}
		return Sum(vecs...), nil
	}

	chunk := (len(vecs) + workers - 1) / workers
	partials := make([]Vector, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		start := w * chunk
		end := min(start+chunk, len(vecs))

		g.Go(func() error {
			for i := start; i < end; i++ {
				if (i-start)%ctxCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				partials[w].AddAssign(&vecs[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Vector{}, err
	}

	return Sum(partials...), nil
}

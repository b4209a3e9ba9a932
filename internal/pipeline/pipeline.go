// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"miner-core/damage"
	"miner-core/sn"
)

// DefaultChunkSize is the number of rows per work unit when Config leaves it 0.
const DefaultChunkSize = 4096

// cancelEvery is how many rows a worker folds between context checks.
const cancelEvery = 1024

// Config controls the fold.
type Config struct {
	Threads   int // worker goroutines; 0 = all CPUs, 1 = sequential
	ChunkSize int // rows per chunk; 0 = DefaultChunkSize
}

// Plan reports how Accumulate would split n rows.
func (c Config) Plan(n int) (threads, chunkSize, chunks int) {
	threads = c.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	chunkSize = c.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	chunks = (n + chunkSize - 1) / chunkSize
	if chunks < threads {
		threads = max(chunks, 1)
	}
	return threads, chunkSize, chunks
}

// Accumulate is damage.Accumulate with an optional parallel fold.
func Accumulate(ctx context.Context, cases []damage.LoadCase, curve sn.Curve, cfg Config) (damage.Result, error) {
	if err := ctx.Err(); err != nil {
		return damage.Result{}, err
	}
	threads, chunkSize, chunks := cfg.Plan(len(cases))
	if threads <= 1 || chunks <= 1 {
		return damage.Accumulate(cases, curve)
	}
	if err := damage.Validate(cases, curve); err != nil {
		return damage.Result{}, err
	}

	out := damage.Result{Cases: make([]damage.CaseDamage, len(cases))}
	partials := make([]damage.Sum, chunks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for k := 0; k < chunks; k++ {
		k := k
		lo := k * chunkSize
		hi := min(lo+chunkSize, len(cases))
		g.Go(func() error {
			var sum damage.Sum
			for i := lo; i < hi; i++ {
				if (i-lo)%cancelEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				cd := damage.Evaluate(i+1, cases[i], curve)
				out.Cases[i] = cd
				sum.Add(cd.Fraction)
			}
			partials[k] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return damage.Result{}, err
	}

	var total damage.Sum
	for _, p := range partials {
		total.Merge(p)
	}
	out.Damage = total.Value()
	return out, nil
}

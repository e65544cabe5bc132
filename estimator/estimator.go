package estimator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/percolation/stats"
)

// batchSize is the number of consecutive trials sharing one accumulator.
const batchSize = 32

// Estimate runs trials independent experiments on an n×n grid.
//
// Steps:
//  1. Validate n, trials and Strategy before any work.
//  2. Split trials into batches of batchSize; run batches on an errgroup
//     limited to Workers goroutines.
//  3. Each trial: fresh grid, own RNG stream, open until percolation,
//     record the open fraction at its trial index.
//  4. Merge batch accumulators in batch order.
//
// Complexity: O(trials · n² · α(n²)) time, O(trials + Workers·n²) memory.
func Estimate(n, trials int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	if trials < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrials, trials)
	}
	if o.Strategy != Permutation && o.Strategy != Rejection {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(o.Strategy))
	}
	o.normalize()

	log := o.Logger.WithFields(logrus.Fields{"n": n, "trials": trials})
	log.WithFields(logrus.Fields{
		"workers":  o.Workers,
		"strategy": o.Strategy.String(),
		"seed":     o.Seed,
	}).Debug("estimate started")

	start := time.Now()
	samples := make([]float64, trials)
	batches := make([]stats.Accumulator, (trials+batchSize-1)/batchSize)

	var hookMu sync.Mutex
	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)

	debug := o.Logger.IsLevelEnabled(logrus.DebugLevel)
	for b := range batches {
		b := b
		g.Go(func() error {
			lo, hi := b*batchSize, min((b+1)*batchSize, trials)
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				sys, err := o.Factory(n)
				if err != nil {
					return err
				}
				x, err := runTrial(sys, trialRNG(o.Seed, i), o.Strategy)
				if err != nil {
					return fmt.Errorf("estimator: trial %d: %w", i, err)
				}
				samples[i] = x
				batches[b].Add(x)

				if debug {
					log.WithFields(logrus.Fields{
						"trial":  i,
						"sample": x,
						"opened": sys.NumberOfOpenSites(),
					}).Debug("trial finished")
				}
				if o.OnTrial != nil {
					hookMu.Lock()
					o.OnTrial(i, x)
					hookMu.Unlock()
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{n: n, trials: trials, samples: samples}
	for _, acc := range batches {
		res.acc.Merge(acc)
	}
	res.elapsed = time.Since(start)

	log.WithFields(logrus.Fields{
		"mean":    res.Mean(),
		"stddev":  res.StdDev(),
		"elapsed": res.elapsed,
	}).Debug("estimate finished")

	return res, nil
}

// normalize fills defaults for unset fields.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Seed == 0 {
		o.Seed = defaultSeed
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Factory == nil {
		o.Factory = newGrid
	}
	if o.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.Logger = l
	}
}

// N returns the grid dimension.
func (r *Result) N() int { return r.n }

// Trials returns the number of trials run.
func (r *Result) Trials() int { return r.trials }

// Elapsed returns the wall time of the whole estimate.
func (r *Result) Elapsed() time.Duration { return r.elapsed }

// Samples returns a copy of the per-trial open fractions, in trial order.
func (r *Result) Samples() []float64 {
	out := make([]float64, len(r.samples))
	copy(out, r.samples)
	return out
}

// Mean returns the sample mean of the percolation threshold.
func (r *Result) Mean() float64 {
	return r.acc.Mean()
}

// StdDev returns the sample standard deviation of the percolation threshold.
// A single trial yields 0.
func (r *Result) StdDev() float64 {
	return r.acc.StdDev()
}

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
func (r *Result) ConfidenceLo() float64 {
	lo, _, _ := stats.ConfidenceInterval(r.Mean(), r.StdDev(), r.trials, stats.Z95)
	return lo
}

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
func (r *Result) ConfidenceHi() float64 {
	_, hi, _ := stats.ConfidenceInterval(r.Mean(), r.StdDev(), r.trials, stats.Z95)
	return hi
}

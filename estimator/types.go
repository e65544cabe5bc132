package estimator

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/percolation/percolation"
	"github.com/katalvlaran/percolation/stats"
)

// Sentinel errors for Estimate.
var (
	// ErrInvalidSize indicates a grid dimension below 1.
	ErrInvalidSize = errors.New("estimator: grid size must be at least 1")
	// ErrInvalidTrials indicates fewer than one trial.
	ErrInvalidTrials = errors.New("estimator: trials must be at least 1")
	// ErrUnknownStrategy indicates an unsupported site-selection strategy.
	ErrUnknownStrategy = errors.New("estimator: unknown selection strategy")
	// ErrNoPercolation indicates a system that stayed non-percolating with
	// every site open.
	ErrNoPercolation = errors.New("estimator: system does not percolate with every site open")
)

// Strategy selects how blocked sites are drawn.
type Strategy int

const (
	// Permutation opens sites in a uniformly shuffled order.
	Permutation Strategy = iota
	// Rejection draws uniform (row, col) pairs and re-draws open ones.
	Rejection
)

// String returns the flag spelling of s.
func (s Strategy) String() string {
	switch s {
	case Permutation:
		return "permutation"
	case Rejection:
		return "rejection"
	default:
		return "unknown"
	}
}

// ParseStrategy maps "permutation" or "rejection" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "permutation":
		return Permutation, nil
	case "rejection":
		return Rejection, nil
	default:
		return 0, ErrUnknownStrategy
	}
}

// Factory builds the grid for one trial.
type Factory func(n int) (percolation.System, error)

// Options configures Estimate.
//
//   - Ctx:      cancellation; checked before every trial. nil means Background.
//   - Seed:     base seed; 0 selects defaultSeed.
//   - Workers:  concurrent trials; ≤ 0 selects runtime.GOMAXPROCS(0).
//   - Strategy: site selection, Permutation by default.
//   - OnTrial:  called once per finished trial, serialised, in completion order.
//   - Logger:   receives per-trial debug entries; nil discards them.
//   - Factory:  grid constructor; nil selects percolation.New with defaults.
type Options struct {
	Ctx      context.Context
	Seed     int64
	Workers  int
	Strategy Strategy
	OnTrial  func(trial int, sample float64)
	Logger   *logrus.Logger
	Factory  Factory
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the zero-config setup: default seed, one worker per
// CPU, Permutation selection.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: Permutation,
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithSeed sets the base seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers bounds the number of concurrent trials.
func WithWorkers(w int) Option {
	return func(o *Options) { o.Workers = w }
}

// WithStrategy selects the site-selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithOnTrial installs a per-trial progress hook.
func WithOnTrial(fn func(trial int, sample float64)) Option {
	return func(o *Options) { o.OnTrial = fn }
}

// WithLogger routes debug output to l.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithFactory replaces the grid constructor.
func WithFactory(f Factory) Option {
	return func(o *Options) { o.Factory = f }
}

// Result holds the outcome of Estimate. It is immutable.
type Result struct {
	n       int
	trials  int
	samples []float64
	acc     stats.Accumulator
	elapsed time.Duration
}

package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Summary is the read-only view of an estimate that report needs.
type Summary interface {
	N() int
	Trials() int
	Mean() float64
	StdDev() float64
	ConfidenceLo() float64
	ConfidenceHi() float64
	Elapsed() time.Duration
}

// sampler is implemented by summaries that keep per-trial samples.
type sampler interface {
	Samples() []float64
}

// Text writes a human-readable summary of s to w.
//
//	1,000 trials on a 200×200 grid (40,000 sites) in 1.234s
//	mean                    = 0.592781
//	stddev                  = 0.009742
//	95% confidence interval = [0.592177, 0.593385]
func Text(w io.Writer, s Summary) error {
	sites := int64(s.N()) * int64(s.N())
	_, err := fmt.Fprintf(w, "%s %s on a %d×%d grid (%s %s) in %s\n",
		humanize.Comma(int64(s.Trials())), plural(int64(s.Trials()), "trial", "trials"),
		s.N(), s.N(), humanize.Comma(sites), plural(sites, "site", "sites"),
		s.Elapsed().Round(time.Millisecond))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%-23s = %f\n%-23s = %f\n%-23s = [%f, %f]\n",
		"mean", s.Mean(),
		"stddev", s.StdDev(),
		"95% confidence interval", s.ConfidenceLo(), s.ConfidenceHi())

	return err
}

// JSON renders s as an indented JSON object:
//
//	{
//	  "n": 200,
//	  "trials": 1000,
//	  "mean": 0.59,
//	  "stddev": 0.01,
//	  "confidence": {"level": 0.95, "lo": 0.58, "hi": 0.6},
//	  "elapsed_ms": 1234,
//	  "samples": [...]        // only when withSamples and s keeps them
//	}
func JSON(s Summary, withSamples bool) ([]byte, error) {
	fields := []struct {
		path  string
		value any
	}{
		{"n", s.N()},
		{"trials", s.Trials()},
		{"mean", s.Mean()},
		{"stddev", s.StdDev()},
		{"confidence.level", 0.95},
		{"confidence.lo", s.ConfidenceLo()},
		{"confidence.hi", s.ConfidenceHi()},
		{"elapsed_ms", s.Elapsed().Milliseconds()},
	}
	if sm, ok := s.(sampler); ok && withSamples {
		fields = append(fields, struct {
			path  string
			value any
		}{"samples", sm.Samples()})
	}

	doc := []byte("{}")
	var err error
	for _, f := range fields {
		if doc, err = sjson.SetBytes(doc, f.path, f.value); err != nil {
			return nil, fmt.Errorf("report: set %s: %w", f.path, err)
		}
	}

	return pretty.Pretty(doc), nil
}

func plural(n int64, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

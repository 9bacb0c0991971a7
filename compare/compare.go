// Package compare measures a HyperLogLog estimate against an exact distinct
// count over the same tokens.
package compare

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/jcalabro/sketchkit/hll"
)

// DefaultErrorRate is the estimator error rate used by the CLI.
const DefaultErrorRate = 0.01

// Result holds both counts and the time each method took.
type Result struct {
	Tokens      int
	ExactCount  int
	ExactTime   time.Duration
	ApproxCount uint64
	ApproxTime  time.Duration
}

// ExactCount returns the number of distinct tokens by materializing them
// all in a set.
func ExactCount(tokens []string) int {
	seen := make(map[string]struct{})
	for _, tok := range tokens {
		seen[tok] = struct{}{}
	}
	return len(seen)
}

// ApproximateCount estimates the number of distinct tokens with an
// estimator built for errorRate.
func ApproximateCount(tokens []string, errorRate float64) (uint64, error) {
	e, err := hll.New(errorRate)
	if err != nil {
		return 0, err
	}
	for _, tok := range tokens {
		e.Add(tok)
	}
	return e.Count(), nil
}

// Run counts tokens both ways, timing each.
func Run(tokens []string, errorRate float64) (Result, error) {
	res := Result{Tokens: len(tokens)}

	start := time.Now()
	res.ExactCount = ExactCount(tokens)
	res.ExactTime = time.Since(start)

	start = time.Now()
	approx, err := ApproximateCount(tokens, errorRate)
	if err != nil {
		return Result{}, err
	}
	res.ApproxCount = approx
	res.ApproxTime = time.Since(start)

	return res, nil
}

// RelativeError returns |approx - exact| / exact, or 0 when both are zero.
func (r Result) RelativeError() float64 {
	if r.ExactCount == 0 {
		if r.ApproxCount == 0 {
			return 0
		}
		return math.Inf(1)
	}
	exact := float64(r.ExactCount)
	return math.Abs(float64(r.ApproxCount)-exact) / exact
}

// WriteTable prints the two-column comparison of counts and elapsed time.
func (r Result) WriteTable(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%-35s%-25s%-25s\n%-35s%-25d%-25d\n%-35s%-25.6f%-25.6f\n",
		"", "Exact count", "HyperLogLog",
		"Unique elements", r.ExactCount, r.ApproxCount,
		"Elapsed (sec.)", r.ExactTime.Seconds(), r.ApproxTime.Seconds(),
	)
	return err
}

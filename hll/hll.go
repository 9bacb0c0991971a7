package hll

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/jcalabro/sketchkit/internal/hashing"
)

const (
	// MinPrecision is the smallest supported precision (16 registers).
	MinPrecision = 4
	// MaxPrecision is the largest supported precision (262144 registers).
	MaxPrecision = 18

	hashBits = 64

	alpha16 = 0.673
	alpha32 = 0.697
	alpha64 = 0.709

	// twoTo64 is the size of the hash space.
	twoTo64 = 18446744073709551616.0
)

var (
	// ErrInvalidConfiguration is returned for error rates outside (0, 1),
	// error rates that would need more than MaxPrecision, and precisions
	// outside [MinPrecision, MaxPrecision].
	ErrInvalidConfiguration = errors.New("hll: invalid configuration")

	// ErrPrecisionMismatch is returned when merging estimators with
	// different precisions.
	ErrPrecisionMismatch = errors.New("hll: cannot merge estimators with different precisions")
)

// Estimator is a HyperLogLog cardinality estimator. It is not thread-safe.
type Estimator struct {
	registers []uint8
	p         uint8   // precision: number of index bits
	m         uint32  // number of registers, 1<<p
	alpha     float64 // bias correction constant for m
}

// New creates an estimator whose standard error 1.04/sqrt(m) is at most
// errorRate.
func New(errorRate float64) (*Estimator, error) {
	if !(errorRate > 0 && errorRate < 1) {
		return nil, fmt.Errorf("%w: error rate %v not in (0, 1)", ErrInvalidConfiguration, errorRate)
	}

	p, err := PrecisionForErrorRate(errorRate)
	if err != nil {
		return nil, err
	}
	return NewWithPrecision(p)
}

// NewWithPrecision creates an estimator with 2^p registers.
func NewWithPrecision(p uint8) (*Estimator, error) {
	if p < MinPrecision || p > MaxPrecision {
		return nil, fmt.Errorf("%w: precision %d not in [%d, %d]", ErrInvalidConfiguration, p, MinPrecision, MaxPrecision)
	}

	m := uint32(1) << p
	return &Estimator{
		registers: make([]uint8, m),
		p:         p,
		m:         m,
		alpha:     alpha(m),
	}, nil
}

// PrecisionForErrorRate returns the smallest precision p, at least
// MinPrecision, for which 1.04/sqrt(2^p) <= errorRate.
func PrecisionForErrorRate(errorRate float64) (uint8, error) {
	if !(errorRate > 0 && errorRate < 1) {
		return 0, fmt.Errorf("%w: error rate %v not in (0, 1)", ErrInvalidConfiguration, errorRate)
	}

	ratio := 1.04 / errorRate
	p := math.Ceil(math.Log2(ratio * ratio))
	if p > MaxPrecision {
		return 0, fmt.Errorf("%w: error rate %v needs precision %v, max is %d",
			ErrInvalidConfiguration, errorRate, p, MaxPrecision)
	}
	return uint8(max(p, MinPrecision)), nil
}

func alpha(m uint32) float64 {
	switch m {
	case 16:
		return alpha16
	case 32:
		return alpha32
	case 64:
		return alpha64
	default:
		return 0.7213 / (1 + 1.079/float64(m))
	}
}

// Add hashes item and records it.
func (e *Estimator) Add(item string) {
	e.AddHash(hashing.Sum64String(item))
}

// AddBytes is Add for byte slices.
func (e *Estimator) AddBytes(item []byte) {
	e.AddHash(hashing.Sum64(item))
}

// AddHash records an already hashed item. The hash must be uniformly
// distributed over all 64 bits.
func (e *Estimator) AddHash(x uint64) {
	idx := x >> (hashBits - e.p)
	r := rank(x<<e.p, hashBits-e.p)
	if r > e.registers[idx] {
		e.registers[idx] = r
	}
}

// rank returns the 1-based position of the first set bit of the top width
// bits of w, capped at width.
func rank(w uint64, width uint8) uint8 {
	return min(uint8(bits.LeadingZeros64(w))+1, width)
}

// Estimate returns the estimated number of distinct items added. It does not
// modify the estimator.
func (e *Estimator) Estimate() float64 {
	m := float64(e.m)

	var sum float64
	var zeros int
	for _, r := range e.registers {
		sum += math.Ldexp(1, -int(r))
		if r == 0 {
			zeros++
		}
	}

	raw := e.alpha * m * m / sum

	switch {
	case raw <= 2.5*m && zeros > 0:
		return linearCounting(m, float64(zeros))
	case raw > twoTo64/30 && raw < twoTo64:
		return -twoTo64 * math.Log(1-raw/twoTo64)
	}
	return raw
}

// Count returns Estimate rounded to the nearest integer.
func (e *Estimator) Count() uint64 {
	return uint64(math.Round(e.Estimate()))
}

func linearCounting(m, zeros float64) float64 {
	return m * math.Log(m/zeros)
}

// Merge folds other into e by taking the element-wise maximum of the
// registers. other is not modified.
func (e *Estimator) Merge(other *Estimator) error {
	if e.p != other.p {
		return fmt.Errorf("%w: %d != %d", ErrPrecisionMismatch, e.p, other.p)
	}
	for i, v := range other.registers {
		if v > e.registers[i] {
			e.registers[i] = v
		}
	}
	return nil
}

// Precision returns p, the number of index bits.
func (e *Estimator) Precision() uint8 { return e.p }

// NumRegisters returns m = 2^p.
func (e *Estimator) NumRegisters() uint32 { return e.m }

// StandardError returns the expected relative error 1.04/sqrt(m).
func (e *Estimator) StandardError() float64 {
	return 1.04 / math.Sqrt(float64(e.m))
}

// Registers returns a copy of the register array.
func (e *Estimator) Registers() []uint8 {
	out := make([]uint8, len(e.registers))
	copy(out, e.registers)
	return out
}

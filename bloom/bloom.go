package bloom

import (
	"errors"
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
)

var (
	// ErrInvalidConfiguration is returned when a filter is constructed with
	// a zero size, zero probes, or unusable sizing estimates.
	ErrInvalidConfiguration = errors.New("bloom: invalid configuration")

	// ErrIncompatible is returned when combining filters whose size, probe
	// count or hasher differ.
	ErrIncompatible = errors.New("bloom: incompatible filters")
)

// Filter is a non-thread-safe bloom filter over a packed bit vector.
type Filter struct {
	bits   *bitset.BitSet
	size   uint64 // Number of bits, fixed at construction
	k      uint32 // Number of hash probes per item
	hasher Hasher
	count  uint64 // Number of items added (approximate)
}

// Option configures a Filter at construction time.
type Option func(*Filter)

// WithHasher selects the hasher used to derive probe positions. A nil
// hasher leaves the default ([XXH3]) in place.
func WithHasher(h Hasher) Option {
	return func(f *Filter) {
		if h != nil {
			f.hasher = h
		}
	}
}

// New creates a bloom filter of size bits probed by k hash functions.
func New(size uint64, k uint32, opts ...Option) (*Filter, error) {
	if size == 0 {
		return nil, fmt.Errorf("%w: size must be positive", ErrInvalidConfiguration)
	}
	if k == 0 {
		return nil, fmt.Errorf("%w: number of hashes must be positive", ErrInvalidConfiguration)
	}
	if size > math.MaxUint {
		return nil, fmt.Errorf("%w: size %d does not fit in memory", ErrInvalidConfiguration, size)
	}

	f := &Filter{
		bits:   bitset.New(uint(size)),
		size:   size,
		k:      k,
		hasher: XXH3,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// NewWithEstimates creates a bloom filter sized for expectedItems insertions
// at the target false positive rate.
func NewWithEstimates(expectedItems uint64, fpRate float64, opts ...Option) (*Filter, error) {
	if expectedItems == 0 {
		return nil, fmt.Errorf("%w: expected items must be positive", ErrInvalidConfiguration)
	}
	if !(fpRate > 0 && fpRate < 1) {
		return nil, fmt.Errorf("%w: false positive rate %v not in (0, 1)", ErrInvalidConfiguration, fpRate)
	}

	size, k := OptimalParams(expectedItems, fpRate)
	return New(size, k, opts...)
}

// Add adds data to the bloom filter.
func (f *Filter) Add(data []byte) {
	for i := uint32(0); i < f.k; i++ {
		f.bits.Set(uint(f.hasher.Index(data, i, f.size)))
	}
	f.count++
}

// AddString adds a string to the bloom filter without allocating.
func (f *Filter) AddString(s string) {
	for i := uint32(0); i < f.k; i++ {
		f.bits.Set(uint(f.hasher.IndexString(s, i, f.size)))
	}
	f.count++
}

// Contains reports whether data might be in the bloom filter. A false result
// means data was definitely never added.
func (f *Filter) Contains(data []byte) bool {
	for i := uint32(0); i < f.k; i++ {
		if !f.bits.Test(uint(f.hasher.Index(data, i, f.size))) {
			return false
		}
	}
	return true
}

// ContainsString checks if a string might be in the bloom filter without
// allocating.
func (f *Filter) ContainsString(s string) bool {
	for i := uint32(0); i < f.k; i++ {
		if !f.bits.Test(uint(f.hasher.IndexString(s, i, f.size))) {
			return false
		}
	}
	return true
}

// TestAndAdd reports whether data might have been present and then adds it.
func (f *Filter) TestAndAdd(data []byte) bool {
	present := true
	for i := uint32(0); i < f.k; i++ {
		idx := uint(f.hasher.Index(data, i, f.size))
		if !f.bits.Test(idx) {
			present = false
			f.bits.Set(idx)
		}
	}
	f.count++
	return present
}

// TestAndAddString is TestAndAdd for strings.
func (f *Filter) TestAndAddString(s string) bool {
	present := true
	for i := uint32(0); i < f.k; i++ {
		idx := uint(f.hasher.IndexString(s, i, f.size))
		if !f.bits.Test(idx) {
			present = false
			f.bits.Set(idx)
		}
	}
	f.count++
	return present
}

// Union sets every bit of other into f, so that f contains everything either
// filter contained. Both filters must share size, probe count and hasher.
func (f *Filter) Union(other *Filter) error {
	if f.size != other.size || f.k != other.k || f.hasher.Name() != other.hasher.Name() {
		return fmt.Errorf("%w: size=%d/%d k=%d/%d hasher=%s/%s", ErrIncompatible,
			f.size, other.size, f.k, other.k, f.hasher.Name(), other.hasher.Name())
	}
	f.bits.InPlaceUnion(other.bits)
	f.count += other.count
	return nil
}

// Cap returns the capacity of the filter in bits.
func (f *Filter) Cap() uint64 {
	return f.size
}

// K returns the number of hash probes used.
func (f *Filter) K() uint32 {
	return f.k
}

// Hasher returns the hasher deriving probe positions.
func (f *Filter) Hasher() Hasher {
	return f.hasher
}

// Count returns the approximate number of items added to the filter since it
// was created or last deserialized.
func (f *Filter) Count() uint64 {
	return f.count
}

// EstimatedFillRatio returns the proportion of bits that are set.
func (f *Filter) EstimatedFillRatio() float64 {
	return float64(f.bits.Count()) / float64(f.size)
}

// EstimatedFalsePositiveRate estimates the current false positive rate
// based on the number of items added.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.size, f.k, f.count)
}

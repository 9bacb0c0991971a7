package bloom

import "math"

const (
	// ln2 is the natural logarithm of 2.
	ln2 = 0.6931471805599453
	// ln2Squared is ln(2)^2.
	ln2Squared = 0.4804530139182014
)

// OptimalParams calculates the optimal bloom filter parameters for the
// expected number of items and target false positive rate. It returns the
// filter size in bits and the number of hash probes.
//
// expectedItems must be positive and fpRate must be in (0, 1); callers are
// expected to validate, see [NewWithEstimates].
func OptimalParams(expectedItems uint64, fpRate float64) (size uint64, k uint32) {
	n := float64(expectedItems)

	// m = -n * ln(p) / ln(2)^2
	size = uint64(math.Ceil(-n * math.Log(fpRate) / ln2Squared))
	size = max(size, 1)

	// k = (m/n) * ln(2)
	k = uint32(math.Round(float64(size) / n * ln2))
	k = max(k, 1)

	return size, k
}

// EstimateFalsePositiveRate estimates the false positive rate of a filter of
// size bits and k probes after itemsAdded insertions.
// Formula: (1 - e^(-kn/m))^k
func EstimateFalsePositiveRate(size uint64, k uint32, itemsAdded uint64) float64 {
	m := float64(size)
	n := float64(itemsAdded)
	kf := float64(k)

	if m == 0 || n == 0 {
		return 0
	}

	return math.Pow(1-math.Exp(-kf*n/m), kf)
}

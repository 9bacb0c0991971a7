// Package bloom provides a classic bloom filter: a fixed-size bit vector
// probed by k seeded hash functions.
//
// A bloom filter is a space-efficient probabilistic set. [Filter.Contains]
// may report false positives, but never false negatives: if the filter says
// an item is not present, it was never added. Bits are only ever set, so
// there is no way to remove an item.
//
// # Hashing
//
// Each of the k probes hashes the item with the same primitive under a
// different seed (the probe index) and reduces the result modulo the filter
// size. Two hashers are built in:
//
//   - [XXH3] (default) uses seeded xxh3.
//   - [Murmur3] uses seeded 32-bit murmur3 with a floored modulo of the
//     signed result, matching the common mmh3.hash(item, i) % size
//     convention.
//
// Probe positions depend only on (item, seed, size), so a serialized filter
// restored with the same size, k and hasher answers exactly as before.
//
// # Choosing Parameters
//
// Use [New] with an explicit bit count and probe count, or
// [NewWithEstimates] with the expected number of items and a target false
// positive rate:
//
//	// 1000 bits, 3 probes
//	f, err := bloom.New(1000, 3)
//
//	// sized for 1 million items at 1% false positives
//	f, err := bloom.NewWithEstimates(1_000_000, 0.01)
//
// The expected false positive rate after n insertions is
//
//	(1 - e^(-k*n/m))^k
//
// see [EstimateFalsePositiveRate].
//
// # Serialization
//
// [Filter.MarshalBinary] emits the raw bit vector: ceil(size/8) bytes, bit j
// of the vector stored in bit j%8 (LSB-first) of byte j/8. There is no
// header. The size, the probe count and the hasher are NOT part of the
// payload and must be supplied out of band when restoring with
// [Filter.UnmarshalBinary], [Filter.ReadFrom] or [Filter.LoadFile]. A payload
// whose length does not match is rejected with [ErrSerializationMismatch];
// a payload of the right length written with different parameters cannot be
// detected and yields wrong answers.
//
// # Thread Safety
//
// [Filter] is NOT thread-safe. Serialize Add, Union and UnmarshalBinary with
// an external lock, or give each goroutine its own filter and combine them
// with [Filter.Union].
package bloom

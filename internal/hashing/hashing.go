// Package hashing holds the seeded hash primitives shared by the bloom and
// hll packages.
package hashing

import (
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// XXH3Seeded returns the xxh3 hash of data under the given seed.
func XXH3Seeded(data []byte, seed uint32) uint64 {
	return xxh3.HashSeed(data, uint64(seed))
}

// XXH3SeededString is XXH3Seeded for strings. It does not allocate.
func XXH3SeededString(s string, seed uint32) uint64 {
	return xxh3.HashStringSeed(s, uint64(seed))
}

// Murmur3Seeded returns the 32-bit murmur3 hash of data reinterpreted as a
// signed integer, the way most murmur3 bindings report it.
func Murmur3Seeded(data []byte, seed uint32) int32 {
	return int32(murmur3.Sum32WithSeed(data, seed))
}

// Murmur3SeededString is Murmur3Seeded for strings. It does not allocate.
func Murmur3SeededString(s string, seed uint32) int32 {
	return Murmur3Seeded(stringBytes(s), seed)
}

// Sum64 returns the unseeded 64-bit xxhash of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Sum64String is Sum64 for strings. It does not allocate.
func Sum64String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// FloorMod returns x modulo m using floored division, so the result is
// always in [0, m) even for negative x. m must be non-zero.
func FloorMod(x int64, m uint64) uint64 {
	if x >= 0 {
		return uint64(x) % m
	}
	r := uint64(-x) % m
	if r == 0 {
		return 0
	}
	return m - r
}

// stringBytes views s as a byte slice without copying. The result must not
// be modified.
func stringBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

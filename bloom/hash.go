package bloom

import "github.com/jcalabro/sketchkit/internal/hashing"

// Hasher maps probe i of an item onto a bit position in [0, size).
//
// Implementations must be deterministic across processes: the same
// (item, i, size) always yields the same position.
type Hasher interface {
	// Name identifies the hasher. Filters are only compatible when their
	// hashers share a name.
	Name() string
	Index(data []byte, i uint32, size uint64) uint64
	IndexString(s string, i uint32, size uint64) uint64
}

var (
	// XXH3 probes with seeded xxh3. It is the default hasher.
	XXH3 Hasher = xxh3Hasher{}

	// Murmur3 probes with seeded 32-bit murmur3, treating the hash as a
	// signed value and taking the floored modulo.
	Murmur3 Hasher = murmur3Hasher{}
)

type xxh3Hasher struct{}

func (xxh3Hasher) Name() string { return "xxh3" }

func (xxh3Hasher) Index(data []byte, i uint32, size uint64) uint64 {
	return hashing.XXH3Seeded(data, i) % size
}

func (xxh3Hasher) IndexString(s string, i uint32, size uint64) uint64 {
	return hashing.XXH3SeededString(s, i) % size
}

type murmur3Hasher struct{}

func (murmur3Hasher) Name() string { return "murmur3" }

func (murmur3Hasher) Index(data []byte, i uint32, size uint64) uint64 {
	return hashing.FloorMod(int64(hashing.Murmur3Seeded(data, i)), size)
}

func (murmur3Hasher) IndexString(s string, i uint32, size uint64) uint64 {
	return hashing.FloorMod(int64(hashing.Murmur3SeededString(s, i)), size)
}

// HasherByName returns the built-in hasher with the given name.
func HasherByName(name string) (Hasher, bool) {
	switch name {
	case XXH3.Name():
		return XXH3, true
	case Murmur3.Name():
		return Murmur3, true
	}
	return nil, false
}

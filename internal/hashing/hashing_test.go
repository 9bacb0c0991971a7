package hashing

import (
	"math"
	"testing"
)

func TestFloorMod(t *testing.T) {
	tests := []struct {
		x    int64
		m    uint64
		want uint64
	}{
		{0, 7, 0},
		{13, 7, 6},
		{-1, 7, 6},
		{-7, 7, 0},
		{-8, 7, 6},
		{math.MinInt32, 1000, 352},
		{math.MaxInt32, 1000, 647},
	}

	for _, tt := range tests {
		if got := FloorMod(tt.x, tt.m); got != tt.want {
			t.Errorf("FloorMod(%d, %d) = %d, want %d", tt.x, tt.m, got, tt.want)
		}
	}
}

func TestSeededHashesDeterministic(t *testing.T) {
	for seed := range uint32(8) {
		if XXH3Seeded([]byte("hello"), seed) != XXH3SeededString("hello", seed) {
			t.Errorf("xxh3 byte/string mismatch for seed %d", seed)
		}
		if Murmur3Seeded([]byte("hello"), seed) != Murmur3SeededString("hello", seed) {
			t.Errorf("murmur3 byte/string mismatch for seed %d", seed)
		}
	}

	if XXH3SeededString("hello", 0) == XXH3SeededString("hello", 1) {
		t.Error("expected different seeds to produce different xxh3 hashes")
	}
	if Murmur3SeededString("hello", 0) == Murmur3SeededString("hello", 1) {
		t.Error("expected different seeds to produce different murmur3 hashes")
	}
}

func TestMurmur3KnownVectors(t *testing.T) {
	// Reference values of the x86 32-bit variant.
	tests := []struct {
		in   string
		seed uint32
		want int32
	}{
		{"", 0, 0},
		{"", 1, 0x514E28B7},
		{"hello", 0, 613153351},
	}

	for _, tt := range tests {
		if got := Murmur3SeededString(tt.in, tt.seed); got != tt.want {
			t.Errorf("Murmur3SeededString(%q, %d) = %d, want %d", tt.in, tt.seed, got, tt.want)
		}
	}
}

func TestSum64String(t *testing.T) {
	if Sum64String("10.0.0.1") != Sum64([]byte("10.0.0.1")) {
		t.Error("expected Sum64 and Sum64String to agree")
	}
	// xxhash64 of the empty input with seed 0.
	if got := Sum64String(""); got != 0xef46db3751d8e999 {
		t.Errorf("Sum64String(\"\") = %#x", got)
	}
}

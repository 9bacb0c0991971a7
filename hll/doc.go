// Package hll implements a HyperLogLog cardinality estimator: given a stream
// of items, it estimates how many distinct items were seen using a fixed
// array of small registers, never the items themselves.
//
// Each item is hashed to 64 bits with xxhash. The top p bits select one of
// m = 2^p registers, and the register keeps the largest "rank" observed, the
// position of the first set bit in the remaining 64-p bits. The estimate is
// the bias-corrected harmonic mean of 2^register across all registers, with
// linear counting for small cardinalities and the usual correction as the
// estimate approaches the size of the hash space.
//
// The standard error is about 1.04/sqrt(m), independent of the cardinality.
// [New] picks the smallest m that meets a target error rate.
//
// Estimators built over different parts of a stream can be combined with
// [Estimator.Merge], which takes the element-wise maximum of the registers.
// The result is exactly the estimator that would have been built over the
// whole stream.
//
// Flajolet, Fusy, Gandouet and Meunier, "HyperLogLog: the analysis of a
// near-optimal cardinality estimation algorithm" (2007).
package hll

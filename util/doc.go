// Package util provides small helpers shared by the treegen packages.
//
// Key Components:
//
// Randomness:
//   - IntBetween draws uniformly from an inclusive integer range
//   - WeightedIndex performs a discrete weighted choice
//   - SeedFromPhrase turns a memorable phrase into a reproducible seed
//
// Hashing:
//   - GetHash computes the SHA-256 of a reader as lowercase hex
//
// Persistence:
//   - WriteJSONFile writes any value as indented JSON
//
// None of the helpers keep package-level state; random sources are always
// passed in by the caller.
package util

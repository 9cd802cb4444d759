// Package testutil provides testing utilities for bitpos.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random bitmaps at a given bit density,
// sparse "dirty page" bitmaps, and a naive reference enumeration of set bits
// to check iterators against.
//
// # Random Bitmaps
//
//	rng := testutil.NewRNG(seed)
//	words := rng.Bitmap64(10_000, 1.0) // 1% of bits set
//	dirty := rng.DirtyBitmap(4096, 8, 0.05)
//
// # Ground Truth
//
//	want := testutil.ReferencePositions(words)
package testutil

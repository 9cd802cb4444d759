// Package simd provides word-group kernels for bitmap scanning.
//
// # Supported Platforms
//
//   - x86-64: AVX-512, AVX2 (detected, used to size word groups)
//   - ARM64: NEON, SVE2
//
// Runtime CPU feature detection selects the preferred group width. The
// kernels themselves are unrolled Go that the compiler lowers to wide
// compares and OR trees; there is no assembly in this package.
//
// # Operations
//
//   - IsZero: one all-zero test over a whole group of words
//   - NonZeroMask: per-word nonzero flags packed into a uint64
//   - PopcountWords: total set bits across words
//
// Set BITPOS_SIMD=generic|neon|sve2|avx2|avx512 to override detection.
package simd

// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides Go-heap allocations aligned to an arbitrary power of two
// (cache line, AVX-512 and beyond).
package mem

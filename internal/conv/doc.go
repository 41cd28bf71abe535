// Package conv provides overflow-checked integer arithmetic and conversions.
//
// Buffer sizes are computed as element count times element size, and
// capacities grow by a floating-point factor. Both can silently wrap or
// saturate with plain Go arithmetic; these helpers report the overflow
// instead.
package conv

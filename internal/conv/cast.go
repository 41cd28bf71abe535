package conv

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrOverflow is returned when a result does not fit the target type.
var ErrOverflow = errors.New("integer overflow")

// MulInt returns a*b for non-negative operands, or ErrOverflow if the
// product exceeds math.MaxInt.
func MulInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("%w: %d*%d has a negative operand", ErrOverflow, a, b)
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d*%d exceeds max int", ErrOverflow, a, b)
	}
	return int(lo), nil
}

// AddInt returns a+b for non-negative operands, or ErrOverflow if the sum
// exceeds math.MaxInt.
func AddInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("%w: %d+%d has a negative operand", ErrOverflow, a, b)
	}
	if a > math.MaxInt-b {
		return 0, fmt.Errorf("%w: %d+%d exceeds max int", ErrOverflow, a, b)
	}
	return a + b, nil
}

// ScaleFloor returns floor(n*f) for non-negative n and finite, non-negative f,
// or ErrOverflow if the result does not fit an int.
func ScaleFloor(n int, f float64) (int, error) {
	if n < 0 || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: cannot scale %d by %v", ErrOverflow, n, f)
	}
	v := math.Floor(float64(n) * f)
	// float64(math.MaxInt) rounds up to 2^63, so >= is the exact bound.
	if v >= float64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d*%v exceeds max int", ErrOverflow, n, f)
	}
	return int(v), nil
}

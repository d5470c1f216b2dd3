// SPDX-License-Identifier: MIT
// Package: codata
//
// width.go — generic accessors over the supported floating-point widths.
//
// Narrowing rule:
//   - float64 receives the stored literal unchanged.
//   - float32 receives the nearest representable value; magnitudes above
//     math.MaxFloat32 saturate instead of overflowing to ±Inf.
//   - Underflow rounds toward zero as the hardware does.
//   - Saturated reports the constants the clamp applies to; their float32
//     precision is not meaningful.

package codata

import (
	"math"
	"unsafe"
)

// Float is the set of widths a constant can be read at.
type Float interface {
	~float32 | ~float64
}

// Narrow converts x to the width T following the narrowing rule above.
// x must be finite; every tabulated literal is.
func Narrow[T Float](x float64) T {
	if unsafe.Sizeof(T(0)) == 4 {
		switch {
		case x > math.MaxFloat32:
			return T(math.MaxFloat32)
		case x < -math.MaxFloat32:
			return T(-math.MaxFloat32)
		}
	}

	return T(x)
}

// Value returns the nominal value of c narrowed to T.
func Value[T Float](c Constant) T {
	return Narrow[T](c.value)
}

// Uncertainty returns the standard uncertainty of c narrowed to T.
// The result is never negative.
func Uncertainty[T Float](c Constant) T {
	return Narrow[T](c.uncertainty)
}

// Precision returns Uncertainty[T](c) / |Value[T](c)|, the relative
// uncertainty at width T, or 0 when the narrowed value is zero.
//
// The quotient of two float32 operands is formed in float64 and rounded
// once, which gives the same bits as float32 division; the final Narrow
// keeps the result finite.
//
// When Saturated[T](c) reports true the quotient is taken over clamped
// operands and is not the relative uncertainty of the published value:
// at float32 the kilogram-hertz relationship yields exactly 1, and the
// kilogram-inverse meter relationship, whose value alone saturates, comes
// out about a thousand times too large. Read such constants at float64.
func Precision[T Float](c Constant) T {
	v := Value[T](c)
	if v == 0 {
		return 0
	}
	u := Uncertainty[T](c)

	return Narrow[T](math.Abs(float64(u) / float64(v)))
}

// Saturated reports whether reading c at width T clamps its value or its
// uncertainty to ±math.MaxFloat32. It is always false for float64 widths.
func Saturated[T Float](c Constant) bool {
	if unsafe.Sizeof(T(0)) != 4 {
		return false
	}

	return math.Abs(c.value) > math.MaxFloat32 || c.uncertainty > math.MaxFloat32
}

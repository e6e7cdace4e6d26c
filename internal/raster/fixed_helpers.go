// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "math"

// FDot8 is an 8.8 fixed-point type, used for coverage/alpha scaling where
// FDot6's precision is finer than needed but FDot16's is overkill.
type FDot8 int32

// FDot6FromInt converts an integer to FDot6 fixed-point.
func FDot6FromInt(i int32) FDot6 {
	return i << FDot6Shift
}

// FDot6FromFloat32 converts a float32 to FDot6 fixed-point.
func FDot6FromFloat32(f float32) FDot6 {
	return saturateInt32(int64(math.Round(float64(f) * float64(FDot6One))))
}

// FDot6FromFloat64 converts a float64 to FDot6 fixed-point.
func FDot6FromFloat64(f float64) FDot6 {
	return saturateInt32(int64(math.Round(f * float64(FDot6One))))
}

// FDot6ToFloat32 converts FDot6 fixed-point to float32.
func FDot6ToFloat32(f FDot6) float32 {
	return float32(f) / float32(FDot6One)
}

// FDot6ToFloat64 converts FDot6 fixed-point to float64.
func FDot6ToFloat64(f FDot6) float64 {
	return float64(f) / float64(FDot6One)
}

// FDot6Div divides two FDot6 values, producing an FDot16 result.
// Division by zero saturates to the maximum magnitude value signed by a.
func FDot6Div(a, b FDot6) FDot16 {
	if b == 0 {
		if a >= 0 {
			return 0x7FFFFFFF
		}
		return -0x7FFFFFFF
	}
	return saturateInt32((int64(a) << FDot16Shift) / int64(b))
}

// FDot6CanConvertToFDot16 reports whether v can be shifted into FDot16
// (left by FDot16Shift-FDot6Shift bits) without overflowing int32.
func FDot6CanConvertToFDot16(v FDot6) bool {
	const limit FDot6 = math.MaxInt32 >> (FDot16Shift - FDot6Shift)
	return v >= -limit && v <= limit
}

// FDot6UpShift shifts an FDot6 value left by shift bits, producing an
// FDot16-scaled forward-differencing coefficient. Used by the cubic edge
// setup to pre-scale coefficients before the per-step downshift.
func FDot6UpShift(v FDot6, shift int) FDot16 {
	return v << uint(shift)
}

// FDot6ToFixedDiv2 converts an FDot6 value to FDot16 and divides by two.
// Equivalent to FDot6ToFDot16(v) / 2 but avoids the intermediate overflow
// that a naive shift-then-divide could hit for large v.
func FDot6ToFixedDiv2(v FDot6) FDot16 {
	return v << (FDot16Shift - FDot6Shift - 1)
}

// FDot16FromFloat32 converts a float32 to FDot16 fixed-point, saturating
// on overflow rather than wrapping.
func FDot16FromFloat32(f float32) FDot16 {
	return saturateInt32(int64(math.Round(float64(f) * float64(FDot16One))))
}

// FDot16FromFloat64 converts a float64 to FDot16 fixed-point, saturating
// on overflow rather than wrapping.
func FDot16FromFloat64(f float64) FDot16 {
	return saturateInt32(int64(math.Round(f * float64(FDot16One))))
}

// FDot16ToFloat32 converts FDot16 fixed-point to float32.
func FDot16ToFloat32(f FDot16) float32 {
	return float32(f) / float32(FDot16One)
}

// FDot16ToFloat64 converts FDot16 fixed-point to float64.
func FDot16ToFloat64(f FDot16) float64 {
	return float64(f) / float64(FDot16One)
}

// FDot16FloorToInt returns the floor of an FDot16 value as an int32.
func FDot16FloorToInt(f FDot16) int32 {
	return f >> FDot16Shift
}

// FDot16CeilToInt returns the ceiling of an FDot16 value as an int32.
func FDot16CeilToInt(f FDot16) int32 {
	return (f + FDot16One - 1) >> FDot16Shift
}

// FDot16RoundToInt returns the rounded value of an FDot16 as an int32.
func FDot16RoundToInt(f FDot16) int32 {
	return (f + FDot16Half) >> FDot16Shift
}

// FDot16Mul multiplies two FDot16 values.
func FDot16Mul(a, b FDot16) FDot16 {
	return saturateInt32((int64(a) * int64(b)) >> FDot16Shift)
}

// FDot16Div divides two plain int32 values, producing an FDot16 result.
// Division by zero saturates to the maximum magnitude value signed by numer.
func FDot16Div(numer, denom int32) FDot16 {
	if denom == 0 {
		if numer >= 0 {
			return 0x7FFFFFFF
		}
		return -0x7FFFFFFF
	}
	return saturateInt32((int64(numer) << FDot16Shift) / int64(denom))
}

// FDot8FromFDot16 converts an FDot16 value to FDot8, rounding to nearest.
func FDot8FromFDot16(v FDot16) FDot8 {
	return FDot8((v + (1 << 7)) >> 8)
}

// leftShift shifts v left by shift bits. A negative shift becomes a right
// shift, matching Skia's SkLeftShift helper used throughout curve setup.
func leftShift(v int32, shift int) int32 {
	if shift < 0 {
		return v >> uint(-shift)
	}
	return v << uint(shift)
}

// leftShift64 is the int64 equivalent of leftShift.
func leftShift64(v int64, shift int) int64 {
	if shift < 0 {
		return v >> uint(-shift)
	}
	return v << uint(shift)
}

// saturateInt32 clamps an int64 to the representable int32 range instead
// of wrapping, protecting fixed-point math from silent overflow.
func saturateInt32(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

// absInt32 returns the absolute value of v.
func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// maxInt32 returns the larger of a and b.
func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

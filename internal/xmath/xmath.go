// Package xmath collects the small numeric helpers that the original
// C sources re-declare as MIN/MAX/FIX/UFIX/ROUND macros in every
// translation unit. Go generics let wavelet, colorspace and spiht
// share one copy.
package xmath

import "golang.org/x/exp/constraints"

// Clamp restricts v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Round rounds x to the nearest integer, halves rounding away from
// zero, matching the original sources' ROUND(_x) macro.
func Round(x float64) int {
	if x < 0 {
		return int(x - 0.5)
	}
	return int(x + 0.5)
}

// ClampByte clamps v to [0, 255], matching the original sources' FIX
// macro used after DC level-shift restoration.
func ClampByte(v int) int {
	return Clamp(v, 0, 255)
}

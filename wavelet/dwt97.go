// Package wavelet implements the two lifting-based wavelet transforms
// the pipeline can select between: the Daubechies 9/7 biorthogonal
// filter and the Pevnyi-Zheludev Butterworth filter. Both operate
// in-place on a row-major float64 image buffer, applying a DC level
// shift before analysis and its inverse (with clipping) after
// synthesis.
package wavelet

import "github.com/asimakov/tiwave/internal/xmath"

// Daubechies 9/7 lifting coefficients (Cohen-Daubechies-Feauveau
// biorthogonal filter), as used by the reference encoder.
const (
	d97Alpha   = -1.58615986717275
	d97Beta    = -0.05297864003258
	d97Gamma   = 0.88293362717904
	d97Delta   = 0.44350482244527
	d97Epsilon = 1.14960430535816
)

// daub97Analysis1D runs the four-step lifting forward transform over
// signalIn (length n, must be even and >= 4), writing the
// low-pass/high-pass deinterleaved result into signalOut.
func daub97Analysis1D(signalIn, signalOut []float64, n int) {
	for i := 1; i < n-2; i += 2 {
		signalIn[i] += d97Alpha * (signalIn[i-1] + signalIn[i+1])
	}
	signalIn[n-1] += 2 * d97Alpha * signalIn[n-2]

	signalIn[0] += 2 * d97Beta * signalIn[1]
	for i := 2; i < n; i += 2 {
		signalIn[i] += d97Beta * (signalIn[i+1] + signalIn[i-1])
	}

	for i := 1; i < n-2; i += 2 {
		signalIn[i] += d97Gamma * (signalIn[i-1] + signalIn[i+1])
	}
	signalIn[n-1] += 2 * d97Gamma * signalIn[n-2]

	signalIn[0] = d97Epsilon * (signalIn[0] + 2*d97Delta*signalIn[1])
	for i := 2; i < n; i += 2 {
		signalIn[i] = d97Epsilon * (signalIn[i] + d97Delta*(signalIn[i+1]+signalIn[i-1]))
	}

	for i := 1; i < n; i += 2 {
		signalIn[i] /= -d97Epsilon
	}

	half := n >> 1
	even := signalOut[:half]
	odd := signalOut[half : 2*half]

	for i := 0; i < half; i++ {
		even[i] = signalIn[i<<1]
		odd[i] = signalIn[(i<<1)+1]
	}
}

// daub97Synthesis1D inverts daub97Analysis1D.
func daub97Synthesis1D(signalIn, signalOut []float64, n int) {
	half := n >> 1
	even := signalIn[:half]
	odd := signalIn[half : 2*half]

	for i := 0; i < half; i++ {
		signalOut[i<<1] = even[i]
		signalOut[(i<<1)+1] = odd[i]
	}

	for i := 1; i < n; i += 2 {
		signalOut[i] *= -d97Epsilon
	}

	signalOut[0] = signalOut[0]/d97Epsilon - 2*d97Delta*signalOut[1]
	for i := 2; i < n; i += 2 {
		signalOut[i] = signalOut[i]/d97Epsilon - d97Delta*(signalOut[i+1]+signalOut[i-1])
	}

	for i := 1; i < n-2; i += 2 {
		signalOut[i] -= d97Gamma * (signalOut[i-1] + signalOut[i+1])
	}
	signalOut[n-1] -= 2 * d97Gamma * signalOut[n-2]

	signalOut[0] -= 2 * d97Beta * signalOut[1]
	for i := 2; i < n; i += 2 {
		signalOut[i] -= d97Beta * (signalOut[i+1] + signalOut[i-1])
	}

	for i := 1; i < n-2; i += 2 {
		signalOut[i] -= d97Alpha * (signalOut[i-1] + signalOut[i+1])
	}
	signalOut[n-1] -= 2 * d97Alpha * signalOut[n-2]
}

// Daub97Analysis2D applies levels of separable column-then-row 9/7
// analysis to image (rows*cols float64 samples, row-major), after
// subtracting the DC level shift of 128 and rounding the final
// coefficients to the nearest integer.
func Daub97Analysis2D(image []float64, rows, cols, levels int) {
	max := xmath.Max(rows, cols)
	signalIn := make([]float64, max)
	signalOut := make([]float64, max)

	for i := range image {
		image[i] -= 128.0
	}

	curRows, curCols := rows, cols

	for level := 1; level <= levels; level++ {
		for i := 0; i < curCols; i++ {
			for j := 0; j < curRows; j++ {
				signalIn[j] = image[j*cols+i]
			}
			daub97Analysis1D(signalIn, signalOut, curRows)
			for j := 0; j < curRows; j++ {
				image[j*cols+i] = signalOut[j]
			}
		}

		for i := 0; i < curRows; i++ {
			row := image[i*cols : i*cols+curCols]
			copy(signalIn, row)
			daub97Analysis1D(signalIn, signalOut, curCols)
			copy(row, signalOut[:curCols])
		}

		curCols >>= 1
		curRows >>= 1
	}

	for i := range image {
		image[i] = float64(xmath.Round(image[i]))
	}
}

// Daub97Synthesis2D inverts Daub97Analysis2D: levels of separable
// row-then-column synthesis followed by undoing the DC level shift and
// clipping to [0,255].
func Daub97Synthesis2D(image []float64, rows, cols, levels int) {
	max := xmath.Max(rows, cols)
	signalIn := make([]float64, max)
	signalOut := make([]float64, max)

	curCols := cols >> (levels - 1)
	curRows := rows >> (levels - 1)

	for level := 1; level <= levels; level++ {
		for i := 0; i < curRows; i++ {
			row := image[i*cols : i*cols+curCols]
			copy(signalIn, row)
			daub97Synthesis1D(signalIn, signalOut, curCols)
			copy(row, signalOut[:curCols])
		}

		for i := 0; i < curCols; i++ {
			for j := 0; j < curRows; j++ {
				signalIn[j] = image[j*cols+i]
			}
			daub97Synthesis1D(signalIn, signalOut, curRows)
			for j := 0; j < curRows; j++ {
				image[j*cols+i] = signalOut[j]
			}
		}

		curCols <<= 1
		curRows <<= 1
	}

	for i := range image {
		image[i] = float64(xmath.ClampByte(xmath.Round(image[i] + 128.0)))
	}
}

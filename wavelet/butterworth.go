package wavelet

import "github.com/asimakov/tiwave/internal/xmath"

// Butterworth (Pevnyi-Zheludev) lifting constants.
const (
	bwGamma      = 0.1715728752538099023966225515806
	bwAlpha      = 0.3333333333333333333333333333333
	bwNormFactor = 1.4142135623730950488016887242097
	bwLookahead  = 8
)

// filterR3 realizes the recursive Φ3 prediction filter's forward and
// backward causal sweeps, with a lookahead-bounded initial value at
// each boundary (the filter has no finite impulse response, so the
// boundary start value is approximated by truncating its infinite
// series to bwLookahead terms).
func filterR3(x, y, t []float64, n int) {
	lookahead := xmath.Min(n, bwLookahead)

	initVal := x[0]
	powVal := -bwAlpha
	for i := 1; i <= lookahead; i++ {
		initVal += powVal * x[i-1]
		powVal *= -bwAlpha
	}
	y[0] = initVal

	for i := 1; i < n; i++ {
		y[i] = x[i-1] - bwAlpha*y[i-1]
	}

	initVal = x[n-1]
	powVal = -bwAlpha
	for i := 1; i <= lookahead; i++ {
		initVal += powVal * x[n-i]
		powVal *= -bwAlpha
	}
	t[n-1] = initVal

	for i := n - 2; i >= 0; i-- {
		t[i] = x[i] - bwAlpha*t[i+1]
	}

	for i := 0; i < n-1; i++ {
		y[i] = (-8.0*t[i] - 8.0/9.0*y[i] + x[i+1] + 35.0/3.0*x[i]) / 6.0
	}
	y[n-1] = (-8.0*t[n-1] - 8.0/9.0*y[n-1] + x[n-1] + 35.0/3.0*x[n-1]) / 6.0
}

// filterR2 realizes the recursive F2 smoothing filter the same way.
func filterR2(x, y, t []float64, n int) {
	lookahead := xmath.Min(n, bwLookahead)

	initVal := x[0]
	powVal := -bwGamma
	for i := 1; i <= lookahead; i++ {
		initVal += powVal * x[i-1]
		powVal *= -bwGamma
	}
	y[0] = initVal

	for i := 1; i < n; i++ {
		y[i] = x[i] - bwGamma*y[i-1]
	}

	initVal = x[n-1]
	powVal = -bwGamma
	for i := 1; i <= lookahead; i++ {
		initVal += powVal * x[n-i]
		powVal *= -bwGamma
	}
	t[n-1] = initVal

	for i := n - 2; i >= 0; i-- {
		t[i] = x[i+1] - bwGamma*t[i+1]
	}

	for i := 0; i < n; i++ {
		y[i] = (4.0 * bwGamma / (1.0 + bwGamma)) * (y[i] + t[i])
	}
}

func bwF2(x, y, t []float64, n int) { filterR2(x, y, t, n) }

// bwPhi3 is F2's complement: a Φ3 prediction pass followed by the
// fixed 0.5 subband scaling the lifting step requires.
func bwPhi3(x, y, t []float64, n int) {
	filterR3(x, y, t, n)
	for i := 0; i < n; i++ {
		y[i] *= 0.5
	}
}

// decompose runs one level of the Butterworth analysis lifting step
// on a 1D signal of even length n.
func decompose(x, y []float64, n int) {
	half := n >> 1

	temp1 := x[:half]
	temp2 := x[half:n]

	even := y[:half]
	odd := y[half:n]

	for i := 0; i < half; i++ {
		even[i] = x[i<<1]
		odd[i] = x[(i<<1)+1]
	}

	bwF2(even, temp1, temp2, half)
	for i := 0; i < half; i++ {
		odd[i] -= temp1[i]
	}

	bwPhi3(odd, temp1, temp2, half)
	for i := 0; i < half; i++ {
		even[i] += temp1[i]
	}

	for i := 0; i < half; i++ {
		even[i] *= bwNormFactor
		odd[i] /= bwNormFactor
	}
}

// reconstruct inverts decompose.
func reconstruct(x, y []float64, n int) {
	half := n >> 1

	even := x[:half]
	odd := x[half:n]

	temp1 := y[:half]
	temp2 := y[half:n]

	for i := 0; i < half; i++ {
		even[i] /= bwNormFactor
		odd[i] *= bwNormFactor
	}

	bwPhi3(odd, temp1, temp2, half)
	for i := 0; i < half; i++ {
		even[i] -= temp1[i]
	}

	bwF2(even, temp1, temp2, half)
	for i := 0; i < half; i++ {
		odd[i] += temp1[i]
	}

	for i := 0; i < half; i++ {
		y[i<<1] = even[i]
		y[(i<<1)+1] = odd[i]
	}
}

// ButterworthAnalysis2D applies levels of separable row-then-column
// Butterworth analysis to image (height*width float64 samples,
// row-major), after subtracting the DC level shift of 128 and
// rounding the final coefficients to the nearest integer.
func ButterworthAnalysis2D(image []float64, width, height, levels int) {
	max := xmath.Max(width, height)
	signalIn := make([]float64, max)
	signalOut := make([]float64, max)

	for i := range image {
		image[i] -= 128.0
	}

	curWidth, curHeight := width, height

	for level := 1; level <= levels; level++ {
		for i := 0; i < curHeight; i++ {
			row := image[i*width : i*width+curWidth]
			copy(signalIn, row)
			decompose(signalIn, signalOut, curWidth)
			copy(row, signalOut[:curWidth])
		}

		for i := 0; i < curWidth; i++ {
			for j := 0; j < curHeight; j++ {
				signalIn[j] = image[j*width+i]
			}
			decompose(signalIn, signalOut, curHeight)
			for j := 0; j < curHeight; j++ {
				image[j*width+i] = signalOut[j]
			}
		}

		curWidth >>= 1
		curHeight >>= 1
	}

	for i := range image {
		image[i] = float64(xmath.Round(image[i]))
	}
}

// ButterworthSynthesis2D inverts ButterworthAnalysis2D: levels of
// separable row-then-column synthesis followed by undoing the DC
// level shift and clipping to [0,255].
func ButterworthSynthesis2D(image []float64, width, height, levels int) {
	max := xmath.Max(width, height)
	signalIn := make([]float64, max)
	signalOut := make([]float64, max)

	curWidth := width >> (levels - 1)
	curHeight := height >> (levels - 1)

	for level := 1; level <= levels; level++ {
		for i := 0; i < curHeight; i++ {
			row := image[i*width : i*width+curWidth]
			copy(signalIn, row)
			reconstruct(signalIn, signalOut, curWidth)
			copy(row, signalOut[:curWidth])
		}

		for i := 0; i < curWidth; i++ {
			for j := 0; j < curHeight; j++ {
				signalIn[j] = image[j*width+i]
			}
			reconstruct(signalIn, signalOut, curHeight)
			for j := 0; j < curHeight; j++ {
				image[j*width+i] = signalOut[j]
			}
		}

		curWidth <<= 1
		curHeight <<= 1
	}

	for i := range image {
		image[i] = float64(xmath.ClampByte(xmath.Round(image[i] + 128.0)))
	}
}

package tiwave

import (
	"github.com/asimakov/tiwave/container"
	"github.com/asimakov/tiwave/spiht"
	"github.com/asimakov/tiwave/wavelet"
)

func analyze(plane []float64, rows, cols, scales int, kind WaveletKind) {
	if kind == WaveletButterworth {
		wavelet.ButterworthAnalysis2D(plane, cols, rows, scales)
	} else {
		wavelet.Daub97Analysis2D(plane, rows, cols, scales)
	}
}

func synthesize(plane []float64, rows, cols, scales int, kind WaveletKind) {
	if kind == WaveletButterworth {
		wavelet.ButterworthSynthesis2D(plane, cols, rows, scales)
	} else {
		wavelet.Daub97Synthesis2D(plane, rows, cols, scales)
	}
}

// encodeChannel extends one 8-bit channel to the aligned plane size,
// runs the forward wavelet transform and SPIHT-codes it into budget
// bytes, returning the number of bytes actually used.
func encodeChannel(channel []byte, rows, cols, alignRows, alignCols, scales int, kind WaveletKind, budget int) ([]byte, int, error) {
	plane := container.ExtendImage(channel, rows, cols, alignRows, alignCols)
	analyze(plane, alignRows, alignCols, scales, kind)

	out := make([]byte, budget)
	n, err := spiht.EncodeDWT(plane, alignRows, alignCols, scales, out)
	if err != nil {
		return nil, 0, err
	}
	return out, n, nil
}

// decodeChannel inverts encodeChannel: it SPIHT-decodes coded (or, if
// coded is too short to be useful, skips straight to a zero plane),
// runs the inverse wavelet transform and crops back to rows*cols.
func decodeChannel(coded []byte, rows, cols, alignRows, alignCols, scales int, kind WaveletKind) ([]byte, error) {
	plane := make([]float64, alignRows*alignCols)

	if len(coded) >= 2 {
		if err := spiht.DecodeDWT(plane, alignRows, alignCols, scales, coded); err != nil {
			return nil, err
		}
	}

	synthesize(plane, alignRows, alignCols, scales, kind)
	return container.ExtractImage(plane, alignRows, alignCols, rows, cols), nil
}

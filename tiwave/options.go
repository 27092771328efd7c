package tiwave

import "github.com/asimakov/tiwave/container"

// WaveletKind selects between the two lifting transforms the codec
// supports.
type WaveletKind int

const (
	// WaveletDaub97 selects the Daubechies 9/7 biorthogonal transform
	// (the higher-quality, default choice).
	WaveletDaub97 WaveletKind = iota
	// WaveletButterworth selects the Butterworth (Pevnyi-Zheludev)
	// transform.
	WaveletButterworth
)

func (k WaveletKind) containerTag() container.Wavelet {
	if k == WaveletButterworth {
		return container.WaveletButterworth
	}
	return container.WaveletDaub97
}

// defScales is the minimum decomposition depth used when Scales is 0
// and the image's own power-of-two factorization is shallower.
const defScales = 5

// Default channel budget ratios for truecolor encoding, out of 100.
const (
	defLumRatio = 90
	defCbRatio  = 5
	defCrRatio  = 5
)

// Options configures a tiwave Encode call. It implements codec.Options.
type Options struct {
	// Wavelet selects the lifting transform. Zero value is Daub97.
	Wavelet WaveletKind

	// DesiredSize is the target size, in bytes, of the encoded
	// stream including its container header. The SPIHT coder stops
	// emitting bits once this budget is exhausted, so actual output
	// size is always <= DesiredSize and is usually slightly smaller.
	DesiredSize int

	// LumRatio, CbRatio, CrRatio split DesiredSize's budget across
	// the three channels of a truecolor image, as percentages
	// summing to 100. Leaving all three zero selects the codec's
	// built-in 90/5/5 default. Ignored for grayscale images.
	LumRatio, CbRatio, CrRatio int

	// Scales is the number of wavelet decomposition levels. Zero
	// selects automatic scale selection from the image dimensions.
	Scales int
}

// Validate checks that o describes a usable encode configuration.
func (o *Options) Validate() error {
	if o.DesiredSize <= 0 {
		return ErrBadParams
	}
	if o.Scales < 0 {
		return ErrBadParams
	}

	sum := o.LumRatio + o.CbRatio + o.CrRatio
	if sum != 0 && sum != 100 {
		return ErrBadParams
	}
	if sum != 0 && (o.LumRatio == 0 || o.CbRatio == 0 || o.CrRatio == 0) {
		return ErrBadParams
	}
	if o.LumRatio < 0 || o.CbRatio < 0 || o.CrRatio < 0 {
		return ErrBadParams
	}

	return nil
}

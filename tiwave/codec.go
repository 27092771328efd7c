package tiwave

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/asimakov/tiwave/codec"
	"github.com/asimakov/tiwave/colorspace"
	"github.com/asimakov/tiwave/container"
)

// UID is this codec's registry identifier. It is not a DICOM transfer
// syntax (this format predates and has no relation to DICOM) - it is
// simply a stable, dotted identifier in the spirit of the ones the
// codec registry otherwise deals in.
const UID = "1.3.6.1.4.1.0.9999.1.1"

const maxDimension = 16383

var _ codec.Codec = (*Codec)(nil)

// Codec implements codec.Codec for the wavelet/SPIHT image format.
type Codec struct{}

// NewCodec constructs a ready-to-use Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Name returns a human-readable codec name.
func (c *Codec) Name() string {
	return "Wavelet/SPIHT"
}

// UID returns the codec's registry identifier.
func (c *Codec) UID() string {
	return UID
}

// Encode compresses raw pixel data into a framed wavelet/SPIHT
// stream. params.Options must be a *Options (or nil to accept the
// package defaults).
func (c *Codec) Encode(params codec.EncodeParams) ([]byte, error) {
	runID := uuid.New()

	opts, ok := params.Options.(*Options)
	if !ok || opts == nil {
		opts = &Options{DesiredSize: len(params.PixelData)}
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if params.Width <= 0 || params.Height <= 0 {
		return nil, ErrBadParams
	}
	if params.Width > maxDimension || params.Height > maxDimension {
		return nil, ErrBadParams
	}
	if params.Components != 1 && params.Components != 3 {
		return nil, ErrBadParams
	}

	imgType := container.ImageGrayscale
	if params.Components == 3 {
		imgType = container.ImageTruecolor
	}

	headerBudget := container.HeaderSize + 2
	if imgType == container.ImageTruecolor {
		headerBudget = container.HeaderSize + 6
	}
	if opts.DesiredSize < headerBudget {
		return nil, ErrBadParams
	}

	scales := opts.Scales
	if scales == 0 {
		scales = autoScales(params.Width, params.Height)
	}
	alignWidth := align(params.Width, scales)
	alignHeight := align(params.Height, scales)

	log.Printf("tiwave encode %s: %dx%d components=%d scales=%d budget=%d", runID, params.Width, params.Height, params.Components, scales, opts.DesiredSize)

	var lumActual, cbActual, crActual int
	var merged []byte

	if imgType == container.ImageGrayscale {
		coded, n, err := encodeChannel(params.PixelData, params.Height, params.Width, alignHeight, alignWidth, scales, opts.Wavelet, opts.DesiredSize-container.HeaderSize)
		if err != nil {
			return nil, fmt.Errorf("tiwave: encode grayscale channel: %w", err)
		}
		lumActual = n
		merged = coded[:n]
	} else {
		payload := opts.DesiredSize - container.HeaderSize
		lumSize, cbSize, crSize := splitBudget(payload, opts.LumRatio, opts.CbRatio, opts.CrRatio)

		ycbcr := append([]byte(nil), params.PixelData...)
		colorspace.ToYCbCr(ycbcr)
		planes := deinterleaveRGB(ycbcr, params.Width, params.Height)

		budgets := [3]int{lumSize, cbSize, crSize}
		coded := make([][]byte, 3)
		actual := make([]int, 3)

		for i := 0; i < 3; i++ {
			ch, n, err := encodeChannel(planes[i], params.Height, params.Width, alignHeight, alignWidth, scales, opts.Wavelet, budgets[i])
			if err != nil {
				return nil, fmt.Errorf("tiwave: encode channel %d: %w", i, err)
			}
			coded[i] = ch[:n]
			actual[i] = n
		}

		lumActual, cbActual, crActual = actual[0], actual[1], actual[2]
		merged = container.MergeChannels(coded[0], coded[1], coded[2])
	}

	hdr := container.Header{
		Width:   params.Width,
		Height:  params.Height,
		Scales:  scales,
		ImgType: imgType,
		Wavelet: opts.Wavelet.containerTag(),
		LumSize: lumActual,
		CbSize:  cbActual,
		CrSize:  crActual,
	}

	out := make([]byte, 0, container.HeaderSize+len(merged))
	out = append(out, container.Encode(hdr)...)
	out = append(out, merged...)

	log.Printf("tiwave encode %s: wrote %d bytes", runID, len(out))

	return out, nil
}

// Decode inverts Encode.
func (c *Codec) Decode(data []byte) (*codec.DecodeResult, error) {
	runID := uuid.New()

	hdr, err := container.Decode(data)
	if err != nil {
		return nil, ErrDamagedHeader
	}

	if hdr.Width <= 0 || hdr.Height <= 0 || hdr.Width > maxDimension || hdr.Height > maxDimension {
		return nil, ErrBadParams
	}

	payload := data[container.HeaderSize:]

	if hdr.ImgType != container.ImageGrayscale && hdr.ImgType != container.ImageTruecolor {
		return nil, ErrBadParams
	}
	if hdr.ImgType == container.ImageGrayscale && len(data) < container.HeaderSize+2 {
		return nil, ErrDamagedHeader
	}
	if hdr.ImgType == container.ImageTruecolor && len(data) < container.HeaderSize+6 {
		return nil, ErrDamagedHeader
	}

	kind := WaveletDaub97
	if hdr.Wavelet == container.WaveletButterworth {
		kind = WaveletButterworth
	}

	alignWidth := align(hdr.Width, hdr.Scales)
	alignHeight := align(hdr.Height, hdr.Scales)

	log.Printf("tiwave decode %s: %dx%d type=%d scales=%d", runID, hdr.Width, hdr.Height, hdr.ImgType, hdr.Scales)

	var pixels []byte
	components := 1

	if hdr.ImgType == container.ImageGrayscale {
		pixels, err = decodeChannel(payload, hdr.Height, hdr.Width, alignHeight, alignWidth, hdr.Scales, kind)
		if err != nil {
			return nil, fmt.Errorf("tiwave: decode grayscale channel: %w", err)
		}
	} else {
		components = 3

		lum, cb, cr := container.SplitChannels(payload, hdr.LumSize, hdr.CbSize, hdr.CrSize)

		y, err := decodeChannel(lum, hdr.Height, hdr.Width, alignHeight, alignWidth, hdr.Scales, kind)
		if err != nil {
			return nil, fmt.Errorf("tiwave: decode luminance channel: %w", err)
		}
		cbPlane, err := decodeChannel(cb, hdr.Height, hdr.Width, alignHeight, alignWidth, hdr.Scales, kind)
		if err != nil {
			return nil, fmt.Errorf("tiwave: decode cb channel: %w", err)
		}
		crPlane, err := decodeChannel(cr, hdr.Height, hdr.Width, alignHeight, alignWidth, hdr.Scales, kind)
		if err != nil {
			return nil, fmt.Errorf("tiwave: decode cr channel: %w", err)
		}

		pixels = interleave3([3][]byte{y, cbPlane, crPlane})
		colorspace.ToRGB(pixels)
	}

	log.Printf("tiwave decode %s: produced %d bytes", runID, len(pixels))

	return &codec.DecodeResult{
		PixelData:  pixels,
		Width:      hdr.Width,
		Height:     hdr.Height,
		Components: components,
		BitDepth:   8,
	}, nil
}

// deinterleaveRGB splits an interleaved R,G,B byte buffer into three
// single-channel planes, in R,G,B order.
func deinterleaveRGB(buf []byte, width, height int) [3][]byte {
	n := width * height
	var planes [3][]byte
	planes[0] = make([]byte, n)
	planes[1] = make([]byte, n)
	planes[2] = make([]byte, n)

	for i := 0; i < n; i++ {
		planes[0][i] = buf[i*3+0]
		planes[1][i] = buf[i*3+1]
		planes[2][i] = buf[i*3+2]
	}

	return planes
}

// interleave3 is the inverse of deinterleaveRGB: it zips three
// equal-length channel planes into one interleaved buffer.
func interleave3(planes [3][]byte) []byte {
	n := len(planes[0])
	out := make([]byte, n*3)

	for i := 0; i < n; i++ {
		out[i*3+0] = planes[0][i]
		out[i*3+1] = planes[1][i]
		out[i*3+2] = planes[2][i]
	}

	return out
}

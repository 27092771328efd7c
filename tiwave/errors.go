// Package tiwave orchestrates the wavelet codec end to end: it wires
// colorspace conversion, image extension, wavelet analysis/synthesis,
// SPIHT coding and channel multiplexing into the codec.Codec
// interface.
package tiwave

import "errors"

// ErrBadParams is returned when the caller's EncodeParams/Options are
// out of range (bad dimensions, bad wavelet selection, ratios that
// don't sum to 100, and so on). Decode also returns it when a header
// that passed its checksum declares out-of-range dimensions or an
// unknown image type.
var ErrBadParams = errors.New("tiwave: invalid parameters")

// ErrDamagedHeader is returned when a stream's container header has
// the wrong magic number, fails checksum validation, or is too short
// to decode.
var ErrDamagedHeader = errors.New("tiwave: damaged stream header")

// ErrInternal wraps an unexpected failure from a lower layer (wavelet
// transform, SPIHT coder) that should be structurally impossible given
// validated inputs.
var ErrInternal = errors.New("tiwave: internal error")

package spiht

import "errors"

// ErrBufferTooSmall is returned when the destination buffer cannot
// even hold the one-byte threshold header plus a minimal bitstream.
var ErrBufferTooSmall = errors.New("spiht: buffer too small")

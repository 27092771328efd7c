// Package colorspace converts interleaved RGB pixel buffers to and
// from the lossy YCbCr representation the wavelet stages operate on.
package colorspace

import "github.com/asimakov/tiwave/internal/xmath"

// ToYCbCr converts buf (an interleaved R,G,B,R,G,B,... buffer, length
// a multiple of 3) to Y,Cb,Cr in place.
func ToYCbCr(buf []byte) {
	for i := 0; i+2 < len(buf); i += 3 {
		r := float64(buf[i])
		g := float64(buf[i+1])
		b := float64(buf[i+2])

		lum := xmath.Round(0.299*r + 0.587*g + 0.114*b)
		cb := xmath.Round((b-float64(lum))/1.772 + 127.5)
		cr := xmath.Round((r-float64(lum))/1.402 + 127.5)

		buf[i] = byte(xmath.ClampByte(lum))
		buf[i+1] = byte(xmath.ClampByte(cb))
		buf[i+2] = byte(xmath.ClampByte(cr))
	}
}

// ToRGB inverts ToYCbCr in place.
func ToRGB(buf []byte) {
	for i := 0; i+2 < len(buf); i += 3 {
		lum := float64(buf[i])
		cb := float64(buf[i+1]) - 127.5
		cr := float64(buf[i+2]) - 127.5

		r := xmath.Round(lum + cr*1.402)
		b := xmath.Round(lum + cb*1.772)
		g := xmath.Round((lum - 0.114*float64(b) - 0.299*float64(r)) / 0.587)

		buf[i] = byte(xmath.ClampByte(r))
		buf[i+1] = byte(xmath.ClampByte(g))
		buf[i+2] = byte(xmath.ClampByte(b))
	}
}

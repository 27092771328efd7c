package container

// ExtendImage copies an rows*cols byte image into the center of an
// alignRows*alignCols float64 plane and pads the margins by mirroring
// the image back on itself (whole-sample symmetric extension, edge
// sample repeated once), so the wavelet transform sees a plane of the
// caller's aligned dimensions (multiples of 2^levels) without
// introducing a hard discontinuity at the border.
func ExtendImage(src []byte, rows, cols, alignRows, alignCols int) []float64 {
	dst := make([]float64, alignRows*alignCols)

	padTop := (alignRows - rows) >> 1
	padLeft := (alignCols - cols) >> 1
	padRight := alignCols - cols - padLeft
	padBottom := alignRows - rows - padTop

	ps := 0
	pd := padTop*alignCols + padLeft
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[pd] = float64(src[ps])
			pd++
			ps++
		}
		pd += padRight + padLeft
	}

	p1 := padTop*alignCols + padLeft - 1
	p2 := padTop*alignCols + padLeft
	for i := 0; i < rows; i++ {
		for j := 0; j < padLeft; j++ {
			dst[p1] = dst[p2]
			p1--
			if j < cols-1 {
				p2++
			} else {
				p2--
			}
		}
		p1 += alignCols + padLeft
		p2 = p1 + 1
	}

	p1 = padTop*alignCols + padLeft + cols
	p2 = padTop*alignCols + padLeft + cols - 1
	for i := 0; i < rows; i++ {
		for j := 0; j < padRight; j++ {
			dst[p1] = dst[p2]
			p1++
			if j < cols-1 {
				p2--
			} else {
				p2++
			}
		}
		p1 += padLeft + cols
		p2 = p1 - 1
	}

	p1 = (padTop - 1) * alignCols
	p2 = padTop * alignCols
	for i := 0; i < alignCols; i++ {
		for j := 0; j < padTop; j++ {
			dst[p1] = dst[p2]
			p1 -= alignCols
			if j < rows-1 {
				p2 += alignCols
			} else {
				p2 -= alignCols
			}
		}
		p1 += padTop*alignCols + 1
		p2 = p1 + alignCols
	}

	p1 = (padTop + rows) * alignCols
	p2 = p1 - alignCols
	for i := 0; i < alignCols; i++ {
		for j := 0; j < padBottom; j++ {
			dst[p1] = dst[p2]
			p1 += alignCols
			if j < rows-1 {
				p2 -= alignCols
			} else {
				p2 += alignCols
			}
		}
		p1 -= padBottom*alignCols - 1
		p2 = p1 - alignCols
	}

	return dst
}

// ExtractImage is the inverse of ExtendImage: it crops the
// alignRows*alignCols plane back down to the original rows*cols
// image, truncating each sample to a byte. Callers must have already
// clamped src to [0,255] (the wavelet synthesis step does this), since
// this step performs a plain narrowing conversion, not a clamp.
func ExtractImage(src []float64, alignRows, alignCols, rows, cols int) []byte {
	dst := make([]byte, rows*cols)

	padTop := (alignRows - rows) >> 1
	padLeft := (alignCols - cols) >> 1
	padRight := alignCols - cols - padLeft

	ps := padTop*alignCols + padLeft
	pd := 0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[pd] = byte(src[ps])
			pd++
			ps++
		}
		ps += padRight + padLeft
	}

	return dst
}

package tiwave

// align rounds x up to the next multiple of 1<<scales, leaving it
// unchanged if it is already aligned.
func align(x, scales int) int {
	mask := (1 << uint(scales)) - 1
	if x&mask != 0 {
		return (x &^ mask) + (1 << uint(scales))
	}
	return x
}

// trailingZeroBits counts how many times x divides evenly by two,
// i.e. the position of its lowest set bit. Used by autoScales to read
// off how deep a dimension can be decomposed before an odd subband
// size would appear.
func trailingZeroBits(x int) int {
	bits := 0
	for x&1 != 1 {
		x >>= 1
		bits++
	}
	return bits
}

// autoScales picks a decomposition depth from the image dimensions
// when the caller leaves Scales at zero: at least defScales levels,
// or deeper still if both dimensions factor evenly into more powers
// of two than that.
func autoScales(width, height int) int {
	widthBits := trailingZeroBits(width)
	heightBits := trailingZeroBits(height)

	scales := widthBits
	if heightBits < scales {
		scales = heightBits
	}
	if scales < defScales {
		scales = defScales
	}
	return scales
}

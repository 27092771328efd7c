package tiwave

// splitBudget divides a truecolor stream's payload budget (the
// desired size minus the container header) across the three YCbCr
// channels. Each chroma channel gets at least 2 bytes (SPIHT needs
// room for its bit-count header byte plus at least one coded byte),
// minus a 4-byte reserve that historically accounted for channel
// framing overhead; luminance receives whatever remains so the three
// channels exactly cover the budget.
func splitBudget(payload, lumRatio, cbRatio, crRatio int) (lumSize, cbSize, crSize int) {
	if lumRatio == 0 {
		lumRatio, cbRatio, crRatio = defLumRatio, defCbRatio, defCrRatio
	}

	crSize = maxInt(2, (payload*crRatio/100)-4)
	cbSize = maxInt(2, (payload*cbRatio/100)-4)
	lumSize = payload - crSize - cbSize

	return lumSize, cbSize, crSize
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

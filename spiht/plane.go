// Package spiht implements the SPIHT (Set Partitioning in Hierarchical
// Trees) embedded coder: it turns one subband-decomposed wavelet plane
// into a bit-plane-ordered, arithmetic-coded significance stream, and
// inverts that stream back into a plane.
package spiht

import "github.com/asimakov/tiwave/internal/xmath"

type nodeKind int

const (
	typeS nodeKind = iota
	typeA
	typeB
)

// plane is a rows*cols row-major wavelet coefficient buffer, addressed
// the way the recursive zerotree search walks it: by absolute
// row/column, ignoring the type-A/type-B sign carried on list nodes.
type plane struct {
	data       []float64
	rows, cols int
	levels     int
}

func (p *plane) at(row, col int) float64 { return p.data[row*p.cols+col] }

func (p *plane) set(row, col int, v float64) { p.data[row*p.cols+col] = v }

func (p *plane) reset() {
	for i := range p.data {
		p.data[i] = 0
	}
}

// initialThreshold scans the whole plane for the largest magnitude and
// returns the largest power of two not exceeding it (0 if the plane is
// all zero).
func (p *plane) initialThreshold() int {
	max := 0
	for row := 0; row < p.rows; row++ {
		for col := 0; col < p.cols; col++ {
			if v := int(xmath.Abs(p.at(row, col))); v > max {
				max = v
			}
		}
	}

	if max == 0 {
		return 0
	}

	bits := 0
	for temp := max; temp != 0; temp >>= 1 {
		bits++
	}
	return 1 << (bits - 1)
}

// bitsForThreshold reports how many bits were set by initialThreshold
// to reach threshold; this is what the container's threshold header
// byte stores so the decoder can reconstruct the first threshold.
func bitsForThreshold(threshold int) int {
	bits := 0
	for temp := threshold; temp != 0; temp >>= 1 {
		bits++
	}
	return bits
}

func absCoord(v int16) int {
	if v < 0 {
		return int(-v)
	}
	return int(v)
}

// isZerotree reports whether every descendant of (row,col), across all
// finer scales, is insignificant at threshold. Doubles the candidate
// block each iteration, exactly mirroring the recursive descendant
// search the original zerotree test performs.
func (p *plane) isZerotree(threshold, row, col int) bool {
	minRow, maxRow := row<<1, (row+1)<<1
	minCol, maxCol := col<<1, (col+1)<<1

	for maxRow <= p.rows && maxCol <= p.cols {
		for r := minRow; r < maxRow; r++ {
			for c := minCol; c < maxCol; c++ {
				if int(xmath.Abs(p.at(r, c))) >= threshold {
					return false
				}
			}
		}
		minRow <<= 1
		maxRow <<= 1
		minCol <<= 1
		maxCol <<= 1
	}

	return true
}

func isValidNodeA(rows, cols, levels, row, col int) bool {
	if row < rows>>levels && col < cols>>levels {
		return false
	}
	if row >= rows>>1 || col >= cols>>1 {
		return false
	}
	return true
}

func isValidNodeB(rows, cols, levels, row, col int) bool {
	if row < rows>>levels && col < cols>>levels {
		return false
	}
	if row >= rows>>2 || col >= cols>>2 {
		return false
	}
	return true
}

// offspring4 returns the four children of the type-A set rooted at
// (row,col): (2r,2c), (2r,2c+1), (2r+1,2c), (2r+1,2c+1).
func offspring4(row, col int) [4][2]int {
	return [4][2]int{
		{row << 1, col << 1},
		{row << 1, (col << 1) + 1},
		{(row << 1) + 1, col << 1},
		{(row << 1) + 1, (col << 1) + 1},
	}
}

// isNodeSignificant tests significance at threshold for a coordinate
// interpreted as the given set kind: TYPE_S tests the single
// coefficient, TYPE_A tests the union of all descendants (the
// zerotree), TYPE_B tests the union of descendants excluding the
// immediate four children.
func (p *plane) isNodeSignificant(threshold int, kind nodeKind, row, col int) bool {
	switch kind {
	case typeS:
		return int(xmath.Abs(p.at(row, col))) >= threshold

	case typeA:
		return !p.isZerotree(threshold, row, col)

	case typeB:
		for _, off := range offspring4(row, col) {
			if !p.isZerotree(threshold, off[0], off[1]) {
				return true
			}
		}
		return false
	}

	return false
}

// initCoefficient reconstructs a newly-significant coefficient at the
// midpoint of its uncertainty bin, per the decoder's sign bit.
func (p *plane) initCoefficient(threshold, sign, row, col int) {
	v := float64(threshold + threshold>>1)
	if sign != 0 {
		v = -v
	}
	p.set(row, col, v)
}

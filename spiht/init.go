package spiht

import "github.com/asimakov/tiwave/spihtlist"

// seedLists populates LIP with every coordinate of the top-left
// (rows>>(levels-1)) x (cols>>(levels-1)) quadrant - the coarsest LL
// subband plus the three detail subbands of the deepest level - and
// seeds LIS with the subset of those that root a type-A set (i.e.
// lie outside the LL subband and actually have descendants).
func seedLists(rows, cols, levels int, lip, lis *spihtlist.NodeList) {
	maxRow := rows >> (levels - 1)
	maxCol := cols >> (levels - 1)

	for row := 0; row < maxRow; row++ {
		for col := 0; col < maxCol; col++ {
			lip.Append(int16(row), int16(col))
			if isValidNodeA(rows, cols, levels, row, col) {
				lis.Append(int16(row), int16(col))
			}
		}
	}
}

package spiht

import (
	"errors"

	"github.com/asimakov/tiwave/arith"
	"github.com/asimakov/tiwave/bitio"
	"github.com/asimakov/tiwave/internal/xmath"
	"github.com/asimakov/tiwave/spihtlist"
)

func signBit(v float64) int {
	if v > 0 {
		return 0
	}
	return 1
}

// encodeSignificancePass runs one significance sweep over LIP then
// LIS at threshold, emitting each decision through enc and mutating
// LIP/LSP/LIS exactly as the original set-partitioning pass does.
func encodeSignificancePass(p *plane, rows, cols, levels, threshold int, lip, lsp, lis *spihtlist.NodeList, enc *arith.Encoder) error {
	for node := lip.Front(); node != nil; {
		next := node.Next()

		row, col := int(node.Row), int(node.Col)
		if p.isNodeSignificant(threshold, typeS, row, col) {
			if err := enc.EncodeSymbol(1); err != nil {
				return err
			}
			sign := signBit(p.at(row, col))
			if err := enc.EncodeSymbol(sign); err != nil {
				return err
			}
			lip.Move(lsp, node)
		} else {
			if err := enc.EncodeSymbol(0); err != nil {
				return err
			}
		}

		node = next
	}

	for node := lis.Front(); node != nil; {
		next := node.Next()

		if node.Row > 0 || node.Col > 0 {
			row, col := int(node.Row), int(node.Col)

			significant := p.isNodeSignificant(threshold, typeA, row, col)
			if significant {
				if err := enc.EncodeSymbol(1); err != nil {
					return err
				}

				for _, off := range offspring4(row, col) {
					oRow, oCol := off[0], off[1]
					if p.isNodeSignificant(threshold, typeS, oRow, oCol) {
						if err := enc.EncodeSymbol(1); err != nil {
							return err
						}
						sign := signBit(p.at(oRow, oCol))
						if err := enc.EncodeSymbol(sign); err != nil {
							return err
						}
						lsp.Append(int16(oRow), int16(oCol))
					} else {
						if err := enc.EncodeSymbol(0); err != nil {
							return err
						}
						lip.Append(int16(oRow), int16(oCol))
					}
				}

				if isValidNodeB(rows, cols, levels, row, col) {
					node.Row = -node.Row
					node.Col = -node.Col
					lis.Move(lis, node)
				} else {
					lis.Remove(node)
				}
			} else {
				if err := enc.EncodeSymbol(0); err != nil {
					return err
				}
			}
		} else {
			row, col := absCoord(node.Row), absCoord(node.Col)

			if p.isNodeSignificant(threshold, typeB, row, col) {
				if err := enc.EncodeSymbol(1); err != nil {
					return err
				}

				for _, off := range offspring4(row, col) {
					lis.Append(int16(off[0]), int16(off[1]))
				}

				next = node.Next()
				lis.Remove(node)
			} else {
				if err := enc.EncodeSymbol(0); err != nil {
					return err
				}
			}
		}

		node = next
	}

	return nil
}

// encodeRefinementPass emits one more magnitude bit for every
// coefficient already in LSP, at bit position threshold.
func encodeRefinementPass(p *plane, threshold int, lsp *spihtlist.NodeList, enc *arith.Encoder) error {
	if threshold <= 0 {
		return nil
	}

	for node := lsp.Front(); node != nil; node = node.Next() {
		v := int(xmath.Abs(p.at(int(node.Row), int(node.Col))))
		bit := 0
		if v&threshold != 0 {
			bit = 1
		}
		if err := enc.EncodeSymbol(bit); err != nil {
			return err
		}
	}

	return nil
}

// EncodeDWT encodes the rows*cols wavelet plane in data (row-major,
// levels decomposition levels) into buffer, returning how many bytes
// of buffer were written. buffer[0] carries the initial threshold's
// bit count; the arithmetic-coded significance stream follows. If
// buffer is too small to hold the whole embedded stream, encoding
// stops early (this is not an error: the partial stream still decodes
// correctly up to the truncation point, per the embedded coder
// contract).
func EncodeDWT(data []float64, rows, cols, levels int, buffer []byte) (int, error) {
	if len(buffer) < 2 {
		return 0, ErrBufferTooSmall
	}

	p := &plane{data: data, rows: rows, cols: cols, levels: levels}

	w := bitio.NewWriter(buffer[1:])
	model := arith.NewModel()
	enc := arith.NewEncoder(w, model)

	threshold := p.initialThreshold()
	buffer[0] = byte(bitsForThreshold(threshold))

	lip := spihtlist.NewNodeList()
	lsp := spihtlist.NewNodeList()
	lis := spihtlist.NewNodeList()
	seedLists(rows, cols, levels, lip, lis)

	for threshold > 0 {
		if err := encodeSignificancePass(p, rows, cols, levels, threshold, lip, lsp, lis, enc); err != nil {
			if errors.Is(err, bitio.ErrBufferFull) {
				break
			}
			return 0, err
		}

		if err := encodeRefinementPass(p, threshold>>1, lsp, enc); err != nil {
			if errors.Is(err, bitio.ErrBufferFull) {
				break
			}
			return 0, err
		}

		threshold >>= 1
	}

	if err := enc.Done(); err != nil && !errors.Is(err, bitio.ErrBufferFull) {
		return 0, err
	}
	if err := w.Flush(); err != nil && !errors.Is(err, bitio.ErrBufferFull) {
		return 0, err
	}

	return 1 + w.BytesWritten(), nil
}

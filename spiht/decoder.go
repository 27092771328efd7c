package spiht

import (
	"errors"

	"github.com/asimakov/tiwave/arith"
	"github.com/asimakov/tiwave/bitio"
	"github.com/asimakov/tiwave/spihtlist"
)

// decodeSignificancePass mirrors encodeSignificancePass bit-for-bit,
// recovering coefficients via InitCoefficient instead of emitting
// sign bits.
func decodeSignificancePass(p *plane, rows, cols, levels, threshold int, lip, lsp, lis *spihtlist.NodeList, dec *arith.Decoder) error {
	for node := lip.Front(); node != nil; {
		next := node.Next()

		bit, err := dec.DecodeSymbol()
		if err != nil {
			return err
		}

		if bit == 1 {
			sign, err := dec.DecodeSymbol()
			if err != nil {
				return err
			}
			p.initCoefficient(threshold, sign, int(node.Row), int(node.Col))
			lip.Move(lsp, node)
		}

		node = next
	}

	for node := lis.Front(); node != nil; {
		next := node.Next()

		if node.Row > 0 || node.Col > 0 {
			row, col := int(node.Row), int(node.Col)

			bit, err := dec.DecodeSymbol()
			if err != nil {
				return err
			}

			if bit == 1 {
				for _, off := range offspring4(row, col) {
					oRow, oCol := off[0], off[1]

					childBit, err := dec.DecodeSymbol()
					if err != nil {
						return err
					}

					if childBit == 1 {
						sign, err := dec.DecodeSymbol()
						if err != nil {
							return err
						}
						p.initCoefficient(threshold, sign, oRow, oCol)
						lsp.Append(int16(oRow), int16(oCol))
					} else {
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
			}
		} else {
			row, col := absCoord(node.Row), absCoord(node.Col)

			bit, err := dec.DecodeSymbol()
			if err != nil {
				return err
			}

			if bit == 1 {
				for _, off := range offspring4(row, col) {
					lis.Append(int16(off[0]), int16(off[1]))
				}

				next = node.Next()
				lis.Remove(node)
			}
		}

		node = next
	}

	return nil
}

// decodeRefinementPass restores one more magnitude bit into every
// coefficient already in LSP at bit position threshold.
func decodeRefinementPass(p *plane, threshold int, lsp *spihtlist.NodeList, dec *arith.Decoder) error {
	if threshold <= 0 {
		return nil
	}

	for node := lsp.Front(); node != nil; node = node.Next() {
		row, col := int(node.Row), int(node.Col)
		coeff := int(p.at(row, col))

		bit, err := dec.DecodeSymbol()
		if err != nil {
			return err
		}

		if coeff > 0 {
			coeff -= threshold
		} else {
			coeff += threshold
		}

		if bit == 1 {
			if coeff > 0 {
				coeff += threshold
			} else {
				coeff -= threshold
			}
		}

		if coeff > 0 {
			coeff += threshold >> 1
		} else {
			coeff -= threshold >> 1
		}

		p.set(row, col, float64(coeff))
	}

	return nil
}

// DecodeDWT inverts EncodeDWT: it reconstructs the rows*cols wavelet
// plane into data from buffer. If the stream was truncated (the
// encoder hit bitio.ErrBufferFull's graceful-stop path, or the file was
// simply cut short), decoding stops at the point the stream runs out
// and the plane holds a partial-but-valid approximation for the
// coefficients reached so far.
func DecodeDWT(data []float64, rows, cols, levels int, buffer []byte) error {
	if len(buffer) < 2 {
		return ErrBufferTooSmall
	}

	p := &plane{data: data, rows: rows, cols: cols, levels: levels}
	p.reset()

	r := bitio.NewReader(buffer[1:])
	model := arith.NewModel()
	dec, err := arith.NewDecoder(r, model)
	if err != nil {
		if errors.Is(err, bitio.ErrBufferEmpty) {
			return nil
		}
		return err
	}

	bits := int(buffer[0])
	threshold := 0
	if bits > 0 {
		threshold = 1 << (bits - 1)
	}

	lip := spihtlist.NewNodeList()
	lsp := spihtlist.NewNodeList()
	lis := spihtlist.NewNodeList()
	seedLists(rows, cols, levels, lip, lis)

	for threshold > 0 {
		if err := decodeSignificancePass(p, rows, cols, levels, threshold, lip, lsp, lis, dec); err != nil {
			if errors.Is(err, bitio.ErrBufferEmpty) {
				return nil
			}
			return err
		}

		if err := decodeRefinementPass(p, threshold>>1, lsp, dec); err != nil {
			if errors.Is(err, bitio.ErrBufferEmpty) {
				return nil
			}
			return err
		}

		threshold >>= 1
	}

	return nil
}

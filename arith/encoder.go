package arith

import "github.com/asimakov/tiwave/bitio"

// Encoder packs binary symbols against a Model's adaptive frequency
// table into a bitio.BitStream, resolving carry propagation and
// underflow with the classic bit-plus-follow technique.
type Encoder struct {
	model         *Model
	out           *bitio.BitStream
	low, high     int
	underflowBits int
}

// NewEncoder starts an encoding session writing into out, sharing
// model's adaptive statistics.
func NewEncoder(out *bitio.BitStream, model *Model) *Encoder {
	return &Encoder{
		model: model,
		out:   out,
		low:   0,
		high:  topValue,
	}
}

// bitPlusFollow writes bit, then writes underflowBits complementary
// bits to resolve any pending E3 (underflow) renormalizations.
func (e *Encoder) bitPlusFollow(bit int) error {
	if err := e.out.WriteBit(bit); err != nil {
		return err
	}
	for ; e.underflowBits > 0; e.underflowBits-- {
		if err := e.out.WriteBit(1 - bit); err != nil {
			return err
		}
	}
	return nil
}

// EncodeSymbol narrows [low,high) to symbol's sub-range and emits any
// bits that renormalization makes determinate.
func (e *Encoder) EncodeSymbol(symbol int) error {
	rng := e.high - e.low + 1

	e.high = e.low + (rng*e.model.cumFreq[symbol+1])/e.model.cumFreq[alphaSize] - 1
	e.low = e.low + (rng*e.model.cumFreq[symbol])/e.model.cumFreq[alphaSize]

	for {
		switch {
		case e.high < half:
			if err := e.bitPlusFollow(0); err != nil {
				return err
			}
		case e.low >= half:
			if err := e.bitPlusFollow(1); err != nil {
				return err
			}
			e.low -= half
			e.high -= half
		case e.low >= firstQtr && e.high < thirdQtr:
			e.underflowBits++
			e.low -= firstQtr
			e.high -= firstQtr
		default:
			e.model.update(symbol)
			return nil
		}

		e.low <<= 1
		e.high = (e.high << 1) + 1
	}
}

// Done flushes codeBits (16) final bits taken from low, which
// disambiguate the final range, and must be called exactly once after
// the last EncodeSymbol.
func (e *Encoder) Done() error {
	for i := 0; i < codeBits; i++ {
		bit := 0
		if e.low >= half {
			bit = 1
			e.low -= half
		}
		if err := e.bitPlusFollow(bit); err != nil {
			return err
		}
		e.low <<= 1
	}
	return nil
}

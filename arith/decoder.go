package arith

import "github.com/asimakov/tiwave/bitio"

// Decoder mirrors Encoder bit-for-bit, recovering the symbol sequence
// from a bitio.BitStream using the same adaptive Model.
type Decoder struct {
	model     *Model
	in        *bitio.BitStream
	low, high int
	value     int
}

// NewDecoder starts a decoding session reading from in, sharing
// model's adaptive statistics, and primes the value register with the
// first codeBits bits of the stream.
func NewDecoder(in *bitio.BitStream, model *Model) (*Decoder, error) {
	d := &Decoder{model: model, in: in, high: topValue}

	for i := 0; i < codeBits; i++ {
		bit, err := in.ReadBit()
		if err != nil {
			return nil, err
		}
		d.value = (d.value << 1) | bit
	}

	return d, nil
}

// DecodeSymbol recovers the next binary symbol, renormalizing the
// range and pulling fresh bits from the stream exactly as EncodeSymbol
// consumed them.
func (d *Decoder) DecodeSymbol() (int, error) {
	rng := d.high - d.low + 1

	cum := ((d.value-d.low+1)*d.model.cumFreq[alphaSize] - 1) / rng

	symbol := alphaSize - 1
	for symbol > 0 && d.model.cumFreq[symbol] > cum {
		symbol--
	}

	d.high = d.low + (rng*d.model.cumFreq[symbol+1])/d.model.cumFreq[alphaSize] - 1
	d.low = d.low + (rng*d.model.cumFreq[symbol])/d.model.cumFreq[alphaSize]

	for {
		switch {
		case d.high < half:
			// Nothing.
		case d.low >= half:
			d.value -= half
			d.low -= half
			d.high -= half
		case d.low >= firstQtr && d.high < thirdQtr:
			d.value -= firstQtr
			d.low -= firstQtr
			d.high -= firstQtr
		default:
			d.model.update(symbol)
			return symbol, nil
		}

		d.low <<= 1
		d.high = (d.high << 1) + 1

		bit, err := d.in.ReadBit()
		if err != nil {
			return 0, err
		}
		d.value = (d.value << 1) | bit
	}
}

package mbcodec

import (
	"github.com/pkg/errors"
)

// DecodeMacroblock decodes one macroblock and transforms its blocks to the
// spatial domain. Samples are centered on zero.
func (s *Session) DecodeMacroblock(r BitReader, mb *Macroblock) error {
	if err := s.DecodeCoefficients(r, mb); err != nil {
		return err
	}

	for i := range mb {
		s.transform.Inverse(&mb[i])
	}

	return nil
}

// DecodeCoefficients decodes one macroblock into dequantized coefficients in
// raster order. On error the DC predictors of the blocks decoded so far stay
// updated, the macroblock can not be retried.
//
// The DC predictors accumulate the coded differentials without limit while the
// DC coefficients are clipped to [-2048, 2047], so after a clip Session.DC no
// longer equals the coefficient divided by 8.
func (s *Session) DecodeCoefficients(r BitReader, mb *Macroblock) error {
	if err := s.decodeHeader(r); err != nil {
		return errors.Wrap(err, "macroblock header")
	}

	for block := range mb {
		mb[block] = Block{}
		if err := s.decodeBlock(r, block, &mb[block]); err != nil {
			return errors.Wrapf(err, "block %d", block)
		}
	}

	return nil
}

func (s *Session) decodeHeader(r BitReader) error {
	// 1: quantizer scale unchanged, 01: quantizer scale follows
	quant := r.Peek(2)&0x2 == 0
	if quant {
		if err := r.Skip(2); err != nil {
			return err
		}
	} else {
		if err := r.Skip(1); err != nil {
			return err
		}
	}

	if s.fieldPair {
		v, err := r.Read(1)
		if err != nil {
			return err
		}
		s.FieldParity = int(v)
	}

	if quant {
		v, err := r.Read(5)
		if err != nil {
			return err
		}
		s.QScale = int(v)
	}

	return nil
}

func (s *Session) decodeBlock(r BitReader, block int, b *Block) error {
	// DC prediction
	component := componentOf(block)
	class := Luma
	if component > 0 {
		class = Chroma
	}

	size, length := DCSize(class, uint16(r.Peek(16)))
	if size < 0 {
		return ErrInvalidCode
	}
	if err := r.Skip(int(length)); err != nil {
		return err
	}

	differential := 0
	if size > 0 {
		v, err := r.Read(int(size))
		if err != nil {
			return err
		}

		differential = int(v)
		if differential&(1<<(size-1)) == 0 {
			differential -= 1<<size - 1
		}
	}

	s.DC[component] += differential
	b[0] = clampCoefficient(s.DC[component] << 3)

	// AC coefficients
	n := 0
	for {
		run, level, length := ACCode(s.table, uint16(r.Peek(16)))
		if run == RunInvalid {
			return ErrInvalidCode
		}
		if err := r.Skip(int(length)); err != nil {
			return err
		}

		if run == RunEndOfBlock {
			break
		}

		var value, skip int
		var negative bool

		if run == RunEscape {
			v, err := r.Read(6)
			if err != nil {
				return err
			}
			skip = int(v)

			v, err = r.Read(12)
			if err != nil {
				return err
			}
			if v&0x7ff == 0 {
				return ErrDegenerateEscape
			}

			value = int(v)
			if value >= 2048 {
				value = 4096 - value
				negative = true
			}
		} else {
			skip = int(run)
			value = int(level)

			sign, err := r.Read(1)
			if err != nil {
				return err
			}
			negative = sign != 0
		}

		n += skip + 1
		if n >= 64 {
			return ErrCoefficientOverflow
		}

		deZigZagged := s.scan[n]

		// Dequantize
		value = (value * s.QScale * 2 * int(s.quantMatrix[deZigZagged])) >> 4
		if negative {
			value = -value
		}

		b[deZigZagged] = clampCoefficient(value)
	}

	return nil
}

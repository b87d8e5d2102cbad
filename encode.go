package mbcodec

import (
	"math/bits"

	"github.com/pkg/errors"
)

// EncodeMacroblock transforms the spatial domain blocks of mb (samples centered
// on zero) to the frequency domain and encodes them. mb is left unchanged.
func (s *Session) EncodeMacroblock(w BitWriter, mb *Macroblock, qscale int) error {
	coefficients := *mb
	for i := range coefficients {
		s.transform.Forward(&coefficients[i])
	}

	return s.EncodeCoefficients(w, &coefficients, qscale)
}

// EncodeCoefficients encodes one macroblock of coefficients in raster order with
// the given quantizer scale. Every coefficient must lie in [-2048, 2047] and
// quantize to a level of at most 2047 in magnitude, otherwise nothing is written
// and the session is left unchanged.
func (s *Session) EncodeCoefficients(w BitWriter, mb *Macroblock, qscale int) error {
	if qscale < 1 || qscale > 31 {
		return errors.Wrapf(ErrQuantizerScale, "got %d", qscale)
	}

	var levels [6][64]int
	for block := range mb {
		if err := s.quantize(&mb[block], qscale, &levels[block]); err != nil {
			return errors.Wrapf(err, "block %d", block)
		}
	}

	// DC differentials are coded with at most 11 bits
	predictor := s.DC
	for block := range levels {
		component := componentOf(block)
		if differential := levels[block][0] - predictor[component]; abs(differential) > 2047 {
			return errors.Wrapf(ErrCoefficientRange, "block %d: DC differential %d", block, differential)
		}
		predictor[component] = levels[block][0]
	}

	// 1: quantizer scale unchanged, 01: quantizer scale follows
	changed := qscale != s.QScale
	if changed {
		w.Put(0x1, 2)
	} else {
		w.Put(0x1, 1)
	}

	if s.fieldPair {
		w.Put(uint32(s.FieldParity&1), 1)
	}

	if changed {
		w.Put(uint32(qscale), 5)
		s.QScale = qscale
	}

	for block := range levels {
		s.encodeBlock(w, block, &levels[block])
	}

	return nil
}

// quantize stores the DC value followed by the AC levels in scan order.
func (s *Session) quantize(b *Block, qscale int, levels *[64]int) error {
	for i, v := range b {
		if v < -2048 || v > 2047 {
			return errors.Wrapf(ErrCoefficientRange, "coefficient %d is %d", i, v)
		}
	}

	levels[0] = div(int(b[0]), 8)

	for n := 1; n < 64; n++ {
		i := s.scan[n]

		level := div(int(b[i])<<3, int(s.quantMatrix[i])*qscale)
		if level < -2047 || level > 2047 {
			return errors.Wrapf(ErrCoefficientRange, "coefficient %d quantizes to %d", i, level)
		}

		levels[n] = level
	}

	return nil
}

func (s *Session) encodeBlock(w BitWriter, block int, levels *[64]int) {
	// DC prediction
	component := componentOf(block)
	class := Luma
	if component > 0 {
		class = Chroma
	}

	differential := levels[0] - s.DC[component]
	s.DC[component] = levels[0]

	size := bits.Len(uint(abs(differential)))
	dc := dcCodeFor(class, size)
	w.Put(uint32(dc.code), int(dc.length))

	if size > 0 {
		if differential < 0 {
			differential--
		}
		w.Put(uint32(differential)&(1<<size-1), size)
	}

	// AC coefficients
	tab := acTableFor(s.table)
	run := 0
	for n := 1; n < 64; n++ {
		level := levels[n]
		if level == 0 {
			run++
			continue
		}

		var sign uint32
		magnitude := level
		if level < 0 {
			sign = 1
			magnitude = -level
		}

		if c, ok := tab.lookup(run, magnitude); ok {
			w.Put(uint32(c.code), int(c.length))
			w.Put(sign, 1)
		} else {
			w.Put(uint32(tab.escape.code), int(tab.escape.length))
			w.Put(uint32(run), 6)
			w.Put(uint32(level)&0xfff, 12)
		}

		run = 0
	}

	w.Put(uint32(tab.eob.code), int(tab.eob.length))
}

// div returns a/b rounded to the nearest integer, instead of rounded to zero.
func div(a, b int) int {
	if a >= 0 {
		return (a + (b >> 1)) / b
	}

	return -((-a + (b >> 1)) / b)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// Package mbcodec implements the intra macroblock coefficient codec of MPEG video.
//
// A Session decodes one macroblock at a time from a BitReader: the macroblock
// header, then six 8x8 blocks (four luma, Cb, Cr) of differentially coded DC
// coefficients and run/level coded AC coefficients, which are dequantized into
// raster order and transformed back to the spatial domain. Encoding mirrors the
// decoder bit for bit. The Macroblock type converts between the six blocks and a
// 16x16 RGBA region with 4:2:0 chroma subsampling.
//
// The DC predictors and the quantizer scale are carried from one macroblock to
// the next, so macroblocks must be coded in order and a Session must not be used
// from multiple goroutines at once.
package mbcodec

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidCode is the error returned when the stream contains a bit pattern that matches no code.
	ErrInvalidCode = errors.New("mbcodec: invalid variable length code")
	// ErrCoefficientOverflow is the error returned when a run moves past the last coefficient of a block.
	ErrCoefficientOverflow = errors.New("mbcodec: coefficient index overflow")
	// ErrDegenerateEscape is the error returned when an escape code carries a zero level.
	ErrDegenerateEscape = errors.New("mbcodec: escape level is zero")

	// ErrCoefficientRange is the error returned when a coefficient can not be represented.
	ErrCoefficientRange = errors.New("mbcodec: coefficient out of range")
	// ErrQuantizerScale is the error returned for a quantizer scale outside 1..31.
	ErrQuantizerScale = errors.New("mbcodec: quantizer scale out of range")
	// ErrQuantMatrix is the error returned for a malformed quantization matrix.
	ErrQuantMatrix = errors.New("mbcodec: invalid quantization matrix")
)

// DefaultQScale is the quantizer scale of a new or reset session.
const DefaultQScale = 1

// Block is an 8x8 block of coefficients or samples in raster order.
type Block [64]int16

// Macroblock holds the four luma blocks (top-left, top-right, bottom-left,
// bottom-right) followed by the Cb and Cr blocks.
type Macroblock [6]Block

// Session holds the state shared by consecutive macroblocks of one coded sequence.
type Session struct {
	// DC holds the running DC predictors of Y, Cb and Cr.
	DC [3]int
	// QScale is the current quantizer scale.
	QScale int
	// FieldParity is the field bit of the last macroblock, used only when
	// field pairs are enabled.
	FieldParity int

	scan      *[64]byte
	table     Table
	fieldPair bool

	quantMatrix [64]byte
	transform   Transform
}

// NewSession creates a session with zigzag scan, the baseline table and the default
// quantization matrix.
func NewSession() *Session {
	s := &Session{}

	s.scan = ScanOrder(ScanZigzag)
	s.table = TableBaseline
	s.quantMatrix = DefaultQuantMatrix
	s.transform = DCT{}

	s.Reset()

	return s
}

// Reset clears the DC predictors and restores the default quantizer scale.
func (s *Session) Reset() {
	s.DC[0] = 0
	s.DC[1] = 0
	s.DC[2] = 0

	s.QScale = DefaultQScale
	s.FieldParity = 0
}

// SetScan sets the coefficient scan order.
func (s *Session) SetScan(scan Scan) {
	s.scan = ScanOrder(scan)
}

// SetTable selects the AC table. Encoder and decoder of a stream must agree.
func (s *Session) SetTable(table Table) {
	s.table = table
}

// Table returns the selected AC table.
func (s *Session) Table() Table {
	return s.table
}

// SetFieldPair enables the field bit in the macroblock header.
func (s *Session) SetFieldPair(fieldPair bool) {
	s.fieldPair = fieldPair
}

// SetTransform replaces the DCT used by DecodeMacroblock and EncodeMacroblock.
func (s *Session) SetTransform(t Transform) {
	s.transform = t
}

// QuantMatrix returns the quantization matrix in raster order.
func (s *Session) QuantMatrix() [64]byte {
	return s.quantMatrix
}

// SetQuantMatrix sets the quantization matrix, given in raster order.
func (s *Session) SetQuantMatrix(matrix []byte) error {
	if len(matrix) != 64 {
		return errors.Wrapf(ErrQuantMatrix, "got %d values", len(matrix))
	}

	for i, v := range matrix {
		if v == 0 {
			return errors.Wrapf(ErrQuantMatrix, "zero weight at %d", i)
		}
	}

	copy(s.quantMatrix[:], matrix)

	return nil
}

// ReadQuantMatrix loads the quantization matrix as 64 8-bit weights in zigzag order.
func (s *Session) ReadQuantMatrix(r BitReader) error {
	var matrix [64]byte
	for i := 0; i < 64; i++ {
		v, err := r.Read(8)
		if err != nil {
			return errors.Wrap(err, "quant matrix")
		}

		matrix[scanZigzag[i]] = byte(v)
	}

	return s.SetQuantMatrix(matrix[:])
}

// WriteQuantMatrix stores the quantization matrix as 64 8-bit weights in zigzag order.
func (s *Session) WriteQuantMatrix(w BitWriter) {
	for i := 0; i < 64; i++ {
		w.Put(uint32(s.quantMatrix[scanZigzag[i]]), 8)
	}
}

// componentOf returns the predictor index of a block: 0 for luma, 1 for Cb, 2 for Cr.
func componentOf(block int) int {
	if block > 3 {
		return block - 3
	}

	return 0
}

func clampCoefficient(n int) int16 {
	if n > 2047 {
		n = 2047
	} else if n < -2048 {
		n = -2048
	}

	return int16(n)
}

package mbcodec

import (
	"image"

	"github.com/pkg/errors"
)

// DecodeRegion decodes one macroblock and draws it into dst at (x, y).
func (s *Session) DecodeRegion(r BitReader, dst *image.RGBA, x, y int) error {
	var mb Macroblock
	if err := s.DecodeMacroblock(r, &mb); err != nil {
		return err
	}

	mb.Draw(dst, x, y)

	return nil
}

// EncodeRegion encodes the 16x16 region of src at (x, y) as one macroblock.
func (s *Session) EncodeRegion(w BitWriter, src image.Image, x, y, qscale int) error {
	var mb Macroblock
	mb.Load(src, x, y)

	return s.EncodeMacroblock(w, &mb, qscale)
}

// DecodePicture decodes the macroblocks covering dst in raster order.
func (s *Session) DecodePicture(r BitReader, dst *image.RGBA) error {
	b := dst.Bounds()

	for y := b.Min.Y; y < b.Max.Y; y += 16 {
		for x := b.Min.X; x < b.Max.X; x += 16 {
			if err := s.DecodeRegion(r, dst, x, y); err != nil {
				return errors.Wrapf(err, "macroblock at %d,%d", x, y)
			}
		}
	}

	return nil
}

// EncodePicture encodes the macroblocks covering src in raster order. Partial
// macroblocks at the right and bottom edges repeat the edge pixels.
func (s *Session) EncodePicture(w BitWriter, src image.Image, qscale int) error {
	b := src.Bounds()

	for y := b.Min.Y; y < b.Max.Y; y += 16 {
		for x := b.Min.X; x < b.Max.X; x += 16 {
			if err := s.EncodeRegion(w, src, x, y, qscale); err != nil {
				return errors.Wrapf(err, "macroblock at %d,%d", x, y)
			}
		}
	}

	return nil
}

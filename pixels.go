package mbcodec

import (
	"image"
	"image/color"
)

// Draw writes the macroblock as a 16x16 RGBA region with its top-left corner at
// (x, y). Blocks hold spatial samples centered on zero; chroma is upsampled by
// pixel replication. Pixels outside dst are skipped.
func (mb *Macroblock) Draw(dst *image.RGBA, x, y int) {
	r := image.Rect(x, y, x+16, y+16).Intersect(dst.Rect)

	for j := r.Min.Y; j < r.Max.Y; j++ {
		row := j - y
		luma := (row >> 3) << 1
		ls := (row & 7) << 3
		cs := (row >> 1) << 3

		offset := dst.PixOffset(r.Min.X, j)
		for i := r.Min.X; i < r.Max.X; i++ {
			col := i - x

			yy := clamp(int(mb[luma+(col>>3)][ls+(col&7)]) + 128)
			cb := clamp(int(mb[4][cs+(col>>1)]) + 128)
			cr := clamp(int(mb[5][cs+(col>>1)]) + 128)

			pix := dst.Pix[offset : offset+4 : offset+4]
			pix[0], pix[1], pix[2] = color.YCbCrToRGB(yy, cb, cr)
			pix[3] = 0xff

			offset += 4
		}
	}
}

// Load reads the 16x16 region of src with its top-left corner at (x, y) into
// the macroblock as samples centered on zero. Chroma is downsampled with a 2x2
// box filter. Reads outside src repeat the nearest edge pixel.
func (mb *Macroblock) Load(src image.Image, x, y int) {
	var cbSum, crSum [64]int

	bounds := src.Bounds()
	xmax := bounds.Max.X - 1
	ymax := bounds.Max.Y - 1

	for j := 0; j < 16; j++ {
		sy := between(y+j, bounds.Min.Y, ymax)
		luma := (j >> 3) << 1
		ls := (j & 7) << 3
		cs := (j >> 1) << 3

		for i := 0; i < 16; i++ {
			sx := between(x+i, bounds.Min.X, xmax)

			var yy, cb, cr uint8
			if m, ok := src.(*image.RGBA); ok {
				pix := m.Pix[m.PixOffset(sx, sy):]
				yy, cb, cr = color.RGBToYCbCr(pix[0], pix[1], pix[2])
			} else {
				r, g, b, _ := src.At(sx, sy).RGBA()
				yy, cb, cr = color.RGBToYCbCr(uint8(r>>8), uint8(g>>8), uint8(b>>8))
			}

			mb[luma+(i>>3)][ls+(i&7)] = int16(yy) - 128
			cbSum[cs+(i>>1)] += int(cb)
			crSum[cs+(i>>1)] += int(cr)
		}
	}

	for i := range cbSum {
		mb[4][i] = int16((cbSum[i]+2)>>2) - 128
		mb[5][i] = int16((crSum[i]+2)>>2) - 128
	}
}

func clamp(n int) uint8 {
	if n > 255 {
		n = 255
	} else if n < 0 {
		n = 0
	}

	return uint8(n)
}

func between(n, lo, hi int) int {
	if n > hi {
		n = hi
	}
	if n < lo {
		n = lo
	}

	return n
}

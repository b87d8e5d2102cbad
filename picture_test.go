package mbcodec_test

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/gen2brain/mbcodec"
	"github.com/pkg/errors"
)

func TestPicture(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 48, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 48; x++ {
			src.SetRGBA(x, y, color.RGBA{uint8(x * 5), uint8(y * 7), 128, 255})
		}
	}

	var out bytes.Buffer
	w := mbcodec.NewWriter(&out)

	e := mbcodec.NewSession()
	if err := e.EncodePicture(w, src, 2); err != nil {
		t.Fatal(err)
	}

	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	if out.Len() != (w.Len()+7)/8 {
		t.Errorf("Len: got %d bytes for %d bits", out.Len(), w.Len())
	}

	d := mbcodec.NewSession()
	dst := image.NewRGBA(src.Rect)
	if err := d.DecodePicture(mbcodec.NewBufferBytes(out.Bytes()), dst); err != nil {
		t.Fatal(err)
	}

	if d.DC != e.DC || d.QScale != e.QScale {
		t.Errorf("session: got DC %v QScale %d, want DC %v QScale %d", d.DC, d.QScale, e.DC, e.QScale)
	}

	if diff := maxDiff(src, dst); diff > 16 {
		t.Errorf("max difference %d, want at most 16", diff)
	}

	truncated := mbcodec.NewBufferBytes(out.Bytes()[:out.Len()/2])
	err := mbcodec.NewSession().DecodePicture(truncated, image.NewRGBA(src.Rect))
	if !errors.Is(err, mbcodec.ErrExhausted) && !errors.Is(err, mbcodec.ErrInvalidCode) {
		t.Errorf("truncated: got %v", err)
	}
}

func TestDecodeRegion(t *testing.T) {
	s := mbcodec.NewSession()

	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	fill(src, color.RGBA{60, 60, 60, 255})

	var bits bitString
	if err := s.EncodeRegion(&bits, src, 0, 0, 5); err != nil {
		t.Fatal(err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, 32, 32))
	if err := mbcodec.NewSession().DecodeRegion(bufferFromBits(bits.String()), dst, 16, 16); err != nil {
		t.Fatal(err)
	}

	if c := dst.RGBAAt(20, 20); c != (color.RGBA{60, 60, 60, 255}) {
		t.Errorf("pixel 20,20: got %v, want %v", c, color.RGBA{60, 60, 60, 255})
	}

	if c := dst.RGBAAt(4, 4); c != (color.RGBA{}) {
		t.Errorf("pixel 4,4: got %v, want untouched", c)
	}
}

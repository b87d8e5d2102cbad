package mbcodec_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/gen2brain/mbcodec"
)

func fill(m *image.RGBA, c color.RGBA) {
	for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y++ {
		for x := m.Rect.Min.X; x < m.Rect.Max.X; x++ {
			m.SetRGBA(x, y, c)
		}
	}
}

func maxDiff(a, b *image.RGBA) int {
	worst := 0
	for i := range a.Pix {
		d := int(a.Pix[i]) - int(b.Pix[i])
		if d < 0 {
			d = -d
		}
		if d > worst {
			worst = d
		}
	}

	return worst
}

func roundTrip(t *testing.T, src *image.RGBA, qscale int) *image.RGBA {
	t.Helper()

	var bits bitString
	if err := mbcodec.NewSession().EncodePicture(&bits, src, qscale); err != nil {
		t.Fatal(err)
	}

	dst := image.NewRGBA(src.Rect)
	if err := mbcodec.NewSession().DecodePicture(bufferFromBits(bits.String()), dst); err != nil {
		t.Fatal(err)
	}

	return dst
}

func TestMidGray(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	fill(src, color.RGBA{128, 128, 128, 255})

	var mb mbcodec.Macroblock
	mb.Load(src, 0, 0)

	if mb != (mbcodec.Macroblock{}) {
		t.Error("Load: mid gray is not all zero")
	}

	dst := roundTrip(t, src, 1)

	if d := maxDiff(src, dst); d != 0 {
		t.Errorf("round trip: max difference %d, want 0", d)
	}
}

func TestFlatColor(t *testing.T) {
	for _, c := range []color.RGBA{
		{200, 100, 50, 255},
		{20, 180, 240, 255},
		{0, 0, 0, 255},
		{255, 255, 255, 255},
	} {
		src := image.NewRGBA(image.Rect(0, 0, 40, 24))
		fill(src, c)

		dst := roundTrip(t, src, 1)

		if d := maxDiff(src, dst); d > 3 {
			t.Errorf("%v: max difference %d, want at most 3", c, d)
		}
	}
}

func TestGradient(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			v := uint8(4*x + 40)
			src.SetRGBA(x, y, color.RGBA{v, v, v, 255})
		}
	}

	for _, qscale := range []int{1, 2} {
		dst := roundTrip(t, src, qscale)

		if d := maxDiff(src, dst); d > 2 {
			t.Errorf("qscale %d: max difference %d, want at most 2", qscale, d)
		}
	}
}

func TestLoadLayout(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			v := uint8(10 + 50*((y>>3)*2+(x>>3)))
			src.SetRGBA(x, y, color.RGBA{v, v, v, 255})
		}
	}

	var mb mbcodec.Macroblock
	mb.Load(src, 0, 0)

	for block, want := range []int16{10 - 128, 60 - 128, 110 - 128, 160 - 128} {
		for i, v := range mb[block] {
			if v != want {
				t.Fatalf("block %d: sample %d got %d, want %d", block, i, v, want)
			}
		}
	}

	for block := 4; block < 6; block++ {
		for i, v := range mb[block] {
			if v != 0 {
				t.Fatalf("block %d: sample %d got %d, want 0", block, i, v)
			}
		}
	}
}

func TestLoadEdge(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	fill(src, color.RGBA{30, 30, 30, 255})
	src.SetRGBA(3, 3, color.RGBA{90, 90, 90, 255})

	var mb mbcodec.Macroblock
	mb.Load(src, 0, 0)

	// Pixels past the bottom right corner repeat it
	if mb[3][63] != 90-128 {
		t.Errorf("block 3: got %d, want %d", mb[3][63], 90-128)
	}

	if mb[0][0] != 30-128 {
		t.Errorf("block 0: got %d, want %d", mb[0][0], 30-128)
	}
}

func TestDrawClip(t *testing.T) {
	var mb mbcodec.Macroblock
	for i := range mb[3] {
		mb[3][i] = 100
	}

	dst := image.NewRGBA(image.Rect(0, 0, 16, 16))
	mb.Draw(dst, -8, -8)

	if c := dst.RGBAAt(0, 0); c != (color.RGBA{228, 228, 228, 255}) {
		t.Errorf("pixel 0,0: got %v, want %v", c, color.RGBA{228, 228, 228, 255})
	}

	if c := dst.RGBAAt(7, 7); c != (color.RGBA{228, 228, 228, 255}) {
		t.Errorf("pixel 7,7: got %v, want %v", c, color.RGBA{228, 228, 228, 255})
	}

	if c := dst.RGBAAt(8, 8); c != (color.RGBA{}) {
		t.Errorf("pixel 8,8: got %v, want untouched", c)
	}
}

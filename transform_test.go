package mbcodec_test

import (
	"testing"

	"github.com/gen2brain/mbcodec"
)

func TestDCTFlat(t *testing.T) {
	var b mbcodec.Block
	for i := range b {
		b[i] = 50
	}

	mbcodec.DCT{}.Forward(&b)

	if b[0] != 400 {
		t.Errorf("DC: got %d, want %d", b[0], 400)
	}

	for i := 1; i < 64; i++ {
		if b[i] != 0 {
			t.Errorf("coefficient %d: got %d, want 0", i, b[i])
		}
	}

	mbcodec.DCT{}.Inverse(&b)

	for i, v := range b {
		if v != 50 {
			t.Errorf("sample %d: got %d, want %d", i, v, 50)
		}
	}
}

func TestDCTRamp(t *testing.T) {
	var b, want mbcodec.Block
	for i := range b {
		b[i] = int16(8*(i&7) - 60)
	}
	want = b

	mbcodec.DCT{}.Forward(&b)
	mbcodec.DCT{}.Inverse(&b)

	for i := range b {
		if d := b[i] - want[i]; d > 1 || d < -1 {
			t.Errorf("sample %d: got %d, want %d", i, b[i], want[i])
		}
	}
}

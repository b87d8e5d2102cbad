package mbcodec_test

import (
	"strings"

	"github.com/gen2brain/mbcodec"
)

// bitString records emitted bits as a string of '0' and '1'.
type bitString []byte

func (b *bitString) Put(value uint32, count int) {
	for i := count - 1; i >= 0; i-- {
		*b = append(*b, '0'+byte(value>>uint(i)&1))
	}
}

func (b *bitString) String() string {
	return string(*b)
}

// bufferFromBits packs a string of '0' and '1' into a buffer, padding with zero bits.
func bufferFromBits(s string) *mbcodec.Buffer {
	s = strings.ReplaceAll(s, " ", "")

	p := make([]byte, (len(s)+7)/8)
	for i, c := range s {
		if c == '1' {
			p[i>>3] |= 0x80 >> uint(i&7)
		}
	}

	return mbcodec.NewBufferBytes(p)
}

type discardBits struct{}

func (discardBits) Put(value uint32, count int) {}

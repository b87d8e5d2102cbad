package mbcodec

import (
	"testing"
)

func TestDCSize(t *testing.T) {
	size, length := DCSize(Luma, 0x0000)
	if size != 1 || length != 2 {
		t.Errorf("DCSize: got (%d, %d), want (%d, %d)", size, length, 1, 2)
	}

	size, length = DCSize(Chroma, 0xffc0)
	if size != 11 || length != 10 {
		t.Errorf("DCSize: got (%d, %d), want (%d, %d)", size, length, 11, 10)
	}
}

func TestDCSizeExhaustive(t *testing.T) {
	for _, tt := range []struct {
		name      string
		component Component
		codes     []dcCode
	}{
		{"luma", Luma, dcCodesLuma},
		{"chroma", Chroma, dcCodesChroma},
	} {
		for p := 0; p < 1<<16; p++ {
			peek := uint16(p)

			want := -1
			for size, c := range tt.codes {
				if peek>>(16-c.length) == c.code {
					if want != -1 {
						t.Fatalf("%s: codes %d and %d share prefix %016b", tt.name, want, size, peek)
					}
					want = size
				}
			}

			size, length := DCSize(tt.component, peek)
			if int(size) != want {
				t.Fatalf("%s: DCSize(%016b): got size %d, want %d", tt.name, peek, size, want)
			}

			if want >= 0 && length != tt.codes[want].length {
				t.Fatalf("%s: DCSize(%016b): got length %d, want %d", tt.name, peek, length, tt.codes[want].length)
			}
		}
	}
}

func TestACCode(t *testing.T) {
	for _, tt := range []struct {
		table  Table
		peek   uint16
		run    int8
		level  int8
		length uint8
	}{
		{TableBaseline, 0x8000, RunEndOfBlock, 0, 2},
		{TableBaseline, 0xc000, 0, 1, 2},
		{TableBaseline, 0x0400, RunEscape, 0, 6},
		{TableBaseline, 0x0000, RunInvalid, 0, 0},
		{TableAlternate, 0x6000, RunEndOfBlock, 0, 4},
		{TableAlternate, 0x8000, 0, 1, 2},
		{TableAlternate, 0x0400, RunEscape, 0, 6},
		{TableAlternate, 0x0000, RunInvalid, 0, 0},
	} {
		run, level, length := ACCode(tt.table, tt.peek)
		if run != tt.run || level != tt.level || length != tt.length {
			t.Errorf("ACCode(%d, %016b): got (%d, %d, %d), want (%d, %d, %d)",
				tt.table, tt.peek, run, level, length, tt.run, tt.level, tt.length)
		}
	}
}

func TestACCodeExhaustive(t *testing.T) {
	for _, tt := range []struct {
		name  string
		table Table
		codes []acCode
	}{
		{"baseline", TableBaseline, acCodesBaseline},
		{"alternate", TableAlternate, acCodesAlternate},
	} {
		for p := 0; p < 1<<16; p++ {
			peek := uint16(p)

			var want *acCode
			for i := range tt.codes {
				c := &tt.codes[i]
				if peek>>(16-c.length) == c.code {
					if want != nil {
						t.Fatalf("%s: codes (%d, %d) and (%d, %d) share prefix %016b",
							tt.name, want.run, want.level, c.run, c.level, peek)
					}
					want = c
				}
			}

			run, level, length := ACCode(tt.table, peek)
			if want == nil {
				if run != RunInvalid {
					t.Fatalf("%s: ACCode(%016b): got run %d, want %d", tt.name, peek, run, RunInvalid)
				}
				continue
			}

			if run != want.run || level != want.level || length != want.length {
				t.Fatalf("%s: ACCode(%016b): got (%d, %d, %d), want (%d, %d, %d)",
					tt.name, peek, run, level, length, want.run, want.level, want.length)
			}
		}
	}
}

func TestACTablesCoverSamePairs(t *testing.T) {
	base := acTableFor(TableBaseline)
	alt := acTableFor(TableAlternate)

	pairs := 0
	for run := 0; run < 32; run++ {
		for level := 1; level <= 40; level++ {
			_, inBase := base.lookup(run, level)
			_, inAlt := alt.lookup(run, level)

			if inBase != inAlt {
				t.Errorf("lookup(%d, %d): baseline %v, alternate %v", run, level, inBase, inAlt)
			}
			if inBase {
				pairs++
			}
		}
	}

	if pairs != len(acCodesBaseline)-2 {
		t.Errorf("pairs: got %d, want %d", pairs, len(acCodesBaseline)-2)
	}
}

func TestScanOrder(t *testing.T) {
	for _, scan := range []Scan{ScanZigzag, ScanAlternate} {
		var seen [64]bool

		for n, i := range ScanOrder(scan) {
			if i >= 64 || seen[i] {
				t.Fatalf("ScanOrder(%d): index %d maps to %d twice or out of range", scan, n, i)
			}
			seen[i] = true
		}

		if ScanOrder(scan)[0] != 0 || ScanOrder(scan)[63] != 63 {
			t.Errorf("ScanOrder(%d): DC and last coefficient not fixed", scan)
		}
	}
}

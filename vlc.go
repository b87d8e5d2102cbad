package mbcodec

import "math/bits"

type dcEntry struct {
	size   int8
	length uint8
}

// dcTable resolves codes of up to 5 bits with the short table. Longer codes all
// start with 11111 and are resolved with the long table.
type dcTable struct {
	short [32]dcEntry

	long      []dcEntry
	longWidth int
}

type acEntry struct {
	run    int8
	level  int8
	length uint8
}

// acBucket holds the codes that start with the same number of leading zeros.
// It is peeked at the length of its longest code.
type acBucket struct {
	width   int
	entries []acEntry
}

type acTable struct {
	buckets []acBucket

	codes  [32][41]acCode
	eob    acCode
	escape acCode
}

var (
	dcTables [2]dcTable
	acTables [2]acTable
)

func init() {
	dcTables[Luma].init(dcCodesLuma)
	dcTables[Chroma].init(dcCodesChroma)

	acTables[TableBaseline].init(acCodesBaseline)
	acTables[TableAlternate].init(acCodesAlternate)
}

func (t *dcTable) init(codes []dcCode) {
	for _, c := range codes {
		if int(c.length) > t.longWidth {
			t.longWidth = int(c.length)
		}
	}

	t.long = make([]dcEntry, 1<<(t.longWidth-5))
	for i := range t.short {
		t.short[i] = dcEntry{size: -1}
	}
	for i := range t.long {
		t.long[i] = dcEntry{size: -1}
	}

	for size, c := range codes {
		e := dcEntry{int8(size), c.length}

		if c.length <= 5 {
			shift := 5 - int(c.length)
			first := int(c.code) << shift
			for i := 0; i < 1<<shift; i++ {
				t.short[first+i] = e
			}
			continue
		}

		// Strip the 11111 prefix
		shift := t.longWidth - int(c.length)
		first := (int(c.code) << shift) & (len(t.long) - 1)
		for i := 0; i < 1<<shift; i++ {
			t.long[first+i] = e
		}
	}
}

func (t *acTable) init(codes []acCode) {
	var widths []int
	for _, c := range codes {
		lz := int(c.length) - bits.Len16(c.code)
		for len(widths) <= lz {
			widths = append(widths, 0)
		}
		if int(c.length) > widths[lz] {
			widths[lz] = int(c.length)
		}
	}

	t.buckets = make([]acBucket, len(widths))
	for lz, width := range widths {
		if width == 0 {
			continue
		}

		b := &t.buckets[lz]
		b.width = width
		b.entries = make([]acEntry, 1<<(width-lz-1))
		for i := range b.entries {
			b.entries[i] = acEntry{run: RunInvalid}
		}
	}

	for _, c := range codes {
		lz := int(c.length) - bits.Len16(c.code)
		b := &t.buckets[lz]

		shift := b.width - int(c.length)
		first := int(c.code)<<shift - 1<<(b.width-lz-1)
		for i := 0; i < 1<<shift; i++ {
			b.entries[first+i] = acEntry{c.run, c.level, c.length}
		}

		switch c.run {
		case RunEndOfBlock:
			t.eob = c
		case RunEscape:
			t.escape = c
		default:
			t.codes[c.run][c.level] = c
		}
	}
}

// lookup returns the code of a run/level pair, if the table has one.
func (t *acTable) lookup(run, level int) (acCode, bool) {
	if run < 0 || run >= len(t.codes) || level < 1 || level >= len(t.codes[0]) {
		return acCode{}, false
	}

	c := t.codes[run][level]

	return c, c.length != 0
}

func dcTableFor(c Component) *dcTable {
	if c == Chroma {
		return &dcTables[Chroma]
	}

	return &dcTables[Luma]
}

func acTableFor(t Table) *acTable {
	if t == TableAlternate {
		return &acTables[TableAlternate]
	}

	return &acTables[TableBaseline]
}

func dcCodeFor(c Component, size int) dcCode {
	if c == Chroma {
		return dcCodesChroma[size]
	}

	return dcCodesLuma[size]
}

// DCSize classifies the next bits of the stream, given as the 16 peeked bits,
// as a DC size code. It returns size -1 when no code matches.
func DCSize(c Component, peek uint16) (size int8, length uint8) {
	t := dcTableFor(c)

	if peek>>11 != 0x1f {
		e := t.short[peek>>11]
		return e.size, e.length
	}

	e := t.long[int(peek>>(16-t.longWidth))&(len(t.long)-1)]

	return e.size, e.length
}

// ACCode classifies the next bits of the stream, given as the 16 peeked bits,
// as a run/level code. It returns RunInvalid when no code matches; RunEndOfBlock
// and RunEscape mark the end of block and escape codes. The sign bit that follows
// a regular code is not part of length.
func ACCode(t Table, peek uint16) (run, level int8, length uint8) {
	tab := acTableFor(t)

	lz := bits.LeadingZeros16(peek)
	if lz >= len(tab.buckets) || tab.buckets[lz].width == 0 {
		return RunInvalid, 0, 0
	}

	b := &tab.buckets[lz]
	e := b.entries[int(peek>>(16-b.width))-1<<(b.width-lz-1)]

	return e.run, e.level, e.length
}

package mbcodec

// Component selects the DC size table.
type Component int

const (
	Luma Component = iota
	Chroma
)

// Table selects the AC run/level table.
type Table int

const (
	// TableBaseline is the default run/level table.
	TableBaseline Table = iota
	// TableAlternate is the alternate intra table (intra_vlc_format=1).
	TableAlternate
)

// Scan selects the coefficient scan order.
type Scan int

const (
	ScanZigzag Scan = iota
	ScanAlternate
)

// Reserved run values of AC table entries.
const (
	RunInvalid    = -1
	RunEndOfBlock = 64
	RunEscape     = 65
)

// dcCode is a DC size code, indexed by size.
type dcCode struct {
	code   uint16
	length uint8
}

// acCode is a run/level code.
type acCode struct {
	code   uint16
	length uint8
	run    int8
	level  int8
}

var dcCodesLuma = []dcCode{
	{0x04, 3},  //  0: 100
	{0x00, 2},  //  1: 00
	{0x01, 2},  //  2: 01
	{0x05, 3},  //  3: 101
	{0x06, 3},  //  4: 110
	{0x0e, 4},  //  5: 1110
	{0x1e, 5},  //  6: 1111 0
	{0x3e, 6},  //  7: 1111 10
	{0x7e, 7},  //  8: 1111 110
	{0xfe, 8},  //  9: 1111 1110
	{0x1fe, 9}, // 10: 1111 1111 0
	{0x1ff, 9}, // 11: 1111 1111 1
}

var dcCodesChroma = []dcCode{
	{0x00, 2},   //  0: 00
	{0x01, 2},   //  1: 01
	{0x02, 2},   //  2: 10
	{0x06, 3},   //  3: 110
	{0x0e, 4},   //  4: 1110
	{0x1e, 5},   //  5: 1111 0
	{0x3e, 6},   //  6: 1111 10
	{0x7e, 7},   //  7: 1111 110
	{0xfe, 8},   //  8: 1111 1110
	{0x1fe, 9},  //  9: 1111 1111 0
	{0x3fe, 10}, // 10: 1111 1111 10
	{0x3ff, 10}, // 11: 1111 1111 11
}

// acCodesBaseline is the run/level code list of the baseline table. Codes are
// listed without their trailing sign bit (s).
var acCodesBaseline = []acCode{
	{0x0002, 2, RunEndOfBlock, 0}, // 10
	{0x0003, 2, 0, 1},             // 11s
	{0x0003, 3, 1, 1},             // 011s
	{0x0004, 4, 0, 2},             // 0100s
	{0x0005, 4, 2, 1},             // 0101s
	{0x0005, 5, 0, 3},             // 0010 1s
	{0x0006, 5, 4, 1},             // 0011 0s
	{0x0007, 5, 3, 1},             // 0011 1s
	{0x0001, 6, RunEscape, 0},     // 0000 01
	{0x0004, 6, 7, 1},             // 0001 00s
	{0x0005, 6, 6, 1},             // 0001 01s
	{0x0006, 6, 1, 2},             // 0001 10s
	{0x0007, 6, 5, 1},             // 0001 11s
	{0x0004, 7, 2, 2},             // 0000 100s
	{0x0005, 7, 9, 1},             // 0000 101s
	{0x0006, 7, 0, 4},             // 0000 110s
	{0x0007, 7, 8, 1},             // 0000 111s
	{0x0020, 8, 13, 1},            // 0010 0000s
	{0x0021, 8, 0, 6},             // 0010 0001s
	{0x0022, 8, 12, 1},            // 0010 0010s
	{0x0023, 8, 11, 1},            // 0010 0011s
	{0x0024, 8, 3, 2},             // 0010 0100s
	{0x0025, 8, 1, 3},             // 0010 0101s
	{0x0026, 8, 0, 5},             // 0010 0110s
	{0x0027, 8, 10, 1},            // 0010 0111s
	{0x0008, 10, 16, 1},           // 0000 0010 00s
	{0x0009, 10, 5, 2},            // 0000 0010 01s
	{0x000a, 10, 0, 7},            // 0000 0010 10s
	{0x000b, 10, 2, 3},            // 0000 0010 11s
	{0x000c, 10, 1, 4},            // 0000 0011 00s
	{0x000d, 10, 15, 1},           // 0000 0011 01s
	{0x000e, 10, 14, 1},           // 0000 0011 10s
	{0x000f, 10, 4, 2},            // 0000 0011 11s
	{0x0010, 12, 0, 11},           // 0000 0001 0000s
	{0x0011, 12, 8, 2},            // 0000 0001 0001s
	{0x0012, 12, 4, 3},            // 0000 0001 0010s
	{0x0013, 12, 0, 10},           // 0000 0001 0011s
	{0x0014, 12, 2, 4},            // 0000 0001 0100s
	{0x0015, 12, 7, 2},            // 0000 0001 0101s
	{0x0016, 12, 21, 1},           // 0000 0001 0110s
	{0x0017, 12, 20, 1},           // 0000 0001 0111s
	{0x0018, 12, 0, 9},            // 0000 0001 1000s
	{0x0019, 12, 19, 1},           // 0000 0001 1001s
	{0x001a, 12, 18, 1},           // 0000 0001 1010s
	{0x001b, 12, 1, 5},            // 0000 0001 1011s
	{0x001c, 12, 3, 3},            // 0000 0001 1100s
	{0x001d, 12, 0, 8},            // 0000 0001 1101s
	{0x001e, 12, 6, 2},            // 0000 0001 1110s
	{0x001f, 12, 17, 1},           // 0000 0001 1111s
	{0x0010, 13, 10, 2},           // 0000 0000 1000 0s
	{0x0011, 13, 9, 2},            // 0000 0000 1000 1s
	{0x0012, 13, 5, 3},            // 0000 0000 1001 0s
	{0x0013, 13, 3, 4},            // 0000 0000 1001 1s
	{0x0014, 13, 2, 5},            // 0000 0000 1010 0s
	{0x0015, 13, 1, 7},            // 0000 0000 1010 1s
	{0x0016, 13, 1, 6},            // 0000 0000 1011 0s
	{0x0017, 13, 0, 15},           // 0000 0000 1011 1s
	{0x0018, 13, 0, 14},           // 0000 0000 1100 0s
	{0x0019, 13, 0, 13},           // 0000 0000 1100 1s
	{0x001a, 13, 0, 12},           // 0000 0000 1101 0s
	{0x001b, 13, 26, 1},           // 0000 0000 1101 1s
	{0x001c, 13, 25, 1},           // 0000 0000 1110 0s
	{0x001d, 13, 24, 1},           // 0000 0000 1110 1s
	{0x001e, 13, 23, 1},           // 0000 0000 1111 0s
	{0x001f, 13, 22, 1},           // 0000 0000 1111 1s
	{0x0010, 14, 0, 31},           // 0000 0000 0100 00s
	{0x0011, 14, 0, 30},           // 0000 0000 0100 01s
	{0x0012, 14, 0, 29},           // 0000 0000 0100 10s
	{0x0013, 14, 0, 28},           // 0000 0000 0100 11s
	{0x0014, 14, 0, 27},           // 0000 0000 0101 00s
	{0x0015, 14, 0, 26},           // 0000 0000 0101 01s
	{0x0016, 14, 0, 25},           // 0000 0000 0101 10s
	{0x0017, 14, 0, 24},           // 0000 0000 0101 11s
	{0x0018, 14, 0, 23},           // 0000 0000 0110 00s
	{0x0019, 14, 0, 22},           // 0000 0000 0110 01s
	{0x001a, 14, 0, 21},           // 0000 0000 0110 10s
	{0x001b, 14, 0, 20},           // 0000 0000 0110 11s
	{0x001c, 14, 0, 19},           // 0000 0000 0111 00s
	{0x001d, 14, 0, 18},           // 0000 0000 0111 01s
	{0x001e, 14, 0, 17},           // 0000 0000 0111 10s
	{0x001f, 14, 0, 16},           // 0000 0000 0111 11s
	{0x0010, 15, 0, 40},           // 0000 0000 0010 000s
	{0x0011, 15, 0, 39},           // 0000 0000 0010 001s
	{0x0012, 15, 0, 38},           // 0000 0000 0010 010s
	{0x0013, 15, 0, 37},           // 0000 0000 0010 011s
	{0x0014, 15, 0, 36},           // 0000 0000 0010 100s
	{0x0015, 15, 0, 35},           // 0000 0000 0010 101s
	{0x0016, 15, 0, 34},           // 0000 0000 0010 110s
	{0x0017, 15, 0, 33},           // 0000 0000 0010 111s
	{0x0018, 15, 0, 32},           // 0000 0000 0011 000s
	{0x0019, 15, 1, 14},           // 0000 0000 0011 001s
	{0x001a, 15, 1, 13},           // 0000 0000 0011 010s
	{0x001b, 15, 1, 12},           // 0000 0000 0011 011s
	{0x001c, 15, 1, 11},           // 0000 0000 0011 100s
	{0x001d, 15, 1, 10},           // 0000 0000 0011 101s
	{0x001e, 15, 1, 9},            // 0000 0000 0011 110s
	{0x001f, 15, 1, 8},            // 0000 0000 0011 111s
	{0x0010, 16, 1, 18},           // 0000 0000 0001 0000s
	{0x0011, 16, 1, 17},           // 0000 0000 0001 0001s
	{0x0012, 16, 1, 16},           // 0000 0000 0001 0010s
	{0x0013, 16, 1, 15},           // 0000 0000 0001 0011s
	{0x0014, 16, 6, 3},            // 0000 0000 0001 0100s
	{0x0015, 16, 16, 2},           // 0000 0000 0001 0101s
	{0x0016, 16, 15, 2},           // 0000 0000 0001 0110s
	{0x0017, 16, 14, 2},           // 0000 0000 0001 0111s
	{0x0018, 16, 13, 2},           // 0000 0000 0001 1000s
	{0x0019, 16, 12, 2},           // 0000 0000 0001 1001s
	{0x001a, 16, 11, 2},           // 0000 0000 0001 1010s
	{0x001b, 16, 31, 1},           // 0000 0000 0001 1011s
	{0x001c, 16, 30, 1},           // 0000 0000 0001 1100s
	{0x001d, 16, 29, 1},           // 0000 0000 0001 1101s
	{0x001e, 16, 28, 1},           // 0000 0000 0001 1110s
	{0x001f, 16, 27, 1},           // 0000 0000 0001 1111s
}

// acCodesAlternate is the run/level code list of the alternate intra table.
var acCodesAlternate = []acCode{
	{0x0002, 2, 0, 1},             // 10s
	{0x0002, 3, 1, 1},             // 010s
	{0x0006, 3, 0, 2},             // 110s
	{0x0006, 4, RunEndOfBlock, 0}, // 0110
	{0x0007, 4, 0, 3},             // 0111s
	{0x0005, 5, 2, 1},             // 0010 1s
	{0x0006, 5, 1, 2},             // 0011 0s
	{0x0007, 5, 3, 1},             // 0011 1s
	{0x001c, 5, 0, 4},             // 1110 0s
	{0x001d, 5, 0, 5},             // 1110 1s
	{0x0001, 6, RunEscape, 0},     // 0000 01
	{0x0004, 6, 0, 7},             // 0001 00s
	{0x0005, 6, 0, 6},             // 0001 01s
	{0x0006, 6, 4, 1},             // 0001 10s
	{0x0007, 6, 5, 1},             // 0001 11s
	{0x0004, 7, 7, 1},             // 0000 100s
	{0x0005, 7, 8, 1},             // 0000 101s
	{0x0006, 7, 6, 1},             // 0000 110s
	{0x0007, 7, 2, 2},             // 0000 111s
	{0x0078, 7, 9, 1},             // 1111 000s
	{0x0079, 7, 1, 3},             // 1111 001s
	{0x007a, 7, 10, 1},            // 1111 010s
	{0x007b, 7, 0, 8},             // 1111 011s
	{0x007c, 7, 0, 9},             // 1111 100s
	{0x0020, 8, 1, 5},             // 0010 0000s
	{0x0021, 8, 11, 1},            // 0010 0001s
	{0x0022, 8, 0, 11},            // 0010 0010s
	{0x0023, 8, 0, 10},            // 0010 0011s
	{0x0024, 8, 13, 1},            // 0010 0100s
	{0x0025, 8, 12, 1},            // 0010 0101s
	{0x0026, 8, 3, 2},             // 0010 0110s
	{0x0027, 8, 1, 4},             // 0010 0111s
	{0x00fa, 8, 0, 12},            // 1111 1010s
	{0x00fb, 8, 0, 13},            // 1111 1011s
	{0x00fc, 8, 2, 3},             // 1111 1100s
	{0x00fd, 8, 4, 2},             // 1111 1101s
	{0x00fe, 8, 0, 14},            // 1111 1110s
	{0x00ff, 8, 0, 15},            // 1111 1111s
	{0x0004, 9, 5, 2},             // 0000 0010 0s
	{0x0005, 9, 14, 1},            // 0000 0010 1s
	{0x0007, 9, 15, 1},            // 0000 0011 1s
	{0x000c, 10, 2, 4},            // 0000 0011 00s
	{0x000d, 10, 16, 1},           // 0000 0011 01s
	{0x0011, 12, 8, 2},            // 0000 0001 0001s
	{0x0012, 12, 4, 3},            // 0000 0001 0010s
	{0x0015, 12, 7, 2},            // 0000 0001 0101s
	{0x0016, 12, 21, 1},           // 0000 0001 0110s
	{0x0017, 12, 20, 1},           // 0000 0001 0111s
	{0x0019, 12, 19, 1},           // 0000 0001 1001s
	{0x001a, 12, 18, 1},           // 0000 0001 1010s
	{0x001c, 12, 3, 3},            // 0000 0001 1100s
	{0x001e, 12, 6, 2},            // 0000 0001 1110s
	{0x001f, 12, 17, 1},           // 0000 0001 1111s
	{0x0010, 13, 10, 2},           // 0000 0000 1000 0s
	{0x0011, 13, 9, 2},            // 0000 0000 1000 1s
	{0x0012, 13, 5, 3},            // 0000 0000 1001 0s
	{0x0013, 13, 3, 4},            // 0000 0000 1001 1s
	{0x0014, 13, 2, 5},            // 0000 0000 1010 0s
	{0x0015, 13, 1, 7},            // 0000 0000 1010 1s
	{0x0016, 13, 1, 6},            // 0000 0000 1011 0s
	{0x001b, 13, 26, 1},           // 0000 0000 1101 1s
	{0x001c, 13, 25, 1},           // 0000 0000 1110 0s
	{0x001d, 13, 24, 1},           // 0000 0000 1110 1s
	{0x001e, 13, 23, 1},           // 0000 0000 1111 0s
	{0x001f, 13, 22, 1},           // 0000 0000 1111 1s
	{0x0010, 14, 0, 31},           // 0000 0000 0100 00s
	{0x0011, 14, 0, 30},           // 0000 0000 0100 01s
	{0x0012, 14, 0, 29},           // 0000 0000 0100 10s
	{0x0013, 14, 0, 28},           // 0000 0000 0100 11s
	{0x0014, 14, 0, 27},           // 0000 0000 0101 00s
	{0x0015, 14, 0, 26},           // 0000 0000 0101 01s
	{0x0016, 14, 0, 25},           // 0000 0000 0101 10s
	{0x0017, 14, 0, 24},           // 0000 0000 0101 11s
	{0x0018, 14, 0, 23},           // 0000 0000 0110 00s
	{0x0019, 14, 0, 22},           // 0000 0000 0110 01s
	{0x001a, 14, 0, 21},           // 0000 0000 0110 10s
	{0x001b, 14, 0, 20},           // 0000 0000 0110 11s
	{0x001c, 14, 0, 19},           // 0000 0000 0111 00s
	{0x001d, 14, 0, 18},           // 0000 0000 0111 01s
	{0x001e, 14, 0, 17},           // 0000 0000 0111 10s
	{0x001f, 14, 0, 16},           // 0000 0000 0111 11s
	{0x0010, 15, 0, 40},           // 0000 0000 0010 000s
	{0x0011, 15, 0, 39},           // 0000 0000 0010 001s
	{0x0012, 15, 0, 38},           // 0000 0000 0010 010s
	{0x0013, 15, 0, 37},           // 0000 0000 0010 011s
	{0x0014, 15, 0, 36},           // 0000 0000 0010 100s
	{0x0015, 15, 0, 35},           // 0000 0000 0010 101s
	{0x0016, 15, 0, 34},           // 0000 0000 0010 110s
	{0x0017, 15, 0, 33},           // 0000 0000 0010 111s
	{0x0018, 15, 0, 32},           // 0000 0000 0011 000s
	{0x0019, 15, 1, 14},           // 0000 0000 0011 001s
	{0x001a, 15, 1, 13},           // 0000 0000 0011 010s
	{0x001b, 15, 1, 12},           // 0000 0000 0011 011s
	{0x001c, 15, 1, 11},           // 0000 0000 0011 100s
	{0x001d, 15, 1, 10},           // 0000 0000 0011 101s
	{0x001e, 15, 1, 9},            // 0000 0000 0011 110s
	{0x001f, 15, 1, 8},            // 0000 0000 0011 111s
	{0x0010, 16, 1, 18},           // 0000 0000 0001 0000s
	{0x0011, 16, 1, 17},           // 0000 0000 0001 0001s
	{0x0012, 16, 1, 16},           // 0000 0000 0001 0010s
	{0x0013, 16, 1, 15},           // 0000 0000 0001 0011s
	{0x0014, 16, 6, 3},            // 0000 0000 0001 0100s
	{0x0015, 16, 16, 2},           // 0000 0000 0001 0101s
	{0x0016, 16, 15, 2},           // 0000 0000 0001 0110s
	{0x0017, 16, 14, 2},           // 0000 0000 0001 0111s
	{0x0018, 16, 13, 2},           // 0000 0000 0001 1000s
	{0x0019, 16, 12, 2},           // 0000 0000 0001 1001s
	{0x001a, 16, 11, 2},           // 0000 0000 0001 1010s
	{0x001b, 16, 31, 1},           // 0000 0000 0001 1011s
	{0x001c, 16, 30, 1},           // 0000 0000 0001 1100s
	{0x001d, 16, 29, 1},           // 0000 0000 0001 1101s
	{0x001e, 16, 28, 1},           // 0000 0000 0001 1110s
	{0x001f, 16, 27, 1},           // 0000 0000 0001 1111s
}

var scanZigzag = [64]byte{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

var scanAlternate = [64]byte{
	0, 8, 16, 24, 1, 9, 2, 10,
	17, 25, 32, 40, 48, 56, 57, 49,
	41, 33, 26, 18, 3, 11, 4, 12,
	19, 27, 34, 42, 50, 58, 35, 43,
	51, 59, 20, 28, 5, 13, 6, 14,
	21, 29, 36, 44, 52, 60, 37, 45,
	53, 61, 22, 30, 7, 15, 23, 31,
	38, 46, 54, 62, 39, 47, 55, 63,
}

// DefaultQuantMatrix is the default intra quantization matrix in raster order.
var DefaultQuantMatrix = [64]byte{
	8, 16, 19, 22, 26, 27, 29, 34,
	16, 16, 22, 24, 27, 29, 34, 37,
	19, 22, 26, 27, 29, 34, 34, 38,
	22, 22, 26, 27, 29, 34, 37, 40,
	22, 26, 27, 29, 32, 35, 40, 48,
	26, 27, 29, 32, 35, 40, 48, 58,
	26, 27, 29, 34, 38, 46, 56, 69,
	27, 29, 35, 38, 46, 56, 69, 83,
}

// ScanOrder returns the permutation mapping a scan index to a raster index.
func ScanOrder(s Scan) *[64]byte {
	if s == ScanAlternate {
		return &scanAlternate
	}

	return &scanZigzag
}

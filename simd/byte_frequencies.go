package simd

// ByteFrequencies ranks every byte value by how common it is in typical
// haystacks: English text, source code and sampled binary data.
//
// Lower rank means rarer byte. The rare-byte prefilter anchors on the
// lowest-ranked bytes of a pattern, since memchr over a rare byte stops
// less often.
//
// The ranking follows the one used by Rust's memchr crate.
//
// Reference: https://github.com/BurntSushi/memchr
var ByteFrequencies = [256]byte{
	// 0x00-0x0F: Control characters (generally rare)
	0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0,
	// 0x10-0x1F: More control characters
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	// 0x20-0x2F: Space, punctuation
	// ' '=255 (most common), '!'=60, '"'=140, '#'=50, '$'=40, '%'=35, '&'=30, '\''=160
	// '('=130, ')'=130, '*'=80, '+'=55, ','=200, '-'=140, '.'=210, '/'=100
	255, 60, 140, 50, 40, 35, 30, 160, 130, 130, 80, 55, 200, 140, 210, 100,
	// 0x30-0x3F: Digits and more punctuation
	// '0'=180, '1'=190, '2'=170, '3'=150, '4'=140, '5'=140, '6'=130, '7'=120
	// '8'=120, '9'=120, ':'=150, ';'=100, '<'=70, '='=160, '>'=70, '?'=50
	180, 190, 170, 150, 140, 140, 130, 120, 120, 120, 150, 100, 70, 160, 70, 50,
	// 0x40-0x4F: '@' and uppercase A-O
	// '@'=25 (rare!), 'A'=120, 'B'=80, 'C'=90, 'D'=85, 'E'=130, 'F'=75, 'G'=70
	// 'H'=80, 'I'=115, 'J'=30, 'K'=35, 'L'=90, 'M'=85, 'N'=100, 'O'=105
	25, 120, 80, 90, 85, 130, 75, 70, 80, 115, 30, 35, 90, 85, 100, 105,
	// 0x50-0x5F: Uppercase P-Z and brackets
	// 'P'=80, 'Q'=15, 'R'=100, 'S'=110, 'T'=115, 'U'=70, 'V'=45, 'W'=55
	// 'X'=20, 'Y'=50, 'Z'=10, '['=90, '\\'=60, ']'=90, '^'=20, '_'=110
	80, 15, 100, 110, 115, 70, 45, 55, 20, 50, 10, 90, 60, 90, 20, 110,
	// 0x60-0x6F: Backtick and lowercase a-o
	// '`'=30, 'a'=225, 'b'=140, 'c'=170, 'd'=165, 'e'=245, 'f'=135, 'g'=130
	// 'h'=150, 'i'=200, 'j'=25, 'k'=65, 'l'=175, 'm'=155, 'n'=195, 'o'=205
	30, 225, 140, 170, 165, 245, 135, 130, 150, 200, 25, 65, 175, 155, 195, 205,
	// 0x70-0x7F: Lowercase p-z and braces
	// 'p'=145, 'q'=15, 'r'=195, 's'=200, 't'=215, 'u'=150, 'v'=75, 'w'=95
	// 'x'=45, 'y'=120, 'z'=20, '{'=85, '|'=40, '}'=85, '~'=15, DEL=0
	145, 15, 195, 200, 215, 150, 75, 95, 45, 120, 20, 85, 40, 85, 15, 0,
	// 0x80-0xFF: Extended ASCII / UTF-8 continuation bytes (generally rare in text)
	// These are less common in typical text/code, so they get low ranks
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
}

// ByteRank returns the frequency rank of b. Lower values are rarer.
func ByteRank(b byte) byte {
	return ByteFrequencies[b]
}

// RareByteInfo is the pair of pattern positions a prefilter anchors on.
//
// Index1 < Index2 whenever the pattern has at least two bytes; Byte1 and
// Byte2 are the pattern bytes at those positions. For a one-byte pattern
// both indices are 0.
type RareByteInfo struct {
	Byte1  byte
	Index1 int
	Byte2  byte
	Index2 int
}

// Offset returns the distance between the two anchor positions.
func (r RareByteInfo) Offset() int {
	return r.Index2 - r.Index1
}

// SelectRareBytes picks the two rarest positions of needle.
//
// The rarest byte is taken first. The second position prefers a byte value
// different from the first, since a pair of equal bytes filters little
// better than one of them alone; it falls back to another occurrence of the
// same value when needle has only one distinct byte. Ties keep the earliest
// position. The pair is returned ordered by position.
func SelectRareBytes(needle []byte) RareByteInfo {
	n := len(needle)
	if n == 0 {
		return RareByteInfo{}
	}
	if n == 1 {
		return RareByteInfo{Byte1: needle[0], Byte2: needle[0]}
	}

	first := 0
	for i := 1; i < n; i++ {
		if ByteFrequencies[needle[i]] < ByteFrequencies[needle[first]] {
			first = i
		}
	}

	second := -1
	for i := 0; i < n; i++ {
		if i == first {
			continue
		}
		switch {
		case second < 0:
			second = i
		case (needle[i] != needle[first]) != (needle[second] != needle[first]):
			// Exactly one of the two differs from the anchor byte.
			if needle[i] != needle[first] {
				second = i
			}
		case ByteFrequencies[needle[i]] < ByteFrequencies[needle[second]]:
			second = i
		}
	}

	if second < first {
		first, second = second, first
	}
	return RareByteInfo{
		Byte1:  needle[first],
		Index1: first,
		Byte2:  needle[second],
		Index2: second,
	}
}

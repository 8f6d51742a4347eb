// Package simd provides word-at-a-time byte scanning for the byte
// specialisation of the search.
//
// The routines use SWAR (SIMD Within A Register): eight haystack bytes are
// loaded into a uint64 and tested against a broadcast needle with the
// zero-byte detection formula from Hacker's Delight. They are pure Go, so the
// same code runs on every platform, and they use no memory beyond a few
// registers.
//
// The primary use case is the rare-byte prefilter, which jumps the search to
// the next position where the pattern's rarest bytes line up.
package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = uint64(0x0101010101010101)
	hi8 = uint64(0x8080808080808080)
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// It is equivalent to bytes.IndexByte.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)

	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	// Broadcast needle to all 8 bytes: 0x42 -> 0x4242424242424242.
	mask := uint64(needle) * lo8

	idx := 0
	for idx+8 <= n {
		// Matching bytes become 0x00 after the XOR.
		xor := binary.LittleEndian.Uint64(haystack[idx:]) ^ mask
		if found := (xor - lo8) & ^xor & hi8; found != 0 {
			return idx + bits.TrailingZeros64(found)/8
		}
		idx += 8
	}

	for ; idx < n; idx++ {
		if haystack[idx] == needle {
			return idx
		}
	}
	return -1
}

// MemchrPair returns the first position i where haystack[i] == byte1 and
// haystack[i+offset] == byte2, or -1. offset must be non-negative.
//
// Two bytes at a fixed distance are far more selective than a single byte,
// so the prefilter anchors on the two rarest bytes of the pattern.
//
// Example:
//
//	// '@' at i and 'c' six bytes later
//	pos := simd.MemchrPair([]byte("contact@test.com for info"), '@', 'c', 6)
//	// pos == 7
func MemchrPair(haystack []byte, byte1, byte2 byte, offset int) int {
	n := len(haystack)
	if offset < 0 || n <= offset {
		return -1
	}
	if offset == 0 {
		if byte1 != byte2 {
			return -1
		}
		return Memchr(haystack, byte1)
	}

	mask1 := uint64(byte1) * lo8
	mask2 := uint64(byte2) * lo8

	idx := 0
	// Eight bytes must be readable at both idx and idx+offset.
	for idx+8+offset <= n {
		xor1 := binary.LittleEndian.Uint64(haystack[idx:]) ^ mask1
		xor2 := binary.LittleEndian.Uint64(haystack[idx+offset:]) ^ mask2

		// Bit 8k+7 of found1 is set when haystack[idx+k] == byte1, the same
		// bit of found2 when haystack[idx+offset+k] == byte2. The borrow can
		// also set bits above a real match, so each candidate is confirmed.
		found := (xor1 - lo8) & ^xor1 & hi8
		found &= (xor2 - lo8) & ^xor2 & hi8
		for found != 0 {
			i := idx + bits.TrailingZeros64(found)/8
			if haystack[i] == byte1 && haystack[i+offset] == byte2 {
				return i
			}
			found &= found - 1
		}
		idx += 8
	}

	for ; idx+offset < n; idx++ {
		if haystack[idx] == byte1 && haystack[idx+offset] == byte2 {
			return idx
		}
	}
	return -1
}

// SPDX-License-Identifier: MIT
// Source: github.com/agatti/lzsa

package lzsa

// LZSA1 raw-block format constants: token field layout and the escape values
// used by the extended literal/match length encodings.

// Token byte layout is O|LLL|MMMM: bit 7 selects the offset width, bits 6-4
// hold the literal length field and bits 3-0 hold the match length field.
const (
	tokenLongOffset = 0x80 // bit 7 set: 2-byte little-endian offset follows the literals

	literalFieldShift = 4
	literalFieldMask  = 0x07
	matchFieldMask    = 0x0f
)

// Literal length field bounds. Fields 0-6 encode the run length directly;
// field 7 consumes one extension byte with two reserved escape values.
const (
	literalExtMarker = 7
	literalExtMax    = 248 // extension byte 0..248: length = 7 + byte
	literalExtWord   = 249 // 16-bit little-endian length follows, used as-is
	literalExtLong   = 250 // one more byte follows: length = 256 + byte
)

// Match length field bounds. Fields 0-14 encode length-3 directly; field 15
// consumes one extension byte with two reserved escape values.
const (
	minMatchLen    = 3
	matchExtMarker = 15
	matchExtBase   = matchExtMarker + minMatchLen // 18, smallest extended length
	matchExtMax    = 237                          // extension byte 0..237: length = 18 + byte
	matchExtWord   = 238                          // 16-bit length follows; value 0 terminates the block
	matchExtLong   = 239                          // one more byte follows: length = 256 + byte
)

// Offset bounds. The 1-byte form covers backward distances 1..256 (byte 0
// means 256); the 2-byte form is a negative two's-complement displacement
// covering 1..65536.
const (
	shortOffsetRange = 1 << 8
	longOffsetRange  = 1 << 16
)

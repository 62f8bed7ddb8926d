// SPDX-License-Identifier: MIT
// Source: github.com/agatti/lzsa

package lzsa

// DecodeBlock decodes one LZSA1 raw block from src into dst without any
// validation and returns the number of bytes written to dst and the number of
// bytes consumed from src. The caller guarantees that src holds a well-formed
// block and that dst has capacity for the full decompressed size; a starting
// offset in either buffer is expressed by slicing. Malformed input has
// unspecified behavior (typically a runtime bounds panic).
//
// Safe for concurrent use on disjoint buffers; all decode state is local.
func DecodeBlock(dst, src []byte) (outWritten, inConsumed int) {
	var inPos, outPos int

	for {
		token := src[inPos]
		inPos++

		litLen := int(token>>literalFieldShift) & literalFieldMask
		if litLen == literalExtMarker {
			e := src[inPos]
			inPos++

			switch {
			case e <= literalExtMax:
				litLen = literalExtMarker + int(e)
			case e == literalExtLong:
				litLen = 256 + int(src[inPos])
				inPos++
			default: // literalExtWord
				litLen = int(src[inPos]) | int(src[inPos+1])<<8
				inPos += 2
			}
		}

		copy(dst[outPos:outPos+litLen], src[inPos:inPos+litLen])
		inPos += litLen
		outPos += litLen

		var matchDist int
		if token&tokenLongOffset != 0 {
			matchDist = longOffsetRange - (int(src[inPos]) | int(src[inPos+1])<<8)
			inPos += 2
		} else {
			matchDist = shortOffsetRange - int(src[inPos])
			inPos++
		}

		matchLen := int(token) & matchFieldMask
		if matchLen == matchExtMarker {
			e := src[inPos]
			inPos++

			switch {
			case e <= matchExtMax:
				matchLen = matchExtBase + int(e)
			case e == matchExtLong:
				matchLen = 256 + int(src[inPos])
				inPos++
			default: // matchExtWord: 16-bit length, 0 terminates the block
				w := int(src[inPos]) | int(src[inPos+1])<<8
				inPos += 2
				if w == 0 {
					return outPos, inPos
				}
				matchLen = w
			}
		} else {
			matchLen += minMatchLen
		}

		copyBackRefFast(dst, outPos, matchDist, matchLen)
		outPos += matchLen
	}
}

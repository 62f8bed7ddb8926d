// SPDX-License-Identifier: MIT
// Source: github.com/agatti/lzsa

package lzsa

// copyBackRef copies length bytes from dst[outputPos-dist:outputPos-dist+length]
// to dst[outputPos:outputPos+length] after validating both ends of the range.
func copyBackRef(dst []byte, outputPos, dist, length int) error {
	if outputPos-dist < 0 {
		return ErrLookBehindUnderrun
	}

	if outputPos+length > len(dst) {
		return ErrOutputOverrun
	}

	copyBackRefFast(dst, outputPos, dist, length)

	return nil
}

// copyBackRefFast is the unchecked copy engine. If dist < length, source and
// destination overlap; the copy must run forward one element at a time so a
// byte written earlier in the copy is readable as source later in the same
// copy (this is how the format expresses repeating patterns). The built-in
// copy does not handle overlapping regions where src precedes dst.
// dist 1 and 2 degenerate to replicating a 1- or 2-byte pattern.
func copyBackRefFast(dst []byte, outputPos, dist, length int) {
	mPos := outputPos - dist

	switch {
	case dist == 1:
		b := dst[mPos]
		span := dst[outputPos : outputPos+length]
		for i := range span {
			span[i] = b
		}

	case dist == 2:
		b0, b1 := dst[mPos], dst[mPos+1]
		span := dst[outputPos : outputPos+length]
		for i := 0; i+1 < len(span); i += 2 {
			span[i], span[i+1] = b0, b1
		}
		if length&1 == 1 {
			span[length-1] = b0
		}

	case dist >= length:
		// Ranges cannot overlap, bulk copy is safe.
		copy(dst[outputPos:outputPos+length], dst[mPos:mPos+length])

	default:
		for i := 0; i < length; i++ {
			dst[outputPos+i] = dst[mPos+i]
		}
	}
}

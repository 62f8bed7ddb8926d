// SPDX-License-Identifier: MIT
// Source: github.com/agatti/lzsa

package lzsa

// Decompress decompresses an LZSA1 raw block from src into a buffer of length opts.OutLen.
// Returns ErrOptionsRequired if opts is nil; ErrEmptyInput if src is empty.
// On success returns the decompressed slice (length may be less than OutLen since the
// block ends with its own terminator).
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	out, _, err := DecompressN(src, opts)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// DecompressN decompresses an LZSA1 raw block from src and returns the decoded slice,
// the number of input bytes consumed (nRead), and an error.
// nRead is 0 on error. Use this when advancing a stream (e.g. back-to-back compressed blocks).
func DecompressN(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	if opts == nil {
		return nil, 0, ErrOptionsRequired
	}

	if len(src) == 0 {
		return nil, 0, ErrEmptyInput
	}

	outLen := opts.OutLen
	if outLen < 0 {
		return nil, 0, ErrOptionsRequired
	}

	dst := make([]byte, outLen)
	if opts.Unchecked {
		outWritten, inConsumed := DecodeBlock(dst, src)
		return dst[:outWritten], inConsumed, nil
	}

	outWritten, inConsumed, err := decompressCore(src, dst)
	if err != nil {
		return nil, 0, err
	}

	return dst[:outWritten], inConsumed, nil
}

// DecompressInto decompresses an LZSA1 raw block from src into the caller-provided
// dst buffer using the checked core. On success the returned slice aliases dst.
func DecompressInto(src, dst []byte) ([]byte, error) {
	out, _, err := DecompressNInto(src, dst)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// DecompressNInto decompresses an LZSA1 raw block from src into dst and returns the
// decoded slice (aliasing dst), the number of input bytes consumed, and an error.
func DecompressNInto(src, dst []byte) ([]byte, int, error) {
	if len(src) == 0 {
		return nil, 0, ErrEmptyInput
	}

	outWritten, inConsumed, err := decompressCore(src, dst)
	if err != nil {
		return nil, 0, err
	}

	return dst[:outWritten], inConsumed, nil
}

// decompressCore decodes one LZSA1 raw block from src into dst with full bounds
// validation. It writes starting at dst[0] and returns (bytes written, input bytes
// consumed, nil) once the block terminator is reached. On error it returns (0, 0, err).
//
// Stream order per token: control byte, literal length extension, literal bytes,
// match offset, match length extension. The 16-bit match length extension value 0
// is the only terminator; it is detected after the offset bytes of its token have
// already been consumed.
func decompressCore(src, dst []byte) (outWritten, inConsumed int, err error) {
	if len(src) == 0 {
		return 0, 0, ErrEmptyInput
	}

	var inPos, outPos int

	for {
		token, err := readCompressedByte(src, &inPos)
		if err != nil {
			return 0, 0, err
		}

		litLen := int(token>>literalFieldShift) & literalFieldMask
		if litLen == literalExtMarker {
			litLen, err = readLiteralLenExt(src, &inPos)
			if err != nil {
				return 0, 0, err
			}
		}

		if err := copyLiteralRun(src, &inPos, dst, &outPos, litLen); err != nil {
			return 0, 0, err
		}

		var matchDist int
		if token&tokenLongOffset != 0 {
			v, err := readCompressedLE16(src, &inPos)
			if err != nil {
				return 0, 0, err
			}

			matchDist = longOffsetRange - int(v)
		} else {
			lo, err := readCompressedByte(src, &inPos)
			if err != nil {
				return 0, 0, err
			}

			matchDist = shortOffsetRange - int(lo)
		}

		matchLen := int(token) & matchFieldMask
		if matchLen == matchExtMarker {
			var done bool

			matchLen, done, err = readMatchLenExt(src, &inPos)
			if err != nil {
				return 0, 0, err
			}

			if done {
				return outPos, inPos, nil
			}
		} else {
			matchLen += minMatchLen
		}

		if err := copyBackRef(dst, outPos, matchDist, matchLen); err != nil {
			return 0, 0, err
		}

		outPos += matchLen
	}
}

// readLiteralLenExt resolves an extended literal run length (token field 7).
func readLiteralLenExt(src []byte, inPos *int) (int, error) {
	e, err := readCompressedByte(src, inPos)
	if err != nil {
		return 0, err
	}

	switch {
	case e <= literalExtMax:
		return literalExtMarker + int(e), nil

	case e == literalExtLong:
		f, err := readCompressedByte(src, inPos)
		if err != nil {
			return 0, err
		}

		return 256 + int(f), nil

	default: // literalExtWord: the 16-bit value is the length itself
		v, err := readCompressedLE16(src, inPos)
		if err != nil {
			return 0, err
		}

		return int(v), nil
	}
}

// readMatchLenExt resolves an extended match length (token field 15).
// done is true when the 16-bit extension carries the value 0, the block terminator.
func readMatchLenExt(src []byte, inPos *int) (length int, done bool, err error) {
	e, err := readCompressedByte(src, inPos)
	if err != nil {
		return 0, false, err
	}

	switch {
	case e <= matchExtMax:
		return matchExtBase + int(e), false, nil

	case e == matchExtLong:
		f, err := readCompressedByte(src, inPos)
		if err != nil {
			return 0, false, err
		}

		return 256 + int(f), false, nil

	default: // matchExtWord: the 16-bit value is the length itself, 0 terminates
		w, err := readCompressedLE16(src, inPos)
		if err != nil {
			return 0, false, err
		}

		if w == 0 {
			return 0, true, nil
		}

		return int(w), false, nil
	}
}

// readCompressedByte reads one byte from src at *inPos and advances *inPos.
func readCompressedByte(src []byte, inPos *int) (byte, error) {
	if *inPos >= len(src) {
		return 0, ErrInputOverrun
	}

	b := src[*inPos]
	*inPos++

	return b, nil
}

// readCompressedLE16 reads one little-endian uint16 from src at *inPos and advances *inPos by 2.
func readCompressedLE16(src []byte, inPos *int) (uint16, error) {
	if *inPos+2 > len(src) {
		return 0, ErrInputOverrun
	}

	lo := uint16(src[*inPos])
	hi := uint16(src[*inPos+1])
	*inPos += 2

	return lo | hi<<8, nil
}

// copyLiteralRun copies `n` bytes from src[*inPos:] to dst[*outPos:] and advances both pointers.
func copyLiteralRun(src []byte, inPos *int, dst []byte, outPos *int, n int) error {
	if n == 0 {
		return nil
	}

	if *inPos+n > len(src) {
		return ErrInputOverrun
	}

	if *outPos+n > len(dst) {
		return ErrOutputOverrun
	}

	copy(dst[*outPos:*outPos+n], src[*inPos:*inPos+n])
	*inPos += n
	*outPos += n

	return nil
}

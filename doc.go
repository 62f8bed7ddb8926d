// SPDX-License-Identifier: MIT
// Source: github.com/agatti/lzsa

/*
Package lzsa implements LZSA1 raw-block decompression.

Each token byte packs three fields, O|LLL|MMMM: bit 7 selects a 1- or 2-byte
backward match offset, bits 6-4 hold the literal run length (7 = extended)
and bits 3-0 hold the match length minus 3 (15 = extended). Extended lengths
follow the token as 1-3 extra bytes; the block ends with the reserved 16-bit
match-length extension value 0. There is no header and no checksum: framing
belongs to the container around the block.

This package only decodes. Blocks are produced by an LZSA1 compressor such as
the reference lzsa tool.

# Decompress

OutLen is required (use DecompressOptions). From a byte slice:

	out, err := lzsa.Decompress(compressed, lzsa.DefaultDecompressOptions(expectedLen))

To get the number of input bytes consumed (e.g. for back-to-back compressed blocks):

	out, nRead, err := lzsa.DecompressN(compressed, lzsa.DefaultDecompressOptions(expectedLen))
	// advance: compressed = compressed[nRead:]

To reuse caller-managed output memory (no per-call output allocation):

	dst := make([]byte, expectedLen)
	out, err := lzsa.DecompressInto(compressed, dst)
	out, nRead, err := lzsa.DecompressNInto(compressed, dst)

From an io.Reader (e.g. stream with known decompressed size):

	out, err := lzsa.DecompressFromReader(r, lzsa.DefaultDecompressOptions(expectedLen))

# Unchecked decoding

The default path validates every read and write and returns sentinel errors on
malformed input. For trusted input, DecompressOptions.Unchecked or DecodeBlock
select a core without validation, matching the reference format contract
(malformed input has unspecified behavior):

	n, _ := lzsa.DecodeBlock(dst, compressed)
	out := dst[:n]
*/
package lzsa

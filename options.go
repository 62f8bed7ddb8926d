// SPDX-License-Identifier: MIT
// Source: github.com/agatti/lzsa

package lzsa

// DecompressOptions configures decompression.
// OutLen is required (expected decompressed size); MaxInputSize limits reads
// when using DecompressFromReader; Unchecked selects the unvalidated core.
type DecompressOptions struct {
	// OutLen is the expected decompressed size (required for buffer allocation and safety).
	OutLen int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
	// Unchecked decodes with DecodeBlock, skipping all input/output validation.
	// Only for trusted input: a malformed block then has unspecified behavior,
	// typically a runtime panic instead of a sentinel error.
	Unchecked bool
}

// DefaultDecompressOptions returns options with the given output length,
// no input limit, and the checked decode core.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}

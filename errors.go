// SPDX-License-Identifier: MIT
// Source: github.com/agatti/lzsa

package lzsa

import "errors"

// Sentinel errors for the checked decompression path. The unchecked path
// (DecompressOptions.Unchecked, DecodeBlock) reports nothing: malformed input there
// has unspecified behavior, matching the format contract.
var (
	// ErrEmptyInput is returned when the input slice or stream is empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrInputOverrun is returned when the decoder reads past the end of input.
	ErrInputOverrun = errors.New("input overrun")
	// ErrOutputOverrun is returned when the decoder would write past the output buffer.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrLookBehindUnderrun is returned when a match references before the start of the output.
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrOptionsRequired is returned when Decompress is called with nil options (OutLen is required).
	ErrOptionsRequired = errors.New("options required: OutLen must be set")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)

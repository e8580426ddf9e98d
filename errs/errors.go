// Package errs defines sentinel errors shared across the RangeSeries codec
// packages. Callers match them with errors.Is; the codec wraps them with the
// offending block tag and, for text input, the source line number.
package errs

import "errors"

var (
	// ErrMagicMismatch indicates the leading block of a binary stream is not
	// the required AQFT container.
	ErrMagicMismatch = errors.New("leading block is not AQFT")

	// ErrUnknownBlockType indicates a block tag absent from the registry.
	// It aborts the whole operation wherever it surfaces; unknown blocks are
	// never skipped.
	ErrUnknownBlockType = errors.New("unknown block type")

	// ErrTruncatedBlock indicates a block whose payload is shorter than the
	// minimum its type requires.
	ErrTruncatedBlock = errors.New("block payload is truncated")

	// ErrMalformedParameterLine indicates a text parameter line whose value
	// fails the grammar its key requires.
	ErrMalformedParameterLine = errors.New("malformed parameter line")

	// ErrMissingParameter indicates a block in text form lacking a required
	// parameter line before its blank-line terminator.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrUnsupportedSampleFormat indicates an afft/ifft block whose declared
	// sample format or subtype is not the supported cviq/flt4 pair.
	ErrUnsupportedSampleFormat = errors.New("unsupported sample format")

	// ErrMissingBoundary indicates text input lacking one of the AQFT, HEAD,
	// BODY or END boundary blocks required to recompute container sizes.
	ErrMissingBoundary = errors.New("missing container boundary")

	// ErrMalformedSampleLine indicates an array-of-samples line that does not
	// carry exactly index, I and Q tokens.
	ErrMalformedSampleLine = errors.New("malformed sample line")

	// ErrBadSampleLineCount indicates an array-of-samples block whose line
	// count is not a multiple of 3.
	ErrBadSampleLineCount = errors.New("sample line count is not a multiple of 3")
)

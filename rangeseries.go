// Package rangeseries converts CODAR SeaSonde RangeSeries recordings between
// their binary container format and an editable line-oriented text form, in
// both directions and without loss.
//
// A recording is a stream of type-tagged, length-prefixed blocks: an 8-byte
// header of fourcc tag and big-endian payload length, followed by the payload.
// Container blocks (AQFT, HEAD, BODY, END) carry no payload of their own;
// their length is the combined wire size of the blocks they enclose, so the
// stream is logically a tree but physically a flat sequence.
//
// # Basic Usage
//
// Dumping a recording to text:
//
//	import "github.com/rowg/rangeseries-editing-utility"
//
//	seq, err := rangeseries.Parse(data)
//	if err != nil {
//	    return err
//	}
//	if err := rangeseries.ToText(os.Stdout, seq, false); err != nil {
//	    return err
//	}
//
// Rebuilding a binary recording from edited text:
//
//	seq, lines, err := rangeseries.FromText(f)
//	if err != nil {
//	    return err
//	}
//	data, err := rangeseries.ToBinary(seq)
//
// Container sizes are recomputed from the leaf blocks on the text-to-binary
// path, so edits that change payload sizes stay consistent.
//
// This package is a thin facade over the chunk package, which holds the block
// model, the per-type codecs and the parsers.
package rangeseries

import (
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/rowg/rangeseries-editing-utility/chunk"
	"github.com/rowg/rangeseries-editing-utility/internal/pool"
)

// Tag is a four-character block type code.
type Tag = chunk.Tag

// Descriptor is the in-memory record of one block.
type Descriptor = chunk.Descriptor

// Sequence is the flat, order-preserving descriptor list of one recording.
type Sequence = chunk.Sequence

// ParserOption customizes parsing; see chunk.WithLogger.
type ParserOption = chunk.ParserOption

// WithLogger sets the logger used for parse warnings.
var WithLogger = chunk.WithLogger

// Parse reads a binary recording and returns its descriptor sequence with
// payloads in host byte order.
func Parse(data []byte, opts ...ParserOption) (Sequence, error) {
	return chunk.NewParser(opts...).Parse(data)
}

// ToText writes the text form of seq to w. With headerOnly set, output stops
// just before the BODY marker.
func ToText(w io.Writer, seq Sequence, headerOnly bool) error {
	return chunk.WriteText(w, seq, headerOnly)
}

// FromText parses the text form of a recording and returns its descriptor
// sequence, container sizes recomputed, along with the number of input lines
// read.
func FromText(r io.Reader) (Sequence, int, error) {
	return chunk.ReadText(r)
}

// ToBinary serializes seq to its wire form. Container sizes are written as
// stored; sequences built by FromText already carry recomputed sizes, and
// callers that edited descriptors re-run RecomputeSizes first.
func ToBinary(seq Sequence) ([]byte, error) {
	buf := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(buf)

	if err := chunk.AppendSequence(buf, seq); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// RecomputeSizes rewrites the container sizes of seq from its leaf blocks.
func RecomputeSizes(seq Sequence) error {
	return chunk.RecomputeSizes(seq)
}

// Fingerprint returns the xxHash64 of the recording's wire form, for cheap
// round-trip verification.
func Fingerprint(seq Sequence) (uint64, error) {
	buf := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(buf)

	if err := chunk.AppendSequence(buf, seq); err != nil {
		return 0, err
	}

	return xxhash.Sum64(buf.Bytes()), nil
}

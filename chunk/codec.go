package chunk

import (
	"fmt"
	"io"

	"github.com/rowg/rangeseries-editing-utility/endian"
	"github.com/rowg/rangeseries-editing-utility/errs"
	"github.com/rowg/rangeseries-editing-utility/internal/pool"
)

// Codec converts one block type between its three representations: wire
// payload bytes, host-order descriptor, and text form. The registry maps every
// known tag to exactly one Codec; the set is closed.
type Codec interface {
	// Fixup normalizes the descriptor's freshly parsed payload from wire
	// order to host order in place.
	Fixup(d *Descriptor, norm endian.Normalizer) error

	// Decode writes the block's text form: tag line, parameter or sample
	// lines, trailing blank line.
	Decode(d *Descriptor, cfg *Config, w io.Writer) error

	// ParseText consumes the block's parameter or sample lines following an
	// already-consumed tag line and builds a descriptor. Container sizes are
	// left zero for later recomputation.
	ParseText(r *LineReader, cfg *Config) (*Descriptor, error)

	// Encode appends the block's wire form, including its own 8-byte header,
	// to buf.
	Encode(d *Descriptor, buf *pool.ByteBuffer) error
}

var registry = map[Tag]Codec{
	TagAQFT: containerCodec{tag: TagAQFT},
	TagHEAD: containerCodec{tag: TagHEAD},
	TagSign: signCodec{},
	TagMcda: mcdaCodec{},
	TagDbrf: dbrfCodec{},
	TagCnst: cnstCodec{},
	TagHasi: hasiCodec{},
	TagSwep: swepCodec{},
	TagFbin: fbinCodec{},
	TagBODY: containerCodec{tag: TagBODY},
	TagRtag: rtagCodec{},
	TagGps1: gps1Codec{},
	TagIndx: indxCodec{},
	TagScal: scalCodec{},
	TagAfft: sampleCodec{tag: TagAfft, precision: 20},
	TagIfft: sampleCodec{tag: TagIfft, precision: 16},
	TagEND:  containerCodec{tag: TagEND},
}

// Lookup returns the codec for tag. An unknown tag is a hard error at every
// call site; blocks are never silently skipped.
func Lookup(tag Tag) (Codec, error) {
	if codec, ok := registry[tag]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("block %q: %w", tag.String(), errs.ErrUnknownBlockType)
}

// truncated reports ErrTruncatedBlock for a payload below its type minimum.
func truncated(tag Tag, size uint32, minSize int) error {
	return fmt.Errorf("block %q: %d bytes, need %d: %w", tag.String(), size, minSize, errs.ErrTruncatedBlock)
}

// normalizeFields walks a packed field layout, swapping each scalar in place.
// Positive widths are scalar sizes in bytes; negative widths are raw byte runs
// left untouched.
func normalizeFields(data []byte, widths []int, norm endian.Normalizer) {
	off := 0
	for _, w := range widths {
		if w > 0 {
			norm.Normalize(data[off:off+w], w)
			off += w
		} else {
			off += -w
		}
	}
}

// appendHeader appends a wire-order block header to buf.
func appendHeader(buf *pool.ByteBuffer, tag Tag, size uint32) {
	wire := endian.Wire()
	buf.B = wire.AppendUint32(buf.B, uint32(tag))
	buf.B = wire.AppendUint32(buf.B, size)
}

// appendFixed appends a block header plus a fixed-layout payload, passing any
// bytes beyond the declared layout through untouched.
func appendFixed(buf *pool.ByteBuffer, d *Descriptor, widths []int, minSize int) {
	appendHeader(buf, d.Tag, d.Size)
	appendFields(buf, d.Data, widths)
	if len(d.Data) > minSize {
		buf.MustWrite(d.Data[minSize:])
	}
}

// appendFields appends a host-order payload to buf in wire order, field by
// field, using the same layout convention as normalizeFields.
func appendFields(buf *pool.ByteBuffer, data []byte, widths []int) {
	native := endian.Native()
	wire := endian.Wire()
	off := 0
	for _, w := range widths {
		switch w {
		case 2:
			buf.B = wire.AppendUint16(buf.B, native.Uint16(data[off:off+2]))
			off += 2
		case 4:
			buf.B = wire.AppendUint32(buf.B, native.Uint32(data[off:off+4]))
			off += 4
		case 8:
			buf.B = wire.AppendUint64(buf.B, native.Uint64(data[off:off+8]))
			off += 8
		default:
			n := -w
			buf.MustWrite(data[off : off+n])
			off += n
		}
	}
}

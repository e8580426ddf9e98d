package chunk

import (
	"io"
	"strconv"
	"strings"

	"github.com/rowg/rangeseries-editing-utility/endian"
	"github.com/rowg/rangeseries-editing-utility/internal/pool"
)

const hasiMinSize = 4

// hasiCodec handles the undocumented hasi block. Its structure is unknown, so
// the payload is carried as opaque bytes: never endian-fixed, dumped as raw
// hex, and reassembled byte for byte from the hex line.
type hasiCodec struct{}

var _ Codec = hasiCodec{}

func (hasiCodec) Fixup(d *Descriptor, _ endian.Normalizer) error {
	if d.Size < hasiMinSize {
		return truncated(TagHasi, d.Size, hasiMinSize)
	}

	return nil
}

func (hasiCodec) Decode(d *Descriptor, _ *Config, w io.Writer) error {
	if d.Size < hasiMinSize {
		return truncated(TagHasi, d.Size, hasiMinSize)
	}

	tw := &textWriter{w: w}
	tw.printf("%s\n", TagHasi)
	tw.printf("data:")
	for _, b := range d.Data {
		tw.printf(" %02x", b)
	}
	tw.printf("\n")
	tw.printf("\n")

	return tw.err
}

func (hasiCodec) ParseText(r *LineReader, _ *Config) (*Descriptor, error) {
	blk, err := r.Block(TagHasi)
	if err != nil {
		return nil, err
	}

	v, ln, err := blk.value("data")
	if err != nil {
		return nil, err
	}

	tokens := strings.Fields(v)
	if len(tokens) == 0 {
		return nil, malformed(TagHasi, "data", ln)
	}

	data := make([]byte, len(tokens))
	for i, tok := range tokens {
		b, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return nil, malformed(TagHasi, "data", ln)
		}
		data[i] = byte(b)
	}

	return &Descriptor{Tag: TagHasi, Size: uint32(len(data)), Data: data}, nil
}

func (hasiCodec) Encode(d *Descriptor, buf *pool.ByteBuffer) error {
	appendHeader(buf, d.Tag, d.Size)
	buf.MustWrite(d.Data)

	return nil
}

package chunk

import (
	"io"

	"github.com/rowg/rangeseries-editing-utility/endian"
	"github.com/rowg/rangeseries-editing-utility/internal/pool"
)

const indxSize = 4

var indxLayout = []int{4}

// indxCodec handles the range cell index block. Decoding records the index in
// the pass Config.
type indxCodec struct{}

var _ Codec = indxCodec{}

func (indxCodec) Fixup(d *Descriptor, norm endian.Normalizer) error {
	if d.Size < indxSize {
		return truncated(TagIndx, d.Size, indxSize)
	}

	normalizeFields(d.Data, indxLayout, norm)

	return nil
}

func (indxCodec) Decode(d *Descriptor, cfg *Config, w io.Writer) error {
	if d.Size < indxSize {
		return truncated(TagIndx, d.Size, indxSize)
	}

	cfg.Index = endian.Native().Uint32(d.Data[0:4])

	tw := &textWriter{w: w}
	tw.printf("%s\n", TagIndx)
	tw.printf("index:%d\n", cfg.Index)
	tw.printf("\n")

	return tw.err
}

func (indxCodec) ParseText(r *LineReader, _ *Config) (*Descriptor, error) {
	blk, err := r.Block(TagIndx)
	if err != nil {
		return nil, err
	}

	v, err := blk.Uint32("index")
	if err != nil {
		return nil, err
	}

	data := make([]byte, indxSize)
	endian.Native().PutUint32(data, v)

	return &Descriptor{Tag: TagIndx, Size: indxSize, Data: data}, nil
}

func (indxCodec) Encode(d *Descriptor, buf *pool.ByteBuffer) error {
	appendFixed(buf, d, indxLayout, indxSize)
	return nil
}

package chunk

import (
	"io"

	"github.com/rowg/rangeseries-editing-utility/endian"
	"github.com/rowg/rangeseries-editing-utility/internal/pool"
)

const rtagSize = 4

var rtagLayout = []int{4}

// rtagCodec handles the range tag block.
type rtagCodec struct{}

var _ Codec = rtagCodec{}

func (rtagCodec) Fixup(d *Descriptor, norm endian.Normalizer) error {
	if d.Size < rtagSize {
		return truncated(TagRtag, d.Size, rtagSize)
	}

	normalizeFields(d.Data, rtagLayout, norm)

	return nil
}

func (rtagCodec) Decode(d *Descriptor, _ *Config, w io.Writer) error {
	if d.Size < rtagSize {
		return truncated(TagRtag, d.Size, rtagSize)
	}

	tw := &textWriter{w: w}
	tw.printf("%s\n", TagRtag)
	tw.printf("rtag:%d\n", endian.Native().Uint32(d.Data[0:4]))
	tw.printf("\n")

	return tw.err
}

func (rtagCodec) ParseText(r *LineReader, _ *Config) (*Descriptor, error) {
	blk, err := r.Block(TagRtag)
	if err != nil {
		return nil, err
	}

	v, err := blk.Uint32("rtag")
	if err != nil {
		return nil, err
	}

	data := make([]byte, rtagSize)
	endian.Native().PutUint32(data, v)

	return &Descriptor{Tag: TagRtag, Size: rtagSize, Data: data}, nil
}

func (rtagCodec) Encode(d *Descriptor, buf *pool.ByteBuffer) error {
	appendFixed(buf, d, rtagLayout, rtagSize)
	return nil
}

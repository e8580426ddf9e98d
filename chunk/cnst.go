package chunk

import (
	"io"

	"github.com/rowg/rangeseries-editing-utility/endian"
	"github.com/rowg/rangeseries-editing-utility/internal/pool"
)

const (
	cnstSize = 16

	// cnstNChannelsWidth is the width the nsweeps fixup swaps with. It must
	// track the nchannels field should the layout ever diverge.
	cnstNChannelsWidth = 4
)

var cnstLayout = []int{4, 4, 4, 4}

// cnstCodec handles the acquisition constants block: channel, range and sweep
// counts plus the IQ indicator.
type cnstCodec struct{}

var _ Codec = cnstCodec{}

func (cnstCodec) Fixup(d *Descriptor, norm endian.Normalizer) error {
	if d.Size < cnstSize {
		return truncated(TagCnst, d.Size, cnstSize)
	}

	norm.Normalize(d.Data[0:4], 4)
	norm.Normalize(d.Data[4:8], 4)
	norm.Normalize(d.Data[8:8+cnstNChannelsWidth], cnstNChannelsWidth)
	norm.Normalize(d.Data[12:16], 4)

	return nil
}

func (cnstCodec) Decode(d *Descriptor, _ *Config, w io.Writer) error {
	if d.Size < cnstSize {
		return truncated(TagCnst, d.Size, cnstSize)
	}

	native := endian.Native()
	tw := &textWriter{w: w}
	tw.printf("%s\n", TagCnst)
	tw.printf("nchannels:%d\n", int32(native.Uint32(d.Data[0:4])))
	tw.printf("nranges:%d\n", int32(native.Uint32(d.Data[4:8])))
	tw.printf("nsweeps:%d\n", int32(native.Uint32(d.Data[8:12])))
	tw.printf("iqindicator:%d\n", int32(native.Uint32(d.Data[12:16])))
	tw.printf("\n")

	return tw.err
}

func (cnstCodec) ParseText(r *LineReader, _ *Config) (*Descriptor, error) {
	blk, err := r.Block(TagCnst)
	if err != nil {
		return nil, err
	}

	data := make([]byte, cnstSize)
	native := endian.Native()

	for i, key := range []string{"nchannels", "nranges", "nsweeps", "iqindicator"} {
		v, err := blk.Int32(key)
		if err != nil {
			return nil, err
		}
		native.PutUint32(data[i*4:i*4+4], uint32(v))
	}

	return &Descriptor{Tag: TagCnst, Size: cnstSize, Data: data}, nil
}

func (cnstCodec) Encode(d *Descriptor, buf *pool.ByteBuffer) error {
	appendFixed(buf, d, cnstLayout, cnstSize)
	return nil
}

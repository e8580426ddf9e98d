package chunk

import (
	"io"
	"math"

	"github.com/rowg/rangeseries-editing-utility/endian"
	"github.com/rowg/rangeseries-editing-utility/internal/pool"
)

const dbrfSize = 8

var dbrfLayout = []int{8}

// dbrfCodec handles the received power correction block.
type dbrfCodec struct{}

var _ Codec = dbrfCodec{}

func (dbrfCodec) Fixup(d *Descriptor, norm endian.Normalizer) error {
	if d.Size < dbrfSize {
		return truncated(TagDbrf, d.Size, dbrfSize)
	}

	normalizeFields(d.Data, dbrfLayout, norm)

	return nil
}

func (dbrfCodec) Decode(d *Descriptor, _ *Config, w io.Writer) error {
	if d.Size < dbrfSize {
		return truncated(TagDbrf, d.Size, dbrfSize)
	}

	rxloss := math.Float64frombits(endian.Native().Uint64(d.Data[0:8]))

	tw := &textWriter{w: w}
	tw.printf("%s\n", TagDbrf)
	tw.printf("rxloss:%.4f\n", rxloss)
	tw.printf("\n")

	return tw.err
}

func (dbrfCodec) ParseText(r *LineReader, _ *Config) (*Descriptor, error) {
	blk, err := r.Block(TagDbrf)
	if err != nil {
		return nil, err
	}

	rxloss, err := blk.Float64("rxloss")
	if err != nil {
		return nil, err
	}

	data := make([]byte, dbrfSize)
	endian.Native().PutUint64(data, math.Float64bits(rxloss))

	return &Descriptor{Tag: TagDbrf, Size: dbrfSize, Data: data}, nil
}

func (dbrfCodec) Encode(d *Descriptor, buf *pool.ByteBuffer) error {
	appendFixed(buf, d, dbrfLayout, dbrfSize)
	return nil
}

package chunk

import (
	"io"
	"math"

	"github.com/rowg/rangeseries-editing-utility/endian"
	"github.com/rowg/rangeseries-editing-utility/internal/pool"
)

const scalSize = 16

var scalLayout = []int{8, 8}

// scalCodec handles the sample scaling pair block. Both conversion directions
// record the pair in the pass Config for later sample blocks.
type scalCodec struct{}

var _ Codec = scalCodec{}

func (scalCodec) Fixup(d *Descriptor, norm endian.Normalizer) error {
	if d.Size < scalSize {
		return truncated(TagScal, d.Size, scalSize)
	}

	normalizeFields(d.Data, scalLayout, norm)

	return nil
}

func (scalCodec) Decode(d *Descriptor, cfg *Config, w io.Writer) error {
	if d.Size < scalSize {
		return truncated(TagScal, d.Size, scalSize)
	}

	native := endian.Native()
	cfg.ScalarI = math.Float64frombits(native.Uint64(d.Data[0:8]))
	cfg.ScalarQ = math.Float64frombits(native.Uint64(d.Data[8:16]))

	tw := &textWriter{w: w}
	tw.printf("%s\n", TagScal)
	tw.printf("scalar_one:%.20f\n", cfg.ScalarI)
	tw.printf("scalar_two:%.20f\n", cfg.ScalarQ)
	tw.printf("\n")

	return tw.err
}

func (scalCodec) ParseText(r *LineReader, cfg *Config) (*Descriptor, error) {
	blk, err := r.Block(TagScal)
	if err != nil {
		return nil, err
	}

	one, err := blk.Float64("scalar_one")
	if err != nil {
		return nil, err
	}

	two, err := blk.Float64("scalar_two")
	if err != nil {
		return nil, err
	}

	cfg.ScalarI = one
	cfg.ScalarQ = two

	data := make([]byte, scalSize)
	native := endian.Native()
	native.PutUint64(data[0:8], math.Float64bits(one))
	native.PutUint64(data[8:16], math.Float64bits(two))

	return &Descriptor{Tag: TagScal, Size: scalSize, Data: data}, nil
}

func (scalCodec) Encode(d *Descriptor, buf *pool.ByteBuffer) error {
	appendFixed(buf, d, scalLayout, scalSize)
	return nil
}

package chunk

import (
	"io"
	"math"

	"github.com/rowg/rangeseries-editing-utility/endian"
	"github.com/rowg/rangeseries-editing-utility/internal/pool"
)

const swepSize = 32

var swepLayout = []int{4, 8, 8, 8, 4}

// swepCodec handles the sweep parameters block.
type swepCodec struct{}

var _ Codec = swepCodec{}

func (swepCodec) Fixup(d *Descriptor, norm endian.Normalizer) error {
	if d.Size < swepSize {
		return truncated(TagSwep, d.Size, swepSize)
	}

	normalizeFields(d.Data, swepLayout, norm)

	return nil
}

func (swepCodec) Decode(d *Descriptor, _ *Config, w io.Writer) error {
	if d.Size < swepSize {
		return truncated(TagSwep, d.Size, swepSize)
	}

	native := endian.Native()
	tw := &textWriter{w: w}
	tw.printf("%s\n", TagSwep)
	tw.printf("samplespersweep:%d\n", int32(native.Uint32(d.Data[0:4])))
	tw.printf("sweepstart:%.20f\n", math.Float64frombits(native.Uint64(d.Data[4:12])))
	tw.printf("sweepbandwidth:%.20f\n", math.Float64frombits(native.Uint64(d.Data[12:20])))
	tw.printf("sweeprate:%.20f\n", math.Float64frombits(native.Uint64(d.Data[20:28])))
	tw.printf("rangeoffset:%d\n", int32(native.Uint32(d.Data[28:32])))
	tw.printf("\n")

	return tw.err
}

func (swepCodec) ParseText(r *LineReader, _ *Config) (*Descriptor, error) {
	blk, err := r.Block(TagSwep)
	if err != nil {
		return nil, err
	}

	data := make([]byte, swepSize)
	native := endian.Native()

	samples, err := blk.Int32("samplespersweep")
	if err != nil {
		return nil, err
	}
	native.PutUint32(data[0:4], uint32(samples))

	start, err := blk.Float64("sweepstart")
	if err != nil {
		return nil, err
	}
	native.PutUint64(data[4:12], math.Float64bits(start))

	bandwidth, err := blk.Float64("sweepbandwidth")
	if err != nil {
		return nil, err
	}
	native.PutUint64(data[12:20], math.Float64bits(bandwidth))

	rate, err := blk.Float64("sweeprate")
	if err != nil {
		return nil, err
	}
	native.PutUint64(data[20:28], math.Float64bits(rate))

	offset, err := blk.Int32("rangeoffset")
	if err != nil {
		return nil, err
	}
	native.PutUint32(data[28:32], uint32(offset))

	return &Descriptor{Tag: TagSwep, Size: swepSize, Data: data}, nil
}

func (swepCodec) Encode(d *Descriptor, buf *pool.ByteBuffer) error {
	appendFixed(buf, d, swepLayout, swepSize)
	return nil
}

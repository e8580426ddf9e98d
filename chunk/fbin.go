package chunk

import (
	"io"

	"github.com/rowg/rangeseries-editing-utility/endian"
	"github.com/rowg/rangeseries-editing-utility/internal/pool"
)

const fbinSize = 8

var fbinLayout = []int{4, 4}

// fbinCodec handles the sample format declaration block. Both conversion
// directions record the declared format and subtype in the pass Config; the
// interpretation of every later afft/ifft block depends on them.
type fbinCodec struct{}

var _ Codec = fbinCodec{}

func (fbinCodec) Fixup(d *Descriptor, norm endian.Normalizer) error {
	if d.Size < fbinSize {
		return truncated(TagFbin, d.Size, fbinSize)
	}

	normalizeFields(d.Data, fbinLayout, norm)

	return nil
}

func (fbinCodec) Decode(d *Descriptor, cfg *Config, w io.Writer) error {
	if d.Size < fbinSize {
		return truncated(TagFbin, d.Size, fbinSize)
	}

	native := endian.Native()
	cfg.Format = Tag(native.Uint32(d.Data[0:4]))
	cfg.Subtype = Tag(native.Uint32(d.Data[4:8]))

	tw := &textWriter{w: w}
	tw.printf("%s\n", TagFbin)
	tw.printf("format:%s\n", cfg.Format)
	tw.printf("type:%s\n", cfg.Subtype)
	tw.printf("\n")

	return tw.err
}

func (fbinCodec) ParseText(r *LineReader, cfg *Config) (*Descriptor, error) {
	blk, err := r.Block(TagFbin)
	if err != nil {
		return nil, err
	}

	format, err := blk.FourCC("format")
	if err != nil {
		return nil, err
	}

	subtype, err := blk.FourCC("type")
	if err != nil {
		return nil, err
	}

	cfg.Format = format
	cfg.Subtype = subtype

	data := make([]byte, fbinSize)
	native := endian.Native()
	native.PutUint32(data[0:4], uint32(format))
	native.PutUint32(data[4:8], uint32(subtype))

	return &Descriptor{Tag: TagFbin, Size: fbinSize, Data: data}, nil
}

func (fbinCodec) Encode(d *Descriptor, buf *pool.ByteBuffer) error {
	appendFixed(buf, d, fbinLayout, fbinSize)
	return nil
}

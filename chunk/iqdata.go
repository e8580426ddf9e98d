package chunk

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rowg/rangeseries-editing-utility/endian"
	"github.com/rowg/rangeseries-editing-utility/errs"
	"github.com/rowg/rangeseries-editing-utility/internal/pool"
)

// sampleSize is one IQ pair: two 4-byte floats.
const sampleSize = 8

// sampleCodec handles the afft and ifft sample blocks. Both carry the same
// payload shape, pairs of single-precision I and Q values; they differ only in
// tag and in the precision of their text form. Only the cviq format with flt4
// samples is supported, and the preceding fbin block decides which format the
// stream carries, so both text and binary decoding gate on the cross-block
// config.
type sampleCodec struct {
	tag       Tag
	precision int
}

var _ Codec = sampleCodec{}

func (c sampleCodec) Fixup(d *Descriptor, norm endian.Normalizer) error {
	if d.Size < sampleSize {
		return truncated(c.tag, d.Size, sampleSize)
	}

	for off := 0; off+sampleSize <= len(d.Data); off += sampleSize {
		norm.Normalize4(d.Data[off : off+4])
		norm.Normalize4(d.Data[off+4 : off+8])
	}

	return nil
}

func (c sampleCodec) checkFormat(cfg *Config) error {
	if cfg.Format != FormatCVIQ {
		return fmt.Errorf("block %q: format %q: %w", c.tag.String(), cfg.Format.String(), errs.ErrUnsupportedSampleFormat)
	}
	if cfg.Subtype != SubtypeFLT4 {
		return fmt.Errorf("block %q: sample type %q: %w", c.tag.String(), cfg.Subtype.String(), errs.ErrUnsupportedSampleFormat)
	}

	return nil
}

func (c sampleCodec) Decode(d *Descriptor, cfg *Config, w io.Writer) error {
	if d.Size < sampleSize {
		return truncated(c.tag, d.Size, sampleSize)
	}
	if err := c.checkFormat(cfg); err != nil {
		return err
	}

	native := endian.Native()
	tw := &textWriter{w: w}
	tw.printf("%s\n", c.tag)
	nsamples := len(d.Data) / sampleSize
	for n := 0; n < nsamples; n++ {
		off := n * sampleSize
		i := float64(math.Float32frombits(native.Uint32(d.Data[off : off+4])))
		q := float64(math.Float32frombits(native.Uint32(d.Data[off+4 : off+8])))
		tw.printf("%3d % .*f % .*f\n", n, c.precision, i, c.precision, q)
	}
	tw.printf("\n")

	return tw.err
}

func (c sampleCodec) ParseText(r *LineReader, cfg *Config) (*Descriptor, error) {
	blk, err := r.Block(c.tag)
	if err != nil {
		return nil, err
	}

	lines := blk.Lines()
	if len(lines) == 0 {
		return nil, fmt.Errorf("block %q at line %d: no sample lines: %w", c.tag.String(), blk.StartLine(), errs.ErrBadSampleLineCount)
	}
	if len(lines)%3 != 0 {
		return nil, fmt.Errorf("block %q at line %d: %d sample lines, want a multiple of 3: %w",
			c.tag.String(), blk.StartLine(), len(lines), errs.ErrBadSampleLineCount)
	}
	if err := c.checkFormat(cfg); err != nil {
		return nil, err
	}

	native := endian.Native()
	data := make([]byte, len(lines)*sampleSize)
	for n, ln := range lines {
		fields := strings.Fields(ln.Text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("block %q: sample %d at line %d: %w", c.tag.String(), n, ln.Number, errs.ErrMalformedSampleLine)
		}
		if _, err := strconv.Atoi(fields[0]); err != nil {
			return nil, fmt.Errorf("block %q: sample %d at line %d: %w", c.tag.String(), n, ln.Number, errs.ErrMalformedSampleLine)
		}
		i, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("block %q: sample %d at line %d: %w", c.tag.String(), n, ln.Number, errs.ErrMalformedSampleLine)
		}
		q, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("block %q: sample %d at line %d: %w", c.tag.String(), n, ln.Number, errs.ErrMalformedSampleLine)
		}
		off := n * sampleSize
		native.PutUint32(data[off:off+4], math.Float32bits(float32(i)))
		native.PutUint32(data[off+4:off+8], math.Float32bits(float32(q)))
	}

	return &Descriptor{Tag: c.tag, Size: uint32(len(data)), Data: data}, nil
}

func (c sampleCodec) Encode(d *Descriptor, buf *pool.ByteBuffer) error {
	appendHeader(buf, d.Tag, d.Size)
	native := endian.Native()
	wire := endian.Wire()
	for off := 0; off+sampleSize <= len(d.Data); off += sampleSize {
		buf.B = wire.AppendUint32(buf.B, native.Uint32(d.Data[off:off+4]))
		buf.B = wire.AppendUint32(buf.B, native.Uint32(d.Data[off+4:off+8]))
	}

	return nil
}

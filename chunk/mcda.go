package chunk

import (
	"io"
	"time"

	"github.com/rowg/rangeseries-editing-utility/endian"
	"github.com/rowg/rangeseries-editing-utility/internal/pool"
)

// macEpochOffset is the number of seconds between the HFS epoch (1904-01-01)
// and the Unix epoch (1970-01-01). Timestamps are stored HFS on the wire and
// rendered Unix in text.
//
// The shift is asymmetric on purpose: text to binary always adds the offset,
// even for a declared value of 0, while binary to text suppresses the
// timestamp line entirely for a stored 0. A stored value below the offset
// renders as a negative Unix timestamp and converts back exactly.
const macEpochOffset = 2082844800

const mcdaSize = 4

var mcdaLayout = []int{4}

// mcdaCodec handles the file timestamp block.
type mcdaCodec struct{}

var _ Codec = mcdaCodec{}

func (mcdaCodec) Fixup(d *Descriptor, norm endian.Normalizer) error {
	if d.Size < mcdaSize {
		return truncated(TagMcda, d.Size, mcdaSize)
	}

	normalizeFields(d.Data, mcdaLayout, norm)

	return nil
}

func (mcdaCodec) Decode(d *Descriptor, _ *Config, w io.Writer) error {
	if d.Size < mcdaSize {
		return truncated(TagMcda, d.Size, mcdaSize)
	}

	ts := endian.Native().Uint32(d.Data[0:4])
	tw := &textWriter{w: w}
	tw.printf("%s\n", TagMcda)
	if ts != 0 {
		unix := int64(ts) - macEpochOffset
		tw.printf("filetimestamp:%d (NB: seconds since 1970) (%s)\n", unix, time.Unix(unix, 0).Format(time.ANSIC))
	}
	tw.printf("\n")

	return tw.err
}

func (mcdaCodec) ParseText(r *LineReader, _ *Config) (*Descriptor, error) {
	blk, err := r.Block(TagMcda)
	if err != nil {
		return nil, err
	}

	ts, err := blk.Int64("filetimestamp")
	if err != nil {
		return nil, err
	}

	data := make([]byte, mcdaSize)
	endian.Native().PutUint32(data, uint32(ts+macEpochOffset))

	return &Descriptor{Tag: TagMcda, Size: mcdaSize, Data: data}, nil
}

func (mcdaCodec) Encode(d *Descriptor, buf *pool.ByteBuffer) error {
	appendFixed(buf, d, mcdaLayout, mcdaSize)
	return nil
}

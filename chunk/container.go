package chunk

import (
	"fmt"
	"io"

	"github.com/rowg/rangeseries-editing-utility/endian"
	"github.com/rowg/rangeseries-editing-utility/internal/pool"
)

// containerCodec covers AQFT, HEAD, BODY and END. Containers carry no payload
// of their own; their text form is a bare tag line, and their size is derived
// from the blocks they enclose just before serialization.
type containerCodec struct {
	tag Tag
}

var _ Codec = containerCodec{}

func (c containerCodec) Fixup(_ *Descriptor, _ endian.Normalizer) error {
	return nil
}

func (c containerCodec) Decode(_ *Descriptor, _ *Config, w io.Writer) error {
	// END is the terminal marker; nothing follows it, not even the blank line.
	if c.tag == TagEND {
		_, err := fmt.Fprintf(w, "%s\n", c.tag)
		return err
	}

	_, err := fmt.Fprintf(w, "%s\n\n", c.tag)

	return err
}

func (c containerCodec) ParseText(_ *LineReader, _ *Config) (*Descriptor, error) {
	// Size stays zero here; RecomputeSizes fills in AQFT/HEAD/BODY and END
	// is zero-length by definition.
	return &Descriptor{Tag: c.tag}, nil
}

func (c containerCodec) Encode(d *Descriptor, buf *pool.ByteBuffer) error {
	appendHeader(buf, d.Tag, d.Size)
	return nil
}

// textWriter latches the first write error so Decode bodies can print without
// checking every line.
type textWriter struct {
	w   io.Writer
	err error
}

func (tw *textWriter) printf(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

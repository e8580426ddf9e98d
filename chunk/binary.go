package chunk

import (
	"fmt"

	"github.com/rowg/rangeseries-editing-utility/internal/pool"
)

// AppendSequence appends the wire form of seq to buf, block after block in
// sequence order. Container sizes are written as stored; callers that built
// the sequence from text run RecomputeSizes first.
func AppendSequence(buf *pool.ByteBuffer, seq Sequence) error {
	for _, d := range seq {
		codec, err := Lookup(d.Tag)
		if err != nil {
			return err
		}
		if err := codec.Encode(d, buf); err != nil {
			return fmt.Errorf("block %q: %w", d.Tag.String(), err)
		}
	}

	return nil
}

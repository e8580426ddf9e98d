package chunk

import (
	"fmt"
	"io"
	"strings"
)

// WriteText writes the text form of seq to w, one block after another in
// sequence order. When headerOnly is set, writing stops just before the BODY
// marker, leaving only the header section.
//
// A fresh cross-block Config is threaded through the pass, so the sample
// blocks see the format, index and scaling declared by the header blocks that
// precede them.
func WriteText(w io.Writer, seq Sequence, headerOnly bool) error {
	var cfg Config
	for _, d := range seq {
		if headerOnly && d.Tag == TagBODY {
			return nil
		}
		codec, err := Lookup(d.Tag)
		if err != nil {
			return err
		}
		if err := codec.Decode(d, &cfg, w); err != nil {
			return fmt.Errorf("block %q: %w", d.Tag.String(), err)
		}
	}

	return nil
}

// ReadText parses the text form of a recording from r and returns its
// descriptor sequence, with container sizes recomputed, along with the number
// of lines read.
//
// Lines of one character or less are skipped between blocks, and a line
// containing a colon can only be a stray parameter line, never a tag line, so
// it is skipped as well. Everything else must start with a known four-character
// tag, whose codec then consumes the block's remaining lines.
func ReadText(r io.Reader) (Sequence, int, error) {
	lr := NewLineReader(r)
	var cfg Config
	var seq Sequence
	for {
		line, ok, err := lr.Next()
		if err != nil {
			return nil, lr.Count(), err
		}
		if !ok {
			break
		}
		if len(line.Text) <= 1 {
			continue
		}
		if strings.ContainsRune(line.Text, ':') {
			continue
		}

		tag, ok := TagFromString(line.Text)
		if !ok {
			return nil, lr.Count(), fmt.Errorf("line %d: tag line %q too short", line.Number, line.Text)
		}
		codec, err := Lookup(tag)
		if err != nil {
			return nil, lr.Count(), fmt.Errorf("line %d: %w", line.Number, err)
		}
		d, err := codec.ParseText(lr, &cfg)
		if err != nil {
			return nil, lr.Count(), fmt.Errorf("block %q starting at line %d: %w", tag.String(), line.Number, err)
		}
		seq = append(seq, d)
	}

	if err := RecomputeSizes(seq); err != nil {
		return nil, lr.Count(), err
	}

	return seq, lr.Count(), nil
}

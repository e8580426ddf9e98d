package chunk

import (
	"fmt"

	"github.com/rowg/rangeseries-editing-utility/errs"
)

// RecomputeSizes rewrites the container sizes of seq from its leaf blocks.
//
// The head budget is the wire size, header included, of every block between
// HEAD and the following BODY or END marker; the body budget covers the blocks
// between BODY and END. The AQFT budget is the head and body budgets plus one
// block header each. A sequence whose head or body section is empty, or that
// lacks any of the three containers, cannot be serialized and is rejected.
func RecomputeSizes(seq Sequence) error {
	headSize := sectionSize(seq, TagHEAD, TagBODY, TagEND)
	if headSize == 0 {
		return fmt.Errorf("empty or unterminated head section: %w", errs.ErrMissingBoundary)
	}
	bodySize := sectionSize(seq, TagBODY, TagEND)
	if bodySize == 0 {
		return fmt.Errorf("empty or unterminated body section: %w", errs.ErrMissingBoundary)
	}
	aqftSize := headSize + HeaderSize + bodySize + HeaderSize

	if err := setSize(seq, TagAQFT, aqftSize); err != nil {
		return err
	}
	if err := setSize(seq, TagHEAD, headSize); err != nil {
		return err
	}

	return setSize(seq, TagBODY, bodySize)
}

// sectionSize sums the wire size, header included, of the blocks between the
// first start marker and the first subsequent end marker. A section that never
// closes counts as empty.
func sectionSize(seq Sequence, start Tag, ends ...Tag) uint32 {
	inSection := false
	var size uint32
	for _, d := range seq {
		for _, end := range ends {
			if d.Tag == end {
				inSection = false
			}
		}
		if inSection {
			size += d.Size + HeaderSize
		}
		if d.Tag == start {
			inSection = true
		}
	}
	if inSection {
		return 0
	}

	return size
}

// setSize stores size on the first descriptor carrying tag.
func setSize(seq Sequence, tag Tag, size uint32) error {
	for _, d := range seq {
		if d.Tag == tag {
			d.Size = size

			return nil
		}
	}

	return fmt.Errorf("no %q block: %w", tag.String(), errs.ErrMissingBoundary)
}

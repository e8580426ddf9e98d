package chunk

import (
	"fmt"
	"io"
)

// HeaderSize is the size of a block header on the wire: a 4-byte tag followed
// by a 4-byte unsigned payload length, both big-endian.
const HeaderSize = 8

// Descriptor is the in-memory record of one block.
//
// Container blocks carry no payload of their own: their Data is nil and Size
// is the combined wire size of the blocks they enclose. Leaf payloads are
// owned copies held in host byte order once fixed up.
type Descriptor struct {
	Tag  Tag
	Size uint32
	Data []byte
}

// Sequence is the flat, order-preserving list of all descriptors of one
// recording in pre-order traversal order. Nesting is not structural: a
// container's contents are simply the descriptors that follow it, up to where
// its size budget is exhausted.
type Sequence []*Descriptor

// Summary writes a one-line key/size listing per descriptor, in order.
func (s Sequence) Summary(w io.Writer) {
	for i, d := range s {
		fmt.Fprintf(w, "Node %d: key %s size %d\n", i, d.Tag, d.Size)
	}
}

// Config carries the transient cross-block state threaded through a single
// text conversion pass. Later blocks' text formatting depends on the format
// declared by earlier blocks; a fresh zero Config is used per top-level
// invocation.
type Config struct {
	// Format and Subtype are the sample encoding discriminators declared by
	// the most recent fbin block.
	Format  Tag
	Subtype Tag
	// Index is the range cell index declared by the most recent indx block.
	Index uint32
	// ScalarI and ScalarQ are the scaling pair declared by the most recent
	// scal block.
	ScalarI float64
	ScalarQ float64
}

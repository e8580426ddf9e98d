package chunk

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rowg/rangeseries-editing-utility/endian"
	"github.com/rowg/rangeseries-editing-utility/errs"
)

// Parser converts a binary recording into its flat descriptor sequence.
//
// Parsing runs in two phases. The first phase is a recursive descent over the
// container structure: a container's size is the budget of the blocks it
// encloses, so the parser descends into that byte range and builds a tree. The
// second phase flattens the tree in pre-order, which restores the original
// stream order; all later processing works on the flat sequence.
type Parser struct {
	logger zerolog.Logger
	norm   endian.Normalizer
}

// ParserOption customizes a Parser.
type ParserOption func(*Parser)

// WithLogger sets the logger used for parse warnings. The default discards
// them.
func WithLogger(logger zerolog.Logger) ParserOption {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser creates a Parser for the host byte order.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		logger: zerolog.Nop(),
		norm:   endian.NewNormalizer(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// node is one block in the intermediate parse tree. Children are only ever
// attached to container blocks.
type node struct {
	desc     *Descriptor
	children []*node
}

// Parse reads the binary recording in data and returns its descriptor
// sequence. Leaf payloads are copied out of data and fixed up to host order,
// so the caller may reuse data afterwards.
//
// A declared block size that overruns the enclosing budget is clamped with a
// warning, matching how damaged recordings are conventionally recovered. An
// unknown block tag is fatal: the type set is closed and a stray tag means the
// input is not a recording this package understands.
func (p *Parser) Parse(data []byte) (Sequence, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%d bytes, need at least %d: %w", len(data), HeaderSize, errs.ErrTruncatedBlock)
	}
	if magic := Tag(endian.Wire().Uint32(data[:4])); magic != TagAQFT {
		return nil, fmt.Errorf("leading tag %q, want %q: %w", magic.String(), TagAQFT.String(), errs.ErrMagicMismatch)
	}

	nodes, err := p.parseLevel(data)
	if err != nil {
		return nil, err
	}

	var seq Sequence
	for _, n := range nodes {
		seq = flatten(seq, n)
	}

	return seq, nil
}

// parseLevel parses one container budget's worth of blocks.
func (p *Parser) parseLevel(data []byte) ([]*node, error) {
	wire := endian.Wire()
	var nodes []*node
	for len(data) > 0 {
		if len(data) < HeaderSize {
			p.logger.Warn().
				Int("remaining", len(data)).
				Msg("trailing bytes too short for a block header, stopping")

			break
		}

		tag := Tag(wire.Uint32(data[:4]))
		size := wire.Uint32(data[4:8])
		data = data[HeaderSize:]

		if size > uint32(len(data)) {
			p.logger.Warn().
				Str("block", tag.String()).
				Uint32("declared", size).
				Int("available", len(data)).
				Msg("block size truncated to the enclosing budget")
			size = uint32(len(data))
		}

		n := &node{desc: &Descriptor{Tag: tag, Size: size}}
		if tag.IsContainer() {
			children, err := p.parseLevel(data[:size])
			if err != nil {
				return nil, err
			}
			n.children = children
		} else {
			codec, err := Lookup(tag)
			if err != nil {
				return nil, err
			}
			n.desc.Data = make([]byte, size)
			copy(n.desc.Data, data[:size])
			if err := codec.Fixup(n.desc, p.norm); err != nil {
				p.logger.Warn().
					Str("block", tag.String()).
					Err(err).
					Msg("block fixup failed, keeping raw payload")
			}
		}
		nodes = append(nodes, n)
		data = data[size:]
	}

	return nodes, nil
}

// flatten appends n and its subtree to seq in pre-order.
func flatten(seq Sequence, n *node) Sequence {
	seq = append(seq, n.desc)
	for _, child := range n.children {
		seq = flatten(seq, child)
	}

	return seq
}

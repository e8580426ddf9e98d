package chunk

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rowg/rangeseries-editing-utility/errs"
)

// Line is one line of text input with its 1-based source line number.
type Line struct {
	Text   string
	Number int
}

// LineReader reads a line-oriented text stream, tracking line numbers and
// exposing the current block's lines as a buffered window so parameter lines
// can be matched in any order, the way the text grammar allows.
type LineReader struct {
	scanner *bufio.Scanner
	count   int
	done    bool
	err     error
}

// NewLineReader wraps r for line-oriented reading. Sample and hex lines can
// run long, so the scanner buffer is raised well past the bufio default.
func NewLineReader(r io.Reader) *LineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	return &LineReader{scanner: sc}
}

// Next returns the next line with the trailing newline (and any carriage
// return) removed. The boolean is false at end of input.
func (r *LineReader) Next() (Line, bool, error) {
	if r.done || r.err != nil {
		return Line{}, false, r.err
	}

	if !r.scanner.Scan() {
		r.done = true
		r.err = r.scanner.Err()

		return Line{}, false, r.err
	}

	r.count++
	text := strings.TrimSuffix(r.scanner.Text(), "\r")

	return Line{Text: text, Number: r.count}, true, nil
}

// Count returns the number of lines consumed so far.
func (r *LineReader) Count() int {
	return r.count
}

// Block consumes lines up to and including the blank-line terminator (or end
// of input) and returns them as the current block's window. The tag is carried
// for error annotation only.
func (r *LineReader) Block(tag Tag) (*BlockText, error) {
	b := &BlockText{tag: tag, start: r.count + 1}
	for {
		line, ok, err := r.Next()
		if err != nil {
			return nil, err
		}
		if !ok || len(line.Text) == 0 {
			return b, nil
		}
		b.lines = append(b.lines, line)
	}
}

// BlockText is the buffered window of one block's text lines, between the tag
// line and the blank-line terminator.
type BlockText struct {
	tag   Tag
	start int
	lines []Line
}

// Lines returns the block's lines in input order.
func (b *BlockText) Lines() []Line {
	return b.lines
}

// StartLine returns the source line number of the block's first line.
func (b *BlockText) StartLine() int {
	return b.start
}

func (b *BlockText) find(key string) (Line, bool) {
	prefix := key + ":"
	for _, ln := range b.lines {
		if strings.HasPrefix(ln.Text, prefix) {
			return ln, true
		}
	}

	return Line{}, false
}

// value returns the raw text after "key:" on the block's matching line.
func (b *BlockText) value(key string) (string, Line, error) {
	ln, ok := b.find(key)
	if !ok {
		return "", Line{}, fmt.Errorf("block %q: parameter %q: %w", b.tag.String(), key, errs.ErrMissingParameter)
	}

	return ln.Text[len(key)+1:], ln, nil
}

func malformed(tag Tag, key string, ln Line) error {
	return fmt.Errorf("block %q: parameter %q at line %d: %w", tag.String(), key, ln.Number, errs.ErrMalformedParameterLine)
}

// firstToken returns the first whitespace-separated token of v; trailing
// annotations such as calendar strings are ignored.
func firstToken(v string) string {
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

// Uint32 parses a decimal unsigned parameter.
func (b *BlockText) Uint32(key string) (uint32, error) {
	v, ln, err := b.value(key)
	if err != nil {
		return 0, err
	}

	n, err := strconv.ParseUint(firstToken(v), 10, 32)
	if err != nil {
		return 0, malformed(b.tag, key, ln)
	}

	return uint32(n), nil
}

// Int32 parses a decimal signed parameter.
func (b *BlockText) Int32(key string) (int32, error) {
	v, ln, err := b.value(key)
	if err != nil {
		return 0, err
	}

	n, err := strconv.ParseInt(firstToken(v), 10, 32)
	if err != nil {
		return 0, malformed(b.tag, key, ln)
	}

	return int32(n), nil
}

// Int64 parses a decimal signed parameter needing more than 32 bits, such as
// an epoch-shifted timestamp that may be negative.
func (b *BlockText) Int64(key string) (int64, error) {
	v, ln, err := b.value(key)
	if err != nil {
		return 0, err
	}

	n, err := strconv.ParseInt(firstToken(v), 10, 64)
	if err != nil {
		return 0, malformed(b.tag, key, ln)
	}

	return n, nil
}

// HexUint32 parses an unprefixed hexadecimal parameter.
func (b *BlockText) HexUint32(key string) (uint32, error) {
	v, ln, err := b.value(key)
	if err != nil {
		return 0, err
	}

	n, err := strconv.ParseUint(firstToken(v), 16, 32)
	if err != nil {
		return 0, malformed(b.tag, key, ln)
	}

	return uint32(n), nil
}

// Float64 parses a float parameter of up to 20 significant digits.
func (b *BlockText) Float64(key string) (float64, error) {
	v, ln, err := b.value(key)
	if err != nil {
		return 0, err
	}

	f, err := strconv.ParseFloat(firstToken(v), 64)
	if err != nil {
		return 0, malformed(b.tag, key, ln)
	}

	return f, nil
}

// FourCC parses a four-character code parameter, taken verbatim from the
// first four characters of the value.
func (b *BlockText) FourCC(key string) (Tag, error) {
	v, ln, err := b.value(key)
	if err != nil {
		return 0, err
	}

	tag, ok := TagFromString(v)
	if !ok {
		return 0, malformed(b.tag, key, ln)
	}

	return tag, nil
}

// FixedText returns the value as a zero-padded fixed-width field, whitespace
// preserved verbatim and overlong input truncated.
func (b *BlockText) FixedText(key string, width int) ([]byte, error) {
	v, _, err := b.value(key)
	if err != nil {
		return nil, err
	}

	out := make([]byte, width)
	copy(out, v)

	return out, nil
}

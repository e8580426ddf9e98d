package chunk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineReaderChompsCarriageReturns(t *testing.T) {
	lr := NewLineReader(strings.NewReader("rtag\r\nrtag:9\r\n\r\n"))

	line, ok, err := lr.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "rtag", line.Text)
	require.Equal(t, 1, line.Number)
}

func TestBlockWindowStopsAtBlankLine(t *testing.T) {
	lr := NewLineReader(strings.NewReader("one:1\ntwo:2\n\nthree:3\n"))

	blk, err := lr.Block(TagRtag)
	require.NoError(t, err)
	require.Len(t, blk.Lines(), 2)

	v, err := blk.Uint32("two")
	require.NoError(t, err)
	require.Equal(t, uint32(2), v)

	// The next block starts after the blank line.
	line, ok, err := lr.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "three:3", line.Text)
	require.Equal(t, 4, line.Number)
}

func TestBlockValueIgnoresTrailingAnnotation(t *testing.T) {
	lr := NewLineReader(strings.NewReader("filetimestamp:100 (NB: seconds since 1970) (Thu Jan  1 00:01:40 1970)\n\n"))

	blk, err := lr.Block(TagMcda)
	require.NoError(t, err)

	v, err := blk.Uint32("filetimestamp")
	require.NoError(t, err)
	require.Equal(t, uint32(100), v)
}

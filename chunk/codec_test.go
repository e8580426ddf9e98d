package chunk

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowg/rangeseries-editing-utility/endian"
	"github.com/rowg/rangeseries-editing-utility/errs"
	"github.com/rowg/rangeseries-editing-utility/internal/pool"
)

// blockReader positions a LineReader right after the block's tag line, the
// way ReadText hands the reader to a codec.
func blockReader(lines ...string) *LineReader {
	return NewLineReader(strings.NewReader(strings.Join(lines, "\n") + "\n\n"))
}

func encodeBlock(t *testing.T, d *Descriptor) []byte {
	t.Helper()
	codec, err := Lookup(d.Tag)
	require.NoError(t, err)

	buf := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(buf)
	require.NoError(t, codec.Encode(d, buf))

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out
}

func TestSignUserflagsWireOrder(t *testing.T) {
	d, err := signCodec{}.ParseText(blockReader(
		"version:2.00",
		"filetype:AQFT",
		"sitecode:BML1",
		"userflags:1a",
		"description:test",
		"ownername:nobody",
		"comment:",
	), &Config{})
	require.NoError(t, err)

	wire := encodeBlock(t, d)
	// The flags land on the wire big-endian regardless of host order.
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x1a}, wire[HeaderSize+12:HeaderSize+16])
}

func TestSignFixedTextVerbatim(t *testing.T) {
	d, err := signCodec{}.ParseText(blockReader(
		"version:2.00",
		"filetype:AQFT",
		"sitecode:BML1",
		"userflags:0",
		"description:  leading and trailing spaces  ",
		"ownername:nobody",
		"comment:",
	), &Config{})
	require.NoError(t, err)

	require.Equal(t, "  leading and trailing spaces  ", fixedTextString(d.Data[16:80]))
}

func TestMcdaEpochShift(t *testing.T) {
	t.Run("text to binary always adds the offset", func(t *testing.T) {
		d, err := mcdaCodec{}.ParseText(blockReader("filetimestamp:0"), &Config{})
		require.NoError(t, err)
		require.Equal(t, uint32(macEpochOffset), endian.Native().Uint32(d.Data))
	})

	t.Run("binary to text subtracts the offset", func(t *testing.T) {
		data := make([]byte, mcdaSize)
		putU32(data, 0, macEpochOffset+1000000000)
		d := &Descriptor{Tag: TagMcda, Size: mcdaSize, Data: data}

		var text bytes.Buffer
		require.NoError(t, mcdaCodec{}.Decode(d, &Config{}, &text))
		require.Contains(t, text.String(), "filetimestamp:1000000000 ")
	})

	t.Run("stored value below the offset renders negative and round-trips", func(t *testing.T) {
		data := make([]byte, mcdaSize)
		putU32(data, 0, macEpochOffset-100)
		d := &Descriptor{Tag: TagMcda, Size: mcdaSize, Data: data}

		var text bytes.Buffer
		require.NoError(t, mcdaCodec{}.Decode(d, &Config{}, &text))
		require.Contains(t, text.String(), "filetimestamp:-100 ")

		back, err := mcdaCodec{}.ParseText(blockReader("filetimestamp:-100"), &Config{})
		require.NoError(t, err)
		require.Equal(t, uint32(macEpochOffset-100), endian.Native().Uint32(back.Data))
	})

	t.Run("stored zero suppresses the line", func(t *testing.T) {
		d := &Descriptor{Tag: TagMcda, Size: mcdaSize, Data: make([]byte, mcdaSize)}

		var text bytes.Buffer
		require.NoError(t, mcdaCodec{}.Decode(d, &Config{}, &text))
		require.Equal(t, "mcda\n\n", text.String())
	})
}

func TestHasiRoundTrip(t *testing.T) {
	payload := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x2a}
	d := &Descriptor{Tag: TagHasi, Size: uint32(len(payload)), Data: payload}

	var text bytes.Buffer
	require.NoError(t, hasiCodec{}.Decode(d, &Config{}, &text))
	require.Equal(t, "hasi\ndata: de ad be ef 00 2a\n\n", text.String())

	back, err := hasiCodec{}.ParseText(blockReader("data: de ad be ef 00 2a"), &Config{})
	require.NoError(t, err)
	require.Equal(t, payload, back.Data)
	require.Equal(t, uint32(len(payload)), back.Size)
}

func TestHasiNeverEndianFixed(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	d := &Descriptor{Tag: TagHasi, Size: 5, Data: append([]byte(nil), payload...)}

	require.NoError(t, hasiCodec{}.Fixup(d, endian.NewNormalizer()))
	require.Equal(t, payload, d.Data)
}

func TestSampleFormatGate(t *testing.T) {
	d := &Descriptor{Tag: TagAfft, Size: sampleSize, Data: make([]byte, sampleSize)}
	codec := sampleCodec{tag: TagAfft, precision: 20}

	t.Run("wrong format", func(t *testing.T) {
		var text bytes.Buffer
		cfg := &Config{Format: FormatDBRA, Subtype: SubtypeFLT4}
		require.ErrorIs(t, codec.Decode(d, cfg, &text), errs.ErrUnsupportedSampleFormat)
	})

	t.Run("wrong subtype", func(t *testing.T) {
		var text bytes.Buffer
		cfg := &Config{Format: FormatCVIQ, Subtype: SubtypeFIX2}
		require.ErrorIs(t, codec.Decode(d, cfg, &text), errs.ErrUnsupportedSampleFormat)
	})

	t.Run("text side gated too", func(t *testing.T) {
		_, err := codec.ParseText(blockReader(
			"  0  0.50000000000000000000 -0.25000000000000000000",
			"  1  0.50000000000000000000 -0.25000000000000000000",
			"  2  0.50000000000000000000 -0.25000000000000000000",
		), &Config{})
		require.ErrorIs(t, err, errs.ErrUnsupportedSampleFormat)
	})
}

func TestSampleLineCount(t *testing.T) {
	codec := sampleCodec{tag: TagAfft, precision: 20}
	cfg := &Config{Format: FormatCVIQ, Subtype: SubtypeFLT4}

	t.Run("no lines", func(t *testing.T) {
		_, err := codec.ParseText(NewLineReader(strings.NewReader("\n")), cfg)
		require.ErrorIs(t, err, errs.ErrBadSampleLineCount)
	})

	t.Run("not a multiple of three", func(t *testing.T) {
		_, err := codec.ParseText(blockReader(
			"  0  0.50000000000000000000 -0.25000000000000000000",
			"  1  0.50000000000000000000 -0.25000000000000000000",
		), cfg)
		require.ErrorIs(t, err, errs.ErrBadSampleLineCount)
	})
}

func TestSampleMalformedLine(t *testing.T) {
	codec := sampleCodec{tag: TagAfft, precision: 20}
	cfg := &Config{Format: FormatCVIQ, Subtype: SubtypeFLT4}

	_, err := codec.ParseText(blockReader(
		"  0  0.5 -0.25",
		"  1  0.5",
		"  2  0.5 -0.25",
	), cfg)
	require.ErrorIs(t, err, errs.ErrMalformedSampleLine)
}

func TestSampleRoundTrip(t *testing.T) {
	codec := sampleCodec{tag: TagIfft, precision: 16}
	cfg := &Config{Format: FormatCVIQ, Subtype: SubtypeFLT4}

	d, err := codec.ParseText(blockReader(
		"  0  0.5 -0.25",
		"  1  1.5 -0.125",
		"  2 -2.0  0.0625",
	), cfg)
	require.NoError(t, err)
	require.Equal(t, uint32(3*sampleSize), d.Size)

	var text bytes.Buffer
	require.NoError(t, codec.Decode(d, cfg, &text))

	back, err := codec.ParseText(NewLineReader(strings.NewReader(
		strings.TrimPrefix(text.String(), "ifft\n"))), cfg)
	require.NoError(t, err)
	require.Equal(t, d.Data, back.Data)
}

// Fixing up a wire payload and encoding it again must reproduce the original
// bytes, whatever the host byte order.
func TestFixupEncodeIdentity(t *testing.T) {
	tests := []struct {
		tag  Tag
		size int
	}{
		{TagSign, signSize},
		{TagMcda, mcdaSize},
		{TagDbrf, dbrfSize},
		{TagCnst, cnstSize},
		{TagSwep, swepSize},
		{TagFbin, fbinSize},
		{TagRtag, rtagSize},
		{TagGps1, gps1Size},
		{TagIndx, indxSize},
		{TagScal, scalSize},
		{TagAfft, 2 * sampleSize},
		{TagIfft, sampleSize},
	}

	norm := endian.NewNormalizer()
	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			payload := make([]byte, tt.size)
			for i := range payload {
				payload[i] = byte(i*7 + 3)
			}
			d := &Descriptor{Tag: tt.tag, Size: uint32(tt.size), Data: append([]byte(nil), payload...)}

			codec, err := Lookup(tt.tag)
			require.NoError(t, err)
			require.NoError(t, codec.Fixup(d, norm))

			wire := encodeBlock(t, d)
			require.Equal(t, payload, wire[HeaderSize:])
		})
	}
}

package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func testPayload() []byte {
	// Repetitive enough to compress, long enough to exercise the codecs.
	var buf bytes.Buffer
	for i := 0; i < 256; i++ {
		buf.WriteString("AQFT range series block payload ")
		buf.WriteByte(byte(i))
	}

	return buf.Bytes()
}

func TestCodecRoundTrip(t *testing.T) {
	payload := testPayload()

	for _, kind := range []Kind{KindNone, KindZstd, KindLZ4, KindS2} {
		t.Run(string(kind), func(t *testing.T) {
			codec, err := GetCodec(kind)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			back, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, back)
		})
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for _, kind := range []Kind{KindZstd, KindLZ4, KindS2} {
		t.Run(string(kind), func(t *testing.T) {
			codec, err := GetCodec(kind)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			back, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, back)
		})
	}
}

func TestGetCodecUnknownKind(t *testing.T) {
	_, err := GetCodec(Kind("brotli"))
	require.Error(t, err)
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		kind Kind
	}{
		{"recording.rs.zst", KindZstd},
		{"recording.rs.zstd", KindZstd},
		{"recording.rs.lz4", KindLZ4},
		{"recording.rs.s2", KindS2},
		{"recording.rs", KindNone},
		{"recording.txt", KindNone},
		{"recording", KindNone},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			codec, kind := ForPath(tt.path)
			require.NotNil(t, codec)
			require.Equal(t, tt.kind, kind)
		})
	}
}

func TestNoOpPassesThrough(t *testing.T) {
	payload := testPayload()
	codec := NewNoOpCodec()

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	back, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, back)
}

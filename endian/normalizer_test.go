package endian

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizer_Involution(t *testing.T) {
	// normalize(normalize(x, w), w) == x for every width and byte pattern.
	norm := NewNormalizer()

	for _, width := range []int{2, 4, 8} {
		original := make([]byte, width)
		for i := range original {
			original[i] = byte(0x10*i + 7)
		}

		buf := append([]byte(nil), original...)
		norm.Normalize(buf, width)
		norm.Normalize(buf, width)
		require.Equal(t, original, buf, "width %d", width)
	}
}

func TestNormalizer_SwapsOnLittleEndianHost(t *testing.T) {
	norm := NewNormalizer()

	t.Run("width 2", func(t *testing.T) {
		buf := []byte{0x01, 0x02}
		norm.Normalize(buf, 2)
		if IsNativeLittleEndian() {
			require.Equal(t, []byte{0x02, 0x01}, buf)
		} else {
			require.Equal(t, []byte{0x01, 0x02}, buf)
		}
	})

	t.Run("width 4", func(t *testing.T) {
		buf := []byte{0x01, 0x02, 0x03, 0x04}
		norm.Normalize(buf, 4)
		if IsNativeLittleEndian() {
			require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)
		} else {
			require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)
		}
	})

	t.Run("width 8", func(t *testing.T) {
		buf := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
		norm.Normalize(buf, 8)
		if IsNativeLittleEndian() {
			require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, buf)
		} else {
			require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, buf)
		}
	})
}

func TestNormalizer_UnknownWidthIsIdentity(t *testing.T) {
	norm := NewNormalizer()

	buf := []byte{0x01, 0x02, 0x03}
	norm.Normalize(buf, 3)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, buf)
}

func TestNormalizer_WireRoundTrip(t *testing.T) {
	// A wire-order scalar normalized in place must read back correctly
	// through the native engine.
	norm := NewNormalizer()

	buf := Wire().AppendUint32(nil, 0xCAFEBABE)
	norm.Normalize(buf, 4)
	require.Equal(t, uint32(0xCAFEBABE), Native().Uint32(buf))

	buf = Wire().AppendUint64(nil, 0x0102030405060708)
	norm.Normalize(buf, 8)
	require.Equal(t, uint64(0x0102030405060708), Native().Uint64(buf))
}

package compress

import (
	"fmt"
	"path/filepath"
)

// Compressor compresses a whole buffer at once.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
//   - Internal buffers may be reused for efficiency
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a whole buffer at once, with the same memory
// management contract as Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// Kind identifies a compression algorithm.
type Kind string

const (
	KindNone Kind = "none"
	KindZstd Kind = "zstd"
	KindLZ4  Kind = "lz4"
	KindS2   Kind = "s2"
)

// GetCodec returns the codec for the given kind.
func GetCodec(kind Kind) (Codec, error) {
	switch kind {
	case KindNone:
		return NewNoOpCodec(), nil
	case KindZstd:
		return NewZstdCodec(), nil
	case KindLZ4:
		return NewLZ4Codec(), nil
	case KindS2:
		return NewS2Codec(), nil
	default:
		return nil, fmt.Errorf("unknown compression kind %q", kind)
	}
}

// ForPath returns the codec implied by the path's extension, along with its
// kind. Paths without a recognized compression suffix get the no-op codec.
func ForPath(path string) (Codec, Kind) {
	switch filepath.Ext(path) {
	case ".zst", ".zstd":
		return NewZstdCodec(), KindZstd
	case ".lz4":
		return NewLZ4Codec(), KindLZ4
	case ".s2":
		return NewS2Codec(), KindS2
	default:
		return NewNoOpCodec(), KindNone
	}
}

package compress

// ZstdCodec compresses with Zstandard, the best ratio of the supported
// algorithms; the right choice for archived recordings.
//
// The implementation is selected at build time: pure Go by default, the
// libzstd binding when built with the cgo_zstd tag. The frames are
// interchangeable.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a new Zstandard codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

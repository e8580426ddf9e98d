package compress

// NoOpCodec passes data through untouched. It backs files without a
// compression suffix.
//
// Both directions return the input slice as-is, sharing its underlying
// memory; callers must not modify the input afterwards if they keep the
// returned slice.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

func (NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// Package compress provides the compression codecs behind transparent file
// compression in the command-line tools: a recording or its text form may be
// stored with a .zst, .lz4 or .s2 suffix and is compressed or decompressed on
// the way through.
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs are whole-buffer: recordings are read and written as single buffers,
// so there is no streaming surface. The codec for a file is chosen by
// extension through ForPath; unknown extensions get the no-op codec, which
// passes data through untouched.
//
// Two zstd implementations are provided behind the cgo_zstd build tag: the
// pure-Go klauspost encoder by default, and the libzstd-backed valyala/gozstd
// binding when the tag is set. Both produce interchangeable frames.
package compress

package chunk

import (
	"bytes"
	"io"

	"github.com/rowg/rangeseries-editing-utility/endian"
	"github.com/rowg/rangeseries-editing-utility/internal/pool"
)

// Fixed widths of the sign block's text fields.
const (
	sizeDescription = 64
	sizeOwnerName   = 64
	sizeComment     = 64

	signSize = 16 + sizeDescription + sizeOwnerName + sizeComment
)

var signLayout = []int{4, 4, 4, 4, -sizeDescription, -sizeOwnerName, -sizeComment}

// signCodec handles the file signature block: version, filetype and sitecode
// fourccs, user flags, and three fixed-width free-text fields.
type signCodec struct{}

var _ Codec = signCodec{}

func (signCodec) Fixup(d *Descriptor, norm endian.Normalizer) error {
	if d.Size < signSize {
		return truncated(TagSign, d.Size, signSize)
	}

	normalizeFields(d.Data, signLayout, norm)

	return nil
}

// fixedTextString renders a fixed-width text field, stopping at the first NUL.
func fixedTextString(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		return string(field[:i])
	}

	return string(field)
}

func (signCodec) Decode(d *Descriptor, _ *Config, w io.Writer) error {
	if d.Size < signSize {
		return truncated(TagSign, d.Size, signSize)
	}

	native := endian.Native()
	tw := &textWriter{w: w}
	tw.printf("%s\n", TagSign)
	tw.printf("version:%s\n", Tag(native.Uint32(d.Data[0:4])))
	tw.printf("filetype:%s\n", Tag(native.Uint32(d.Data[4:8])))
	tw.printf("sitecode:%s\n", Tag(native.Uint32(d.Data[8:12])))
	tw.printf("userflags:%x\n", native.Uint32(d.Data[12:16]))
	tw.printf("description:%s\n", fixedTextString(d.Data[16:80]))
	tw.printf("ownername:%s\n", fixedTextString(d.Data[80:144]))
	tw.printf("comment:%s\n", fixedTextString(d.Data[144:208]))
	tw.printf("\n")

	return tw.err
}

func (signCodec) ParseText(r *LineReader, _ *Config) (*Descriptor, error) {
	blk, err := r.Block(TagSign)
	if err != nil {
		return nil, err
	}

	data := make([]byte, signSize)
	native := endian.Native()

	version, err := blk.FourCC("version")
	if err != nil {
		return nil, err
	}
	native.PutUint32(data[0:4], uint32(version))

	filetype, err := blk.FourCC("filetype")
	if err != nil {
		return nil, err
	}
	native.PutUint32(data[4:8], uint32(filetype))

	sitecode, err := blk.FourCC("sitecode")
	if err != nil {
		return nil, err
	}
	native.PutUint32(data[8:12], uint32(sitecode))

	flags, err := blk.HexUint32("userflags")
	if err != nil {
		return nil, err
	}
	native.PutUint32(data[12:16], flags)

	description, err := blk.FixedText("description", sizeDescription)
	if err != nil {
		return nil, err
	}
	copy(data[16:80], description)

	owner, err := blk.FixedText("ownername", sizeOwnerName)
	if err != nil {
		return nil, err
	}
	copy(data[80:144], owner)

	comment, err := blk.FixedText("comment", sizeComment)
	if err != nil {
		return nil, err
	}
	copy(data[144:208], comment)

	return &Descriptor{Tag: TagSign, Size: signSize, Data: data}, nil
}

func (signCodec) Encode(d *Descriptor, buf *pool.ByteBuffer) error {
	appendFixed(buf, d, signLayout, signSize)
	return nil
}

package chunk

// Tag is a four-character block type code, held as a uint32 with the first
// character in the most significant byte (wire order of the characters).
type Tag uint32

// Block type tags of the RangeSeries container format.
const (
	TagAQFT Tag = 0x41514654 // "AQFT"
	TagHEAD Tag = 0x48454144 // "HEAD"
	TagSign Tag = 0x7369676e // "sign"
	TagMcda Tag = 0x6d636461 // "mcda"
	TagDbrf Tag = 0x64627266 // "dbrf"
	TagCnst Tag = 0x636e7374 // "cnst"
	TagHasi Tag = 0x68617369 // "hasi"
	TagSwep Tag = 0x73776570 // "swep"
	TagFbin Tag = 0x6662696e // "fbin"
	TagBODY Tag = 0x424f4459 // "BODY"
	TagRtag Tag = 0x72746167 // "rtag"
	TagGps1 Tag = 0x67707331 // "gps1"
	TagIndx Tag = 0x696e6478 // "indx"
	TagScal Tag = 0x7363616c // "scal"
	TagAfft Tag = 0x61666674 // "afft"
	TagIfft Tag = 0x69666674 // "ifft"
	TagEND  Tag = 0x454e4420 // "END "
)

// Sample format and subtype codes declared by fbin blocks.
const (
	FormatCVIQ  Tag = 0x63766971 // "cviq"
	FormatDBRA  Tag = 0x64627261 // "dbra"
	SubtypeFLT8 Tag = 0x666c7438 // "flt8"
	SubtypeFLT4 Tag = 0x666c7434 // "flt4"
	SubtypeFIX2 Tag = 0x66697832 // "fix2"
	SubtypeFIX3 Tag = 0x66697833 // "fix3"
	SubtypeFIX4 Tag = 0x66697834 // "fix4"
)

// String returns the tag's four characters.
func (t Tag) String() string {
	return string([]byte{
		byte(t >> 24),
		byte(t >> 16),
		byte(t >> 8),
		byte(t),
	})
}

// TagFromString converts the first four characters of s into a Tag.
// It reports false when s is shorter than four characters.
func TagFromString(s string) (Tag, bool) {
	if len(s) < 4 {
		return 0, false
	}

	return Tag(s[0])<<24 | Tag(s[1])<<16 | Tag(s[2])<<8 | Tag(s[3]), true
}

// IsContainer reports whether the tag denotes a container block, one whose
// logical contents are the blocks that follow it rather than a payload of
// its own.
func (t Tag) IsContainer() bool {
	switch t {
	case TagAQFT, TagHEAD, TagBODY, TagEND:
		return true
	default:
		return false
	}
}

package endian

// Normalizer converts multi-byte scalars between the big-endian wire order and
// host order by swapping bytes in place. The host byte order is captured once
// at construction; on a big-endian host every operation is the identity.
//
// Because a byte swap is its own inverse, the same Normalizer serves both
// directions: a scalar crossing the binary boundary passes through it exactly
// once per direction.
type Normalizer struct {
	swap bool
}

// NewNormalizer probes the host byte order and returns a Normalizer for
// converting between wire order and host order.
func NewNormalizer() Normalizer {
	return Normalizer{swap: IsNativeLittleEndian()}
}

// Normalize swaps the first width bytes of buf in place when the host byte
// order differs from the wire order. Width must be 2, 4 or 8; any other width
// leaves buf untouched.
func (n Normalizer) Normalize(buf []byte, width int) {
	if !n.swap {
		return
	}

	switch width {
	case 2:
		n.Normalize2(buf)
	case 4:
		n.Normalize4(buf)
	case 8:
		n.Normalize8(buf)
	}
}

// Normalize2 swaps a 2-byte scalar at the front of buf in place.
func (n Normalizer) Normalize2(buf []byte) {
	if !n.swap {
		return
	}
	buf[0], buf[1] = buf[1], buf[0]
}

// Normalize4 swaps a 4-byte scalar at the front of buf in place.
func (n Normalizer) Normalize4(buf []byte) {
	if !n.swap {
		return
	}
	buf[0], buf[3] = buf[3], buf[0]
	buf[1], buf[2] = buf[2], buf[1]
}

// Normalize8 swaps an 8-byte scalar at the front of buf in place.
func (n Normalizer) Normalize8(buf []byte) {
	if !n.swap {
		return
	}
	buf[0], buf[7] = buf[7], buf[0]
	buf[1], buf[6] = buf[6], buf[1]
	buf[2], buf[5] = buf[5], buf[2]
	buf[3], buf[4] = buf[4], buf[3]
}

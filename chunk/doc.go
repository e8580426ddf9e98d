// Package chunk implements the RangeSeries block container model: parsing the
// binary stream of type-tagged, length-prefixed blocks into a flat descriptor
// sequence, converting the sequence to and from its editable text form, and
// serializing it back to wire bytes.
//
// The binary format is big-endian by definition. Descriptors hold their
// payloads in host byte order; the endian boundary is crossed exactly once on
// the way in (Parser) and once on the way out (AppendSequence).
package chunk

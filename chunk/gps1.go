package chunk

import (
	"io"
	"math"
	"time"

	"github.com/rowg/rangeseries-editing-utility/endian"
	"github.com/rowg/rangeseries-editing-utility/internal/pool"
)

const gps1Size = 28

var gps1Layout = []int{8, 8, 8, 4}

// gps1Codec handles the receiver position block: latitude and longitude in
// radians, altitude in meters, and an HFS-epoch timestamp with the same shift
// asymmetry as mcda.
type gps1Codec struct{}

var _ Codec = gps1Codec{}

func (gps1Codec) Fixup(d *Descriptor, norm endian.Normalizer) error {
	if d.Size < gps1Size {
		return truncated(TagGps1, d.Size, gps1Size)
	}

	normalizeFields(d.Data, gps1Layout, norm)

	return nil
}

func (gps1Codec) Decode(d *Descriptor, _ *Config, w io.Writer) error {
	if d.Size < gps1Size {
		return truncated(TagGps1, d.Size, gps1Size)
	}

	native := endian.Native()
	lat := math.Float64frombits(native.Uint64(d.Data[0:8]))
	lon := math.Float64frombits(native.Uint64(d.Data[8:16]))
	alt := math.Float64frombits(native.Uint64(d.Data[16:24]))
	ts := native.Uint32(d.Data[24:28])

	tw := &textWriter{w: w}
	tw.printf("%s\n", TagGps1)
	tw.printf("lat:%.6f\n", lat)
	tw.printf("lon:%.6f\n", lon)
	tw.printf("alt:%.6f\n", alt)
	if ts != 0 {
		unix := int64(ts) - macEpochOffset
		tw.printf("gpstimestamp:%d (NB: seconds since 1970) (%s)\n", unix, time.Unix(unix, 0).Format(time.ANSIC))
	}
	tw.printf("\n")

	return tw.err
}

func (gps1Codec) ParseText(r *LineReader, _ *Config) (*Descriptor, error) {
	blk, err := r.Block(TagGps1)
	if err != nil {
		return nil, err
	}

	data := make([]byte, gps1Size)
	native := endian.Native()

	lat, err := blk.Float64("lat")
	if err != nil {
		return nil, err
	}
	native.PutUint64(data[0:8], math.Float64bits(lat))

	lon, err := blk.Float64("lon")
	if err != nil {
		return nil, err
	}
	native.PutUint64(data[8:16], math.Float64bits(lon))

	alt, err := blk.Float64("alt")
	if err != nil {
		return nil, err
	}
	native.PutUint64(data[16:24], math.Float64bits(alt))

	ts, err := blk.Int64("gpstimestamp")
	if err != nil {
		return nil, err
	}
	native.PutUint32(data[24:28], uint32(ts+macEpochOffset))

	return &Descriptor{Tag: TagGps1, Size: gps1Size, Data: data}, nil
}

func (gps1Codec) Encode(d *Descriptor, buf *pool.ByteBuffer) error {
	appendFixed(buf, d, gps1Layout, gps1Size)
	return nil
}

package rangeseries_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	rangeseries "github.com/rowg/rangeseries-editing-utility"
)

const editedRecording = `AQFT

HEAD

sign
version:2.00
filetype:AQFT
sitecode:BML1
userflags:1a
description:Range series data
ownername:Bodega Marine Laboratory
comment:hand edited

mcda
filetimestamp:1000000000

dbrf
rxloss:-1.25

cnst
nchannels:2
nranges:32
nsweeps:512
iqindicator:1

hasi
data: de ad be ef 00 2a

swep
samplespersweep:2048
sweepstart:0.5
sweepbandwidth:0.25
sweeprate:0.125
rangeoffset:3

fbin
format:cviq
type:flt4

BODY

rtag
rtag:7

gps1
lat:0.656250
lon:-1.5
alt:12.5
gpstimestamp:1000000000

indx
index:5

scal
scalar_one:1.0
scalar_two:2.0

afft
  0  0.5 -0.25
  1  1.5 -0.125
  2 -2.0  0.0625

ifft
  0 -0.5  0.25
  1 -1.5  0.125
  2  2.0 -0.0625

END 
`

func TestFullRoundTrip(t *testing.T) {
	seq, lines, err := rangeseries.FromText(strings.NewReader(editedRecording))
	require.NoError(t, err)
	require.Positive(t, lines)
	require.Len(t, seq, 17)

	// Text produced from the parsed sequence is the canonical rendering.
	var text1 bytes.Buffer
	require.NoError(t, rangeseries.ToText(&text1, seq, false))

	data, err := rangeseries.ToBinary(seq)
	require.NoError(t, err)

	back, err := rangeseries.Parse(data)
	require.NoError(t, err)
	require.Len(t, back, len(seq))

	var text2 bytes.Buffer
	require.NoError(t, rangeseries.ToText(&text2, back, false))
	require.Equal(t, text1.String(), text2.String())

	// The canonical text regenerates the identical binary.
	again, _, err := rangeseries.FromText(bytes.NewReader(text1.Bytes()))
	require.NoError(t, err)
	data2, err := rangeseries.ToBinary(again)
	require.NoError(t, err)
	require.Equal(t, data, data2)
}

func TestFingerprint(t *testing.T) {
	seq, _, err := rangeseries.FromText(strings.NewReader(editedRecording))
	require.NoError(t, err)

	fp1, err := rangeseries.Fingerprint(seq)
	require.NoError(t, err)
	require.NotZero(t, fp1)

	data, err := rangeseries.ToBinary(seq)
	require.NoError(t, err)
	back, err := rangeseries.Parse(data)
	require.NoError(t, err)

	fp2, err := rangeseries.Fingerprint(back)
	require.NoError(t, err)
	require.Equal(t, fp1, fp2)
}

func TestHeaderOnlyText(t *testing.T) {
	seq, _, err := rangeseries.FromText(strings.NewReader(editedRecording))
	require.NoError(t, err)

	var text bytes.Buffer
	require.NoError(t, rangeseries.ToText(&text, seq, true))
	require.Contains(t, text.String(), "fbin\n")
	require.NotContains(t, text.String(), "BODY")
	require.NotContains(t, text.String(), "afft")
}

func TestContainerSizes(t *testing.T) {
	seq, _, err := rangeseries.FromText(strings.NewReader(editedRecording))
	require.NoError(t, err)

	var head, body uint32
	for _, d := range seq {
		switch d.Tag.String() {
		case "HEAD":
			head = d.Size
		case "BODY":
			body = d.Size
		}
	}
	require.Equal(t, head+8+body+8, seq[0].Size)
}

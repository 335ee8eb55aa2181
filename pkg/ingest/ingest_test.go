package ingest

import (
	"bytes"
	"encoding/binary"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = orb.MultiLineString{
	{{0, 0}, {1, 0}, {1, 1}},
	{{-2.5, 3.25}, {4, 1e6}},
}

func TestReadText(t *testing.T) {
	input := "0 0 1 0 1 1\n\n-2.5 3.25   4 1e6\n"
	mls, err := ReadText(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, sample, mls)
}

func TestReadTextOddCoordinates(t *testing.T) {
	_, err := ReadText(strings.NewReader("0 0 1 0\n1 2 3\n"))
	require.ErrorIs(t, err, ErrOddCoordinates)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadTextInvalidNumber(t *testing.T) {
	_, err := ReadText(strings.NewReader("0 zero\n"))
	assert.Error(t, err)
}

func TestTextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sample))
	assert.Equal(t, "0 0 1 0 1 1\n-2.5 3.25 4 1e+06\n", buf.String())

	back, err := ReadText(&buf)
	require.NoError(t, err)
	assert.Equal(t, sample, back)
}

func TestBinaryLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, orb.MultiLineString{{{1.5, -2}}}))

	data := buf.Bytes()
	require.Len(t, data, 8+8+16)
	assert.Equal(t, uint64(1), binary.LittleEndian.Uint64(data[0:]))
	assert.Equal(t, uint64(1), binary.LittleEndian.Uint64(data[8:]))

	back, err := ReadBinary(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, orb.MultiLineString{{{1.5, -2}}}, back)
}

func TestBinaryRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, sample))
	back, err := ReadBinary(&buf)
	require.NoError(t, err)
	assert.Equal(t, sample, back)
}

func TestReadBinaryTruncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, sample))
	data := buf.Bytes()

	_, err := ReadBinary(bytes.NewReader(data[:len(data)-4]))
	assert.Error(t, err)
}

func TestReadCSVByName(t *testing.T) {
	input := `id,name,way
1,a,"LINESTRING(0 0,1 0,1 1)"
2,b,
3,c,"MULTILINESTRING((5 5,6 6),(7 7,8 8))"
4,d,"POINT(1 2)"
`
	mls, err := ReadCSV(strings.NewReader(input), "way")
	require.NoError(t, err)
	require.Len(t, mls, 3)
	assert.Equal(t, orb.LineString{{0, 0}, {1, 0}, {1, 1}}, mls[0])
	assert.Equal(t, orb.LineString{{5, 5}, {6, 6}}, mls[1])
	assert.Equal(t, orb.LineString{{7, 7}, {8, 8}}, mls[2])
}

func TestReadCSVByIndexAndDefault(t *testing.T) {
	mls, err := ReadCSV(strings.NewReader("a,b\nx,\"LINESTRING(1 2,3 4)\"\n"), "1")
	require.NoError(t, err)
	assert.Equal(t, orb.MultiLineString{{{1, 2}, {3, 4}}}, mls)

	_, err = ReadCSV(strings.NewReader("a,b\nx,y\n"), "")
	assert.Error(t, err, "default column does not exist in a two column file")

	_, err = ReadCSV(strings.NewReader("a,b\nx,y\n"), "geom")
	assert.Error(t, err)
}

func TestReadCSVInvalidWKT(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("way\nLINESTRING(oops)\n"), "way")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
}

func TestLoadAndSaveByExtension(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"data.txt", "data.bin"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, sample))
		back, err := Load(path, Options{})
		require.NoError(t, err, name)
		assert.Equal(t, sample, back, name)
	}

	csvPath := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("way\n\"LINESTRING(0 0,2 2)\"\n"), 0o644))
	back, err := Load(csvPath, Options{Column: "way"})
	require.NoError(t, err)
	assert.Equal(t, orb.MultiLineString{{{0, 0}, {2, 2}}}, back)

	_, err = Load(filepath.Join(dir, "data.json"), Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.ErrorIs(t, Save(filepath.Join(dir, "out.csv"), sample), ErrUnsupportedFormat)

	_, err = Load(filepath.Join(dir, "missing.txt"), Options{})
	assert.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatText, DetectFormat("a/b/map.TXT"))
	assert.Equal(t, FormatBinary, DetectFormat("map.bin"))
	assert.Equal(t, FormatCSV, DetectFormat("planet.csv"))
	assert.Equal(t, FormatUnknown, DetectFormat("map"))
	assert.Equal(t, "binary", FormatBinary.String())
}

func TestDecimateCountsAcrossPolylines(t *testing.T) {
	mls := orb.MultiLineString{
		{{1, 0}, {2, 0}, {3, 0}},
		{{4, 0}},
		{{5, 0}, {6, 0}},
	}
	out := Decimate(mls, 2)
	assert.Equal(t, orb.MultiLineString{
		{{2, 0}},
		{{4, 0}},
		{{6, 0}},
	}, out)

	assert.Equal(t, mls, Decimate(mls, 1))
	assert.Len(t, Decimate(mls, 10), 0)
}

func TestSimplifyDropsCollinearPoints(t *testing.T) {
	mls := orb.MultiLineString{{{0, 0}, {1, 0.001}, {2, 0}, {2, 5}}}
	out := Simplify(mls, 0.01)
	assert.Equal(t, orb.MultiLineString{{{0, 0}, {2, 0}, {2, 5}}}, out)
	assert.Len(t, mls[0], 4, "input is not modified")
}

func TestNormalize(t *testing.T) {
	out := Normalize(orb.MultiLineString{{{2, 4}, {-1, 8}}})
	assert.Equal(t, orb.MultiLineString{{{1, 0.5}, {-0.5, 1}}}, out)

	negative := orb.MultiLineString{{{-2, -4}}}
	assert.Equal(t, negative, Normalize(negative))
}

func TestLimitAndCounts(t *testing.T) {
	mls := orb.MultiLineString{{{0, 0}, {1, 1}, {2, 2}}, {{3, 3}, {4, 4}}}
	assert.Equal(t, 5, PointCount(mls))

	limited := Limit(mls, 4)
	assert.Equal(t, 4, PointCount(limited))
	assert.Equal(t, orb.LineString{{3, 3}}, limited[1])
	assert.Equal(t, mls, Limit(mls, 0))

	assert.Equal(t, orb.Point{2, 2}, Centroid(mls))
	assert.Equal(t, orb.Point{}, Centroid(nil))
}

func TestRandomStaysInsideExtent(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	mls := Random(rng, 3, 50, 100)

	require.Len(t, mls, 3)
	for _, ls := range mls {
		require.Len(t, ls, 50)
		for _, p := range ls {
			assert.True(t, p[0] >= -100 && p[0] <= 100)
			assert.True(t, p[1] >= -100 && p[1] <= 100)
		}
	}
}

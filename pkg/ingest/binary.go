package ingest

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/paulmach/orb"
)

// preallocLimit caps slice preallocation from untrusted counts
const preallocLimit = 1 << 16

// ReadBinary parses the binary layout: a uint64 polyline count, then for each
// polyline a uint64 point count followed by float64 x y pairs, all little
// endian
func ReadBinary(r io.Reader) (orb.MultiLineString, error) {
	br := bufio.NewReader(r)

	var count uint64
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("failed to read polyline count: %w", err)
	}

	mls := make(orb.MultiLineString, 0, min(count, preallocLimit))
	var pair [2]float64
	for i := uint64(0); i < count; i++ {
		var points uint64
		if err := binary.Read(br, binary.LittleEndian, &points); err != nil {
			return nil, fmt.Errorf("failed to read point count of polyline %d: %w", i, err)
		}

		ls := make(orb.LineString, 0, min(points, preallocLimit))
		for j := uint64(0); j < points; j++ {
			if err := binary.Read(br, binary.LittleEndian, &pair); err != nil {
				return nil, fmt.Errorf("failed to read point %d of polyline %d: %w", j, i, err)
			}
			ls = append(ls, orb.Point(pair))
		}
		mls = append(mls, ls)
	}
	return mls, nil
}

// WriteBinary writes the layout read by ReadBinary
func WriteBinary(w io.Writer, mls orb.MultiLineString) error {
	bw := bufio.NewWriter(w)
	var word [8]byte

	put := func(v uint64) error {
		binary.LittleEndian.PutUint64(word[:], v)
		_, err := bw.Write(word[:])
		return err
	}

	if err := put(uint64(len(mls))); err != nil {
		return fmt.Errorf("failed to write polyline count: %w", err)
	}
	for i, ls := range mls {
		if err := put(uint64(len(ls))); err != nil {
			return fmt.Errorf("failed to write polyline %d: %w", i, err)
		}
		for _, p := range ls {
			if err := put(math.Float64bits(p[0])); err != nil {
				return fmt.Errorf("failed to write polyline %d: %w", i, err)
			}
			if err := put(math.Float64bits(p[1])); err != nil {
				return fmt.Errorf("failed to write polyline %d: %w", i, err)
			}
		}
	}
	return bw.Flush()
}

package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// maxLineSize bounds a single text line; map exports easily exceed the
// scanner default of 64 KiB
const maxLineSize = 64 << 20

// ReadText parses one polyline per line. Blank lines are skipped.
func ReadText(r io.Reader) (orb.MultiLineString, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var mls orb.MultiLineString
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields)%2 != 0 {
			return nil, fmt.Errorf("line %d: %d values: %w", lineNo, len(fields), ErrOddCoordinates)
		}

		ls := make(orb.LineString, 0, len(fields)/2)
		for i := 0; i < len(fields); i += 2 {
			x, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid x: %w", lineNo, err)
			}
			y, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid y: %w", lineNo, err)
			}
			ls = append(ls, orb.Point{x, y})
		}
		mls = append(mls, ls)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading text polylines: %w", err)
	}
	return mls, nil
}

// WriteText writes one polyline per line
func WriteText(w io.Writer, mls orb.MultiLineString) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	for _, ls := range mls {
		if len(ls) == 0 {
			continue
		}
		for i, p := range ls {
			buf = buf[:0]
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, p[0], 'g', -1, 64)
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, p[1], 'g', -1, 64)
			if _, err := bw.Write(buf); err != nil {
				return fmt.Errorf("failed to write polyline: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write polyline: %w", err)
		}
	}
	return bw.Flush()
}

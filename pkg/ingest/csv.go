package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// DefaultColumn is the geometry column of OpenStreetMap planet_osm_line
// exports
const DefaultColumn = 68

// ReadCSV reads WKT geometries from a CSV file with a header row. column is a
// header name, a zero-based index or empty for DefaultColumn. LINESTRING and
// MULTILINESTRING values are kept, other geometries and empty cells are
// skipped.
func ReadCSV(r io.Reader, column string) (orb.MultiLineString, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	index, err := resolveColumn(header, column)
	if err != nil {
		return nil, err
	}

	var mls orb.MultiLineString
	for record := 1; ; record++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", record, err)
		}
		if index >= len(fields) {
			return nil, fmt.Errorf("record %d: has %d fields, geometry column is %d", record, len(fields), index)
		}

		cell := strings.TrimSpace(fields[index])
		if cell == "" {
			continue
		}
		geom, err := wkt.Unmarshal(cell)
		if err != nil {
			return nil, fmt.Errorf("record %d: invalid WKT: %w", record, err)
		}
		mls = appendLines(mls, geom)
	}
	return mls, nil
}

func appendLines(mls orb.MultiLineString, geom orb.Geometry) orb.MultiLineString {
	switch g := geom.(type) {
	case orb.LineString:
		if len(g) > 0 {
			mls = append(mls, g)
		}
	case orb.MultiLineString:
		for _, ls := range g {
			if len(ls) > 0 {
				mls = append(mls, ls)
			}
		}
	case orb.Collection:
		for _, child := range g {
			mls = appendLines(mls, child)
		}
	}
	return mls
}

func resolveColumn(header []string, column string) (int, error) {
	if column == "" {
		if DefaultColumn >= len(header) {
			return 0, fmt.Errorf("csv has %d columns, default geometry column %d is missing", len(header), DefaultColumn)
		}
		return DefaultColumn, nil
	}
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), column) {
			return i, nil
		}
	}
	if i, err := strconv.Atoi(column); err == nil && i >= 0 && i < len(header) {
		return i, nil
	}
	return 0, fmt.Errorf("geometry column %q not found in csv header", column)
}

// Package ingest reads and writes polyline data sets.
//
// Three formats are supported: plain text (one polyline per line, space
// separated x y pairs), a compact little-endian binary layout and CSV exports
// whose geometry column holds WKT line strings.
package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb"
)

var (
	// ErrUnsupportedFormat is returned for unknown file extensions
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrOddCoordinates is returned for text lines with a dangling x value
	ErrOddCoordinates = errors.New("odd number of coordinates")
)

// Format identifies a file layout
type Format int

const (
	FormatUnknown Format = iota
	FormatText
	FormatBinary
	FormatCSV
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatBinary:
		return "binary"
	case FormatCSV:
		return "csv"
	}
	return "unknown"
}

// DetectFormat picks the format from the file extension
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return FormatText
	case ".bin":
		return FormatBinary
	case ".csv":
		return FormatCSV
	}
	return FormatUnknown
}

// Options controls Load
type Options struct {
	// Column selects the CSV geometry column by header name or index.
	// Empty means DefaultColumn.
	Column string
}

// Load reads all polylines from path
func Load(path string, opts Options) (orb.MultiLineString, error) {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var mls orb.MultiLineString
	switch format {
	case FormatText:
		mls, err = ReadText(file)
	case FormatBinary:
		mls, err = ReadBinary(file)
	case FormatCSV:
		mls, err = ReadCSV(file, opts.Column)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return mls, nil
}

// Save writes polylines to path as text or binary, chosen by extension
func Save(path string, mls orb.MultiLineString) (err error) {
	format := DetectFormat(path)
	if format != FormatText && format != FormatBinary {
		return fmt.Errorf("cannot write %s: %w", path, ErrUnsupportedFormat)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	if format == FormatText {
		return WriteText(file, mls)
	}
	return WriteBinary(file, mls)
}

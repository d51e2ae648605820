package dataframe

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muurk/csvpage/internal/logging"
)

const utf8BOM = "\ufeff"

// Frame is a loaded table: one header row and zero or more records.
// Records are never modified after loading.
type Frame struct {
	Header  []string
	Records [][]string
	// Comma is the delimiter the data was parsed with. Zero means ','.
	Comma rune
}

// Options controls CSV parsing.
type Options struct {
	// Lenient accepts records whose field count differs from the header.
	Lenient bool
	// Comma is the field delimiter. Zero means ','.
	Comma rune
}

// LoadError reports a failure to open, read or parse a source.
type LoadError struct {
	Path string // Source path ("" for readers)
	Line int    // Input line of a parse failure, 0 if unknown
	Err  error  // Underlying error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	name := e.Path
	if name == "" {
		name = "input"
	}
	return fmt.Sprintf("failed to load %s: %v", name, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Len returns the number of records, excluding the header.
func (f *Frame) Len() int {
	return len(f.Records)
}

// Columns returns the number of header columns.
func (f *Frame) Columns() int {
	return len(f.Header)
}

// FromCSV loads a CSV file whose first row is the header.
func FromCSV(path string, opts Options) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer file.Close()

	frame, err := FromReader(file, opts)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}

	logging.LogLoad(path, frame.Len(), frame.Columns())
	return frame, nil
}

// FromReader parses CSV from r. The first row is the header; an empty input
// is an error because there is no header.
func FromReader(r io.Reader, opts Options) (*Frame, error) {
	reader := csv.NewReader(r)
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}
	if opts.Lenient {
		reader.FieldsPerRecord = -1
	}

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &LoadError{Err: errors.New("missing header row")}
	}
	if err != nil {
		return nil, parseFailure(err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	frame := &Frame{Header: header, Comma: reader.Comma}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, parseFailure(err)
		}
		frame.Records = append(frame.Records, record)
	}

	return frame, nil
}

func parseFailure(err error) *LoadError {
	le := &LoadError{Err: err}
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		le.Line = pe.Line
	}
	return le
}
